package service

// QR error correction levels accepted by QRCodeService.
const (
	QRLevelLow     = "L"
	QRLevelMedium  = "M"
	QRLevelQuality = "Q"
	QRLevelHigh    = "H"
)

// QRCodeService renders content into a QR code image.
type QRCodeService interface {
	// GeneratePNG encodes content as a square PNG of size pixels using the
	// given error correction level. An unknown level falls back to medium.
	GeneratePNG(content string, size int, level string) ([]byte, error)
}
