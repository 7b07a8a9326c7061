package usecase

import "context"

// QRCodeUsecase renders QR codes pointing at the public menu.
type QRCodeUsecase interface {
	GenerateDataURL(ctx context.Context, input *GenerateQRCodeInput) (*GenerateQRCodeOutput, error)
	GeneratePNG(ctx context.Context, input *GenerateQRCodeInput) ([]byte, error)
}

// GenerateQRCodeInput holds optional overrides; zero values use the configured defaults.
type GenerateQRCodeInput struct {
	URL             string
	Size            int
	ErrorCorrection string
}

// GenerateQRCodeOutput is a QR code embedded as a data URL.
type GenerateQRCodeOutput struct {
	QRCode string `json:"qrCode"`
	URL    string `json:"url"`
}
