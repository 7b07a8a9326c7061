// Package qrcode renders QR code images with skip2/go-qrcode.
package qrcode

import (
	"strings"

	"menudash/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	minSize = 64
	maxSize = 2048
)

type qrcodeService struct{}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService() service.QRCodeService {
	return &qrcodeService{}
}

// GeneratePNG encodes content into a PNG image
func (s *qrcodeService) GeneratePNG(content string, size int, level string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("qr code content must not be empty")
	}
	if size < minSize || size > maxSize {
		return nil, errors.Errorf("qr code size %d out of range [%d, %d]", size, minSize, maxSize)
	}

	qrCode, err := qrcode.New(content, recoveryLevel(level))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// recoveryLevel maps the conventional L/M/Q/H letters onto go-qrcode levels.
func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case service.QRLevelLow:
		return qrcode.Low
	case service.QRLevelQuality:
		return qrcode.High
	case service.QRLevelHigh:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
