package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePNG(t *testing.T) {
	svc := NewQRCodeService()

	data, err := svc.GeneratePNG("https://kuyash.example/menu/view", 256, "M")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestGeneratePNG_RejectsEmptyContent(t *testing.T) {
	svc := NewQRCodeService()

	_, err := svc.GeneratePNG("  ", 256, "M")

	assert.Error(t, err)
}

func TestGeneratePNG_RejectsSizeOutOfRange(t *testing.T) {
	svc := NewQRCodeService()

	_, err := svc.GeneratePNG("https://kuyash.example", 10, "M")
	assert.Error(t, err)

	_, err = svc.GeneratePNG("https://kuyash.example", 5000, "M")
	assert.Error(t, err)
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{level: "L", want: qrcode.Low},
		{level: "m", want: qrcode.Medium},
		{level: "Q", want: qrcode.High},
		{level: "H", want: qrcode.Highest},
		{level: "", want: qrcode.Medium},
		{level: "X", want: qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}
