package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"menudash/config"
	deliverycontext "menudash/internal/delivery/context"
	domainerrors "menudash/internal/domain/errors"
	"menudash/internal/domain/service"
	"menudash/internal/usecase"
	"menudash/internal/util"

	"go.uber.org/fx"
)

const pngDataURLPrefix = "data:image/png;base64,"

// qrCodeService implements the QRCodeUsecase interface.
type qrCodeService struct {
	encoder service.QRCodeService
	config  config.QRCodeConfig
	logger  *slog.Logger
}

// QRCodeServiceParams holds dependencies for QRCodeService, injected by Fx.
type QRCodeServiceParams struct {
	fx.In

	Encoder service.QRCodeService
	Config  *config.Config
	Logger  *slog.Logger
}

// NewQRCodeUsecase creates the QR code usecase.
func NewQRCodeUsecase(params QRCodeServiceParams) usecase.QRCodeUsecase {
	qrConfig := config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: service.QRLevelMedium, PublicMenuPath: "/menu/view"}
	if params.Config != nil && params.Config.QRCode != nil {
		qrConfig = *params.Config.QRCode
	}

	return &qrCodeService{
		encoder: params.Encoder,
		config:  qrConfig,
		logger:  params.Logger,
	}
}

// GenerateDataURL renders the QR code and embeds it as a base64 PNG data URL.
func (s *qrCodeService) GenerateDataURL(ctx context.Context, input *usecase.GenerateQRCodeInput) (*usecase.GenerateQRCodeOutput, error) {
	url, png, err := s.render(ctx, input)
	if err != nil {
		return nil, err
	}

	return &usecase.GenerateQRCodeOutput{
		QRCode: pngDataURLPrefix + base64.StdEncoding.EncodeToString(png),
		URL:    url,
	}, nil
}

// GeneratePNG renders the QR code as raw PNG bytes.
func (s *qrCodeService) GeneratePNG(ctx context.Context, input *usecase.GenerateQRCodeInput) ([]byte, error) {
	_, png, err := s.render(ctx, input)

	return png, err
}

func (s *qrCodeService) render(ctx context.Context, input *usecase.GenerateQRCodeInput) (string, []byte, error) {
	if input == nil {
		input = &usecase.GenerateQRCodeInput{}
	}

	url := strings.TrimSpace(input.URL)
	if url == "" {
		url = s.PublicMenuURL()
	}
	size := input.Size
	if size <= 0 {
		size = s.config.Size
	}
	level := strings.ToUpper(strings.TrimSpace(input.ErrorCorrection))
	if level == "" {
		level = s.config.ErrorCorrectionLevel
	}

	png, err := s.encoder.GeneratePNG(url, size, level)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to generate QR code",
			slog.String("url", url),
			slog.Int("size", size),
			slog.Any("error", err),
		)

		return "", nil, domainerrors.ErrQRCodeGenerationFailed.WithDetails(err.Error())
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Generated QR code",
		slog.String("url", url),
		slog.Int("size", size),
		slog.String("level", level),
		slog.String("png_size", util.FormatBytes(int64(len(png)))),
	)

	return url, png, nil
}

// PublicMenuURL is the default QR target: the configured base URL joined with the public menu path.
func (s *qrCodeService) PublicMenuURL() string {
	return strings.TrimRight(s.config.BaseURL, "/") + "/" + strings.TrimLeft(s.config.PublicMenuPath, "/")
}
