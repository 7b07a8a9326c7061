package handler

import (
	"net/http"

	"menudash/internal/delivery/http/response"
	"menudash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// qrFilename is offered to browsers downloading the PNG.
const qrFilename = "menu-qr-code.png"

// QRCodeHandlerParams holds dependencies for QRCodeHandler, injected by Fx.
type QRCodeHandlerParams struct {
	fx.In

	QRCodeUC usecase.QRCodeUsecase
}

// QRCodeHandler renders QR codes for the public menu.
type QRCodeHandler struct {
	qrCodeUC usecase.QRCodeUsecase
}

// NewQRCodeHandler is the constructor for QRCodeHandler.
func NewQRCodeHandler(params QRCodeHandlerParams) *QRCodeHandler {
	return &QRCodeHandler{qrCodeUC: params.QRCodeUC}
}

// GenerateQRCodeRequest carries optional QR overrides, from a JSON body or the query string
type GenerateQRCodeRequest struct {
	URL             string `json:"url" query:"url" validate:"omitempty,url"`
	Size            int    `json:"size" query:"size" validate:"omitempty,min=64,max=2048"`
	ErrorCorrection string `json:"errorCorrection" query:"errorCorrection" validate:"omitempty,oneof=L M Q H l m q h"`
}

func (r *GenerateQRCodeRequest) toInput() *usecase.GenerateQRCodeInput {
	return &usecase.GenerateQRCodeInput{
		URL:             r.URL,
		Size:            r.Size,
		ErrorCorrection: r.ErrorCorrection,
	}
}

// GenerateDataURL handles POST /qr and returns the code as a data URL.
func (h *QRCodeHandler) GenerateDataURL(c echo.Context) error {
	var req GenerateQRCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR code input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.qrCodeUC.GenerateDataURL(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// DownloadPNG handles GET /qr and returns the raw PNG as an attachment.
func (h *QRCodeHandler) DownloadPNG(c echo.Context) error {
	var req GenerateQRCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR code input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCodeUC.GeneratePNG(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+qrFilename+`"`)

	return c.Blob(http.StatusOK, "image/png", png)
}
