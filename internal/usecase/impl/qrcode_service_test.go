package impl

import (
	"context"
	"testing"

	domainerrors "menudash/internal/domain/errors"
	mockSvc "menudash/internal/mocks/service"
	"menudash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestQRCodeUsecase(t *testing.T) (usecase.QRCodeUsecase, *mockSvc.MockQRCodeService) {
	encoder := mockSvc.NewMockQRCodeService(t)

	return NewQRCodeUsecase(QRCodeServiceParams{
		Encoder: encoder,
		Config:  newTestConfig(),
		Logger:  newDiscardLogger(),
	}), encoder
}

func TestQRCodeUsecase_GenerateDataURL_Defaults(t *testing.T) {
	service, encoder := createTestQRCodeUsecase(t)

	encoder.EXPECT().GeneratePNG("https://menu.example.com/menu/view", 512, "M").Return([]byte("png"), nil)

	output, err := service.GenerateDataURL(context.Background(), &usecase.GenerateQRCodeInput{})

	require.NoError(t, err)
	assert.Equal(t, "https://menu.example.com/menu/view", output.URL)
	assert.Equal(t, "data:image/png;base64,cG5n", output.QRCode)
}

func TestQRCodeUsecase_GeneratePNG_Overrides(t *testing.T) {
	service, encoder := createTestQRCodeUsecase(t)

	encoder.EXPECT().GeneratePNG("https://other.example.com", 256, "H").Return([]byte("png"), nil)

	png, err := service.GeneratePNG(context.Background(), &usecase.GenerateQRCodeInput{
		URL:             "https://other.example.com",
		Size:            256,
		ErrorCorrection: "h",
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestQRCodeUsecase_EncoderFailure(t *testing.T) {
	service, encoder := createTestQRCodeUsecase(t)

	encoder.EXPECT().GeneratePNG("x", 512, "M").Return(nil, errors.New("content too long"))

	png, err := service.GeneratePNG(context.Background(), &usecase.GenerateQRCodeInput{URL: "x"})

	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrQRCodeGenerationFailed)
}
