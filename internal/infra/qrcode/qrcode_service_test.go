package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"shopradar/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level string) *qrcodeService {
	return NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		BaseURL:              "https://shopradar.app/",
	}}).(*qrcodeService)
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
	assert.Equal(t, defaultBaseURL, svc.baseURL)
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	svc := newTestService(128, "M")
	productID := uuid.New()

	for _, product := range []*uuid.UUID{nil, &productID} {
		data, err := svc.GenerateStoreQR(uuid.New(), product)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 128, img.Bounds().Dx())
	}
}

func TestQRCodeService_ParseStoreQR(t *testing.T) {
	svc := newTestService(256, "M")
	storeID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name        string
		content     string
		wantStore   uuid.UUID
		wantProduct *uuid.UUID
		wantErr     bool
	}{
		{name: "store link", content: "https://shopradar.app/store/" + storeID.String(), wantStore: storeID},
		{name: "product link", content: "https://shopradar.app/store/" + storeID.String() + "?product=" + productID.String(), wantStore: storeID, wantProduct: &productID},
		{name: "bare path", content: " /store/" + storeID.String() + " ", wantStore: storeID},
		{name: "other host", content: "https://evil.example.com/store/" + storeID.String(), wantErr: true},
		{name: "not a store", content: "https://shopradar.app/product/" + storeID.String(), wantErr: true},
		{name: "bad store id", content: "https://shopradar.app/store/corner-market", wantErr: true},
		{name: "bad product id", content: "https://shopradar.app/store/" + storeID.String() + "?product=milk", wantErr: true},
		{name: "legacy json payload", content: `{"merchant_id":"x","type":"subscription"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotStore, gotProduct, err := svc.ParseStoreQR(tt.content)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStore, gotStore)
			assert.Equal(t, tt.wantProduct, gotProduct)
		})
	}
}
