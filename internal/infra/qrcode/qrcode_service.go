// Package qrcode encodes store deep links as QR codes.
package qrcode

import (
	"net/url"
	"strings"

	"shopradar/config"
	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/service"
	"shopradar/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "https://shopradar.app"
	storePathPart  = "store"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}
	baseURL := strings.TrimRight(qrCfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(qrCfg.ErrorCorrectionLevel),
		baseURL:              baseURL,
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateStoreQR encodes the store deep link as a PNG
func (s *qrcodeService) GenerateStoreQR(storeID uuid.UUID, productID *uuid.UUID) ([]byte, error) {
	link := s.baseURL + "/" + storePathPart + "/" + storeID.String()
	if productID != nil {
		link = s.baseURL + entity.StoreProductTarget(storeID, *productID)
	}

	png, err := qrcode.Encode(link, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// ParseStoreQR reads a scanned deep link. Links of other hosts are rejected; a bare
// /store/{id} path is accepted.
func (s *qrcodeService) ParseStoreQR(content string) (uuid.UUID, *uuid.UUID, error) {
	link, err := url.Parse(strings.TrimSpace(content))
	if err != nil {
		return uuid.Nil, nil, errors.Wrap(err, "invalid QR content")
	}

	if link.Host != "" {
		base, err := url.Parse(s.baseURL)
		if err != nil {
			return uuid.Nil, nil, errors.WithStack(err)
		}
		if !strings.EqualFold(link.Host, base.Host) {
			return uuid.Nil, nil, errors.Errorf("QR code links to another site: %s", link.Host)
		}
	}

	parts := strings.Split(strings.Trim(link.Path, "/"), "/")
	if len(parts) != 2 || parts[0] != storePathPart {
		return uuid.Nil, nil, errors.Errorf("QR code is not a store link: %s", link.Path)
	}

	storeID, err := uuid.Parse(parts[1])
	if err != nil {
		return uuid.Nil, nil, errors.Wrap(err, "failed to parse store ID")
	}

	raw := link.Query().Get("product")
	if raw == "" {
		return storeID, nil, nil
	}
	productID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, nil, errors.Wrap(err, "failed to parse product ID")
	}

	return storeID, &productID, nil
}
