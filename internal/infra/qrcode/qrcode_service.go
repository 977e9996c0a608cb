package qrcode

import (
	"strings"

	"jobboard/config"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:8080/api"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService builds the service from the qrcode config section, falling
// back to 256px, level M and a localhost base URL.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "M", defaultBaseURL)
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// JobURL is the public job page the code points at.
func (s *qrcodeService) JobURL(jobID uuid.UUID) string {
	return s.baseURL + "/jobs/" + jobID.String()
}

func (s *qrcodeService) GenerateJobQR(jobID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.JobURL(jobID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
