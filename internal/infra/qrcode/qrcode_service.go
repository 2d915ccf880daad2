// Package qrcode renders directions QR codes for restrooms.
package qrcode

import (
	"fmt"
	"net/url"

	"privy/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateDirectionsQR renders a QR code PNG encoding a Google Maps search
// URL for the position, so any phone camera can open directions to it.
// The name rides along as a label for map apps that honor it.
func (s *qrcodeService) GenerateDirectionsQR(name string, latitude, longitude float64) ([]byte, error) {
	qrCode, err := qrcode.New(directionsURL(name, latitude, longitude), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func directionsURL(name string, latitude, longitude float64) string {
	query := url.Values{}
	query.Set("api", "1")
	query.Set("query", fmt.Sprintf("%f,%f", latitude, longitude))
	if name != "" {
		query.Set("query", fmt.Sprintf("%f,%f (%s)", latitude, longitude, name))
	}

	return "https://www.google.com/maps/search/?" + query.Encode()
}
