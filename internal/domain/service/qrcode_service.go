package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateDirectionsQR renders a QR code PNG encoding a maps directions
	// URL for the named position.
	GenerateDirectionsQR(name string, latitude, longitude float64) ([]byte, error)
}
