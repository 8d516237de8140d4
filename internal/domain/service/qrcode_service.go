package service

// QRCodeService renders a share-link URL as a scannable image.
type QRCodeService interface {
	// GenerateShareQR returns a PNG QR code encoding the public feed URL.
	GenerateShareQR(url string) ([]byte, error)
}
