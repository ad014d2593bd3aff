package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for pickup QR code generation and parsing.
// The recipient presents the code at pickup; the donor side scans it to
// resolve the donation being handed over.
type QRCodeService interface {
	// GeneratePickupQR generates a QR code image (PNG) for a donation pickup.
	GeneratePickupQR(donationID uuid.UUID) ([]byte, error)

	// ParsePickupQR parses scanned QR code data and returns the donation ID.
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
