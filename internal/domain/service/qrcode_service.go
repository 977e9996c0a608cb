package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for job postings.
type QRCodeService interface {
	// GenerateJobQR returns a PNG QR code pointing at the job's public URL.
	GenerateJobQR(jobID uuid.UUID) ([]byte, error)

	// JobURL returns the URL encoded in the job's QR code.
	JobURL(jobID uuid.UUID) string
}
