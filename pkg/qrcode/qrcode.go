package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MaxSize     = 1024
)

// QRService rezervasyon referansları için QR kod üretir
type QRService struct {
	baseURL string // örn: "https://shootbook.app/bookings/"
}

func NewQRService(baseURL string) *QRService {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &QRService{
		baseURL: baseURL,
	}
}

// GenerateBookingQR referansın tam URL'ini PNG QR kod olarak döndürür
func (s *QRService) GenerateBookingQR(reference string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	png, err := qrcode.Encode(s.baseURL+reference, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return png, nil
}
