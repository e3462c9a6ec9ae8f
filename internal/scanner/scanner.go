// Package scanner provides the extraction capability that pre-populates the
// contact form from uploaded images. Both variants are stubs: they resolve a
// fixed payload after an artificial delay. The rest of the system depends
// only on the Extraction shape, so a real recognition service can be swapped
// in without touching the core.
package scanner

import (
	"context"
	"regexp"
	"strings"
	"time"

	"leadvault/internal/shared"
)

// Upload is an image handed to an extractor.
type Upload struct {
	// Filename is the original upload name, informational only.
	Filename string
	// ContentType is the declared MIME type; must be image/*.
	ContentType string
	// Data is the raw image bytes. The stubs never inspect it.
	Data []byte
}

// Extraction holds the contact fields an extractor recovered from an image.
type Extraction struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	WhatsApp    string `json:"whatsapp,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Extractor turns an uploaded image into partial contact fields.
type Extractor interface {
	Extract(ctx context.Context, up Upload) (*Extraction, error)
}

func checkImage(up Upload) error {
	if !strings.HasPrefix(up.ContentType, "image/") {
		return shared.ErrUnsupportedImage
	}
	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// BusinessCard simulates OCR over a business card image.
type BusinessCard struct {
	// Delay is the artificial processing time before the payload resolves.
	Delay time.Duration
}

// Extract rejects non-image uploads, waits for the configured delay, and
// returns the fixed card payload.
func (s *BusinessCard) Extract(ctx context.Context, up Upload) (*Extraction, error) {
	if err := checkImage(up); err != nil {
		return nil, err
	}
	if err := wait(ctx, s.Delay); err != nil {
		return nil, err
	}
	return &Extraction{
		FirstName:   "John",
		LastName:    "Smith",
		CompanyName: "Tech Solutions Inc.",
		Email:       "john.smith@techsolutions.com",
		Phone:       "+1-555-123-4567",
		WhatsApp:    "+1-555-123-4567",
		Notes:       "Data extracted from business card scan",
	}, nil
}

// WhatsAppQR simulates decoding a WhatsApp contact QR code.
type WhatsAppQR struct {
	// Delay is the artificial processing time before the payload resolves.
	Delay time.Duration
}

// Extract rejects non-image uploads, waits for the configured delay, and
// returns the phone number parsed from the fixed QR link.
func (s *WhatsAppQR) Extract(ctx context.Context, up Upload) (*Extraction, error) {
	if err := checkImage(up); err != nil {
		return nil, err
	}
	if err := wait(ctx, s.Delay); err != nil {
		return nil, err
	}
	const qrText = "https://wa.me/+1234567890"
	return &Extraction{
		Phone: PhoneFromQRText(qrText),
		Notes: "Contact via WhatsApp: " + qrText,
	}, nil
}

var (
	waLinkRe   = regexp.MustCompile(`wa\.me/(\+?\d+)`)
	waSchemeRe = regexp.MustCompile(`phone=(\+?\d+)`)
)

// PhoneFromQRText extracts a phone number from the WhatsApp QR link formats
// https://wa.me/1234567890 and whatsapp://send?phone=1234567890, normalizing
// to a leading plus. Unrecognized text is returned as-is.
func PhoneFromQRText(qrText string) string {
	for _, re := range []*regexp.Regexp{waLinkRe, waSchemeRe} {
		if m := re.FindStringSubmatch(qrText); m != nil {
			phone := m[1]
			if !strings.HasPrefix(phone, "+") {
				phone = "+" + phone
			}
			return phone
		}
	}
	return qrText
}
