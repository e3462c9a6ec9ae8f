package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leadvault/internal/scanner"
	"leadvault/internal/shared"
)

// Scanner kind identifiers, matched against the {kind} route parameter.
const (
	ScanBusinessCard = "business-card"
	ScanWhatsAppQR   = "whatsapp-qr"
)

// ScanHandler handles the extraction stub endpoints that pre-populate the
// contact form. The handler only relays the extractor output; it never
// depends on how a variant produces its fields.
type ScanHandler struct {
	Extractors map[string]scanner.Extractor
}

// Extract handles POST /api/scan/{kind} with a multipart "image" file.
// An unknown kind yields 404, a non-image upload 400.
func (h *ScanHandler) Extract(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	extractor, ok := h.Extractors[kind]
	if !ok {
		http.Error(w, "unknown scanner", http.StatusNotFound)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	extraction, err := extractor.Extract(r.Context(), scanner.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if errors.Is(err, shared.ErrUnsupportedImage) {
		http.Error(w, "please select a valid image file", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, extraction)
}
