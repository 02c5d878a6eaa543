package handler

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"

	internal_errors "github.com/agora-dev/agora/internal/errors"
	"github.com/agora-dev/agora/internal/utils"
)

type uploadImageResponse struct {
	ImageData   string `json:"image_data"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

// UploadImage accepts a multipart upload and returns the raw bytes re-encoded
// as base64 alongside the declared filename and MIME type. Only the declared
// type is checked; no pixel decoding, resizing or content validation happens
// here.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	// 1 MiB of headroom for multipart framing on top of the file itself
	maxRequestSize := h.cfg.Public.MaxImageSizeBytes + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	if err := r.ParseMultipartForm(maxRequestSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "Uploaded file is too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Failed to parse multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.WriteErrorAndStatusCode(w, internal_errors.UnsupportedMediaType())
		return
	}

	// Upload is read to completion before responding, not streamed.
	content, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read uploaded file", http.StatusBadRequest)
		return
	}

	writeJSON(w, uploadImageResponse{
		ImageData:   base64.StdEncoding.EncodeToString(content),
		Filename:    header.Filename,
		ContentType: contentType,
	})
}
