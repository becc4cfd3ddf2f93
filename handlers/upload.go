// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/christmas-map/middleware"
	"github.com/danielhkuo/christmas-map/models"
	"github.com/danielhkuo/christmas-map/upload"
)

// Room for multipart boundaries and headers on top of the image itself
const multipartOverhead = 1 << 20

type UploadHandler struct {
	images *upload.Store
}

func NewUploadHandler(images *upload.Store) *UploadHandler {
	return &UploadHandler{images: images}
}

// Upload handles POST /upload
// Accepts a multipart "file" field and returns the path the image is served at
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxSize+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			middleware.ErrorResponse(w, http.StatusBadRequest, upload.ErrTooLarge.Error())
		case errors.Is(err, http.ErrMissingFile):
			middleware.ErrorResponse(w, http.StatusBadRequest, "No file provided")
		default:
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		}
		return
	}
	defer file.Close()

	imagePath, err := h.images.Save(header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if errors.Is(err, upload.ErrInvalidType) || errors.Is(err, upload.ErrTooLarge) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to store upload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.UploadResponse{ImagePath: imagePath})
}
