package http

import (
	"io"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"

	"rechtent-backend/internal/logger"
	"rechtent-backend/internal/storage"

	"github.com/gorilla/mux"
)

// FileHandler serves stored objects directly. It backs the URLs the mock
// storage hands out; with S3 the presigned URLs bypass it entirely.
type FileHandler struct {
	store storage.StorageInterface
}

func NewFileHandler(store storage.StorageInterface) *FileHandler {
	return &FileHandler{store: store}
}

func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	key, err := url.PathUnescape(mux.Vars(r)["key"])
	if err != nil || key == "" {
		writeError(w, http.StatusBadRequest, "invalid file key")
		return
	}

	f, err := h.store.ReadFile(key)
	if err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	defer f.Close()

	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		w.Header().Set("Content-Type", ct)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	if _, err := io.Copy(w, f); err != nil {
		logger.Error("Failed to stream file", "key", key, "error", err)
	}
}
