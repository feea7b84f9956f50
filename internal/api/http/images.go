package http

import (
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/greengarden/greengarden-server/internal/logger"
	"github.com/greengarden/greengarden-server/internal/model"
)

const fallbackContentType = "application/octet-stream"

// Images serves blobs by the key that follows /images/ in the URL.
type Images struct {
	storage model.Storage
	logger  *logger.Logger
}

func NewImages(storage model.Storage, logger *logger.Logger) *Images {
	return &Images{storage: storage, logger: logger}
}

// Get writes the blob, or 404 when nothing is stored under the key.
func (h *Images) Get(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(path.Clean("/"+chi.URLParam(r, "*")), "/")
	if key == "" {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()

	exists, err := h.storage.Exists(ctx, key)
	if err != nil {
		h.logger.Error("Images handler: failed to stat image",
			"key", key,
			"error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if !exists {
		http.NotFound(w, r)
		return
	}

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = fallbackContentType
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-cache")

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	body, err := h.storage.Download(ctx, key)
	if err != nil {
		h.logger.Error("Images handler: failed to download image",
			"key", key,
			"error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer body.Close()

	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		h.logger.Warn("Images handler: image stream interrupted",
			"key", key,
			"error", err.Error())
	}
}
