package handler

import (
	"net/http"

	"github.com/artdevata/content-service/internal/entity"
	"github.com/artdevata/content-service/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LikeHandler struct {
	likeUC *usecase.LikeUseCase
	logger *zap.Logger
}

func NewLikeHandler(likeUC *usecase.LikeUseCase, logger *zap.Logger) *LikeHandler {
	return &LikeHandler{likeUC: likeUC, logger: logger}
}

type likeStatusResponse struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

func (h *LikeHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	contentType := chi.URLParam(r, "contentType")
	id := chi.URLParam(r, "id")
	if !entity.IsContentType(contentType) {
		writeJSON(w, h.logger, http.StatusNotFound, messageResponse{Message: "Halaman tidak ditemukan"})
		return
	}

	status, err := h.likeUC.ToggleLike(r.Context(), usecase.ToggleLikeInput{
		ContentType: contentType,
		ContentID:   id,
	})
	if err != nil {
		h.logger.Error("Failed to toggle like",
			zap.String("content_type", contentType),
			zap.String("id", id),
			zap.Error(err),
		)
		writeJSON(w, h.logger, http.StatusInternalServerError, messageResponse{
			Message: "Gagal menyimpan like, silakan coba lagi.",
		})
		return
	}
	writeJSON(w, h.logger, http.StatusOK, likeStatusResponse{Liked: status.Liked, Count: status.Count})
}

func (h *LikeHandler) HandleGetLikeStatus(w http.ResponseWriter, r *http.Request) {
	contentType := chi.URLParam(r, "contentType")
	id := chi.URLParam(r, "id")
	if !entity.IsContentType(contentType) {
		writeJSON(w, h.logger, http.StatusNotFound, messageResponse{Message: "Halaman tidak ditemukan"})
		return
	}

	status, err := h.likeUC.GetLikeStatus(r.Context(), contentType, id)
	if err != nil {
		h.logger.Error("Failed to read like status",
			zap.String("content_type", contentType),
			zap.String("id", id),
			zap.Error(err),
		)
		writeJSON(w, h.logger, http.StatusInternalServerError, messageResponse{
			Message: "Gagal membaca status like.",
		})
		return
	}
	writeJSON(w, h.logger, http.StatusOK, likeStatusResponse{Liked: status.Liked, Count: status.Count})
}
