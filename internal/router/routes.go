package router

import (
	"net/http"

	"github.com/artdevata/content-service/internal/handler"
	"github.com/go-chi/chi/v5"
)

const contentTypePattern = "{contentType:blogs|portfolios|services}"

func SetupContentRoutes(mux *chi.Mux, h *handler.ContentHandler) {
	mux.Get("/api/"+contentTypePattern, h.HandleListContent)
	mux.Get("/api/"+contentTypePattern+"/{id}", h.HandleGetContentDetail)
	mux.Get("/api/clients", h.HandleListClients)
}

func SetupLikeRoutes(mux *chi.Mux, h *handler.LikeHandler) {
	mux.Post("/api/"+contentTypePattern+"/{id}/like", h.HandleToggleLike)
	mux.Get("/api/"+contentTypePattern+"/{id}/like", h.HandleGetLikeStatus)
}

func SetupContactRoutes(mux *chi.Mux, h *handler.ContactHandler) {
	mux.Post("/api/contact", h.HandleSubmitContact)
}

func SetupHealthRoute(mux *chi.Mux) {
	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
