package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/artdevata/content-service/internal/entity"
	"github.com/artdevata/content-service/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContentHandler struct {
	contentUC *usecase.ContentUseCase
	detailUC  *usecase.DetailUseCase
	logger    *zap.Logger
}

func NewContentHandler(contentUC *usecase.ContentUseCase, detailUC *usecase.DetailUseCase, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{contentUC: contentUC, detailUC: detailUC, logger: logger}
}

type contentItemDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Excerpt      string   `json:"excerpt,omitempty"`
	Body         string   `json:"body,omitempty"`
	Image        string   `json:"image,omitempty"`
	Images       []string `json:"images,omitempty"`
	Category     string   `json:"category"`
	Author       string   `json:"author,omitempty"`
	Client       string   `json:"client,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Results      []string `json:"results,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
}

type listContentResponse struct {
	Featured   *contentItemDTO   `json:"featured"`
	Items      []*contentItemDTO `json:"items"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	TotalCount int               `json:"total_count"`
}

type contentDetailResponse struct {
	Item           *contentItemDTO   `json:"item"`
	ReadingMinutes int               `json:"reading_minutes"`
	Related        []*contentItemDTO `json:"related"`
}

type listClientsResponse struct {
	Clients []*clientDTO `json:"clients"`
}

type clientDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Logo    string `json:"logo"`
}

// HandleListContent serves the collection view: featured item first, then
// the filtered, paginated remainder.
func (h *ContentHandler) HandleListContent(w http.ResponseWriter, r *http.Request) {
	contentType := chi.URLParam(r, "contentType")
	if !entity.IsContentType(contentType) {
		writeJSON(w, h.logger, http.StatusNotFound, messageResponse{Message: "Halaman tidak ditemukan"})
		return
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	out := h.contentUC.ListContent(r.Context(), usecase.ListContentInput{
		Type:     contentType,
		Category: r.URL.Query().Get("category"),
		Page:     page,
	})

	resp := listContentResponse{
		Featured:   toListItemDTO(out.Featured),
		Items:      make([]*contentItemDTO, 0, len(out.Items)),
		Page:       out.Page,
		TotalPages: out.TotalPages,
		TotalCount: out.TotalCount,
	}
	for _, item := range out.Items {
		resp.Items = append(resp.Items, toListItemDTO(item))
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// HandleGetContentDetail serves the detail view. Record-not-found and
// upstream failure are separate outcomes: the first gets its own page with
// a path back to the collection, the second a neutral failure message.
func (h *ContentHandler) HandleGetContentDetail(w http.ResponseWriter, r *http.Request) {
	contentType := chi.URLParam(r, "contentType")
	if !entity.IsContentType(contentType) {
		writeJSON(w, h.logger, http.StatusNotFound, messageResponse{Message: "Halaman tidak ditemukan"})
		return
	}

	out := h.detailUC.GetDetail(r.Context(), contentType, chi.URLParam(r, "id"))
	switch out.Status {
	case usecase.DetailFound:
		resp := contentDetailResponse{
			Item:           toDetailItemDTO(out.Item),
			ReadingMinutes: out.ReadingMinutes,
			Related:        make([]*contentItemDTO, 0, len(out.Related)),
		}
		for _, item := range out.Related {
			resp.Related = append(resp.Related, toListItemDTO(item))
		}
		writeJSON(w, h.logger, http.StatusOK, resp)
	case usecase.DetailNotFound:
		writeJSON(w, h.logger, http.StatusNotFound, messageResponse{
			Message: notFoundMessage(contentType),
			Back:    collectionPath(contentType),
		})
	default:
		writeJSON(w, h.logger, http.StatusBadGateway, messageResponse{
			Message: "Terjadi kesalahan, silakan coba lagi nanti.",
			Back:    collectionPath(contentType),
		})
	}
}

func (h *ContentHandler) HandleListClients(w http.ResponseWriter, r *http.Request) {
	clients := h.contentUC.ListClients(r.Context())

	resp := listClientsResponse{Clients: make([]*clientDTO, 0, len(clients))}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, &clientDTO{
			ID:      c.ID,
			Name:    c.Name,
			Company: c.Company,
			Logo:    c.Logo,
		})
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

func toListItemDTO(item *entity.Content) *contentItemDTO {
	if item == nil {
		return nil
	}
	return &contentItemDTO{
		ID:        item.ID,
		Title:     item.Title,
		Excerpt:   item.Excerpt,
		Image:     item.Image,
		Category:  item.Category,
		Author:    item.Author,
		CreatedAt: formatCreatedAt(item.CreatedAt),
	}
}

func toDetailItemDTO(item *entity.Content) *contentItemDTO {
	if item == nil {
		return nil
	}
	dto := toListItemDTO(item)
	dto.Body = item.Body
	dto.Images = item.Images
	dto.Client = item.Client
	dto.Technologies = item.Technologies
	dto.Results = item.Results
	return dto
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func notFoundMessage(contentType string) string {
	switch contentType {
	case entity.ContentTypeBlog:
		return "Artikel Tidak Ditemukan"
	case entity.ContentTypePortfolio:
		return "Project tidak ditemukan"
	default:
		return "Layanan tidak ditemukan"
	}
}

func collectionPath(contentType string) string {
	switch contentType {
	case entity.ContentTypeBlog:
		return "/blog"
	case entity.ContentTypePortfolio:
		return "/portfolio"
	default:
		return "/services"
	}
}
