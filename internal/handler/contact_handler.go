package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/artdevata/content-service/internal/entity"
	"github.com/artdevata/content-service/internal/usecase"
	"go.uber.org/zap"
)

type ContactHandler struct {
	contactUC *usecase.ContactUseCase
	logger    *zap.Logger
}

func NewContactHandler(contactUC *usecase.ContactUseCase, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contactUC: contactUC, logger: logger}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

func (h *ContactHandler) HandleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Invalid contact request body", zap.Error(err))
		writeJSON(w, h.logger, http.StatusBadRequest, messageResponse{Message: "Permintaan tidak valid"})
		return
	}

	err := h.contactUC.SubmitLead(r.Context(), entity.Lead{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	})
	if err != nil {
		var validationErr usecase.ValidationError
		if errors.As(err, &validationErr) {
			writeJSON(w, h.logger, http.StatusBadRequest, messageResponse{Message: validationErr.Error()})
			return
		}
		writeJSON(w, h.logger, http.StatusBadGateway, messageResponse{
			Message: "Gagal mengirim pesan, silakan coba lagi atau hubungi kami langsung.",
		})
		return
	}

	writeJSON(w, h.logger, http.StatusOK, messageResponse{Message: "Pesan Terkirim!"})
}
