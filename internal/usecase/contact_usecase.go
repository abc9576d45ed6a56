package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/artdevata/content-service/internal/adapter/email"
	"github.com/artdevata/content-service/internal/entity"
	"github.com/artdevata/content-service/internal/port/formrelay"
	"go.uber.org/zap"
)

type ContactUseCase struct {
	relay       formrelay.Sender
	emailSender email.Sender
	logger      *zap.Logger
	siteName    string
	ownerEmail  string
}

func NewContactUseCase(
	relay formrelay.Sender,
	es email.Sender,
	log *zap.Logger,
	siteName string,
	ownerEmail string,
) *ContactUseCase {
	return &ContactUseCase{
		relay:       relay,
		emailSender: es,
		logger:      log,
		siteName:    siteName,
		ownerEmail:  ownerEmail,
	}
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

// SubmitLead validates a contact-form submission and forwards it to the
// form relay. A relay failure is the caller's error; the owner email
// notification afterwards is best effort only.
func (uc *ContactUseCase) SubmitLead(ctx context.Context, lead entity.Lead) error {
	if err := validateLead(lead); err != nil {
		return err
	}

	submission := formrelay.Submission{
		Name:     lead.Name,
		Email:    lead.Email,
		Phone:    lead.Phone,
		Service:  lead.Service,
		Message:  lead.Message,
		Subject:  fmt.Sprintf("Pesan Baru dari %s - %s", lead.Name, uc.siteName),
		Template: "table",
	}

	if err := uc.relay.Send(ctx, submission); err != nil {
		uc.logger.Error("Failed to forward lead to form relay",
			zap.String("name", lead.Name),
			zap.Error(err),
		)
		return fmt.Errorf("ContactUseCase.SubmitLead: failed to forward lead: %w", err)
	}

	if uc.emailSender != nil && uc.ownerEmail != "" {
		subject := fmt.Sprintf("Lead baru: %s", lead.Name)
		body := fmt.Sprintf("Nama: %s\nEmail: %s\nTelepon: %s\nLayanan: %s\n\n%s",
			lead.Name, lead.Email, lead.Phone, lead.Service, lead.Message)
		if err := uc.emailSender.SendEmail([]string{uc.ownerEmail}, subject, body); err != nil {
			uc.logger.Warn("Failed to send lead notification email",
				zap.String("name", lead.Name),
				zap.Error(err),
			)
		}
	}

	return nil
}

func validateLead(lead entity.Lead) error {
	if strings.TrimSpace(lead.Name) == "" {
		return ValidationError("name is required")
	}
	addr := strings.TrimSpace(lead.Email)
	if addr == "" {
		return ValidationError("email is required")
	}
	if !strings.Contains(addr, "@") {
		return ValidationError("email is not valid")
	}
	if strings.TrimSpace(lead.Message) == "" {
		return ValidationError("message is required")
	}
	return nil
}
