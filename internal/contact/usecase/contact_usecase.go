package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	contactdto "creatorboard-backend/internal/contact/dto"
)

// ErrValidation covers missing or whitespace-only form fields.
var ErrValidation = errors.New("all fields are required")

// Mailer is the outbound mail transport (the Gmail service).
type Mailer interface {
	SendHTML(ctx context.Context, fromName, to, subject, body string) error
	Sender() string
}

type ContactUsecase interface {
	// Send validates the form and mails it to the site owner.
	Send(ctx context.Context, req *contactdto.ContactRequest) error
}

type contactUsecase struct {
	mailer Mailer
}

func NewContactUsecase(mailer Mailer) ContactUsecase {
	return &contactUsecase{mailer: mailer}
}

func (u *contactUsecase) Send(ctx context.Context, req *contactdto.ContactRequest) error {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	if name == "" || email == "" || message == "" {
		return ErrValidation
	}

	subject := fmt.Sprintf("New Contact Form Message from %s", name)
	body := buildBody(name, email, message)

	return u.mailer.SendHTML(ctx, "Contact Form", u.mailer.Sender(), subject, body)
}

func buildBody(name, email, message string) string {
	return fmt.Sprintf(`<div style="padding: 20px; background-color: #f5f5f5;">
    <h2 style="color: #333;">New Contact Form Submission</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Message:</strong></p>
    <div style="background-color: white; padding: 15px; border-radius: 5px;">%s</div>
</div>`,
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(message))
}
