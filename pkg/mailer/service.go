// Package mailer sends outbound mail through the Gmail API using an OAuth2
// refresh-token credential belonging to the site owner's account.
package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

type Service struct {
	clientID     string
	clientSecret string
	refreshToken string
	sender       string
}

func NewService(clientID, clientSecret, refreshToken, sender string) *Service {
	return &Service{
		clientID:     clientID,
		clientSecret: clientSecret,
		refreshToken: refreshToken,
		sender:       sender,
	}
}

// Sender returns the configured sender address.
func (s *Service) Sender() string {
	return s.sender
}

func (s *Service) gmailService(ctx context.Context) (*gmail.Service, error) {
	config := &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		Endpoint:     google.Endpoint,
	}

	// Expiry in the past forces an access-token exchange on first use.
	token := &oauth2.Token{
		RefreshToken: s.refreshToken,
		TokenType:    "Bearer",
		Expiry:       time.Now(),
	}

	srv, err := gmail.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %v", err)
	}
	return srv, nil
}

// SendHTML sends an HTML message from the configured sender.
func (s *Service) SendHTML(ctx context.Context, fromName, to, subject, body string) error {
	srv, err := s.gmailService(ctx)
	if err != nil {
		return err
	}

	var emailMsg bytes.Buffer
	if fromName != "" {
		encodedName := fmt.Sprintf("=?utf-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(fromName)))
		emailMsg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", encodedName, s.sender))
	} else {
		emailMsg.WriteString(fmt.Sprintf("From: %s\r\n", s.sender))
	}
	emailMsg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	// Encode subject to handle non-ASCII characters (RFC 2047)
	encodedSubject := fmt.Sprintf("=?utf-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(subject)))
	emailMsg.WriteString(fmt.Sprintf("Subject: %s\r\n", encodedSubject))
	emailMsg.WriteString("MIME-Version: 1.0\r\n")
	emailMsg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	emailMsg.WriteString(body)
	emailMsg.WriteString("\r\n")

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(emailMsg.Bytes()),
	}

	if _, err := srv.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to send message: %v", err)
	}
	return nil
}
