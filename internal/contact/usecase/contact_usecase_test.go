package usecase

import (
	"context"
	"testing"

	contactdto "creatorboard-backend/internal/contact/dto"

	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent     int
	lastTo   string
	lastSubj string
	lastBody string
}

func (f *fakeMailer) SendHTML(_ context.Context, _, to, subject, body string) error {
	f.sent++
	f.lastTo = to
	f.lastSubj = subject
	f.lastBody = body
	return nil
}

func (f *fakeMailer) Sender() string { return "owner@example.com" }

func TestSend_Success(t *testing.T) {
	t.Parallel()

	m := &fakeMailer{}
	uc := NewContactUsecase(m)

	err := uc.Send(context.Background(), &contactdto.ContactRequest{
		Name: "Alice", Email: "a@x.com", Message: "Hello there",
	})
	require.NoError(t, err)
	require.Equal(t, 1, m.sent)
	require.Equal(t, "owner@example.com", m.lastTo)
	require.Equal(t, "New Contact Form Message from Alice", m.lastSubj)
	require.Contains(t, m.lastBody, "Hello there")
}

func TestSend_MissingFields(t *testing.T) {
	t.Parallel()

	m := &fakeMailer{}
	uc := NewContactUsecase(m)

	cases := []*contactdto.ContactRequest{
		{Name: "", Email: "a@x.com", Message: "hi"},
		{Name: "Alice", Email: "", Message: "hi"},
		{Name: "Alice", Email: "a@x.com", Message: "   "},
	}
	for _, req := range cases {
		require.ErrorIs(t, uc.Send(context.Background(), req), ErrValidation)
	}
	require.Zero(t, m.sent)
}

func TestSend_EscapesHTML(t *testing.T) {
	t.Parallel()

	m := &fakeMailer{}
	uc := NewContactUsecase(m)

	err := uc.Send(context.Background(), &contactdto.ContactRequest{
		Name: "<b>Alice</b>", Email: "a@x.com", Message: "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	require.NotContains(t, m.lastBody, "<script>")
	require.Contains(t, m.lastBody, "&lt;script&gt;")
}
