package delivery

import (
	"errors"
	"log"
	"net/http"

	contactdto "creatorboard-backend/internal/contact/dto"
	"creatorboard-backend/internal/contact/usecase"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
	development    bool
}

func NewContactHandler(contactUsecase usecase.ContactUsecase, development bool) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		development:    development,
	}
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req contactdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, contactdto.ContactResponse{Success: false, Message: "All fields are required"})
		return
	}

	if err := h.contactUsecase.Send(c.Request.Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			c.JSON(http.StatusBadRequest, contactdto.ContactResponse{Success: false, Message: "All fields are required"})
			return
		}
		log.Printf("Contact email error: %v", err)
		body := gin.H{"success": false, "message": "Failed to send email. Please try again later."}
		if h.development {
			body["error"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	c.JSON(http.StatusOK, contactdto.ContactResponse{Success: true, Message: "Message sent successfully"})
}
