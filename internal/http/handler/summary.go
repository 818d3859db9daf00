package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docdash/internal/client/llm"
	"docdash/internal/service"
)

type summarizeRequest struct {
	DocumentID string `json:"document_id"`
	MaxWords   int    `json:"max_words"`
}

// Summarize generates a summary for a stored document.
func Summarize(sumSvc service.SummaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req summarizeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if _, err := uuid.Parse(req.DocumentID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid document_id format")
		}

		summary, err := sumSvc.Summarize(c.UserContext(), req.DocumentID, req.MaxWords)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			case errors.Is(err, llm.ErrUnauthorized):
				return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "summarization credentials rejected")
			default:
				return writeError(c, fiber.StatusBadGateway, "SUMMARY_UNAVAILABLE", "summarization unavailable")
			}
		}
		return c.JSON(summary)
	}
}
