package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docdash/internal/prefs"
)

type preferencesResponse struct {
	SelectedIDs []string `json:"selected_ids"`
	DarkMode    bool     `json:"dark_mode"`
}

// GetPreferences returns the current selection and theme state.
func GetPreferences(store *prefs.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(preferencesResponse{
			SelectedIDs: store.Selected(),
			DarkMode:    store.DarkMode(),
		})
	}
}

type toggleSelectionRequest struct {
	DocumentID string `json:"document_id"`
}

// ToggleSelection flips a document in or out of the selected set.
func ToggleSelection(store *prefs.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req toggleSelectionRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if _, err := uuid.Parse(req.DocumentID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid document_id format")
		}
		selected, err := store.Toggle(req.DocumentID)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"document_id": req.DocumentID, "selected": selected})
	}
}

type setSelectionRequest struct {
	DocumentIDs []string `json:"document_ids"`
}

// SetSelection replaces the selected set wholesale.
func SetSelection(store *prefs.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req setSelectionRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		for _, id := range req.DocumentIDs {
			if _, err := uuid.Parse(id); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid document id format")
			}
		}
		if err := store.SetSelected(req.DocumentIDs); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"selected_ids": store.Selected()})
	}
}

// ClearSelection empties the selected set.
func ClearSelection(store *prefs.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.ClearSelected(); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ToggleDarkMode flips the persisted theme preference.
func ToggleDarkMode(store *prefs.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dark, err := store.ToggleDarkMode()
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"dark_mode": dark})
	}
}
