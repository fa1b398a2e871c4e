package httpapi

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/eqhq/jobindex/jobindex"
	"github.com/eqhq/jobindex/jobindex/catalog"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func writeError(c *fiber.Ctx, status int, message, field string) error {
	return writeJSON(c, status, ErrorResponse{Message: message, Field: field})
}

// statusOf maps an engine or catalog error to an HTTP status.
func statusOf(err error) int {
	var fe *catalog.FilterError
	switch {
	case errors.As(err, &fe):
		return http.StatusBadRequest
	case jobindex.IsKind(err, jobindex.ErrInvalidFilter):
		return http.StatusBadRequest
	case jobindex.IsKind(err, jobindex.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
