// Package handler holds shared constants and helpers for the API handlers.
package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error responds with the given status code and a JSON error body.
func Error(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{Error: msg})
}

// ParamID parses a positive integer id path parameter. When parsing fails
// the 400 response has already been written and ok is false.
func ParamID(c *fiber.Ctx, name string) (id uint64, ok bool, err error) {
	id, parseErr := strconv.ParseUint(c.Params(name), 10, 64)
	if parseErr != nil || id == 0 {
		return 0, false, Error(c, fiber.StatusBadRequest, ErrInvalidID)
	}

	return id, true, nil
}

// ParamDate parses a DateLayout formatted date path parameter. When parsing
// fails the 400 response has already been written and ok is false.
func ParamDate(c *fiber.Ctx, name string) (date time.Time, ok bool, err error) {
	date, parseErr := time.Parse(DateLayout, c.Params(name))
	if parseErr != nil {
		return time.Time{}, false, Error(c, fiber.StatusBadRequest, ErrInvalidDate)
	}

	return date, true, nil
}
