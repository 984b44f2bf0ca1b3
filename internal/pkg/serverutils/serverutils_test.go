package serverutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Question string `validate:"required,notblank"`
	Probes   int    `validate:"omitempty,min=1,max=10"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     sample
		wantErr string
	}{
		{"valid", sample{Question: "Why?", Probes: 3}, ""},
		{"blank question", sample{Question: "   "}, "question"},
		{"probes too high", sample{Question: "Why?", Probes: 11}, "probes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Contains(t, ve.Fields, tt.wantErr)
		})
	}
}

type coded struct{}

func (coded) Error() string   { return "survey not found" }
func (coded) StatusCode() int { return 404 }

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/coded", func(c *fiber.Ctx) error { return fmt.Errorf("lookup: %w", coded{}) })
	app.Get("/fiber", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "bad id") })
	app.Get("/internal", func(c *fiber.Ctx) error { return errors.New("disk I/O error") })

	tests := []struct {
		path    string
		code    int
		message string
	}{
		{"/coded", 404, "lookup: survey not found"},
		{"/fiber", 400, "bad id"},
		{"/internal", 500, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)

			var body BaseResponse[any]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
