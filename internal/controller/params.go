package controller

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const audioFormField = "audio"

func parseSurveyId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid survey id")
	}
	return id, nil
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return nil
}

// readAudio loads the uploaded "audio" part fully into memory.
func readAudio(ctx *fiber.Ctx) ([]byte, error) {
	header, err := ctx.FormFile(audioFormField)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "audio file is required")
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
