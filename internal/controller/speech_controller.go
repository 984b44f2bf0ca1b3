package controller

import (
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/pkg/serverutils"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISpeechController interface {
	RegisterRoutes(r fiber.Router)
	Transcribe(ctx *fiber.Ctx) error
}

type speechController struct {
	service service.IInterviewService
}

func NewSpeechController(service service.IInterviewService) ISpeechController {
	return &speechController{service: service}
}

func (c *speechController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/speech/v1")
	h.Post("transcribe", c.Transcribe)
}

// Transcribe answers 422 with a displayable message when the audio cannot be used.
func (c *speechController) Transcribe(ctx *fiber.Ctx) error {
	audio, err := readAudio(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Transcribe(ctx.UserContext(), audio)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success transcribe audio", res))
}
