package controller

import (
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/dto"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/pkg/serverutils"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	Turn(ctx *fiber.Ctx) error
	VoiceTurn(ctx *fiber.Ctx) error
}

type interviewController struct {
	service service.IInterviewService
}

func NewInterviewController(service service.IInterviewService) IInterviewController {
	return &interviewController{service: service}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/survey/v1")
	h.Get(":id/state", c.State)
	h.Post(":id/turn", c.Turn)
	h.Post(":id/voice", c.VoiceTurn)
}

func (c *interviewController) State(ctx *fiber.Ctx) error {
	id, err := parseSurveyId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetState(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get interview state", res))
}

func (c *interviewController) Turn(ctx *fiber.Ctx) error {
	id, err := parseSurveyId(ctx)
	if err != nil {
		return err
	}

	var req dto.SubmitTurnRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitTurn(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit turn", res))
}

func (c *interviewController) VoiceTurn(ctx *fiber.Ctx) error {
	id, err := parseSurveyId(ctx)
	if err != nil {
		return err
	}

	audio, err := readAudio(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.SubmitVoiceTurn(ctx.UserContext(), id, audio)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit voice turn", res))
}
