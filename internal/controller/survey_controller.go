package controller

import (
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/constant"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/dto"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/pkg/serverutils"
	"github.com/AHAD2911/AI-Powered-Survey-Platform/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISurveyController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Languages(ctx *fiber.Ctx) error
	GetMessages(ctx *fiber.Ctx) error
	AppendMessage(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
}

type surveyController struct {
	service service.ISurveyService
}

func NewSurveyController(service service.ISurveyService) ISurveyController {
	return &surveyController{service: service}
}

func (c *surveyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/survey/v1")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("languages", c.Languages)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
	h.Get(":id/messages", c.GetMessages)
	h.Post(":id/messages", c.AppendMessage)
	h.Post(":id/complete", c.Complete)
}

func (c *surveyController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSurveyRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateSurvey(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create survey", res))
}

func (c *surveyController) GetAll(ctx *fiber.Ctx) error {
	var query dto.ListSurveysQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query")
	}

	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.service.ListSurveys(ctx.UserContext(), query.Status)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all survey", res))
}

func (c *surveyController) Show(ctx *fiber.Ctx) error {
	id, err := parseSurveyId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetSurvey(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show survey", res))
}

func (c *surveyController) Delete(ctx *fiber.Ctx) error {
	id, err := parseSurveyId(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteSurvey(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete survey", nil))
}

func (c *surveyController) Languages(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get languages", constant.SurveyLanguages))
}

func (c *surveyController) GetMessages(ctx *fiber.Ctx) error {
	id, err := parseSurveyId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListMessages(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get messages", res))
}

func (c *surveyController) AppendMessage(ctx *fiber.Ctx) error {
	id, err := parseSurveyId(ctx)
	if err != nil {
		return err
	}

	var req dto.AppendMessageRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AppendMessage(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success append message", res))
}

func (c *surveyController) Complete(ctx *fiber.Ctx) error {
	id, err := parseSurveyId(ctx)
	if err != nil {
		return err
	}

	if err := c.service.MarkComplete(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success complete survey", nil))
}
