package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"leave-tracking-backend/middleware"
	"leave-tracking-backend/models"
	apimodels "leave-tracking-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.New("некорректный идентификатор записи")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("user_id", middleware.GetUserID(ctx)).
		WithField("path", ctx.Path())
}

// SendError - преобразование ошибки обработчика в http статус,
// внутренние ошибки наружу не уходят, вместо них hMsg
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrConflict):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(hMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(hMsg))
}
