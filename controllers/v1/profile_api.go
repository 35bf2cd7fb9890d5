package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"leave-tracking-backend/controllers"
	usershandler "leave-tracking-backend/lib/users"
	"leave-tracking-backend/middleware"
	apimodels "leave-tracking-backend/models/api"
	profileapimodels "leave-tracking-backend/models/api/profile"
)

type profileApiController struct {
	controllers.BaseAPIController
}

func InitProfileApiRouters(app *fiber.App) {
	controller := profileApiController{}
	app.Route("", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Put("", controller.update)
		router.Put("password", controller.changePassword)
	})
}

// @Summary Профиль текущего пользователя
// @Tags Профиль
// @Description Профиль текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [get]
func (c *profileApiController) get(ctx *fiber.Ctx) error {
	resp, err := usershandler.Instance.GetProfile(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения профиля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление профиля
// @Tags Профиль
// @Description Обновление профиля текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		profileapimodels.ProfileData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [put]
func (c *profileApiController) update(ctx *fiber.Ctx) error {
	var payload profileapimodels.ProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := usershandler.Instance.UpdateProfile(middleware.GetUserID(ctx), payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления профиля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Смена пароля
// @Tags Профиль
// @Description Смена пароля текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		profileapimodels.PasswordChange	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile/password [put]
func (c *profileApiController) changePassword(ctx *fiber.Ctx) error {
	var payload profileapimodels.PasswordChange
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := usershandler.Instance.ChangePassword(middleware.GetUserID(ctx), payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены пароля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
