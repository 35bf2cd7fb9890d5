package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"leave-tracking-backend/controllers"
	authhandler "leave-tracking-backend/lib/auth"
	"leave-tracking-backend/middleware"
	apimodels "leave-tracking-backend/models/api"
	authapimodels "leave-tracking-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("signup", controller.signup)
		router.Post("login", controller.login)
		router.Post("forgot-password", controller.forgotPassword)
		router.Post("reset-password", controller.resetPassword)
		router.Use(middleware.AuthorizationRequired()).Get("me", controller.me)
	})
}

// @Summary Регистрация пользователя
// @Tags Аутентификация пользователей
// @Description Регистрация пользователя
// @Param	body				body		authapimodels.SignupRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/signup [post]
func (c *authApiController) signup(ctx *fiber.Ctx) error {
	var payload authapimodels.SignupRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Signup(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Аутентификация пользователя
// @Tags Аутентификация пользователей
// @Description Аутентификация пользователя
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Запрос на сброс пароля
// @Tags Аутентификация пользователей
// @Description Запрос на сброс пароля, ответ не раскрывает наличие учетной записи
// @Param	body				body		authapimodels.PasswordRecovery	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/forgot-password [post]
func (c *authApiController) forgotPassword(ctx *fiber.Ctx) error {
	var payload authapimodels.PasswordRecovery
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := authhandler.Instance.RecoverPassword(payload.Email); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка запроса на сброс пароля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Сброс пароля по коду
// @Tags Аутентификация пользователей
// @Description Сброс пароля по коду из письма
// @Param	body				body		authapimodels.PasswordResetRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/reset-password [post]
func (c *authApiController) resetPassword(ctx *fiber.Ctx) error {
	var payload authapimodels.PasswordResetRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := authhandler.Instance.ResetPassword(payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сброса пароля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получить информацию о текущем пользователе
// @Tags Аутентификация пользователей
// @Description Получить информацию о текущем пользователе
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Me(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
