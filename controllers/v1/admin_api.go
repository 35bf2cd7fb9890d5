package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"leave-tracking-backend/controllers"
	usershandler "leave-tracking-backend/lib/users"
	apimodels "leave-tracking-backend/models/api"
	adminapimodels "leave-tracking-backend/models/api/admin"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Route("", func(router fiber.Router) {
		router.Get("dashboard", controller.dashboard)
		router.Post("users", controller.createAdmin)
		router.Post("users/list", controller.userList)
		router.Get("users/:id", controller.getUser)
	})
}

// @Summary Сводка для панели администратора
// @Tags Администрирование
// @Description Сводка по заявкам и пользователям
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=adminapimodels.DashboardView}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/dashboard [get]
func (c *adminApiController) dashboard(ctx *fiber.Ctx) error {
	resp, err := usershandler.Instance.Dashboard()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сводки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание администратора
// @Tags Администрирование
// @Description Создание учетной записи администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminapimodels.CreateAdminUser	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users [post]
func (c *adminApiController) createAdmin(ctx *fiber.Ctx) error {
	var payload adminapimodels.CreateAdminUser
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := usershandler.Instance.CreateAdmin(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания администратора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список сотрудников
// @Tags Администрирование
// @Description Список сотрудников со счетчиками заявок
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminapimodels.UserFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]adminapimodels.UserStatView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users/list [post]
func (c *adminApiController) userList(ctx *fiber.Ctx) error {
	var payload adminapimodels.UserFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := usershandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Карточка пользователя
// @Tags Администрирование
// @Description Карточка пользователя по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=adminapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users/{id} [get]
func (c *adminApiController) getUser(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := usershandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
