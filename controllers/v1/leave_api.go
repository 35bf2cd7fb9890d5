package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"leave-tracking-backend/controllers"
	xlsexport "leave-tracking-backend/lib/export/xls"
	leavehandler "leave-tracking-backend/lib/leave"
	"leave-tracking-backend/middleware"
	"leave-tracking-backend/models"
	apimodels "leave-tracking-backend/models/api"
	leaveapimodels "leave-tracking-backend/models/api/leave"
)

type leaveApiController struct {
	controllers.BaseAPIController
}

func InitLeaveApiRouters(app *fiber.App) {
	controller := leaveApiController{}
	app.Route("", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Get("stats", controller.stats)
		router.Post("export", middleware.AdminRoleRequired(), controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("approve", middleware.AdminRoleRequired(), controller.approve)
			idRoute.Put("reject", middleware.AdminRoleRequired(), controller.reject)
		})
	})
}

// @Summary Подача заявки на отпуск
// @Tags Заявки на отпуск
// @Description Подача заявки на отпуск
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 leaveapimodels.LeaveRequestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave [post]
func (c *leaveApiController) create(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	id, err := leavehandler.Instance.Create(userID, role, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список заявок
// @Tags Заявки на отпуск
// @Description Список заявок, сотрудник видит только свои
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 leaveapimodels.LeaveFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]leaveapimodels.LeaveRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/list [post]
func (c *leaveApiController) list(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	list, rowCount, err := leavehandler.Instance.List(userID, role, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Статистика по заявкам
// @Tags Заявки на отпуск
// @Description Статистика по статусам, сотрудник видит только свои заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.StatusStats}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/stats [get]
func (c *leaveApiController) stats(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	resp, err := leavehandler.Instance.Stats(userID, role)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статистики")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка заявок в xlsx
// @Tags Заявки на отпуск
// @Description Выгрузка заявок в xlsx по фильтру, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 leaveapimodels.LeaveFilter	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/export [post]
func (c *leaveApiController) export(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	list, _, err := leavehandler.Instance.List(userID, role, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	buf, err := xlsexport.Instance.ExportLeaveList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки заявок в xlsx")
	}
	fileName := fmt.Sprintf("leave_requests_%v.xlsx", time.Now().Format("02-01-2006"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Получение заявки
// @Tags Заявки на отпуск
// @Description Получение заявки по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/{id} [get]
func (c *leaveApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	resp, err := leavehandler.Instance.GetByID(userID, role, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление заявки
// @Tags Заявки на отпуск
// @Description Обновление заявки, доступно владельцу пока заявка на рассмотрении
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 leaveapimodels.LeaveRequestData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/{id} [put]
func (c *leaveApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload leaveapimodels.LeaveRequestData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	if err = leavehandler.Instance.Update(userID, role, id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление заявки
// @Tags Заявки на отпуск
// @Description Удаление заявки, владелец может удалить только заявку на рассмотрении
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/{id} [delete]
func (c *leaveApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	if err = leavehandler.Instance.Delete(userID, role, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Согласовать заявку
// @Tags Заявки на отпуск
// @Description Согласовать заявку, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 leaveapimodels.DecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/{id}/approve [put]
func (c *leaveApiController) approve(ctx *fiber.Ctx) error {
	return c.transition(ctx, models.LeaveStatusApproved)
}

// @Summary Отклонить заявку
// @Tags Заявки на отпуск
// @Description Отклонить заявку, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 leaveapimodels.DecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/{id}/reject [put]
func (c *leaveApiController) reject(ctx *fiber.Ctx) error {
	return c.transition(ctx, models.LeaveStatusRejected)
}

func (c *leaveApiController) transition(ctx *fiber.Ctx, status models.LeaveStatus) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload leaveapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	if err = leavehandler.Instance.Transition(userID, role, id, status, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка рассмотрения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
