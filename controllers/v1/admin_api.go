package apiv1

import (
	"survey-tools-backend/controllers"
	usershandler "survey-tools-backend/lib/users"
	"survey-tools-backend/middleware"
	apimodels "survey-tools-backend/models/api"
	userapimodels "survey-tools-backend/models/api/user"

	"github.com/gofiber/fiber/v2"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Route("admin", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.AdminRoleRequired())
		router.Get("users", controller.users)
		router.Patch("users/promote/:email", controller.promote)
		router.Delete("users/:email", controller.delete)
	})
}

// @Summary Список пользователей
// @Tags Администрирование
// @Description Список пользователей
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserListResponse}
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users [get]
func (c *adminApiController) users(ctx *fiber.Ctx) error {
	list, err := usershandler.Instance.GetList()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка пользователей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(userapimodels.UserListResponse{Users: list}))
}

// @Summary Назначение пользователя администратором
// @Tags Администрирование
// @Description Назначение пользователя администратором
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   email				path		string	true	"Почта пользователя"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users/promote/{email} [patch]
func (c *adminApiController) promote(ctx *fiber.Ctx) error {
	email := ctx.Params("email")
	if email == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указана почта пользователя"))
	}
	hMsg, err := usershandler.Instance.Promote(email)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения администратора")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление пользователя
// @Tags Администрирование
// @Description Удаление пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   email				path		string	true	"Почта пользователя"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users/{email} [delete]
func (c *adminApiController) delete(ctx *fiber.Ctx) error {
	email := ctx.Params("email")
	if email == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указана почта пользователя"))
	}
	hMsg, err := usershandler.Instance.Delete(email, middleware.GetUserEmail(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления пользователя")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
