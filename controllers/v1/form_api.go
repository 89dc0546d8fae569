package apiv1

import (
	"fmt"

	"survey-tools-backend/controllers"
	answerhandler "survey-tools-backend/lib/answer"
	formhandler "survey-tools-backend/lib/form"
	statshandler "survey-tools-backend/lib/stats"
	"survey-tools-backend/middleware"
	apimodels "survey-tools-backend/models/api"
	formapimodels "survey-tools-backend/models/api/form"

	"github.com/gofiber/fiber/v2"
)

type formApiController struct {
	controllers.BaseAPIController
}

func InitFormApiRouters(app *fiber.App) {
	controller := formApiController{}
	app.Route("form", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.create)
		// статичные маршруты регистрируются до параметризованного :id
		router.Get("user-answered", controller.userAnswered)
		router.Get("created", controller.created)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("submit", controller.submit)
			idRoute.Get("answers", controller.answers)
			idRoute.Get("summary", controller.summary)
			idRoute.Get("demographic", controller.demographic)
			idRoute.Patch("closing-time", controller.updateClosingTime)
			idRoute.Get("export", controller.export)
		})
	})
}

// @Summary Создание опроса
// @Tags Опросы
// @Description Создание опроса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		formapimodels.CreateFormRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=formapimodels.CreateFormResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/form [post]
func (c *formApiController) create(ctx *fiber.Ctx) error {
	var payload formapimodels.CreateFormRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	link, err := formhandler.Instance.Create(middleware.GetUserEmail(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания опроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(formapimodels.CreateFormResponse{FormLink: link}))
}

// @Summary Получение опроса по ссылке
// @Tags Опросы
// @Description Получение опроса по ссылке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "Ссылка опроса"
// @Success 200 {object} apimodels.Response{data=formapimodels.FormView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/form/{id} [get]
func (c *formApiController) get(ctx *fiber.Ctx) error {
	link, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := formhandler.Instance.GetByLink(link)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения опроса")
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("опрос не найден"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отправка ответов на опрос
// @Tags Опросы
// @Description Отправка ответов на опрос
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "Ссылка опроса"
// @Param	body				body		formapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/form/{id}/submit [post]
func (c *formApiController) submit(ctx *fiber.Ctx) error {
	link, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload formapimodels.SubmitRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	fieldErrors, hMsg, err := answerhandler.Instance.Submit(link, middleware.GetUserEmail(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения ответов")
	}
	if len(fieldErrors) != 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewValidationError("ответы не прошли проверку", fieldErrors))
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список ответов на опрос
// @Tags Опросы
// @Description Список ответов на опрос, доступен только создателю
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "Ссылка опроса"
// @Success 200 {object} apimodels.Response{data=[]formapimodels.AnswerRecordView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/form/{id}/answers [get]
func (c *formApiController) answers(ctx *fiber.Ctx) error {
	link, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := answerhandler.Instance.GetAnswers(link, middleware.GetUserEmail(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения ответов")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сводная статистика по опросу
// @Tags Опросы
// @Description Сводная статистика по опросу, доступна только создателю
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "Ссылка опроса"
// @Success 200 {object} apimodels.Response{data=formapimodels.SummaryView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/form/{id}/summary [get]
func (c *formApiController) summary(ctx *fiber.Ctx) error {
	link, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := statshandler.Instance.GetSummary(link, middleware.GetUserEmail(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статистики")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Демографическая статистика по опросу
// @Tags Опросы
// @Description Демографическая статистика по опросу, доступна только создателю
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "Ссылка опроса"
// @Success 200 {object} apimodels.Response{data=formapimodels.DemographicView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/form/{id}/demographic [get]
func (c *formApiController) demographic(ctx *fiber.Ctx) error {
	link, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := statshandler.Instance.GetDemographic(link, middleware.GetUserEmail(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения демографической статистики")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменение даты закрытия опроса
// @Tags Опросы
// @Description Изменение даты закрытия опроса, доступно только создателю
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "Ссылка опроса"
// @Param	body				body		formapimodels.UpdateClosingTimeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/form/{id}/closing-time [patch]
func (c *formApiController) updateClosingTime(ctx *fiber.Ctx) error {
	link, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload formapimodels.UpdateClosingTimeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := formhandler.Instance.UpdateClosingTime(link, middleware.GetUserEmail(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения даты закрытия")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выгрузка ответов в Excel
// @Tags Опросы
// @Description Выгрузка ответов в Excel, доступна только создателю
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "Ссылка опроса"
// @Success 200 {file} file "xlsx файл"
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/form/{id}/export [get]
func (c *formApiController) export(ctx *fiber.Ctx) error {
	link, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, fileName, hMsg, err := answerhandler.Instance.Export(ctx.UserContext(), link, middleware.GetUserEmail(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки ответов")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Список пройденных пользователем опросов
// @Tags Опросы
// @Description Список пройденных пользователем опросов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]formapimodels.AnsweredOverview}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/form/user-answered [get]
func (c *formApiController) userAnswered(ctx *fiber.Ctx) error {
	resp, err := answerhandler.Instance.GetUserAnswered(middleware.GetUserEmail(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка пройденных опросов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список созданных пользователем опросов
// @Tags Опросы
// @Description Список созданных пользователем опросов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]formapimodels.FormOverview}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/form/created [get]
func (c *formApiController) created(ctx *fiber.Ctx) error {
	resp, err := formhandler.Instance.GetCreated(middleware.GetUserEmail(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка опросов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
