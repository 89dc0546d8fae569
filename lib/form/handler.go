package form

import (
	"time"

	"survey-tools-backend/db"
	answerstore "survey-tools-backend/lib/answer/store"
	formstore "survey-tools-backend/lib/form/store"
	formapimodels "survey-tools-backend/models/api/form"
	dbmodels "survey-tools-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Provider interface {
	Create(userEmail string, req formapimodels.CreateFormRequest) (link string, err error)
	GetByLink(link string) (*formapimodels.FormView, error)
	UpdateClosingTime(link, userEmail string, req formapimodels.UpdateClosingTimeRequest) (hMsg string, err error)
	GetCreated(userEmail string) ([]formapimodels.FormOverview, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		formStore:   formstore.NewInstance(db.DB),
		answerStore: answerstore.NewInstance(db.DB),
	}
}

type impl struct {
	formStore   formstore.Provider
	answerStore answerstore.Provider
}

func (i impl) Create(userEmail string, req formapimodels.CreateFormRequest) (link string, err error) {
	rec := dbmodels.Form{
		Link:                   uuid.NewString(),
		Title:                  req.Title,
		ClosingTime:            req.ClosingTime,
		UserEmail:              userEmail,
		IsPersonalDataRequired: req.IsPersonalDataRequired,
		Questions: dbmodels.FormQuestions{
			Questions: make([]dbmodels.FormQuestion, 0, len(req.Questions)),
		},
	}
	for _, question := range req.Questions {
		if question.ID == "" {
			question.ID = uuid.NewString()
		}
		if !question.QuestionType.IsChoice() {
			// у свободного ответа нет вариантов
			question.PossibleAnswers = nil
		}
		rec.Questions.Questions = append(rec.Questions.Questions, question)
	}
	link, err = i.formStore.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения опроса")
	}
	return link, nil
}

func (i impl) GetByLink(link string) (*formapimodels.FormView, error) {
	rec, err := i.formStore.GetByLink(link)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения опроса")
	}
	if rec == nil {
		return nil, nil
	}
	view := formapimodels.NewFormView(*rec)
	return &view, nil
}

func (i impl) UpdateClosingTime(link, userEmail string, req formapimodels.UpdateClosingTimeRequest) (hMsg string, err error) {
	rec, err := i.formStore.GetByLink(link)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения опроса")
	}
	if rec == nil {
		return "опрос не найден", nil
	}
	if rec.UserEmail != userEmail {
		return "изменять дату закрытия может только создатель опроса", nil
	}
	updMap := map[string]interface{}{
		"closing_time": req.ClosingTime,
	}
	err = i.formStore.UpdateClosingTime(link, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления даты закрытия")
	}
	return "", nil
}

func (i impl) GetCreated(userEmail string) ([]formapimodels.FormOverview, error) {
	list, err := i.formStore.GetListByCreator(userEmail)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка опросов")
	}
	now := time.Now()
	result := make([]formapimodels.FormOverview, 0, len(list))
	for _, rec := range list {
		count, err := i.answerStore.CountByForm(rec.ID)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка подсчета ответов")
		}
		result = append(result, formapimodels.FormOverview{
			Link:        rec.Link,
			Title:       rec.Title,
			CreatedDate: rec.CreatedAt,
			ClosingTime: rec.ClosingTime,
			// в списке опрос показывается активным включительно до даты закрытия
			IsActive:     !now.After(rec.ClosingTime),
			AnswersCount: count,
		})
	}
	return result, nil
}
