package formapimodels

import (
	"strings"
	dbmodels "survey-tools-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type CreateFormRequest struct {
	Title                  string                  `json:"title"`
	ClosingTime            time.Time               `json:"closingTime"`
	IsPersonalDataRequired bool                    `json:"isPersonalDataRequired"`
	Questions              []dbmodels.FormQuestion `json:"questions"`
}

func (r CreateFormRequest) Validate() error {
	if len(strings.TrimSpace(r.Title)) < 2 {
		return errors.New("не указано название опроса")
	}
	if err := ValidateClosingTime(r.ClosingTime, time.Now()); err != nil {
		return err
	}
	if len(r.Questions) == 0 {
		return errors.New("опрос должен содержать хотя бы один вопрос")
	}
	for _, question := range r.Questions {
		if !question.QuestionType.Valid() {
			return errors.Errorf("неизвестный тип вопроса: %v", question.QuestionType)
		}
		if strings.TrimSpace(question.QuestionText) == "" {
			return errors.New("текст вопроса не должен быть пустым")
		}
	}
	return nil
}

// ValidateClosingTime - правило для создания и изменения даты закрытия:
// строго в будущем и не дальше чем через год. Проверка статуса
// "опрос активен" выполняется отдельно и этим правилом не связана.
func ValidateClosingTime(closingTime, now time.Time) error {
	if !closingTime.After(now) {
		return errors.New("дата закрытия опроса должна быть в будущем")
	}
	if closingTime.After(now.AddDate(1, 0, 0)) {
		return errors.New("дата закрытия опроса не может быть дальше чем через год")
	}
	return nil
}

type CreateFormResponse struct {
	FormLink string `json:"formLink"`
}

type UpdateClosingTimeRequest struct {
	ClosingTime time.Time `json:"closingTime"`
}

func (r UpdateClosingTimeRequest) Validate() error {
	return ValidateClosingTime(r.ClosingTime, time.Now())
}

type FormView struct {
	Link                   string                  `json:"link"`
	Title                  string                  `json:"title"`
	ClosingTime            time.Time               `json:"closingTime"`
	UserEmail              string                  `json:"userEmail"`
	Questions              []dbmodels.FormQuestion `json:"questions"`
	IsPersonalDataRequired bool                    `json:"isPersonalDataRequired"`
}

func NewFormView(rec dbmodels.Form) FormView {
	return FormView{
		Link:                   rec.Link,
		Title:                  rec.Title,
		ClosingTime:            rec.ClosingTime,
		UserEmail:              rec.UserEmail,
		Questions:              rec.Questions.Questions,
		IsPersonalDataRequired: rec.IsPersonalDataRequired,
	}
}

// Карточка опроса в списке "мои опросы"
type FormOverview struct {
	Link         string    `json:"link"`
	Title        string    `json:"title"`
	CreatedDate  time.Time `json:"createdDate"`
	ClosingTime  time.Time `json:"closingTime"`
	IsActive     bool      `json:"isActive"`
	AnswersCount int64     `json:"answersCount"`
}
