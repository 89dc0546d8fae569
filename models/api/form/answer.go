package formapimodels

import (
	dbmodels "survey-tools-backend/models/db"
	"time"
)

type SubmitRequest struct {
	UserEmail string         `json:"userEmail"` // игнорируется, респондент определяется по токену
	BirthDate string         `json:"birthDate"`
	Gender    string         `json:"gender"`
	Answers   []SubmitAnswer `json:"answers"`
}

// Черновой ответ на вопрос, позиция в списке соответствует позиции вопроса
type SubmitAnswer struct {
	QuestionID          string `json:"questionId"`
	FreetextAnswer      string `json:"freetextAnswer"`
	ChosenAnswerIndexes []int  `json:"chosenAnswerIndexes"`
}

type RespondentData struct {
	UserEmail string `json:"userEmail"`
	Birthdate string `json:"birthdate,omitempty"`
	Gender    string `json:"gender,omitempty"`
}

type AnswerRecordView struct {
	ID             string                     `json:"id"`
	FilledOutAt    time.Time                  `json:"filledOutAt"`
	RespondentData RespondentData             `json:"respondentData"`
	FormAnswers    []dbmodels.FormAnswerValue `json:"formAnswers"`
}

func NewAnswerRecordView(rec dbmodels.AnswerRecord) AnswerRecordView {
	return AnswerRecordView{
		ID:          rec.ID,
		FilledOutAt: rec.FilledOutAt,
		RespondentData: RespondentData{
			UserEmail: rec.RespondentEmail,
			Birthdate: rec.Birthdate,
			Gender:    string(rec.Gender),
		},
		FormAnswers: rec.Answers.Answers,
	}
}

// Карточка пройденного опроса в списке "мои ответы"
type AnsweredOverview struct {
	Link         string    `json:"link"`
	Title        string    `json:"title"`
	AnswerDate   time.Time `json:"answerDate"`
	CreatorEmail string    `json:"creatorEmail"`
}
