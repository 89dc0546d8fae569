package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"survey-tools-backend/models"
	"time"
)

// Ответ респондента на опрос, после сохранения не изменяется
type AnswerRecord struct {
	BaseModel
	FormID          string        `gorm:"type:varchar(36);index"`
	FilledOutAt     time.Time     `gorm:"index"`
	RespondentEmail string        `gorm:"type:varchar(255);index"`
	Birthdate       string        `gorm:"type:varchar(10)"` // ГГГГ-ММ-ДД, заполняется только если опрос требует персональные данные
	Gender          models.Gender `gorm:"type:varchar(10)"`
	Answers         RecordAnswers `gorm:"type:jsonb"`
}

func (j RecordAnswers) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *RecordAnswers) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type RecordAnswers struct {
	Answers []FormAnswerValue `json:"answers"`
}

// Ответ на один вопрос. Заполнено только одно из полей,
// какое именно - определяется типом вопроса в определении опроса.
type FormAnswerValue struct {
	QuestionID          string `json:"questionId"`
	FreetextAnswer      string `json:"freetextAnswer,omitempty"`
	ChosenAnswerIndexes []int  `json:"chosenAnswerIndexes,omitempty"`
}
