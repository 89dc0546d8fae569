package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"survey-tools-backend/models"
	"time"
)

type Form struct {
	BaseModel
	Link                   string        `gorm:"type:varchar(36);uniqueIndex"`
	Title                  string        `gorm:"type:varchar(255)"`
	ClosingTime            time.Time     `gorm:"index"`
	UserEmail              string        `gorm:"type:varchar(255);index"`
	Questions              FormQuestions `gorm:"type:jsonb"`
	IsPersonalDataRequired bool
}

// IsOpen - опрос еще принимает ответы. Проверка выполняется в момент
// отправки ответа и не связана с валидацией даты при создании опроса.
func (f Form) IsOpen(now time.Time) bool {
	return now.Before(f.ClosingTime)
}

func (j FormQuestions) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *FormQuestions) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

// Настройка опроса
type FormQuestions struct {
	Questions []FormQuestion `json:"questions"`
}

type FormQuestion struct {
	ID              string              `json:"id"`              // Идентификатор вопроса, уникален в рамках опроса
	QuestionType    models.QuestionType `json:"questionType"`    // Тип вопроса
	Required        bool                `json:"required"`        // Ответ обязателен
	QuestionText    string              `json:"questionText"`    // Текст вопроса
	PossibleAnswers []string            `json:"possibleAnswers"` // Варианты ответов, индексы являются идентификаторами вариантов
}
