package formapimodels

import (
	"survey-tools-backend/models"
)

type SummaryView struct {
	Title        string            `json:"title"`
	TotalAnswers int               `json:"totalAnswers"`
	PerDay       []DayCount        `json:"perDay"`
	Questions    []QuestionSummary `json:"questions"`
}

type DayCount struct {
	Date  string `json:"date"` // ГГГГ-ММ-ДД
	Count int    `json:"count"`
}

type QuestionSummary struct {
	QuestionID   string              `json:"questionId"`
	QuestionText string              `json:"questionText"`
	QuestionType models.QuestionType `json:"questionType"`
	// Для SINGLE/MULTIPLE: количество выборов по каждому варианту,
	// позиция соответствует possibleAnswers
	OptionCounts []OptionCount `json:"optionCounts,omitempty"`
	// Для FREETEXT: количество непустых ответов
	FreetextCount int `json:"freetextCount,omitempty"`
}

type OptionCount struct {
	Answer string `json:"answer"`
	Count  int    `json:"count"`
}

type DemographicView struct {
	Genders   []GenderCount   `json:"genders"`
	AgeGroups []AgeGroupCount `json:"ageGroups"`
}

type GenderCount struct {
	Gender string `json:"gender"`
	Count  int    `json:"count"`
}

type AgeGroupCount struct {
	Group string `json:"group"`
	Count int    `json:"count"`
}
