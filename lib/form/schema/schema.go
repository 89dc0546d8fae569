package formschema

import (
	"fmt"
	"strings"
	"survey-tools-backend/models"
	dbmodels "survey-tools-backend/models/db"
)

// Сообщение для всех ошибок обязательных полей, текст фиксирован контрактом API
const RequiredMessage = "This field is required."

// FieldError - ошибка проверки одного поля формы
type FieldError struct {
	Path    string `json:"path"` // answers.<i>.freetextAnswer, answers.<i>.chosenAnswerIndexes, birthDate, gender
	Message string `json:"message"`
}

// Candidate - черновик ответов респондента, answers выровнен 1:1 со списком вопросов
type Candidate struct {
	BirthDate string
	Gender    string
	Answers   []CandidateAnswer
}

type CandidateAnswer struct {
	FreetextAnswer      string
	ChosenAnswerIndexes []int
}

// Validate проверяет черновик ответов против определения опроса.
// Функция чистая: правила выводятся из списка вопросов, по обязательным
// вопросам требуется непустой ответ соответствующей типу формы,
// необязательные вопросы ограничений не накладывают. Пустой список
// вопросов проходит проверку тривиально.
func Validate(questions []dbmodels.FormQuestion, personalDataRequired bool, candidate Candidate) []FieldError {
	fieldErrors := []FieldError{}
	for i, question := range questions {
		if !question.Required {
			continue
		}
		var answer CandidateAnswer
		if i < len(candidate.Answers) {
			answer = candidate.Answers[i]
		}
		switch question.QuestionType {
		case models.QuestionTypeFreeText:
			if strings.TrimSpace(answer.FreetextAnswer) == "" {
				fieldErrors = append(fieldErrors, FieldError{
					Path:    fmt.Sprintf("answers.%d.freetextAnswer", i),
					Message: RequiredMessage,
				})
			}
		case models.QuestionTypeSingle, models.QuestionTypeMultiple:
			if len(answer.ChosenAnswerIndexes) == 0 {
				fieldErrors = append(fieldErrors, FieldError{
					Path:    fmt.Sprintf("answers.%d.chosenAnswerIndexes", i),
					Message: RequiredMessage,
				})
			}
		}
	}
	if personalDataRequired {
		if strings.TrimSpace(candidate.BirthDate) == "" {
			fieldErrors = append(fieldErrors, FieldError{Path: "birthDate", Message: RequiredMessage})
		}
		if !models.Gender(candidate.Gender).Valid() {
			fieldErrors = append(fieldErrors, FieldError{Path: "gender", Message: RequiredMessage})
		}
	}
	return fieldErrors
}

// CheckAnswerIndexes проверяет, что выбранные индексы указывают на
// существующие варианты ответов. Возвращает человекочитаемое сообщение
// для первого нарушения.
func CheckAnswerIndexes(questions []dbmodels.FormQuestion, candidate Candidate) (hMsg string) {
	for i, question := range questions {
		if !question.QuestionType.IsChoice() || i >= len(candidate.Answers) {
			continue
		}
		for _, idx := range candidate.Answers[i].ChosenAnswerIndexes {
			if idx < 0 || idx >= len(question.PossibleAnswers) {
				return fmt.Sprintf("для вопроса {%v} указан несуществующий вариант ответа", question.QuestionText)
			}
		}
	}
	return ""
}

// BuildPayload собирает из черновика ответы для сохранения: по каждому
// вопросу заполняется ровно одно поле, выбранное типом вопроса.
func BuildPayload(questions []dbmodels.FormQuestion, candidate Candidate) []dbmodels.FormAnswerValue {
	payload := make([]dbmodels.FormAnswerValue, 0, len(questions))
	for i, question := range questions {
		var answer CandidateAnswer
		if i < len(candidate.Answers) {
			answer = candidate.Answers[i]
		}
		value := dbmodels.FormAnswerValue{QuestionID: question.ID}
		switch question.QuestionType {
		case models.QuestionTypeFreeText:
			value.FreetextAnswer = answer.FreetextAnswer
		case models.QuestionTypeSingle, models.QuestionTypeMultiple:
			chosen := answer.ChosenAnswerIndexes
			if chosen == nil {
				chosen = []int{}
			}
			value.ChosenAnswerIndexes = chosen
		}
		payload = append(payload, value)
	}
	return payload
}

// SelectSingle - выбор варианта для SINGLE всегда заменяет предыдущий
func SelectSingle(chosen []int, idx int) []int {
	return []int{idx}
}

// ToggleMultiple добавляет вариант или убирает уже выбранный,
// порядок остальных не меняется
func ToggleMultiple(chosen []int, idx int) []int {
	result := make([]int, 0, len(chosen)+1)
	removed := false
	for _, c := range chosen {
		if c == idx {
			removed = true
			continue
		}
		result = append(result, c)
	}
	if !removed {
		result = append(result, idx)
	}
	return result
}
