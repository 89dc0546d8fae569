package answerresolver

import (
	"survey-tools-backend/models"
	dbmodels "survey-tools-backend/models/db"
)

// Value - ответ на вопрос в форме, пригодной для отображения виджетом
// соответствующего типа. Какое поле читать из сохраненной записи,
// определяет объявленный тип вопроса, а не форма самой записи.
type Value struct {
	Type          models.QuestionType `json:"type"`
	Text          string              `json:"text"`
	ChosenIndexes []int               `json:"chosenIndexes"`
}

// Empty - пустое значение для типа вопроса: '' для свободного ответа,
// пустой список для вопросов с выбором
func Empty(questionType models.QuestionType) Value {
	return Value{
		Type:          questionType,
		ChosenIndexes: []int{},
	}
}

// Resolve находит ответ пары (вопрос, респондент). Отсутствующая запись,
// отсутствующий ответ и запись с заполненным не тем полем нормализуются
// в пустое значение - исторические записи могли быть сохранены до
// изменения настроек опроса и ошибкой не считаются.
func Resolve(records []dbmodels.AnswerRecord, question dbmodels.FormQuestion, respondentEmail string) Value {
	record, found := findRecord(records, question.ID, respondentEmail)
	if !found {
		return Empty(question.QuestionType)
	}
	answer, found := findAnswer(record, question.ID)
	if !found {
		return Empty(question.QuestionType)
	}
	value := Empty(question.QuestionType)
	switch question.QuestionType {
	case models.QuestionTypeSingle, models.QuestionTypeMultiple:
		if answer.ChosenAnswerIndexes != nil {
			value.ChosenIndexes = answer.ChosenAnswerIndexes
		}
	case models.QuestionTypeFreeText:
		value.Text = answer.FreetextAnswer
	}
	return value
}

// Respondents - уникальные почты респондентов в порядке первого появления
func Respondents(records []dbmodels.AnswerRecord) []string {
	seen := map[string]bool{}
	result := []string{}
	for _, record := range records {
		if seen[record.RespondentEmail] {
			continue
		}
		seen[record.RespondentEmail] = true
		result = append(result, record.RespondentEmail)
	}
	return result
}

func findRecord(records []dbmodels.AnswerRecord, questionID, respondentEmail string) (dbmodels.AnswerRecord, bool) {
	for _, record := range records {
		if record.RespondentEmail != respondentEmail {
			continue
		}
		if _, found := findAnswer(record, questionID); found {
			return record, true
		}
	}
	return dbmodels.AnswerRecord{}, false
}

func findAnswer(record dbmodels.AnswerRecord, questionID string) (dbmodels.FormAnswerValue, bool) {
	for _, answer := range record.Answers.Answers {
		if answer.QuestionID == questionID {
			return answer, true
		}
	}
	return dbmodels.FormAnswerValue{}, false
}
