package models

// Тип вопроса определяет и виджет ввода, и форму сохраненного ответа
type QuestionType string

const (
	QuestionTypeFreeText QuestionType = "FREETEXT"
	QuestionTypeSingle   QuestionType = "SINGLE"
	QuestionTypeMultiple QuestionType = "MULTIPLE"
)

var questionTypeHumanName = map[QuestionType]string{
	QuestionTypeFreeText: "Свободный ответ",
	QuestionTypeSingle:   "Один вариант из списка",
	QuestionTypeMultiple: "Несколько вариантов из списка",
}

func (t QuestionType) ToHuman() string {
	if human, exist := questionTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeFreeText, QuestionTypeSingle, QuestionTypeMultiple:
		return true
	}
	return false
}

// IsChoice - ответ хранится как список индексов выбранных вариантов
func (t QuestionType) IsChoice() bool {
	return t == QuestionTypeSingle || t == QuestionTypeMultiple
}
