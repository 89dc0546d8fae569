package formschema

import (
	"survey-tools-backend/models"
	dbmodels "survey-tools-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run(`пустой список вопросов проходит проверку`, func(t *testing.T) {
		fieldErrors := Validate(nil, false, Candidate{})
		require.Empty(t, fieldErrors)
	})

	t.Run(`обязательный свободный ответ из одних пробелов не проходит`, func(t *testing.T) {
		questions := []dbmodels.FormQuestion{
			{ID: "q1", QuestionType: models.QuestionTypeFreeText, Required: true, QuestionText: "Вопрос 1"},
		}
		candidate := Candidate{Answers: []CandidateAnswer{{FreetextAnswer: " "}}}
		fieldErrors := Validate(questions, false, candidate)
		require.Len(t, fieldErrors, 1)
		require.Equal(t, "answers.0.freetextAnswer", fieldErrors[0].Path)
		require.Equal(t, RequiredMessage, fieldErrors[0].Message)
	})

	t.Run(`обязательный выбор без отмеченных вариантов не проходит`, func(t *testing.T) {
		questions := []dbmodels.FormQuestion{
			{ID: "q1", QuestionType: models.QuestionTypeMultiple, Required: true, PossibleAnswers: []string{"A", "B"}},
		}
		fieldErrors := Validate(questions, false, Candidate{Answers: []CandidateAnswer{{}}})
		require.Len(t, fieldErrors, 1)
		require.Equal(t, "answers.0.chosenAnswerIndexes", fieldErrors[0].Path)
	})

	t.Run(`выбранный вариант для обязательного SINGLE проходит`, func(t *testing.T) {
		questions := []dbmodels.FormQuestion{
			{ID: "q1", QuestionType: models.QuestionTypeSingle, Required: true, PossibleAnswers: []string{"A", "B"}},
		}
		candidate := Candidate{Answers: []CandidateAnswer{{ChosenAnswerIndexes: []int{1}}}}
		require.Empty(t, Validate(questions, false, candidate))
	})

	t.Run(`необязательные вопросы не накладывают ограничений`, func(t *testing.T) {
		questions := []dbmodels.FormQuestion{
			{ID: "q1", QuestionType: models.QuestionTypeFreeText, Required: false},
			{ID: "q2", QuestionType: models.QuestionTypeSingle, Required: false, PossibleAnswers: []string{"A"}},
		}
		require.Empty(t, Validate(questions, false, Candidate{Answers: []CandidateAnswer{{}, {}}}))
	})

	t.Run(`персональные данные обязательны только при включенном флаге`, func(t *testing.T) {
		fieldErrors := Validate(nil, true, Candidate{})
		require.Len(t, fieldErrors, 2)
		require.Equal(t, "birthDate", fieldErrors[0].Path)
		require.Equal(t, "gender", fieldErrors[1].Path)

		fieldErrors = Validate(nil, true, Candidate{BirthDate: "2000-01-02", Gender: "FEMALE"})
		require.Empty(t, fieldErrors)
	})

	t.Run(`пол вне перечисления не проходит`, func(t *testing.T) {
		candidate := Candidate{BirthDate: "2000-01-02", Gender: "OTHER"}
		fieldErrors := Validate(nil, true, candidate)
		require.Len(t, fieldErrors, 1)
		require.Equal(t, "gender", fieldErrors[0].Path)
	})

	t.Run(`отсутствующий черновик ответа для обязательного вопроса не проходит`, func(t *testing.T) {
		questions := []dbmodels.FormQuestion{
			{ID: "q1", QuestionType: models.QuestionTypeFreeText, Required: true},
		}
		fieldErrors := Validate(questions, false, Candidate{})
		require.Len(t, fieldErrors, 1)
	})
}

func TestCheckAnswerIndexes(t *testing.T) {
	questions := []dbmodels.FormQuestion{
		{ID: "q1", QuestionType: models.QuestionTypeSingle, QuestionText: "Вопрос", PossibleAnswers: []string{"A", "B"}},
	}

	t.Run(`индекс в пределах списка вариантов`, func(t *testing.T) {
		hMsg := CheckAnswerIndexes(questions, Candidate{Answers: []CandidateAnswer{{ChosenAnswerIndexes: []int{1}}}})
		require.Empty(t, hMsg)
	})

	t.Run(`индекс за пределами списка вариантов`, func(t *testing.T) {
		hMsg := CheckAnswerIndexes(questions, Candidate{Answers: []CandidateAnswer{{ChosenAnswerIndexes: []int{2}}}})
		require.NotEmpty(t, hMsg)
	})
}

func TestBuildPayload(t *testing.T) {
	questions := []dbmodels.FormQuestion{
		{ID: "q1", QuestionType: models.QuestionTypeFreeText},
		{ID: "q2", QuestionType: models.QuestionTypeSingle, PossibleAnswers: []string{"A", "B"}},
		{ID: "q3", QuestionType: models.QuestionTypeMultiple, PossibleAnswers: []string{"A", "B", "C"}},
	}
	candidate := Candidate{Answers: []CandidateAnswer{
		{FreetextAnswer: "текст", ChosenAnswerIndexes: []int{0}}, // лишние индексы отбрасываются
		{FreetextAnswer: "мусор", ChosenAnswerIndexes: []int{1}},
		{ChosenAnswerIndexes: []int{0, 2}},
	}}

	payload := BuildPayload(questions, candidate)
	require.Len(t, payload, 3)

	require.Equal(t, "q1", payload[0].QuestionID)
	require.Equal(t, "текст", payload[0].FreetextAnswer)
	require.Nil(t, payload[0].ChosenAnswerIndexes)

	require.Equal(t, "q2", payload[1].QuestionID)
	require.Empty(t, payload[1].FreetextAnswer)
	require.Equal(t, []int{1}, payload[1].ChosenAnswerIndexes)

	require.Equal(t, []int{0, 2}, payload[2].ChosenAnswerIndexes)

	t.Run(`для вопроса с выбором без черновика сохраняется пустой список`, func(t *testing.T) {
		payload := BuildPayload(questions[1:2], Candidate{})
		require.Len(t, payload, 1)
		require.NotNil(t, payload[0].ChosenAnswerIndexes)
		require.Empty(t, payload[0].ChosenAnswerIndexes)
	})
}

func TestSelection(t *testing.T) {
	t.Run(`SINGLE всегда заменяет выбор`, func(t *testing.T) {
		chosen := SelectSingle(nil, 0)
		require.Equal(t, []int{0}, chosen)
		chosen = SelectSingle(chosen, 2)
		require.Equal(t, []int{2}, chosen)
		require.LessOrEqual(t, len(chosen), 1)
	})

	t.Run(`повторное переключение MULTIPLE возвращает исходный набор`, func(t *testing.T) {
		chosen := []int{0, 2}
		chosen = ToggleMultiple(chosen, 1)
		require.Equal(t, []int{0, 2, 1}, chosen)
		chosen = ToggleMultiple(chosen, 1)
		require.Equal(t, []int{0, 2}, chosen)
	})
}
