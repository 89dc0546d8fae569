package answerresolver

import (
	"survey-tools-backend/models"
	dbmodels "survey-tools-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	singleQuestion := dbmodels.FormQuestion{
		ID:              "q1",
		QuestionType:    models.QuestionTypeSingle,
		PossibleAnswers: []string{"A", "B", "C"},
	}
	freetextQuestion := dbmodels.FormQuestion{
		ID:           "q2",
		QuestionType: models.QuestionTypeFreeText,
	}
	records := []dbmodels.AnswerRecord{
		{
			RespondentEmail: "alice@x.com",
			Answers: dbmodels.RecordAnswers{Answers: []dbmodels.FormAnswerValue{
				{QuestionID: "q1", ChosenAnswerIndexes: []int{2}},
				{QuestionID: "q2", FreetextAnswer: "ответ Алисы"},
			}},
		},
	}

	t.Run(`ответ найден по паре вопрос-респондент`, func(t *testing.T) {
		value := Resolve(records, singleQuestion, "alice@x.com")
		require.Equal(t, []int{2}, value.ChosenIndexes)
		require.Empty(t, value.Text)

		value = Resolve(records, freetextQuestion, "alice@x.com")
		require.Equal(t, "ответ Алисы", value.Text)
	})

	t.Run(`неизвестный респондент дает пустое значение`, func(t *testing.T) {
		value := Resolve(records, singleQuestion, "bob@x.com")
		require.NotNil(t, value.ChosenIndexes)
		require.Empty(t, value.ChosenIndexes)

		value = Resolve(records, freetextQuestion, "bob@x.com")
		require.Equal(t, "", value.Text)
	})

	t.Run(`отсутствующий в записи вопрос дает пустое значение`, func(t *testing.T) {
		unknown := dbmodels.FormQuestion{ID: "q9", QuestionType: models.QuestionTypeMultiple}
		value := Resolve(records, unknown, "alice@x.com")
		require.Empty(t, value.ChosenIndexes)
	})

	t.Run(`пустой список записей дает пустое значение`, func(t *testing.T) {
		value := Resolve(nil, singleQuestion, "alice@x.com")
		require.Empty(t, value.ChosenIndexes)
	})

	t.Run(`поле ответа выбирается по типу вопроса, а не по форме записи`, func(t *testing.T) {
		malformed := []dbmodels.AnswerRecord{
			{
				RespondentEmail: "alice@x.com",
				Answers: dbmodels.RecordAnswers{Answers: []dbmodels.FormAnswerValue{
					// для вопроса с выбором ошибочно сохранен текст
					{QuestionID: "q1", FreetextAnswer: "мусор"},
				}},
			},
		}
		value := Resolve(malformed, singleQuestion, "alice@x.com")
		require.Empty(t, value.ChosenIndexes)
		require.Empty(t, value.Text)
	})
}

func TestRespondents(t *testing.T) {
	t.Run(`почты в порядке первого появления без дублей`, func(t *testing.T) {
		records := []dbmodels.AnswerRecord{
			{RespondentEmail: "carol@x.com"},
			{RespondentEmail: "alice@x.com"},
			{RespondentEmail: "carol@x.com"},
			{RespondentEmail: "bob@x.com"},
		}
		require.Equal(t, []string{"carol@x.com", "alice@x.com", "bob@x.com"}, Respondents(records))
	})

	t.Run(`без записей нет респондентов`, func(t *testing.T) {
		require.Empty(t, Respondents(nil))
	})
}
