package stats

import (
	"testing"
	"time"

	"survey-tools-backend/models"
	dbmodels "survey-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestSummarizeQuestions(t *testing.T) {
	questions := []dbmodels.FormQuestion{
		{ID: "q1", QuestionType: models.QuestionTypeMultiple, QuestionText: "Вопрос 1", PossibleAnswers: []string{"A", "B", "C"}},
		{ID: "q2", QuestionType: models.QuestionTypeFreeText, QuestionText: "Вопрос 2"},
	}
	records := []dbmodels.AnswerRecord{
		{Answers: dbmodels.RecordAnswers{Answers: []dbmodels.FormAnswerValue{
			{QuestionID: "q1", ChosenAnswerIndexes: []int{0, 2}},
			{QuestionID: "q2", FreetextAnswer: "текст"},
		}}},
		{Answers: dbmodels.RecordAnswers{Answers: []dbmodels.FormAnswerValue{
			{QuestionID: "q1", ChosenAnswerIndexes: []int{2, 9}}, // 9 за пределами вариантов
			{QuestionID: "q2"},
		}}},
	}

	result := SummarizeQuestions(questions, records)
	require.Len(t, result, 2)

	t.Run(`выборы считаются по вариантам, лишние индексы отбрасываются`, func(t *testing.T) {
		require.Len(t, result[0].OptionCounts, 3)
		require.Equal(t, 1, result[0].OptionCounts[0].Count)
		require.Equal(t, 0, result[0].OptionCounts[1].Count)
		require.Equal(t, 2, result[0].OptionCounts[2].Count)
	})

	t.Run(`для свободного ответа считаются только непустые`, func(t *testing.T) {
		require.Equal(t, 1, result[1].FreetextCount)
		require.Empty(t, result[1].OptionCounts)
	})
}

func TestCountPerDay(t *testing.T) {
	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	records := []dbmodels.AnswerRecord{
		{FilledOutAt: day2},
		{FilledOutAt: day1},
		{FilledOutAt: day1.Add(2 * time.Hour)},
	}

	result := CountPerDay(records)
	require.Len(t, result, 2)
	require.Equal(t, "2026-03-01", result[0].Date)
	require.Equal(t, 2, result[0].Count)
	require.Equal(t, "2026-03-02", result[1].Date)
	require.Equal(t, 1, result[1].Count)
}

func TestCountGenders(t *testing.T) {
	records := []dbmodels.AnswerRecord{
		{Gender: models.GenderFemale},
		{Gender: models.GenderMale},
		{Gender: models.GenderFemale},
		{}, // без персональных данных
	}

	result := CountGenders(records)
	require.Len(t, result, 2)
	require.Equal(t, "FEMALE", result[0].Gender)
	require.Equal(t, 2, result[0].Count)
	require.Equal(t, "MALE", result[1].Gender)
	require.Equal(t, 1, result[1].Count)
}

func TestCountAgeGroups(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	records := []dbmodels.AnswerRecord{
		{Birthdate: "2010-01-01"}, // 16 лет
		{Birthdate: "2000-01-01"}, // 26 лет
		{Birthdate: "1960-01-01"}, // 66 лет
		{Birthdate: "не дата"},
		{},
	}

	result := CountAgeGroups(records, now)
	require.Len(t, result, 5)
	require.Equal(t, "до 18", result[0].Group)
	require.Equal(t, 1, result[0].Count)
	require.Equal(t, 0, result[1].Count)
	require.Equal(t, "26-35", result[2].Group)
	require.Equal(t, 1, result[2].Count)
	require.Equal(t, "старше 50", result[4].Group)
	require.Equal(t, 1, result[4].Count)
}
