package answer

import (
	"testing"
	"time"

	"survey-tools-backend/models"
	formapimodels "survey-tools-backend/models/api/form"
	dbmodels "survey-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

type formStoreFake struct {
	rec *dbmodels.Form
}

func (f *formStoreFake) Create(rec dbmodels.Form) (string, error) {
	return rec.Link, nil
}

func (f *formStoreFake) GetByID(id string) (*dbmodels.Form, error) {
	if f.rec == nil || f.rec.ID != id {
		return nil, nil
	}
	return f.rec, nil
}

func (f *formStoreFake) GetByLink(link string) (*dbmodels.Form, error) {
	if f.rec == nil || f.rec.Link != link {
		return nil, nil
	}
	return f.rec, nil
}

func (f *formStoreFake) GetListByCreator(userEmail string) ([]dbmodels.Form, error) {
	return nil, nil
}

func (f *formStoreFake) UpdateClosingTime(link string, updMap map[string]interface{}) error {
	return nil
}

type answerStoreFake struct {
	exist bool
	saved []dbmodels.AnswerRecord
}

func (f *answerStoreFake) Create(rec dbmodels.AnswerRecord) (string, error) {
	f.saved = append(f.saved, rec)
	return rec.ID, nil
}

func (f *answerStoreFake) GetListByForm(formID string) ([]dbmodels.AnswerRecord, error) {
	return f.saved, nil
}

func (f *answerStoreFake) GetListByRespondent(respondentEmail string) ([]dbmodels.AnswerRecord, error) {
	return nil, nil
}

func (f *answerStoreFake) CountByForm(formID string) (int64, error) {
	return int64(len(f.saved)), nil
}

func (f *answerStoreFake) ExistByFormAndRespondent(formID, respondentEmail string) (bool, error) {
	return f.exist, nil
}

func testForm(closingTime time.Time) *dbmodels.Form {
	return &dbmodels.Form{
		BaseModel:   dbmodels.BaseModel{ID: "form-1"},
		Link:        "link-1",
		Title:       "Опрос",
		ClosingTime: closingTime,
		UserEmail:   "creator@x.com",
		Questions: dbmodels.FormQuestions{Questions: []dbmodels.FormQuestion{
			{ID: "q1", QuestionType: models.QuestionTypeSingle, Required: true, QuestionText: "Вопрос 1", PossibleAnswers: []string{"A", "B"}},
		}},
	}
}

func TestSubmit(t *testing.T) {
	validReq := formapimodels.SubmitRequest{
		Answers: []formapimodels.SubmitAnswer{
			{QuestionID: "q1", ChosenAnswerIndexes: []int{1}},
		},
	}

	t.Run(`ответ на открытый опрос сохраняется`, func(t *testing.T) {
		answerStore := &answerStoreFake{}
		handler := impl{
			formStore:   &formStoreFake{rec: testForm(time.Now().Add(time.Hour))},
			answerStore: answerStore,
		}
		fieldErrors, hMsg, err := handler.Submit("link-1", "alice@x.com", validReq)
		require.NoError(t, err)
		require.Empty(t, fieldErrors)
		require.Empty(t, hMsg)
		require.Len(t, answerStore.saved, 1)
		rec := answerStore.saved[0]
		require.Equal(t, "form-1", rec.FormID)
		require.Equal(t, "alice@x.com", rec.RespondentEmail)
		require.False(t, rec.FilledOutAt.IsZero())
		require.Equal(t, []int{1}, rec.Answers.Answers[0].ChosenAnswerIndexes)
	})

	t.Run(`после даты закрытия ответы не принимаются`, func(t *testing.T) {
		answerStore := &answerStoreFake{}
		handler := impl{
			formStore:   &formStoreFake{rec: testForm(time.Now().Add(-time.Hour))},
			answerStore: answerStore,
		}
		fieldErrors, hMsg, err := handler.Submit("link-1", "alice@x.com", validReq)
		require.NoError(t, err)
		require.Empty(t, fieldErrors)
		require.NotEmpty(t, hMsg)
		require.Empty(t, answerStore.saved)
	})

	t.Run(`повторная отправка того же респондента отклоняется`, func(t *testing.T) {
		answerStore := &answerStoreFake{exist: true}
		handler := impl{
			formStore:   &formStoreFake{rec: testForm(time.Now().Add(time.Hour))},
			answerStore: answerStore,
		}
		fieldErrors, hMsg, err := handler.Submit("link-1", "alice@x.com", validReq)
		require.NoError(t, err)
		require.Empty(t, fieldErrors)
		require.NotEmpty(t, hMsg)
		require.Empty(t, answerStore.saved)
	})

	t.Run(`несуществующий опрос дает сообщение, а не ошибку`, func(t *testing.T) {
		handler := impl{
			formStore:   &formStoreFake{},
			answerStore: &answerStoreFake{},
		}
		_, hMsg, err := handler.Submit("link-unknown", "alice@x.com", validReq)
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run(`ответы с ошибками валидации не сохраняются`, func(t *testing.T) {
		answerStore := &answerStoreFake{}
		handler := impl{
			formStore:   &formStoreFake{rec: testForm(time.Now().Add(time.Hour))},
			answerStore: answerStore,
		}
		req := formapimodels.SubmitRequest{
			Answers: []formapimodels.SubmitAnswer{{QuestionID: "q1"}},
		}
		fieldErrors, hMsg, err := handler.Submit("link-1", "alice@x.com", req)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Len(t, fieldErrors, 1)
		require.Equal(t, "answers.0.chosenAnswerIndexes", fieldErrors[0].Path)
		require.Empty(t, answerStore.saved)
	})

	t.Run(`несуществующий вариант ответа отклоняется до сохранения`, func(t *testing.T) {
		answerStore := &answerStoreFake{}
		handler := impl{
			formStore:   &formStoreFake{rec: testForm(time.Now().Add(time.Hour))},
			answerStore: answerStore,
		}
		req := formapimodels.SubmitRequest{
			Answers: []formapimodels.SubmitAnswer{{QuestionID: "q1", ChosenAnswerIndexes: []int{5}}},
		}
		fieldErrors, hMsg, err := handler.Submit("link-1", "alice@x.com", req)
		require.NoError(t, err)
		require.Empty(t, fieldErrors)
		require.NotEmpty(t, hMsg)
		require.Empty(t, answerStore.saved)
	})

	t.Run(`персональные данные сохраняются только при включенном флаге`, func(t *testing.T) {
		answerStore := &answerStoreFake{}
		handler := impl{
			formStore:   &formStoreFake{rec: testForm(time.Now().Add(time.Hour))},
			answerStore: answerStore,
		}
		req := validReq
		req.BirthDate = "2000-01-02"
		req.Gender = "FEMALE"
		_, hMsg, err := handler.Submit("link-1", "alice@x.com", req)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Len(t, answerStore.saved, 1)
		require.Empty(t, answerStore.saved[0].Birthdate)
		require.Empty(t, answerStore.saved[0].Gender)
	})
}
