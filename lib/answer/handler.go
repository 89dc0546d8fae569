package answer

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"survey-tools-backend/db"
	answerstore "survey-tools-backend/lib/answer/store"
	xlsexport "survey-tools-backend/lib/export/xls"
	filestorage "survey-tools-backend/lib/file-storage"
	formschema "survey-tools-backend/lib/form/schema"
	formstore "survey-tools-backend/lib/form/store"
	"survey-tools-backend/models"
	formapimodels "survey-tools-backend/models/api/form"
	dbmodels "survey-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Submit(link, respondentEmail string, req formapimodels.SubmitRequest) (fieldErrors []formschema.FieldError, hMsg string, err error)
	GetAnswers(link, userEmail string) (list []formapimodels.AnswerRecordView, hMsg string, err error)
	GetUserAnswered(respondentEmail string) ([]formapimodels.AnsweredOverview, error)
	Export(ctx context.Context, link, userEmail string) (buf *bytes.Buffer, fileName string, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		formStore:   formstore.NewInstance(db.DB),
		answerStore: answerstore.NewInstance(db.DB),
	}
}

type impl struct {
	formStore   formstore.Provider
	answerStore answerstore.Provider
}

func (i impl) Submit(link, respondentEmail string, req formapimodels.SubmitRequest) (fieldErrors []formschema.FieldError, hMsg string, err error) {
	formRec, err := i.formStore.GetByLink(link)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения опроса")
	}
	if formRec == nil {
		return nil, "опрос не найден", nil
	}
	now := time.Now()
	if !formRec.IsOpen(now) {
		return nil, "опрос завершен, ответы больше не принимаются", nil
	}
	exist, err := i.answerStore.ExistByFormAndRespondent(formRec.ID, respondentEmail)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка проверки повторного ответа")
	}
	if exist {
		return nil, "вы уже проходили этот опрос", nil
	}

	questions := formRec.Questions.Questions
	candidate := formschema.Candidate{
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
		Answers:   make([]formschema.CandidateAnswer, len(questions)),
	}
	// черновик выравнивается по списку вопросов, лишние ответы отбрасываются
	for pos := range questions {
		if pos < len(req.Answers) {
			candidate.Answers[pos] = formschema.CandidateAnswer{
				FreetextAnswer:      req.Answers[pos].FreetextAnswer,
				ChosenAnswerIndexes: req.Answers[pos].ChosenAnswerIndexes,
			}
		}
	}

	fieldErrors = formschema.Validate(questions, formRec.IsPersonalDataRequired, candidate)
	if len(fieldErrors) != 0 {
		return fieldErrors, "", nil
	}
	hMsg = formschema.CheckAnswerIndexes(questions, candidate)
	if hMsg != "" {
		return nil, hMsg, nil
	}

	rec := dbmodels.AnswerRecord{
		FormID:          formRec.ID,
		FilledOutAt:     now,
		RespondentEmail: respondentEmail,
		Answers: dbmodels.RecordAnswers{
			Answers: formschema.BuildPayload(questions, candidate),
		},
	}
	if formRec.IsPersonalDataRequired {
		rec.Birthdate = req.BirthDate
		rec.Gender = models.Gender(req.Gender)
	}
	_, err = i.answerStore.Create(rec)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка сохранения ответа")
	}
	return nil, "", nil
}

func (i impl) GetAnswers(link, userEmail string) (list []formapimodels.AnswerRecordView, hMsg string, err error) {
	formRec, err := i.formStore.GetByLink(link)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения опроса")
	}
	if formRec == nil {
		return nil, "опрос не найден", nil
	}
	if formRec.UserEmail != userEmail {
		return nil, "просматривать ответы может только создатель опроса", nil
	}
	records, err := i.answerStore.GetListByForm(formRec.ID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения ответов")
	}
	list = make([]formapimodels.AnswerRecordView, 0, len(records))
	for _, rec := range records {
		list = append(list, formapimodels.NewAnswerRecordView(rec))
	}
	return list, "", nil
}

// Export выгружает ответы в xlsx и при настроенном S3 архивирует копию
func (i impl) Export(ctx context.Context, link, userEmail string) (buf *bytes.Buffer, fileName string, hMsg string, err error) {
	formRec, err := i.formStore.GetByLink(link)
	if err != nil {
		return nil, "", "", errors.Wrap(err, "ошибка получения опроса")
	}
	if formRec == nil {
		return nil, "", "опрос не найден", nil
	}
	if formRec.UserEmail != userEmail {
		return nil, "", "выгружать ответы может только создатель опроса", nil
	}
	records, err := i.answerStore.GetListByForm(formRec.ID)
	if err != nil {
		return nil, "", "", errors.Wrap(err, "ошибка получения ответов")
	}
	buf, err = xlsexport.Instance.ExportAnswers(*formRec, records)
	if err != nil {
		return nil, "", "", errors.Wrap(err, "ошибка формирования выгрузки")
	}
	if filestorage.Instance.IsConfigured() {
		err = filestorage.Instance.ArchiveReport(ctx, formRec.Link, buf.Bytes())
		if err != nil {
			log.
				WithField("form_link", formRec.Link).
				WithError(err).
				Error("ошибка архивирования выгрузки в S3")
		}
	}
	fileName = fmt.Sprintf("answers-%s.xlsx", formRec.Link)
	return buf, fileName, "", nil
}

func (i impl) GetUserAnswered(respondentEmail string) ([]formapimodels.AnsweredOverview, error) {
	records, err := i.answerStore.GetListByRespondent(respondentEmail)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка ответов")
	}
	result := make([]formapimodels.AnsweredOverview, 0, len(records))
	for _, rec := range records {
		formRec, err := i.formStore.GetByID(rec.FormID)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка получения опроса")
		}
		if formRec == nil {
			// опрос мог быть удален, запись пропускаем
			continue
		}
		result = append(result, formapimodels.AnsweredOverview{
			Link:         formRec.Link,
			Title:        formRec.Title,
			AnswerDate:   rec.FilledOutAt,
			CreatorEmail: formRec.UserEmail,
		})
	}
	return result, nil
}
