package xlsexport

import (
	"bytes"
	"strings"

	answerresolver "survey-tools-backend/lib/answer/resolver"
	dbmodels "survey-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportAnswers(form dbmodels.Form, records []dbmodels.AnswerRecord) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// ExportAnswers - таблица ответов: строка на респондента, колонка на вопрос
func (i impl) ExportAnswers(form dbmodels.Form, records []dbmodels.AnswerRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	questions := form.Questions.Questions
	headers := make([]string, 0, len(questions)+2)
	headers = append(headers, "Респондент", "Дата заполнения")
	for _, question := range questions {
		headers = append(headers, question.QuestionText)
	}

	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, headers)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	respondents := answerresolver.Respondents(records)
	if len(respondents) != 0 {
		row, err = writeAnswerData(f, sheet, questions, records, respondents, len(headers), row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Ответы")
	return f.WriteToBuffer()
}

func writeAnswerData(f *excelize.File, sheet string, questions []dbmodels.FormQuestion, records []dbmodels.AnswerRecord, respondents []string, colCount, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, colCount, len(respondents)+1); err != nil {
		return row, err
	}
	for _, respondent := range respondents {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, respondent); err != nil {
			return row, err
		}

		col++
		filledOutAt := findFilledOutAt(records, respondent)
		if err := writeColumn(f, sheet, col, row, filledOutAt); err != nil {
			return row, err
		}

		for _, question := range questions {
			col++
			value := answerresolver.Resolve(records, question, respondent)
			if err := writeColumn(f, sheet, col, row, renderValue(question, value)); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

func findFilledOutAt(records []dbmodels.AnswerRecord, respondent string) string {
	for _, record := range records {
		if record.RespondentEmail == respondent {
			return record.FilledOutAt.Format("02.01.2006 15:04")
		}
	}
	return ""
}

// renderValue переводит ответ в текст ячейки, для вопросов с выбором -
// через текст вариантов. Индексы за пределами списка вариантов пропускаются.
func renderValue(question dbmodels.FormQuestion, value answerresolver.Value) string {
	if !question.QuestionType.IsChoice() {
		return value.Text
	}
	chosen := make([]string, 0, len(value.ChosenIndexes))
	for _, idx := range value.ChosenIndexes {
		if idx >= 0 && idx < len(question.PossibleAnswers) {
			chosen = append(chosen, question.PossibleAnswers[idx])
		}
	}
	return strings.Join(chosen, "; ")
}
