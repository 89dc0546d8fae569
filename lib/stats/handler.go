package stats

import (
	"sort"
	"time"

	"survey-tools-backend/db"
	answerstore "survey-tools-backend/lib/answer/store"
	formstore "survey-tools-backend/lib/form/store"
	"survey-tools-backend/lib/utils/helpers"
	formapimodels "survey-tools-backend/models/api/form"
	dbmodels "survey-tools-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	GetSummary(link, userEmail string) (view *formapimodels.SummaryView, hMsg string, err error)
	GetDemographic(link, userEmail string) (view *formapimodels.DemographicView, hMsg string, err error)
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

func (i impl) GetSummary(link, userEmail string) (view *formapimodels.SummaryView, hMsg string, err error) {
	formRec, records, hMsg, err := i.loadForCreator(link, userEmail)
	if hMsg != "" || err != nil {
		return nil, hMsg, err
	}
	result := formapimodels.SummaryView{
		Title:        formRec.Title,
		TotalAnswers: len(records),
		PerDay:       CountPerDay(records),
		Questions:    SummarizeQuestions(formRec.Questions.Questions, records),
	}
	return &result, "", nil
}

func (i impl) GetDemographic(link, userEmail string) (view *formapimodels.DemographicView, hMsg string, err error) {
	formRec, records, hMsg, err := i.loadForCreator(link, userEmail)
	if hMsg != "" || err != nil {
		return nil, hMsg, err
	}
	if !formRec.IsPersonalDataRequired {
		return nil, "опрос не собирает персональные данные", nil
	}
	result := formapimodels.DemographicView{
		Genders:   CountGenders(records),
		AgeGroups: CountAgeGroups(records, time.Now()),
	}
	return &result, "", nil
}

func (i impl) loadForCreator(link, userEmail string) (formRec *dbmodels.Form, records []dbmodels.AnswerRecord, hMsg string, err error) {
	formRec, err = i.formStore.GetByLink(link)
	if err != nil {
		return nil, nil, "", errors.Wrap(err, "ошибка получения опроса")
	}
	if formRec == nil {
		return nil, nil, "опрос не найден", nil
	}
	if formRec.UserEmail != userEmail {
		return nil, nil, "просматривать статистику может только создатель опроса", nil
	}
	records, err = i.answerStore.GetListByForm(formRec.ID)
	if err != nil {
		return nil, nil, "", errors.Wrap(err, "ошибка получения ответов")
	}
	return formRec, records, "", nil
}

// SummarizeQuestions считает распределение ответов по каждому вопросу.
// Сохраненные индексы за пределами списка вариантов в подсчет не попадают.
func SummarizeQuestions(questions []dbmodels.FormQuestion, records []dbmodels.AnswerRecord) []formapimodels.QuestionSummary {
	result := make([]formapimodels.QuestionSummary, 0, len(questions))
	for _, question := range questions {
		summary := formapimodels.QuestionSummary{
			QuestionID:   question.ID,
			QuestionText: question.QuestionText,
			QuestionType: question.QuestionType,
		}
		if question.QuestionType.IsChoice() {
			counts := make([]int, len(question.PossibleAnswers))
			for _, record := range records {
				for _, answer := range record.Answers.Answers {
					if answer.QuestionID != question.ID {
						continue
					}
					for _, idx := range answer.ChosenAnswerIndexes {
						if idx >= 0 && idx < len(counts) {
							counts[idx]++
						}
					}
				}
			}
			summary.OptionCounts = make([]formapimodels.OptionCount, 0, len(counts))
			for pos, count := range counts {
				summary.OptionCounts = append(summary.OptionCounts, formapimodels.OptionCount{
					Answer: question.PossibleAnswers[pos],
					Count:  count,
				})
			}
		} else {
			for _, record := range records {
				for _, answer := range record.Answers.Answers {
					if answer.QuestionID == question.ID && answer.FreetextAnswer != "" {
						summary.FreetextCount++
					}
				}
			}
		}
		result = append(result, summary)
	}
	return result
}

// CountPerDay - количество ответов по дням заполнения, в хронологическом порядке
func CountPerDay(records []dbmodels.AnswerRecord) []formapimodels.DayCount {
	byDay := map[string]int{}
	for _, record := range records {
		byDay[record.FilledOutAt.Format("2006-01-02")]++
	}
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	result := make([]formapimodels.DayCount, 0, len(days))
	for _, day := range days {
		result = append(result, formapimodels.DayCount{Date: day, Count: byDay[day]})
	}
	return result
}

func CountGenders(records []dbmodels.AnswerRecord) []formapimodels.GenderCount {
	byGender := map[string]int{}
	for _, record := range records {
		if record.Gender == "" {
			continue
		}
		byGender[string(record.Gender)]++
	}
	genders := make([]string, 0, len(byGender))
	for gender := range byGender {
		genders = append(genders, gender)
	}
	sort.Strings(genders)
	result := make([]formapimodels.GenderCount, 0, len(genders))
	for _, gender := range genders {
		result = append(result, formapimodels.GenderCount{Gender: gender, Count: byGender[gender]})
	}
	return result
}

var ageGroups = []struct {
	name string
	min  int
	max  int
}{
	{name: "до 18", min: 0, max: 17},
	{name: "18-25", min: 18, max: 25},
	{name: "26-35", min: 26, max: 35},
	{name: "36-50", min: 36, max: 50},
	{name: "старше 50", min: 51, max: 200},
}

// CountAgeGroups раскладывает респондентов по возрастным группам.
// Записи с нечитаемой датой рождения пропускаются.
func CountAgeGroups(records []dbmodels.AnswerRecord, now time.Time) []formapimodels.AgeGroupCount {
	counts := make([]int, len(ageGroups))
	for _, record := range records {
		if record.Birthdate == "" {
			continue
		}
		birthdate, err := helpers.ParseBirthdate(record.Birthdate)
		if err != nil {
			continue
		}
		age := helpers.YearsBetween(birthdate, now)
		for pos, group := range ageGroups {
			if age >= group.min && age <= group.max {
				counts[pos]++
				break
			}
		}
	}
	result := make([]formapimodels.AgeGroupCount, 0, len(ageGroups))
	for pos, group := range ageGroups {
		result = append(result, formapimodels.AgeGroupCount{Group: group.name, Count: counts[pos]})
	}
	return result
}
