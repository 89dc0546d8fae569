package answerstore

import (
	dbmodels "survey-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.AnswerRecord) (string, error)
	GetListByForm(formID string) (list []dbmodels.AnswerRecord, err error)
	GetListByRespondent(respondentEmail string) (list []dbmodels.AnswerRecord, err error)
	CountByForm(formID string) (int64, error)
	ExistByFormAndRespondent(formID, respondentEmail string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AnswerRecord) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetListByForm(formID string) (list []dbmodels.AnswerRecord, err error) {
	err = i.db.Model(dbmodels.AnswerRecord{}).
		Where("form_id = ?", formID).
		Order("filled_out_at asc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) GetListByRespondent(respondentEmail string) (list []dbmodels.AnswerRecord, err error) {
	err = i.db.Model(dbmodels.AnswerRecord{}).
		Where("respondent_email = ?", respondentEmail).
		Order("filled_out_at desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) CountByForm(formID string) (int64, error) {
	var count int64
	err := i.db.Model(dbmodels.AnswerRecord{}).
		Where("form_id = ?", formID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ExistByFormAndRespondent(formID, respondentEmail string) (bool, error) {
	err := i.db.
		Where("form_id = ? AND respondent_email = ?", formID, respondentEmail).
		First(&dbmodels.AnswerRecord{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
