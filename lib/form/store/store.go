package formstore

import (
	dbmodels "survey-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Form) (string, error)
	GetByID(id string) (rec *dbmodels.Form, err error)
	GetByLink(link string) (rec *dbmodels.Form, err error)
	GetListByCreator(userEmail string) (list []dbmodels.Form, err error)
	UpdateClosingTime(link string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Form) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.Link, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Form, err error) {
	err = i.db.Model(dbmodels.Form{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetByLink(link string) (rec *dbmodels.Form, err error) {
	err = i.db.Model(dbmodels.Form{}).
		Where("link = ?", link).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetListByCreator(userEmail string) (list []dbmodels.Form, err error) {
	err = i.db.Model(dbmodels.Form{}).
		Where("user_email = ?", userEmail).
		Order("created_at desc").
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

func (i impl) UpdateClosingTime(link string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Form{}).
		Where("link = ?", link).
		Updates(updMap).
		Error
}
