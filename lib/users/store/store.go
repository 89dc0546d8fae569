package usersstore

import (
	dbmodels "survey-tools-backend/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrAlreadyExists = errors.New("пользователь с такой почтой уже зарегистрирован")

type Provider interface {
	Create(rec dbmodels.User) (string, error)
	GetByID(id string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	GetList() (list []dbmodels.User, err error)
	UpdateByEmail(email string, updMap map[string]interface{}) error
	DeleteByEmail(email string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return "", ErrAlreadyExists
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
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

func (i impl) FindByEmail(email string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("email = ?", email).
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

func (i impl) GetList() (list []dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Order("created_at asc").
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

func (i impl) UpdateByEmail(email string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.User{}).
		Where("email = ?", email).
		Updates(updMap).
		Error
}

func (i impl) DeleteByEmail(email string) error {
	return i.db.
		Where("email = ?", email).
		Delete(&dbmodels.User{}).
		Error
}
