package users

import (
	"survey-tools-backend/db"
	usersstore "survey-tools-backend/lib/users/store"
	"survey-tools-backend/models"
	userapimodels "survey-tools-backend/models/api/user"

	"github.com/pkg/errors"
)

type Provider interface {
	GetList() ([]userapimodels.UserView, error)
	Promote(email string) (hMsg string, err error)
	Delete(email, requesterEmail string) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore usersstore.Provider
}

func (i impl) GetList() ([]userapimodels.UserView, error) {
	list, err := i.userStore.GetList()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка пользователей")
	}
	result := make([]userapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, userapimodels.NewUserView(rec))
	}
	return result, nil
}

func (i impl) Promote(email string) (hMsg string, err error) {
	rec, err := i.userStore.FindByEmail(email)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения данных пользователя")
	}
	if rec == nil {
		return "пользователь не найден", nil
	}
	if rec.Role.IsAdmin() {
		return "пользователь уже является администратором", nil
	}
	updMap := map[string]interface{}{
		"role": models.UserRoleAdmin,
	}
	err = i.userStore.UpdateByEmail(email, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления роли пользователя")
	}
	return "", nil
}

func (i impl) Delete(email, requesterEmail string) (hMsg string, err error) {
	if email == requesterEmail {
		return "нельзя удалить собственную учетную запись", nil
	}
	rec, err := i.userStore.FindByEmail(email)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения данных пользователя")
	}
	if rec == nil {
		return "пользователь не найден", nil
	}
	err = i.userStore.DeleteByEmail(email)
	if err != nil {
		return "", errors.Wrap(err, "ошибка удаления пользователя")
	}
	return "", nil
}
