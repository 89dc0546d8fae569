package authapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if len(r.Password) < 6 {
		return errors.New("пароль должен содержать не менее 6 символов")
	}
	return nil
}
