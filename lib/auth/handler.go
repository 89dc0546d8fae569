package auth

import (
	"time"

	"survey-tools-backend/config"
	"survey-tools-backend/db"
	emailverify "survey-tools-backend/lib/email-verify"
	usersstore "survey-tools-backend/lib/users/store"
	authhelpers "survey-tools-backend/lib/utils/auth-helpers"
	authutils "survey-tools-backend/lib/utils/auth-utils"
	"survey-tools-backend/models"
	authapimodels "survey-tools-backend/models/api/auth"
	userapimodels "survey-tools-backend/models/api/user"
	dbmodels "survey-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Register(req authapimodels.RegisterRequest) (hMsg string, err error)
	Login(req authapimodels.LoginRequest) (resp *authapimodels.JWTResponse, hMsg string, err error)
	RefreshToken(req authapimodels.JWTRefreshRequest) (resp *authapimodels.JWTResponse, hMsg string, err error)
	Me(userID string) (*userapimodels.UserView, error)
	VerifyEmail(code string) error
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

func (i impl) Register(req authapimodels.RegisterRequest) (hMsg string, err error) {
	rec := dbmodels.User{
		Email:    req.Email,
		Password: authhelpers.GetMD5Hash(req.Password),
		Role:     models.UserRoleUser,
		// без настроенного отправителя подтверждение почты не требуем
		IsEmailVerified: config.Conf.Smtp.EmailSendVerification == "",
	}
	_, err = i.userStore.Create(rec)
	if err != nil {
		if errors.Is(err, usersstore.ErrAlreadyExists) {
			return err.Error(), nil
		}
		return "", errors.Wrap(err, "ошибка регистрации пользователя")
	}
	if config.Conf.Smtp.EmailSendVerification != "" {
		err = emailverify.Instance.SendVerifyCode(req.Email)
		if err != nil {
			log.
				WithField("email", req.Email).
				WithError(err).
				Error("ошибка отправки письма для подтверждения почты")
		}
	}
	return "", nil
}

func (i impl) Login(req authapimodels.LoginRequest) (resp *authapimodels.JWTResponse, hMsg string, err error) {
	rec, err := i.userStore.FindByEmail(req.Email)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения данных пользователя")
	}
	if rec == nil || rec.Password != authhelpers.GetMD5Hash(req.Password) {
		return nil, "неверная почта или пароль", nil
	}
	if config.Conf.Smtp.EmailSendVerification != "" && !rec.IsEmailVerified {
		return nil, "почта не подтверждена, перейдите по ссылке из письма", nil
	}
	resp, err = i.issueTokens(*rec)
	if err != nil {
		return nil, "", err
	}
	updMap := map[string]interface{}{
		"last_login": time.Now(),
	}
	err = i.userStore.UpdateByEmail(rec.Email, updMap)
	if err != nil {
		log.
			WithField("email", rec.Email).
			WithError(err).
			Error("ошибка обновления даты последнего входа")
	}
	return resp, "", nil
}

func (i impl) RefreshToken(req authapimodels.JWTRefreshRequest) (resp *authapimodels.JWTResponse, hMsg string, err error) {
	userID, err := authutils.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, "refresh токен недействителен", nil
	}
	rec, err := i.userStore.GetByID(userID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения данных пользователя")
	}
	if rec == nil {
		return nil, "пользователь не найден", nil
	}
	resp, err = i.issueTokens(*rec)
	if err != nil {
		return nil, "", err
	}
	return resp, "", nil
}

func (i impl) Me(userID string) (*userapimodels.UserView, error) {
	rec, err := i.userStore.GetByID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения данных пользователя")
	}
	if rec == nil {
		return nil, nil
	}
	view := userapimodels.NewUserView(*rec)
	return &view, nil
}

func (i impl) VerifyEmail(code string) error {
	return emailverify.Instance.VerifyCode(code)
}

func (i impl) issueTokens(rec dbmodels.User) (*authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(rec.ID, rec.Email, rec.Role)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка генерации токена")
	}
	refreshToken, err := authutils.GetRefreshToken(rec.ID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка генерации refresh токена")
	}
	return &authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
		Role:         string(rec.Role),
		Email:        rec.Email,
	}, nil
}
