package authutils

import (
	"survey-tools-backend/config"
	"survey-tools-backend/models"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

func GetToken(userID, email string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  string(role),
		"exp":   time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetRefreshToken(userID string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTRefreshExpireInSec)).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

// ParseRefreshToken возвращает идентификатор пользователя из refresh токена
func ParseRefreshToken(tokenString string) (userID string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("неожиданный метод подписи токена: %v", token.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("некорректный refresh токен")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("некорректный refresh токен")
	}
	return sub, nil
}
