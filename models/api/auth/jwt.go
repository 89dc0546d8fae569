package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type JWTResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
	Email        string `json:"email"`
}

type JWTRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r JWTRefreshRequest) Validate() error {
	if len(strings.TrimSpace(r.RefreshToken)) == 0 {
		return errors.New("refresh token не должен быть пустым")
	}
	return nil
}
