package userapimodels

import (
	dbmodels "survey-tools-backend/models/db"
)

type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewUserView(rec dbmodels.User) UserView {
	return UserView{
		ID:    rec.ID,
		Email: rec.Email,
		Role:  string(rec.Role),
	}
}

type UserListResponse struct {
	Users []UserView `json:"users"`
}
