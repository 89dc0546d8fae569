package models

type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	UserRoleUser:  "Пользователь",
	UserRoleAdmin: "Администратор",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
