package models

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}
