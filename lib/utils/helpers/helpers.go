package helpers

import (
	"time"
)

const birthdateLayout = "2006-01-02"

// ParseBirthdate разбирает дату рождения в формате ГГГГ-ММ-ДД
func ParseBirthdate(value string) (time.Time, error) {
	return time.Parse(birthdateLayout, value)
}

// YearsBetween - полных лет между двумя датами
func YearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() ||
		(to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
