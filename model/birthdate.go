package model

import "time"

type DateLayout int

const (
	LayoutUnrecognized DateLayout = iota
	LayoutYearFirst               //YYYY-MM-DD
	LayoutDayFirst                //DD-MM-YYYY
)

// Birthdate is the parsed form of an alumni birthdate string.
// Layout is LayoutUnrecognized when the input matched neither encoding.
type Birthdate struct {
	Layout DateLayout
	Year   int
	Month  int
	Day    int
}

// ParseBirthdate detects the encoding positionally (hyphen at index 4 means
// year-first, at index 2 means day-first) and validates the fields as a real
// calendar date. Anything else yields LayoutUnrecognized, never a wrong match.
func ParseBirthdate(s string) Birthdate {
	if len(s) != 10 {
		return Birthdate{}
	}

	switch {
	case s[4] == '-':
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return Birthdate{}
		}
		return Birthdate{Layout: LayoutYearFirst, Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
	case s[2] == '-':
		t, err := time.Parse("02-01-2006", s)
		if err != nil {
			return Birthdate{}
		}
		return Birthdate{Layout: LayoutDayFirst, Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
	}

	return Birthdate{}
}

// MatchesMonthDay reports whether the birthdate falls on the same month and
// day as t. Unrecognized birthdates match nothing.
func (b Birthdate) MatchesMonthDay(t time.Time) bool {
	if b.Layout == LayoutUnrecognized {
		return false
	}
	return b.Month == int(t.Month()) && b.Day == t.Day()
}
