// Package security scores password strength.
package security

import (
	"strings"
	"unicode/utf8"

	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
)

// Level buckets a password score.
type Level string

const (
	LevelWeak   Level = "weak"
	LevelMedium Level = "medium"
	LevelStrong Level = "strong"
)

const (
	pointsPerCriterion = 20
	minLength          = 8

	strongThreshold = 80
	mediumThreshold = 60

	specialChars = `!@#$%^&*(),.?":{}|<>`
)

// Criteria records which strength rules a password satisfied.
type Criteria struct {
	Length    bool `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Number    bool `json:"number"`
	Special   bool `json:"special"`
}

// Strength is the scored evaluation of a password.
type Strength struct {
	Score    int
	Level    Level
	Criteria Criteria
}

// EvaluatePassword awards 20 points for each satisfied criterion: at least 8
// characters, an ASCII upper-case letter, an ASCII lower-case letter, an ASCII
// digit and one of !@#$%^&*(),.?":{}|<>. Only the empty string is rejected;
// whitespace is scored like any other character.
func EvaluatePassword(password string) (Strength, error) {
	if password == "" {
		return Strength{}, dErrors.New(dErrors.CodeValidation, "La contraseña no puede estar vacía")
	}

	var c Criteria
	c.Length = utf8.RuneCountInString(password) >= minLength
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			c.Uppercase = true
		case r >= 'a' && r <= 'z':
			c.Lowercase = true
		case r >= '0' && r <= '9':
			c.Number = true
		case strings.ContainsRune(specialChars, r):
			c.Special = true
		}
	}

	score := 0
	for _, ok := range []bool{c.Length, c.Uppercase, c.Lowercase, c.Number, c.Special} {
		if ok {
			score += pointsPerCriterion
		}
	}

	return Strength{Score: score, Level: levelFor(score), Criteria: c}, nil
}

func levelFor(score int) Level {
	switch {
	case score >= strongThreshold:
		return LevelStrong
	case score >= mediumThreshold:
		return LevelMedium
	default:
		return LevelWeak
	}
}
