package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
)

func TestEvaluatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		score    int
		level    Level
		criteria Criteria
	}{
		{"all criteria", "P@ssw0rd123", 100, LevelStrong, Criteria{true, true, true, true, true}},
		{"no special", "Passw0rd123", 80, LevelStrong, Criteria{true, true, true, true, false}},
		{"lower and digits", "password123", 60, LevelMedium, Criteria{true, false, true, true, false}},
		{"short lower", "abc", 20, LevelWeak, Criteria{Lowercase: true}},
		{"only specials", "!!", 20, LevelWeak, Criteria{Special: true}},
		{"accented letters are not ascii letters", "ÁÉÍÓÚáéíó", 20, LevelWeak, Criteria{Length: true}},
		{"length counts characters not bytes", "ñññññññ", 0, LevelWeak, Criteria{}},
		{"eight spaces only meet length", "        ", 20, LevelWeak, Criteria{Length: true}},
		{"short whitespace scores nothing", " \t\n", 0, LevelWeak, Criteria{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluatePassword(tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.level, got.Level)
			assert.Equal(t, tt.criteria, got.Criteria)
		})
	}
}

func TestEvaluatePassword_RejectsEmpty(t *testing.T) {
	_, err := EvaluatePassword("")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
