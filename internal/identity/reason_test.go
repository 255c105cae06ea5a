package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
)

func TestReasons_CarryMessages(t *testing.T) {
	seen := map[string]Reason{}
	for _, r := range Reasons() {
		t.Run(r.String(), func(t *testing.T) {
			assert.False(t, r.OK())
			assert.NotEmpty(t, r.String())
			assert.NotEmpty(t, r.Message())

			err := r.Err()
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.EqualError(t, err, r.Message())
		})
		if prev, dup := seen[r.Message()]; dup {
			t.Errorf("%s and %s share message %q", prev, r, r.Message())
		}
		seen[r.Message()] = r
	}
	assert.Len(t, Reasons(), len(reasonMessages))
}

func TestReasonNone(t *testing.T) {
	assert.True(t, ReasonNone.OK())
	assert.Empty(t, ReasonNone.Message())
	assert.NoError(t, ReasonNone.Err())
	assert.NotContains(t, Reasons(), ReasonNone)
}
