//go:build unit

package commands_test

import (
	"testing"
	"time"

	"probook/internal/usecase/commands"
	"probook/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestRequestFingerprint(t *testing.T) {
	base := builder.NewBookingBuilder().BuildParams()

	t.Run("deterministic for identical requests", func(t *testing.T) {
		assert.Equal(t, commands.RequestFingerprint(base), commands.RequestFingerprint(base))
	})

	t.Run("timezone representation does not matter", func(t *testing.T) {
		shifted := base
		shifted.StartTime = base.StartTime.In(time.FixedZone("JST", 9*3600))

		assert.Equal(t, commands.RequestFingerprint(base), commands.RequestFingerprint(shifted))
	})

	t.Run("nil and empty notes hash identically", func(t *testing.T) {
		withNil := base
		withNil.Notes = nil

		empty := ""
		withEmpty := base
		withEmpty.Notes = &empty

		assert.Equal(t, commands.RequestFingerprint(withNil), commands.RequestFingerprint(withEmpty))
	})

	t.Run("changed fields change the fingerprint", func(t *testing.T) {
		longer := base
		longer.DurationHours = base.DurationHours + 0.5
		assert.NotEqual(t, commands.RequestFingerprint(base), commands.RequestFingerprint(longer))

		later := base
		later.StartTime = base.StartTime.Add(time.Hour)
		assert.NotEqual(t, commands.RequestFingerprint(base), commands.RequestFingerprint(later))

		note := "please hurry"
		annotated := base
		annotated.Notes = &note
		assert.NotEqual(t, commands.RequestFingerprint(base), commands.RequestFingerprint(annotated))
	})
}
