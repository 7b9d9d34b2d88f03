package newsdesk_test

import (
	"testing"

	"github.com/fwojciec/newsdesk"
	"github.com/stretchr/testify/assert"
)

func TestNoisePatterns_IsNoise(t *testing.T) {
	t.Parallel()

	t.Run("blank lines are noise", func(t *testing.T) {
		t.Parallel()

		noise := newsdesk.DefaultNoisePatterns()

		assert.True(t, noise.IsNoise(""))
		assert.True(t, noise.IsNoise("   \t"))
	})

	t.Run("matches patterns case-insensitively", func(t *testing.T) {
		t.Parallel()

		noise := newsdesk.DefaultNoisePatterns()

		assert.True(t, noise.IsNoise("Sign in to view more content"))
		assert.True(t, noise.IsNoise("INICIAR SESIÓN"))
		assert.True(t, noise.IsNoise("Agree & Join LinkedIn"))
		assert.True(t, noise.IsNoise("  Ver más  "))
	})

	t.Run("keeps ordinary content", func(t *testing.T) {
		t.Parallel()

		noise := newsdesk.DefaultNoisePatterns()

		assert.False(t, noise.IsNoise("We delivered the bridge inspection ahead of schedule."))
		assert.False(t, noise.IsNoise("Hello world."))
	})

	t.Run("zero value only rejects blank lines", func(t *testing.T) {
		t.Parallel()

		var noise newsdesk.NoisePatterns

		assert.True(t, noise.IsNoise(""))
		assert.False(t, noise.IsNoise("sign in"))
	})
}

func TestNoisePatterns_With(t *testing.T) {
	t.Parallel()

	t.Run("returns an extended copy", func(t *testing.T) {
		t.Parallel()

		base := newsdesk.NewNoisePatterns("alpha")
		extended := base.With("Beta", "  ")

		assert.Equal(t, []string{"alpha"}, base.Patterns())
		assert.Equal(t, []string{"alpha", "beta"}, extended.Patterns())
		assert.False(t, base.IsNoise("beta release"))
		assert.True(t, extended.IsNoise("beta release"))
	})

	t.Run("patterns slice cannot mutate the set", func(t *testing.T) {
		t.Parallel()

		noise := newsdesk.NewNoisePatterns("alpha")
		patterns := noise.Patterns()
		patterns[0] = "omega"

		assert.True(t, noise.IsNoise("alpha"))
		assert.False(t, noise.IsNoise("omega"))
	})
}
