package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("route not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("task not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type coordinates struct {
		raw   string
		guard guard.ConstructorGuard
	}
	errNotConstructed := errors.New("coordinates must be created via newCoordinates")

	newCoordinates := func(raw string) (coordinates, error) {
		if raw == "" {
			return coordinates{}, errors.New("coordinates are required")
		}
		return coordinates{raw: raw, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_validates", func(t *testing.T) {
		c, err := newCoordinates("46.18,21.31")

		require.NoError(t, err)
		require.NoError(t, c.guard.Validate(errNotConstructed))
		assert.Equal(t, "46.18,21.31", c.raw)
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var c coordinates

		require.ErrorIs(t, c.guard.Validate(errNotConstructed), errNotConstructed)
	})

	t.Run("constructor_rejects_empty_input", func(t *testing.T) {
		_, err := newCoordinates("")

		require.Error(t, err)
	})
}
