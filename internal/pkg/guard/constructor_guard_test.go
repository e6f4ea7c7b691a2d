package guard_test

import (
	"errors"
	"testing"

	"carrierlabel/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("label not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("package not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuardEmbeddedInValueObject(t *testing.T) {
	errAddressNotConstructed := errors.New("Address must be created via NewAddress")

	type Address struct {
		street string
		guard  guard.ConstructorGuard
	}

	newAddress := func(street string) (Address, error) {
		if street == "" {
			return Address{}, errors.New("street is required")
		}
		return Address{street: street, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		addr, err := newAddress("Na Příkopě 1")

		require.NoError(t, err)
		require.NoError(t, addr.guard.Validate(errAddressNotConstructed))
		assert.Equal(t, "Na Příkopě 1", addr.street)
	})

	t.Run("struct_literal_fails", func(t *testing.T) {
		addr := Address{street: "Na Příkopě 1"}

		assert.Equal(t, errAddressNotConstructed, addr.guard.Validate(errAddressNotConstructed))
	})

	t.Run("constructor_rules_still_apply", func(t *testing.T) {
		_, err := newAddress("")

		require.EqualError(t, err, "street is required")
	})
}
