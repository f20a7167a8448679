package kernel_test

import (
	"testing"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money with non-negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(100000)
		require.NoError(t, err)
		assert.Equal(t, int64(100000), m.Amount())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var m kernel.Money
		assert.True(t, m.IsZero())
		assert.Equal(t, int64(0), m.Amount())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add sums amounts", func(t *testing.T) {
		sum := kernel.MustMoney(100000).Add(kernel.MustMoney(150000))
		assert.Equal(t, int64(250000), sum.Amount())
	})

	t.Run("SubFloorZero subtracts", func(t *testing.T) {
		got := kernel.MustMoney(250000).SubFloorZero(kernel.MustMoney(20000))
		assert.Equal(t, int64(230000), got.Amount())
	})

	t.Run("SubFloorZero floors at zero", func(t *testing.T) {
		got := kernel.MustMoney(100).SubFloorZero(kernel.MustMoney(500))
		assert.True(t, got.IsZero())
	})

	t.Run("comparisons", func(t *testing.T) {
		assert.True(t, kernel.MustMoney(100).IsEqual(kernel.MustMoney(100)))
		assert.True(t, kernel.MustMoney(99).LessThan(kernel.MustMoney(100)))
		assert.False(t, kernel.MustMoney(100).LessThan(kernel.MustMoney(100)))
	})
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "1000.00", kernel.MustMoney(100000).String())
	assert.Equal(t, "0.05", kernel.MustMoney(5).String())
	assert.Equal(t, "12.50", kernel.MustMoney(1250).String())
}

func TestMustMoney_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { kernel.MustMoney(-5) })
}
