package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(10.50))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "10.5", m.String())
	})

	t.Run("should create zero money", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse valid decimal string", func(t *testing.T) {
		m, err := kernel.MoneyFromString("5.50")

		require.NoError(t, err)
		assert.Equal(t, "5.5", m.String())
	})

	t.Run("should fail on malformed string", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten dollars")

		require.Error(t, err)
	})

	t.Run("should fail on negative string", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-3.25")

		require.Error(t, err)
	})
}

func TestZeroMoney(t *testing.T) {
	t.Run("should be valid and equal to zero", func(t *testing.T) {
		m := kernel.ZeroMoney()

		require.NoError(t, m.Validate())
		assert.True(t, m.IsZero())
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should fail for zero value instance", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "money must be created")
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add amounts exactly", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("20.00")
		b, _ := kernel.MoneyFromString("5.50")

		sum := a.Add(b)

		expected, _ := kernel.MoneyFromString("25.50")
		assert.True(t, sum.IsEqual(expected))
	})

	t.Run("should multiply by quantity", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("10.00")

		subtotal := price.MulInt(2)

		expected, _ := kernel.MoneyFromString("20.00")
		assert.True(t, subtotal.IsEqual(expected))
	})

	t.Run("should multiply by zero quantity", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("9.99")

		assert.True(t, price.MulInt(0).IsZero())
	})

	t.Run("should compare amounts ignoring trailing zeros", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("10.5")
		b, _ := kernel.MoneyFromString("10.50")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should report greater than", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("10.01")
		b, _ := kernel.MoneyFromString("10.00")

		assert.True(t, a.GreaterThan(b))
		assert.False(t, b.GreaterThan(a))
	})
}
