package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), USD)
		require.NoError(t, err)
		assert.Equal(t, USD, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	m, err := NewMoneyFromFloat(99.99, USD)
	require.NoError(t, err)
	assert.Equal(t, USD, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(99.99)))
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45", JPY)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", JPY)
		assert.Error(t, err)
	})
}

func TestNewMoneyJPY(t *testing.T) {
	m := NewMoneyJPY(decimal.NewFromInt(3000))
	assert.Equal(t, JPY, m.Currency())
	assert.Equal(t, int64(3000), m.Amount().IntPart())
}

func TestNewMoneyUSD(t *testing.T) {
	m := NewMoneyUSD(decimal.NewFromFloat(49.99))
	assert.Equal(t, USD, m.Currency())
}

func TestZero(t *testing.T) {
	m := Zero(USD)
	assert.True(t, m.IsZero())
	assert.Equal(t, USD, m.Currency())
}

func TestMoney_Add(t *testing.T) {
	t.Run("same currency", func(t *testing.T) {
		a := NewMoneyUSD(decimal.NewFromInt(10))
		b := NewMoneyUSD(decimal.NewFromInt(5))
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromInt(15)))
	})

	t.Run("different currencies", func(t *testing.T) {
		a := NewMoneyUSD(decimal.NewFromInt(10))
		b := NewMoneyJPY(decimal.NewFromInt(5))
		_, err := a.Add(b)
		assert.Error(t, err)
	})
}

func TestMoney_Subtract(t *testing.T) {
	a := NewMoneyUSD(decimal.NewFromInt(10))
	b := NewMoneyUSD(decimal.NewFromInt(15))
	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.IsNegative())
	assert.True(t, diff.Amount().Equal(decimal.NewFromInt(-5)))
}

func TestMoney_Multiply(t *testing.T) {
	m := NewMoneyUSD(decimal.NewFromInt(50))
	result := m.Multiply(decimal.NewFromFloat(0.1275))
	assert.True(t, result.Amount().Equal(decimal.NewFromFloat(6.375)))
}

func TestMoney_Divide(t *testing.T) {
	t.Run("valid divisor", func(t *testing.T) {
		m := NewMoneyJPY(decimal.NewFromInt(3000))
		result, err := m.Divide(decimal.NewFromInt(150))
		require.NoError(t, err)
		assert.True(t, result.Amount().Equal(decimal.NewFromInt(20)))
	})

	t.Run("zero divisor", func(t *testing.T) {
		m := NewMoneyJPY(decimal.NewFromInt(3000))
		_, err := m.Divide(decimal.Zero)
		assert.Error(t, err)
	})
}

func TestMoney_Round(t *testing.T) {
	m := NewMoneyUSD(decimal.NewFromFloat(6.3755))
	assert.Equal(t, "6.38", m.Round(2).Amount().String())
}

func TestMoney_Comparisons(t *testing.T) {
	a := NewMoneyUSD(decimal.NewFromInt(10))
	b := NewMoneyUSD(decimal.NewFromInt(20))

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	assert.True(t, a.Equals(NewMoneyUSD(decimal.NewFromInt(10))))
	assert.False(t, a.Equals(b))

	_, err = a.LessThan(NewMoneyJPY(decimal.NewFromInt(10)))
	assert.Error(t, err)
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "1400 JPY", NewMoneyJPY(decimal.NewFromInt(1400)).String())
	assert.Equal(t, "6.38 USD", NewMoneyUSD(decimal.NewFromFloat(6.375)).String())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := NewMoneyUSD(decimal.NewFromFloat(12.34))
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"12.34","currency":"USD"}`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}
