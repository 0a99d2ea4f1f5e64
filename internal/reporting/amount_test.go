package reporting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name      string
		typ       Type
		magnitude string
		expected  string
	}{
		{"income positive", TypeIncome, "12.50", "12.50"},
		{"income given negative", TypeIncome, "-12.50", "12.50"},
		{"expense positive", TypeExpense, "40", "-40"},
		{"expense already negative", TypeExpense, "-40", "-40"},
		{"zero expense", TypeExpense, "0", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeAmount(tc.typ, decimal.RequireFromString(tc.magnitude))
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(got), "got %s", got)
			assert.True(t, SignAgrees(tc.typ, got))
		})
	}
}

func TestResolveAmount(t *testing.T) {
	income := TypeIncome
	expense := TypeExpense
	fifty := decimal.RequireFromString("50")

	tests := []struct {
		name          string
		currentType   Type
		currentAmount string
		change        AmountChange
		expectedType  Type
		expected      string
	}{
		{
			name:          "type flip reuses stored magnitude",
			currentType:   TypeExpense,
			currentAmount: "-30",
			change:        AmountChange{Type: &income},
			expectedType:  TypeIncome,
			expected:      "30",
		},
		{
			name:          "new magnitude takes existing type",
			currentType:   TypeExpense,
			currentAmount: "-30",
			change:        AmountChange{Magnitude: &fifty},
			expectedType:  TypeExpense,
			expected:      "-50",
		},
		{
			name:          "both change",
			currentType:   TypeIncome,
			currentAmount: "10",
			change:        AmountChange{Type: &expense, Magnitude: &fifty},
			expectedType:  TypeExpense,
			expected:      "-50",
		},
		{
			name:          "nothing changes",
			currentType:   TypeIncome,
			currentAmount: "10",
			expectedType:  TypeIncome,
			expected:      "10",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			typ, amount := ResolveAmount(tc.currentType, decimal.RequireFromString(tc.currentAmount), tc.change)
			assert.Equal(t, tc.expectedType, typ)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(amount), "got %s", amount)
			assert.True(t, SignAgrees(typ, amount))
		})
	}
}

// Any sequence of partial updates keeps the stored sign consistent with the type.
func TestResolveAmount_SignInvariantAcrossUpdates(t *testing.T) {
	income := TypeIncome
	expense := TypeExpense
	magnitudes := []decimal.Decimal{
		decimal.RequireFromString("5"),
		decimal.RequireFromString("-7.25"),
		decimal.Zero,
	}
	changes := []AmountChange{
		{Type: &income},
		{Type: &expense},
		{Magnitude: &magnitudes[0]},
		{Magnitude: &magnitudes[1]},
		{Type: &income, Magnitude: &magnitudes[1]},
		{Type: &expense, Magnitude: &magnitudes[2]},
		{},
	}

	typ := TypeExpense
	amount := NormalizeAmount(typ, decimal.RequireFromString("3"))
	for round := 0; round < 3; round++ {
		for i, change := range changes {
			typ, amount = ResolveAmount(typ, amount, change)
			assert.Truef(t, SignAgrees(typ, amount), "round %d change %d: %s %s", round, i, typ, amount)
		}
	}
}

func TestSignAgrees_UnknownType(t *testing.T) {
	assert.False(t, SignAgrees(Type("transfer"), decimal.Zero))
}
