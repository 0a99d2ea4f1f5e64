package reporting

import "github.com/shopspring/decimal"

// NormalizeAmount applies the sign convention: expenses are stored as
// negative magnitudes, income as positive ones.
func NormalizeAmount(t Type, magnitude decimal.Decimal) decimal.Decimal {
	if t == TypeExpense {
		return magnitude.Abs().Neg()
	}
	return magnitude.Abs()
}

// AmountChange is a partial update to a transaction's type and amount.
type AmountChange struct {
	Type      *Type
	Magnitude *decimal.Decimal
}

// ResolveAmount returns the effective type and signed amount after applying
// change to a stored transaction. The sign is always re-derived from the
// effective type, and the stored magnitude is kept when no new one is given.
func ResolveAmount(currentType Type, currentAmount decimal.Decimal, change AmountChange) (Type, decimal.Decimal) {
	effectiveType := currentType
	if change.Type != nil {
		effectiveType = *change.Type
	}

	magnitude := currentAmount.Abs()
	if change.Magnitude != nil {
		magnitude = *change.Magnitude
	}

	return effectiveType, NormalizeAmount(effectiveType, magnitude)
}

// SignAgrees reports whether amount carries the sign its type requires.
func SignAgrees(t Type, amount decimal.Decimal) bool {
	switch t {
	case TypeIncome:
		return amount.Sign() >= 0
	case TypeExpense:
		return amount.Sign() <= 0
	default:
		return false
	}
}
