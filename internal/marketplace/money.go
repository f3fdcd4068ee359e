package marketplace

import "math"

// AmountTolerance — допустимое расхождение суммы платежа с ценой заявки.
const AmountTolerance = 0.01

// AmountsMatch сравнивает суммы с учётом AmountTolerance.
func AmountsMatch(amount, cost float64) bool {
	// небольшой запас на двоичное представление, иначе 100.01 против 100 не проходит
	return math.Abs(amount-cost) <= AmountTolerance+1e-9
}

// CheckPrice отклоняет отрицательные и нечисловые (NaN, ±Inf) суммы.
func CheckPrice(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Invalid(field, "must be a finite number")
	}
	if v < 0 {
		return Invalid(field, "must not be negative")
	}
	return nil
}

// RoundCents округляет до копеек (numeric(10,2)).
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
