package types

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale число знаков после запятой у денежных колонок NUMERIC(12,2)
const MoneyScale = 2

// ErrMoneyScale сумма содержит доли меньше цента
var ErrMoneyScale = errors.New("amount has more than two decimal places")

// Money денежная сумма для JSON: число с двумя знаками после запятой.
// При разборе принимает как число, так и строку
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// FitsMoneyScale сохранится ли сумма в БД без округления
func FitsMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.StringFixed(MoneyScale)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		m.Decimal = decimal.Zero
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", string(data), err)
	}
	if !FitsMoneyScale(d) {
		return fmt.Errorf("invalid amount %q: %w", string(data), ErrMoneyScale)
	}
	m.Decimal = d
	return nil
}
