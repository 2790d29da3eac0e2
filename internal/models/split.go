package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSplitCount = errors.New("split count must be at least 1")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

// SplitAmount divides total into count parts that sum exactly to total.
// The first count-1 parts are total/count rounded half away from zero to two
// decimal places; the last part absorbs the rounding remainder, so
// 100.00 / 3 yields 33.33, 33.33, 33.34.
func SplitAmount(total decimal.Decimal, count int) ([]decimal.Decimal, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSplitCount, count)
	}
	if !total.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidAmount, total)
	}

	per := total.Div(decimal.NewFromInt(int64(count))).Round(2)
	parts := make([]decimal.Decimal, count)
	for i := 0; i < count-1; i++ {
		parts[i] = per
	}
	parts[count-1] = total.Sub(per.Mul(decimal.NewFromInt(int64(count - 1))))
	return parts, nil
}
