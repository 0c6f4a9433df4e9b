package model

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DecimalFromUint256 converts an unsigned chain quantity into a NUMERIC column value.
func DecimalFromUint256(v *uint256.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v.ToBig(), 0)
}

// NegDecimalFromUint256 returns -v, used for debit ledger entries.
func NegDecimalFromUint256(v *uint256.Int) decimal.Decimal {
	return DecimalFromUint256(v).Neg()
}

// Uint256FromDecimal converts a stored non-negative integral amount back into chain arithmetic.
func Uint256FromDecimal(d decimal.Decimal) (*uint256.Int, error) {
	if d.IsNegative() {
		return nil, errors.Errorf("negative amount %s", d.String())
	}
	if !d.Equal(d.Truncate(0)) {
		return nil, errors.Errorf("fractional amount %s", d.String())
	}
	v, overflow := uint256.FromBig(d.BigInt())
	if overflow {
		return nil, errors.Errorf("amount %s overflows 256 bits", d.String())
	}
	return v, nil
}
