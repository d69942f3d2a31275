package payment

import (
	"fmt"
	"math/big"

	"storefront/internal/shoperrors"

	"github.com/shopspring/decimal"
)

// ToMinorUnits converts a wallet amount to the asset's integer minor units.
// Amounts that do not convert exactly are rejected.
func ToMinorUnits(amount decimal.Decimal, decimals int32) (uint64, error) {
	if !amount.IsPositive() {
		return 0, fmt.Errorf("payment: %w - amount %s must be positive", shoperrors.ErrInvalidAmount, amount)
	}
	scaled := amount.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, fmt.Errorf("payment: %w - amount %s has more than %d decimals", shoperrors.ErrInvalidAmount, amount, decimals)
	}
	minor := scaled.BigInt()
	if !minor.IsUint64() {
		return 0, fmt.Errorf("payment: %w - amount %s out of range", shoperrors.ErrInvalidAmount, amount)
	}
	return minor.Uint64(), nil
}

// FromMinorUnits converts integer minor units back to a wallet amount
func FromMinorUnits(minor uint64, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(minor), -decimals)
}
