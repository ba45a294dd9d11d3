package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Wallet is the virtual wallet of a user. The balance holds the funds that
// are not committed to any goal. It is embedded into the User and never
// persisted on its own.
//
// The wallet is only ever mutated by the ledger engine, paired with an
// opposite goal mutation in the same database transaction.
type Wallet struct {
	Balance        decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8)" example:"271.74"`        // Funds available for contributions
	TotalDeposited decimal.Decimal `json:"totalDeposited" gorm:"type:DECIMAL(20,8)" example:"1500"`   // All-time sum of external deposits
	TotalWithdrawn decimal.Decimal `json:"totalWithdrawn" gorm:"type:DECIMAL(20,8)" example:"228.26"` // All-time sum of external withdrawals
}

// Debit removes amount from the wallet balance.
func (w *Wallet) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if amount.GreaterThan(w.Balance) {
		return fmt.Errorf("%w. Available: %s", ErrInsufficientWalletFunds, w.Balance)
	}

	w.Balance = w.Balance.Sub(amount)
	return nil
}

// Credit adds amount to the wallet balance.
func (w *Wallet) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	w.Balance = w.Balance.Add(amount)
	return nil
}
