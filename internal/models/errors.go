package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Amount guards. Checked before any mutation, both for wallet
	// and goal fund movements.
	ErrAmountNotPositive = errors.New("amounts must be larger than zero")

	// Capacity guards. Both are wrapped with the available amount
	// when returned so that callers can correct and resubmit.
	ErrInsufficientWalletFunds = errors.New("insufficient funds in the wallet")
	ErrInsufficientGoalFunds   = errors.New("insufficient funds in the goal")

	ErrGoalTargetNotPositive = errors.New("goal target amounts must be larger than zero")
	ErrNoWallet              = errors.New("this user does not have a wallet")
	ErrUserEmailNotUnique    = errors.New("the email address is already in use by another user")
)
