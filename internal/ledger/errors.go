package ledger

import "errors"

// Guard violations. All of these are caller-correctable business rule
// errors, none of them is retried by the engine.
var (
	ErrGoalAlreadyCompleted = errors.New("the goal is already completed")
	ErrGoalCancelled        = errors.New("the goal has been cancelled")
	ErrWithdrawalLocked     = errors.New("withdrawals are locked for this goal")
	ErrSystemGoalImmutable  = errors.New("system goals cannot be changed or deleted")
	ErrInvalidTransition    = errors.New("this status change is not allowed for the goal")
	ErrTargetDateNotFuture  = errors.New("the target date must be in the future")
	ErrTargetBelowCurrent   = errors.New("the target amount cannot be lower than the amount already saved")
)
