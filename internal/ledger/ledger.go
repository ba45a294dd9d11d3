// Package ledger moves funds between a user's wallet and their goals.
//
// Every operation is one atomic unit: the wallet and goal mutation commit
// together or not at all. Funds are only ever moved, never created or
// destroyed, so for every user the wallet balance plus the sum of all
// non-cancelled goal amounts always equals total deposits minus total
// withdrawals.
package ledger

import (
	"fmt"
	"time"

	"github.com/goalvault/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Engine validates and applies all goal and wallet mutations on the
// database configured in the models package.
type Engine struct {
	now   func() time.Time
	locks *ownerLocks
}

// New returns an Engine. The clock is injectable so tests can fix time,
// a nil now defaults to time.Now in UTC.
func New(now func() time.Time) *Engine {
	if now == nil {
		now = func() time.Time {
			return time.Now().In(time.UTC)
		}
	}

	return &Engine{
		now:   now,
		locks: newOwnerLocks(),
	}
}

// CreateCommand holds the caller-editable fields for a new goal.
type CreateCommand struct {
	Name               string
	Note               string
	Type               models.GoalType
	Priority           models.GoalPriority
	TargetAmount       decimal.Decimal
	TargetDate         time.Time
	InitialAmount      decimal.Decimal
	IsWithdrawalLocked bool
	AutoSave           models.AutoSaveConfig
}

// UpdateCommand holds the fields of a goal that can be patched. Fund
// amounts are not among them, those only change through Contribute,
// Withdraw and Delete.
type UpdateCommand struct {
	Name               *string
	Note               *string
	Priority           *models.GoalPriority
	TargetAmount       *decimal.Decimal
	TargetDate         *time.Time
	IsWithdrawalLocked *bool
	AutoSave           *models.AutoSaveConfig
}

// Create adds a new goal for the owner. An initial amount, if given, is
// debited from the wallet atomically with the creation.
func (e *Engine) Create(ownerID uuid.UUID, cmd CreateCommand) (models.Goal, error) {
	defer e.locks.lock(ownerID)()

	var goal models.Goal
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		now := e.now()

		if !cmd.TargetDate.After(now) {
			return ErrTargetDateNotFuture
		}

		if cmd.InitialAmount.IsNegative() {
			return models.ErrAmountNotPositive
		}

		goal = models.Goal{
			UserID:             ownerID,
			Name:               cmd.Name,
			Note:               cmd.Note,
			Type:               cmd.Type,
			Priority:           cmd.Priority,
			TargetAmount:       cmd.TargetAmount,
			TargetDate:         cmd.TargetDate,
			IsWithdrawalLocked: cmd.IsWithdrawalLocked,
			AutoSave:           cmd.AutoSave,
			Status:             models.GoalStatusActive,
		}

		if cmd.InitialAmount.IsPositive() {
			user, err := e.walletUser(tx, ownerID)
			if err != nil {
				return err
			}

			if err := user.Wallet.Debit(cmd.InitialAmount); err != nil {
				return err
			}

			goal.CurrentAmount = cmd.InitialAmount

			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}

		return tx.Create(&goal).Error
	})
	if err != nil {
		return models.Goal{}, err
	}

	log.Debug().Str("goal", goal.ID.String()).Str("owner", ownerID.String()).Msg("goal created")
	return goal, nil
}

// Contribute moves amount from the owner's wallet into the goal. When the
// credit reaches the target, the goal completes in the same call. An
// over-sized contribution is accepted as-is, the saved amount is not
// clamped to the target.
func (e *Engine) Contribute(ownerID, goalID uuid.UUID, amount decimal.Decimal) (models.Goal, error) {
	defer e.locks.lock(ownerID)()

	var goal models.Goal
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		goal, err = e.goal(tx, ownerID, goalID)
		if err != nil {
			return err
		}

		switch goal.Status {
		case models.GoalStatusCompleted:
			return ErrGoalAlreadyCompleted
		case models.GoalStatusCancelled:
			return ErrGoalCancelled
		}

		if !amount.IsPositive() {
			return models.ErrAmountNotPositive
		}

		user, err := e.walletUser(tx, ownerID)
		if err != nil {
			return err
		}

		if err := user.Wallet.Debit(amount); err != nil {
			return err
		}

		goal.CurrentAmount = goal.CurrentAmount.Add(amount)

		if goal.Status == models.GoalStatusActive && goal.IsCompleted() {
			now := e.now()
			goal.Status = models.GoalStatusCompleted
			goal.CompletedAt = &now
		}

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		return tx.Save(&goal).Error
	})
	if err != nil {
		return models.Goal{}, err
	}

	log.Debug().Str("goal", goal.ID.String()).Str("amount", amount.String()).Msg("contribution applied")
	return goal, nil
}

// Withdraw moves amount from the goal back into the owner's wallet. A
// completed goal whose saved amount drops below the target reopens to
// active, completion is not monotonic.
func (e *Engine) Withdraw(ownerID, goalID uuid.UUID, amount decimal.Decimal, reason string) (models.Goal, error) {
	defer e.locks.lock(ownerID)()

	var goal models.Goal
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		goal, err = e.goal(tx, ownerID, goalID)
		if err != nil {
			return err
		}

		if goal.Status == models.GoalStatusCancelled {
			return ErrGoalCancelled
		}

		// The lock is absolute, it holds in every status and for any
		// amount. The unlock threshold gates other features and has no
		// effect here.
		if goal.IsWithdrawalLocked {
			return ErrWithdrawalLocked
		}

		if !amount.IsPositive() {
			return models.ErrAmountNotPositive
		}

		if amount.GreaterThan(goal.CurrentAmount) {
			return fmt.Errorf("%w. Available: %s", models.ErrInsufficientGoalFunds, goal.CurrentAmount)
		}

		user, err := e.walletUser(tx, ownerID)
		if err != nil {
			return err
		}

		goal.CurrentAmount = goal.CurrentAmount.Sub(amount)
		if err := user.Wallet.Credit(amount); err != nil {
			return err
		}

		if goal.Status == models.GoalStatusCompleted && !goal.IsCompleted() {
			goal.Status = models.GoalStatusActive
			goal.CompletedAt = nil
		}

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		return tx.Save(&goal).Error
	})
	if err != nil {
		return models.Goal{}, err
	}

	log.Debug().Str("goal", goal.ID.String()).Str("amount", amount.String()).Str("reason", reason).Msg("withdrawal applied")
	return goal, nil
}

// Complete manually marks the goal as completed. No funds move.
func (e *Engine) Complete(ownerID, goalID uuid.UUID) (models.Goal, error) {
	defer e.locks.lock(ownerID)()

	var goal models.Goal
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		goal, err = e.goal(tx, ownerID, goalID)
		if err != nil {
			return err
		}

		if goal.Status == models.GoalStatusCompleted {
			return ErrGoalAlreadyCompleted
		}

		now := e.now()
		goal.Status = models.GoalStatusCompleted
		goal.CompletedAt = &now

		return tx.Save(&goal).Error
	})
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

// Pause puts an active goal on hold.
func (e *Engine) Pause(ownerID, goalID uuid.UUID) (models.Goal, error) {
	return e.transition(ownerID, goalID, models.GoalStatusActive, models.GoalStatusOnHold)
}

// Resume reactivates a goal that is on hold.
func (e *Engine) Resume(ownerID, goalID uuid.UUID) (models.Goal, error) {
	return e.transition(ownerID, goalID, models.GoalStatusOnHold, models.GoalStatusActive)
}

func (e *Engine) transition(ownerID, goalID uuid.UUID, from, to models.GoalStatus) (models.Goal, error) {
	defer e.locks.lock(ownerID)()

	var goal models.Goal
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		goal, err = e.goal(tx, ownerID, goalID)
		if err != nil {
			return err
		}

		if goal.Status != from {
			return fmt.Errorf("%w: %s goals cannot change to %s", ErrInvalidTransition, goal.Status, to)
		}

		goal.Status = to
		return tx.Save(&goal).Error
	})
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

// Delete cancels the goal. Saved funds are refunded to the wallet before
// the goal is cancelled, they are never lost. Goals are not hard-deleted,
// cancelled is terminal.
func (e *Engine) Delete(ownerID, goalID uuid.UUID) (models.Goal, error) {
	defer e.locks.lock(ownerID)()

	var goal models.Goal
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		goal, err = e.goal(tx, ownerID, goalID)
		if err != nil {
			return err
		}

		if goal.IsSystemGoal {
			return ErrSystemGoalImmutable
		}

		if goal.CurrentAmount.IsPositive() {
			user, err := e.walletUser(tx, ownerID)
			if err != nil {
				return err
			}

			if err := user.Wallet.Credit(goal.CurrentAmount); err != nil {
				return err
			}

			log.Info().Str("goal", goal.ID.String()).Str("amount", goal.CurrentAmount.String()).Msg("refunded goal funds to wallet")

			goal.CurrentAmount = decimal.Zero

			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}

		goal.Status = models.GoalStatusCancelled

		return tx.Save(&goal).Error
	})
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

// Update patches the caller-editable fields of a goal. Funds do not move.
func (e *Engine) Update(ownerID, goalID uuid.UUID, cmd UpdateCommand) (models.Goal, error) {
	defer e.locks.lock(ownerID)()

	var goal models.Goal
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		goal, err = e.goal(tx, ownerID, goalID)
		if err != nil {
			return err
		}

		if goal.IsSystemGoal {
			return ErrSystemGoalImmutable
		}

		if cmd.TargetAmount != nil {
			if cmd.TargetAmount.LessThan(goal.CurrentAmount) {
				return ErrTargetBelowCurrent
			}
			goal.TargetAmount = *cmd.TargetAmount
		}

		if cmd.TargetDate != nil {
			if !cmd.TargetDate.After(e.now()) {
				return ErrTargetDateNotFuture
			}
			goal.TargetDate = *cmd.TargetDate
		}

		if cmd.Name != nil {
			goal.Name = *cmd.Name
		}

		if cmd.Note != nil {
			goal.Note = *cmd.Note
		}

		if cmd.Priority != nil {
			goal.Priority = *cmd.Priority
		}

		if cmd.IsWithdrawalLocked != nil {
			goal.IsWithdrawalLocked = *cmd.IsWithdrawalLocked
		}

		if cmd.AutoSave != nil {
			goal.AutoSave = *cmd.AutoSave
		}

		return tx.Save(&goal).Error
	})
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

// Deposit adds external funds to the owner's wallet and counts them
// towards the all-time deposit total.
func (e *Engine) Deposit(ownerID uuid.UUID, amount decimal.Decimal) (models.User, error) {
	defer e.locks.lock(ownerID)()

	var user models.User
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = e.walletUser(tx, ownerID)
		if err != nil {
			return err
		}

		if err := user.Wallet.Credit(amount); err != nil {
			return err
		}
		user.Wallet.TotalDeposited = user.Wallet.TotalDeposited.Add(amount)

		return tx.Save(&user).Error
	})
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("owner", ownerID.String()).Str("amount", amount.String()).Msg("wallet deposit")
	return user, nil
}

// WithdrawFunds removes uncommitted funds from the owner's wallet and
// counts them towards the all-time withdrawal total.
func (e *Engine) WithdrawFunds(ownerID uuid.UUID, amount decimal.Decimal) (models.User, error) {
	defer e.locks.lock(ownerID)()

	var user models.User
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = e.walletUser(tx, ownerID)
		if err != nil {
			return err
		}

		if err := user.Wallet.Debit(amount); err != nil {
			return err
		}
		user.Wallet.TotalWithdrawn = user.Wallet.TotalWithdrawn.Add(amount)

		return tx.Save(&user).Error
	})
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("owner", ownerID.String()).Str("amount", amount.String()).Msg("wallet withdrawal")
	return user, nil
}

// goal loads the goal scoped to its owner.
func (e *Engine) goal(tx *gorm.DB, ownerID, goalID uuid.UUID) (models.Goal, error) {
	var goal models.Goal
	err := tx.First(&goal, "id = ? AND user_id = ?", goalID, ownerID).Error
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

// walletUser loads the owner and verifies that they carry a wallet.
func (e *Engine) walletUser(tx *gorm.DB, ownerID uuid.UUID) (models.User, error) {
	var user models.User
	err := tx.First(&user, "id = ?", ownerID).Error
	if err != nil {
		return models.User{}, err
	}

	if !user.HasWallet() {
		return models.User{}, models.ErrNoWallet
	}

	return user, nil
}
