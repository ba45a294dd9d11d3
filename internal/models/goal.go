package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target of a single user. Its funds only ever move
// between the goal and the owner's wallet, through the ledger engine.
type Goal struct {
	DefaultModel
	UserID uuid.UUID `json:"userId" gorm:"index" example:"550dc76c-21d8-4b37-bacb-2fa18f2fc2a8"` // Owner of the goal
	User   User      `json:"-"`

	Name string `json:"name" example:"New bicycle"`
	Note string `json:"note" example:"A cargo bike for groceries"`

	Type GoalType `json:"type" example:"SAVINGS"`

	// System goals (emergency fund, investment fund) are created
	// automatically and cannot be edited or deleted by the user.
	IsSystemGoal bool `json:"isSystemGoal" example:"false"`

	// Amount at which a system goal unlocks another feature.
	UnlockThreshold *decimal.Decimal `json:"unlockThreshold" gorm:"type:DECIMAL(20,8)" example:"5000"`

	TargetAmount decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)" example:"1800"` // The target for the goal
	// CurrentAmount can exceed TargetAmount by the overshoot of a single
	// contribution, it is not clamped.
	CurrentAmount decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(20,8)" example:"450.50"`

	Status   GoalStatus   `json:"status" example:"ACTIVE"`
	Priority GoalPriority `json:"priority" example:"MEDIUM"`

	// Blocks withdrawals regardless of status.
	IsWithdrawalLocked bool `json:"isWithdrawalLocked" example:"false"`

	AutoSave AutoSaveConfig `json:"autoSave" gorm:"embedded;embeddedPrefix:auto_save_"`

	TargetDate  time.Time  `json:"targetDate" example:"2027-06-01T00:00:00Z"`
	CompletedAt *time.Time `json:"completedAt" example:"2027-01-07T12:14:31Z"`
}

// AutoSaveConfig is the recurring contribution configuration of a goal.
// Only the configuration is stored, execution is not part of this backend.
type AutoSaveConfig struct {
	Enabled   bool              `json:"enabled" example:"true"`
	Amount    decimal.Decimal   `json:"amount" gorm:"type:DECIMAL(20,8)" example:"50"`
	Frequency AutoSaveFrequency `json:"frequency" example:"MONTHLY"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	// The owner must exist
	return tx.First(&User{}, g.UserID).Error
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	if g.Type == "" {
		g.Type = GoalTypeCustom
	}

	if g.Status == "" {
		g.Status = GoalStatusActive
	}

	if g.Priority == "" {
		g.Priority = PriorityMedium
	}

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(g.TargetAmount) {
		return ErrGoalTargetNotPositive
	}

	return nil
}

// ProgressPercentage is the share of the target that has been saved,
// in percent. It can exceed 100 for over-funded goals.
func (g Goal) ProgressPercentage() decimal.Decimal {
	// TargetAmount is validated to be positive, but a reader must
	// never divide by zero.
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}

// RemainingAmount is the amount still to be saved. It is negative for
// over-funded goals, callers clamp where they display "remaining to save".
func (g Goal) RemainingAmount() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentAmount)
}

// IsCompleted reports whether the saved amount has reached the target.
func (g Goal) IsCompleted() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// DaysRemaining is the number of full days between now and the target
// date, never negative.
func (g Goal) DaysRemaining(now time.Time) int {
	days := int(g.TargetDate.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}

	return days
}

// IsOverdue reports whether the target date has passed without the goal
// being funded to its target.
func (g Goal) IsOverdue(now time.Time) bool {
	return g.TargetDate.Before(now) && !g.IsCompleted()
}

// HasReachedUnlockThreshold reports whether a system goal has saved
// enough to unlock its gated feature.
func (g Goal) HasReachedUnlockThreshold() bool {
	return g.UnlockThreshold != nil && g.CurrentAmount.GreaterThanOrEqual(*g.UnlockThreshold)
}

// NewEmergencyGoal returns the emergency fund that is seeded for every
// new investor. It stays withdrawable so that funds can be freed up in
// an actual emergency.
func NewEmergencyGoal(userID uuid.UUID, targetAmount decimal.Decimal, now time.Time) Goal {
	return Goal{
		UserID:       userID,
		Name:         "Emergency Fund",
		Note:         "Safety cushion for unexpected expenses. Recommended: 3-6 months of spending.",
		Type:         GoalTypeEmergency,
		IsSystemGoal: true,
		TargetAmount: targetAmount,
		Priority:     PriorityHigh,
		Status:       GoalStatusActive,
		TargetDate:   now.AddDate(1, 0, 0),
	}
}

// NewInvestmentGoal returns the investment fund that is seeded for every
// new investor. Withdrawals are locked; the unlock threshold gates access
// to investment products, not the lock.
func NewInvestmentGoal(userID uuid.UUID, unlockThreshold decimal.Decimal, now time.Time) Goal {
	return Goal{
		UserID:             userID,
		Name:               "Investment Fund",
		Note:               "Reach the threshold to unlock investment products.",
		Type:               GoalTypeInvestment,
		IsSystemGoal:       true,
		UnlockThreshold:    &unlockThreshold,
		TargetAmount:       unlockThreshold.Mul(decimal.NewFromInt(2)),
		Priority:           PriorityHigh,
		Status:             GoalStatusActive,
		IsWithdrawalLocked: true,
		TargetDate:         now.AddDate(2, 0, 0),
	}
}

// Returns all goals on this instance for export
func (Goal) Export() (json.RawMessage, error) {
	var goals []Goal
	err := DB.Unscoped().Where(&Goal{}).Find(&goals).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&goals)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
