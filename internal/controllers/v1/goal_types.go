package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goalvault/backend/internal/ledger"
	"github.com/goalvault/backend/internal/models"
	"github.com/goalvault/backend/internal/progress"
	"github.com/shopspring/decimal"
)

type AutoSaveEditable struct {
	Enabled   bool            `json:"enabled" example:"true" default:"false"`                                           // Is automatic saving enabled for this goal?
	Amount    decimal.Decimal `json:"amount" example:"50" minimum:"0" default:"0"`                                      // The amount to save per interval
	Frequency string          `json:"frequency" example:"MONTHLY" default:"MONTHLY" enums:"DAILY,WEEKLY,BIWEEKLY,MONTHLY,QUARTERLY,YEARLY"` // How often the amount is saved
}

// config parses the auto-save settings into their model representation
func (editable AutoSaveEditable) config() (models.AutoSaveConfig, error) {
	frequency := models.FrequencyMonthly
	if editable.Frequency != "" {
		parsed, ok := models.ParseAutoSaveFrequency(editable.Frequency)
		if !ok {
			return models.AutoSaveConfig{}, errFrequencyInvalid
		}

		frequency = parsed
	}

	return models.AutoSaveConfig{
		Enabled:   editable.Enabled,
		Amount:    editable.Amount,
		Frequency: frequency,
	}, nil
}

type GoalEditable struct {
	Name               string           `json:"name" example:"New bicycle" default:""`                                                                               // Name of the goal
	Note               string           `json:"note" example:"A cargo bike for groceries" default:""`                                                                // Note about the goal
	Type               string           `json:"type" example:"SAVINGS" default:"CUSTOM"`                                                                             // Type of the goal
	Priority           string           `json:"priority" example:"MEDIUM" default:"MEDIUM" enums:"LOW,MEDIUM,HIGH,CRITICAL"`                                         // Priority, determines sort order in listings
	TargetAmount       decimal.Decimal  `json:"targetAmount" example:"1800" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // How much money should be saved for this goal?
	TargetDate         time.Time        `json:"targetDate" example:"2027-06-01T00:00:00Z"`                                                                           // The date the goal should be reached, must be in the future
	InitialAmount      decimal.Decimal  `json:"initialAmount" example:"100" minimum:"0" default:"0"`                                                                 // Funds moved from the wallet on creation
	IsWithdrawalLocked bool             `json:"isWithdrawalLocked" example:"false" default:"false"`                                                                  // Blocks withdrawals from this goal
	AutoSave           AutoSaveEditable `json:"autoSave"`                                                                                                            // Recurring contribution settings
}

// command parses the editable fields into the ledger command that creates the goal
func (editable GoalEditable) command() (ledger.CreateCommand, error) {
	goalType := models.GoalTypeCustom
	if editable.Type != "" {
		parsed, ok := models.ParseGoalType(editable.Type)
		if !ok {
			return ledger.CreateCommand{}, errTypeInvalid
		}

		goalType = parsed
	}

	priority := models.PriorityMedium
	if editable.Priority != "" {
		parsed, ok := models.ParseGoalPriority(editable.Priority)
		if !ok {
			return ledger.CreateCommand{}, errPriorityInvalid
		}

		priority = parsed
	}

	autoSave, err := editable.AutoSave.config()
	if err != nil {
		return ledger.CreateCommand{}, err
	}

	return ledger.CreateCommand{
		Name:               editable.Name,
		Note:               editable.Note,
		Type:               goalType,
		Priority:           priority,
		TargetAmount:       editable.TargetAmount,
		TargetDate:         editable.TargetDate,
		InitialAmount:      editable.InitialAmount,
		IsWithdrawalLocked: editable.IsWithdrawalLocked,
		AutoSave:           autoSave,
	}, nil
}

// GoalUpdate is the request body for goal patches. Only fields that are
// set are updated, fund amounts never change through a patch.
type GoalUpdate struct {
	Name               *string           `json:"name" example:"New bicycle"`
	Note               *string           `json:"note" example:"A cargo bike for groceries"`
	Priority           *string           `json:"priority" example:"HIGH" enums:"LOW,MEDIUM,HIGH,CRITICAL"`
	TargetAmount       *decimal.Decimal  `json:"targetAmount" example:"2000"`
	TargetDate         *time.Time        `json:"targetDate" example:"2027-09-01T00:00:00Z"`
	IsWithdrawalLocked *bool             `json:"isWithdrawalLocked" example:"true"`
	AutoSave           *AutoSaveEditable `json:"autoSave"`
}

// command parses the set fields into the ledger command that patches the goal
func (update GoalUpdate) command() (ledger.UpdateCommand, error) {
	cmd := ledger.UpdateCommand{
		Name:               update.Name,
		Note:               update.Note,
		TargetAmount:       update.TargetAmount,
		TargetDate:         update.TargetDate,
		IsWithdrawalLocked: update.IsWithdrawalLocked,
	}

	if update.Priority != nil {
		parsed, ok := models.ParseGoalPriority(*update.Priority)
		if !ok {
			return ledger.UpdateCommand{}, errPriorityInvalid
		}

		cmd.Priority = &parsed
	}

	if update.AutoSave != nil {
		autoSave, err := update.AutoSave.config()
		if err != nil {
			return ledger.UpdateCommand{}, err
		}

		cmd.AutoSave = &autoSave
	}

	return cmd, nil
}

// GoalAmount is the request body for contributions and withdrawals.
type GoalAmount struct {
	Amount decimal.Decimal `json:"amount" example:"50" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount to move
	Reason string          `json:"reason" example:"Unexpected car repair" default:""`                                                // Optional reason, only used for withdrawals
}

type GoalLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                        // The goal itself
	Contributions string `json:"contributions" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/contributions"` // Endpoint for contributions to this goal
	Withdrawals   string `json:"withdrawals" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/withdrawals"`     // Endpoint for withdrawals from this goal
	Progress      string `json:"progress" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/progress"`           // Progress report for this goal
}

type Goal struct {
	models.DefaultModel
	Name               string                `json:"name" example:"New bicycle"`
	Note               string                `json:"note" example:"A cargo bike for groceries"`
	Type               models.GoalType       `json:"type" example:"SAVINGS"`
	Status             models.GoalStatus     `json:"status" example:"ACTIVE"`
	Priority           models.GoalPriority   `json:"priority" example:"MEDIUM"`
	IsSystemGoal       bool                  `json:"isSystemGoal" example:"false"`
	UnlockThreshold    *decimal.Decimal      `json:"unlockThreshold" example:"5000"`
	TargetAmount       decimal.Decimal       `json:"targetAmount" example:"1800"`
	CurrentAmount      decimal.Decimal       `json:"currentAmount" example:"450.50"`
	RemainingAmount    decimal.Decimal       `json:"remainingAmount" example:"1349.50"`
	ProgressPercentage decimal.Decimal       `json:"progressPercentage" example:"25.03"`
	IsWithdrawalLocked bool                  `json:"isWithdrawalLocked" example:"false"`
	AutoSave           models.AutoSaveConfig `json:"autoSave"`
	TargetDate         time.Time             `json:"targetDate" example:"2027-06-01T00:00:00Z"`
	CompletedAt        *time.Time            `json:"completedAt" example:"2027-01-07T12:14:31Z"`
	Links              GoalLinks             `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/goals/%s", url, model.ID)

	return Goal{
		DefaultModel:       model.DefaultModel,
		Name:               model.Name,
		Note:               model.Note,
		Type:               model.Type,
		Status:             model.Status,
		Priority:           model.Priority,
		IsSystemGoal:       model.IsSystemGoal,
		UnlockThreshold:    model.UnlockThreshold,
		TargetAmount:       model.TargetAmount,
		CurrentAmount:      model.CurrentAmount,
		RemainingAmount:    model.RemainingAmount(),
		ProgressPercentage: model.ProgressPercentage(),
		IsWithdrawalLocked: model.IsWithdrawalLocked,
		AutoSave:           model.AutoSave,
		TargetDate:         model.TargetDate,
		CompletedAt:        model.CompletedAt,
		Links: GoalLinks{
			Self:          self,
			Contributions: self + "/contributions",
			Withdrawals:   self + "/withdrawals",
			Progress:      self + "/progress",
		},
	}
}

// GoalSummary aggregates all goals of the user, regardless of the
// filters applied to the listing.
type GoalSummary struct {
	TotalSaved      decimal.Decimal `json:"totalSaved" example:"1250.50"`     // Sum of the saved amounts of all goals
	TotalTarget     decimal.Decimal `json:"totalTarget" example:"12800"`      // Sum of the target amounts of all goals
	OverallProgress decimal.Decimal `json:"overallProgress" example:"9.77"`   // TotalSaved as a percentage of TotalTarget
	ActiveGoals     int             `json:"activeGoals" example:"3"`          // Number of active goals
	CompletedGoals  int             `json:"completedGoals" example:"1"`       // Number of completed goals
}

type GoalListResponse struct {
	Data       []Goal       `json:"data"`                                                          // List of resources
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
	Summary    *GoalSummary `json:"summary"`                                                       // Aggregates over all goals of the user
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

type ProgressResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *progress.Report `json:"data"`                                                          // The resource
}

type GoalQueryFilter struct {
	Status   string `form:"status" filterField:"false"`   // By status
	Type     string `form:"type" filterField:"false"`     // By type
	Priority string `form:"priority" filterField:"false"` // By priority
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first goal returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of goals to return. Defaults to 50.
}
