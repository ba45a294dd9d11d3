// Package progress derives analytics from a goal snapshot. Everything in
// here is a pure function of the snapshot and the passed-in clock value,
// nothing is persisted.
package progress

import (
	"fmt"
	"time"

	"github.com/goalvault/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Milestone is one of the fixed 25/50/75/100% checkpoints of a goal.
//
// Milestones are recomputed on every call: ReachedAt carries the time of
// the calculation for every currently-reached milestone, not the time it
// was first reached.
type Milestone struct {
	Name         string          `json:"name" example:"50% Halfway There!"`
	Percentage   int64           `json:"percentage" example:"50"`
	TargetAmount decimal.Decimal `json:"targetAmount" example:"900"`
	IsReached    bool            `json:"isReached" example:"true"`
	ReachedAt    *time.Time      `json:"reachedAt" example:"2026-08-31T10:00:00Z"`
}

// Report is the full progress view of a goal at one point in time.
type Report struct {
	GoalID   string            `json:"goalId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	GoalName string            `json:"goalName" example:"New bicycle"`
	Status   models.GoalStatus `json:"status" example:"ACTIVE"`

	CurrentAmount      decimal.Decimal `json:"currentAmount" example:"450.50"`
	TargetAmount       decimal.Decimal `json:"targetAmount" example:"1800"`
	RemainingAmount    decimal.Decimal `json:"remainingAmount" example:"1349.50"`
	ProgressPercentage decimal.Decimal `json:"progressPercentage" example:"25.03"`

	CreatedAt             time.Time       `json:"createdAt" example:"2026-01-01T00:00:00Z"`
	TargetDate            time.Time       `json:"targetDate" example:"2027-06-01T00:00:00Z"`
	TotalDays             int             `json:"totalDays" example:"516"`
	DaysRemaining         int             `json:"daysRemaining" example:"274"`
	DaysElapsedPercentage decimal.Decimal `json:"daysElapsedPercentage" example:"46.9"`

	RecommendedDailySaving   decimal.Decimal `json:"recommendedDailySaving" example:"4.93"`
	RecommendedWeeklySaving  decimal.Decimal `json:"recommendedWeeklySaving" example:"34.48"`
	RecommendedMonthlySaving decimal.Decimal `json:"recommendedMonthlySaving" example:"147.76"`

	Milestones []Milestone `json:"milestones"`

	IsOnTrack          bool   `json:"isOnTrack" example:"true"`
	PerformanceMessage string `json:"performanceMessage" example:"You're on track to reach your goal!"`
}

var milestoneNames = map[int64]string{
	25:  "25% Goal",
	50:  "50% Halfway There!",
	75:  "75% Almost Done",
	100: "100% Goal Achieved!",
}

var hundred = decimal.NewFromInt(100)

// Calculate builds the progress report for the goal at the given time.
func Calculate(goal models.Goal, now time.Time) Report {
	totalDays := int(goal.TargetDate.Sub(goal.CreatedAt).Hours() / 24)
	daysElapsed := int(now.Sub(goal.CreatedAt).Hours() / 24)
	daysRemaining := goal.DaysRemaining(now)

	daysElapsedPercentage := decimal.Zero
	if totalDays > 0 {
		daysElapsedPercentage = decimal.NewFromInt(int64(daysElapsed)).
			Div(decimal.NewFromInt(int64(totalDays))).
			Mul(hundred)
	}

	// "Remaining to save" is clamped for recommendations, an over-funded
	// goal does not produce negative saving rates.
	remaining := goal.RemainingAmount()
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	days := int64(daysRemaining)
	if days < 1 {
		days = 1
	}

	daily := remaining.Div(decimal.NewFromInt(days))
	weekly := daily.Mul(decimal.NewFromInt(7))
	monthly := daily.Mul(decimal.NewFromInt(30))

	milestones := make([]Milestone, 0, 4)
	for _, pct := range []int64{25, 50, 75, 100} {
		amount := goal.TargetAmount.Mul(decimal.NewFromInt(pct)).Div(hundred)
		reached := goal.CurrentAmount.GreaterThanOrEqual(amount)

		var reachedAt *time.Time
		if reached {
			reachedAt = &now
		}

		milestones = append(milestones, Milestone{
			Name:         milestoneNames[pct],
			Percentage:   pct,
			TargetAmount: amount,
			IsReached:    reached,
			ReachedAt:    reachedAt,
		})
	}

	actual := goal.ProgressPercentage()
	expected := daysElapsedPercentage
	onTrack := actual.GreaterThanOrEqual(expected) || goal.Status == models.GoalStatusCompleted

	var message string
	switch {
	case goal.Status == models.GoalStatusCompleted:
		message = "Congratulations! Goal completed!"
	case onTrack:
		message = "You're on track to reach your goal!"
	default:
		message = fmt.Sprintf("You're %s%% behind schedule. Consider increasing contributions.",
			expected.Sub(actual).StringFixed(1))
	}

	return Report{
		GoalID:                   goal.ID.String(),
		GoalName:                 goal.Name,
		Status:                   goal.Status,
		CurrentAmount:            goal.CurrentAmount,
		TargetAmount:             goal.TargetAmount,
		RemainingAmount:          goal.RemainingAmount(),
		ProgressPercentage:       actual,
		CreatedAt:                goal.CreatedAt,
		TargetDate:               goal.TargetDate,
		TotalDays:                totalDays,
		DaysRemaining:            daysRemaining,
		DaysElapsedPercentage:    daysElapsedPercentage,
		RecommendedDailySaving:   daily,
		RecommendedWeeklySaving:  weekly,
		RecommendedMonthlySaving: monthly,
		Milestones:               milestones,
		IsOnTrack:                onTrack,
		PerformanceMessage:       message,
	}
}
