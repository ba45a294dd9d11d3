package models

import "strings"

// swagger:enum GoalType
type GoalType string

const (
	GoalTypeCustom     GoalType = "CUSTOM"
	GoalTypeEmergency  GoalType = "EMERGENCY"
	GoalTypeInvestment GoalType = "INVESTMENT"
	GoalTypeSavings    GoalType = "SAVINGS"
	GoalTypePurchase   GoalType = "PURCHASE"
	GoalTypeTravel     GoalType = "TRAVEL"
	GoalTypeEducation  GoalType = "EDUCATION"
	GoalTypeRetirement GoalType = "RETIREMENT"
	GoalTypeOther      GoalType = "OTHER"
)

// ParseGoalType parses the string case-insensitively into a GoalType.
func ParseGoalType(s string) (GoalType, bool) {
	t := GoalType(strings.ToUpper(s))
	switch t {
	case GoalTypeCustom, GoalTypeEmergency, GoalTypeInvestment, GoalTypeSavings,
		GoalTypePurchase, GoalTypeTravel, GoalTypeEducation, GoalTypeRetirement, GoalTypeOther:
		return t, true
	}

	return "", false
}

// swagger:enum GoalStatus
type GoalStatus string

// The goal state machine. ACTIVE is the only entry state,
// CANCELLED is terminal.
const (
	GoalStatusActive    GoalStatus = "ACTIVE"
	GoalStatusOnHold    GoalStatus = "ON_HOLD"
	GoalStatusCompleted GoalStatus = "COMPLETED"
	GoalStatusCancelled GoalStatus = "CANCELLED"
)

// ParseGoalStatus parses the string case-insensitively into a GoalStatus.
func ParseGoalStatus(s string) (GoalStatus, bool) {
	t := GoalStatus(strings.ToUpper(s))
	switch t {
	case GoalStatusActive, GoalStatusOnHold, GoalStatusCompleted, GoalStatusCancelled:
		return t, true
	}

	return "", false
}

// swagger:enum GoalPriority
type GoalPriority string

// Priorities are advisory only. They determine sort order in listings
// and have no effect on the ledger.
const (
	PriorityLow      GoalPriority = "LOW"
	PriorityMedium   GoalPriority = "MEDIUM"
	PriorityHigh     GoalPriority = "HIGH"
	PriorityCritical GoalPriority = "CRITICAL"
)

// ParseGoalPriority parses the string case-insensitively into a GoalPriority.
func ParseGoalPriority(s string) (GoalPriority, bool) {
	t := GoalPriority(strings.ToUpper(s))
	switch t {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return t, true
	}

	return "", false
}

// swagger:enum AutoSaveFrequency
type AutoSaveFrequency string

const (
	FrequencyDaily     AutoSaveFrequency = "DAILY"
	FrequencyWeekly    AutoSaveFrequency = "WEEKLY"
	FrequencyBiweekly  AutoSaveFrequency = "BIWEEKLY"
	FrequencyMonthly   AutoSaveFrequency = "MONTHLY"
	FrequencyQuarterly AutoSaveFrequency = "QUARTERLY"
	FrequencyYearly    AutoSaveFrequency = "YEARLY"
)

// ParseAutoSaveFrequency parses the string case-insensitively into an AutoSaveFrequency.
func ParseAutoSaveFrequency(s string) (AutoSaveFrequency, bool) {
	t := AutoSaveFrequency(strings.ToUpper(s))
	switch t {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly,
		FrequencyQuarterly, FrequencyYearly:
		return t, true
	}

	return "", false
}
