package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/goalvault/backend/internal/controllers/v1"
	"github.com/goalvault/backend/internal/ledger"
	"github.com/goalvault/backend/internal/models"
	"github.com/goalvault/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestSystemGoal seeds an emergency fund directly in the database.
func (suite *TestSuiteStandard) createTestSystemGoal(userID uuid.UUID) models.Goal {
	goal := models.NewEmergencyGoal(userID, decimal.NewFromInt(3000), time.Now())

	err := models.DB.Create(&goal).Error
	if err != nil {
		suite.Assert().FailNow("System goal could not be saved", "Error: %s", err)
	}

	return goal
}

func (suite *TestSuiteStandard) TestOptionsGoals() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsGoalDetail() {
	user := suite.createTestInvestor(0)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:         "Options",
		TargetAmount: decimal.NewFromFloat(100),
	})

	recorder := test.Request(suite.T(), http.MethodOptions, goal.Links.Self, "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "GET, PATCH, DELETE", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, goal.Links.Contributions, "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, goal.Links.Progress, "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsGoalDetailNotFound() {
	user := suite.createTestInvestor(0)

	recorder := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New()), "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestCreateGoal() {
	user := suite.createTestInvestor(500)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", v1.GoalEditable{
		Name:          "New bicycle",
		TargetAmount:  decimal.NewFromFloat(1000),
		TargetDate:    time.Now().AddDate(0, 6, 0),
		InitialAmount: decimal.NewFromFloat(100),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	goal := response.Data
	assert.Equal(suite.T(), "New bicycle", goal.Name)
	assert.Equal(suite.T(), models.GoalTypeCustom, goal.Type)
	assert.Equal(suite.T(), models.GoalStatusActive, goal.Status)
	assert.Equal(suite.T(), models.PriorityMedium, goal.Priority)
	assert.True(suite.T(), goal.CurrentAmount.Equal(decimal.NewFromFloat(100)))
	assert.True(suite.T(), goal.RemainingAmount.Equal(decimal.NewFromFloat(900)))
	assert.True(suite.T(), goal.ProgressPercentage.Equal(decimal.NewFromFloat(10)))
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/goals/%s/progress", goal.ID), goal.Links.Progress)

	// The initial amount was debited from the wallet
	var dbUser models.User
	assert.Nil(suite.T(), models.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.True(suite.T(), dbUser.Wallet.Balance.Equal(decimal.NewFromFloat(400)))
}

func (suite *TestSuiteStandard) TestCreateGoalPastTargetDate() {
	user := suite.createTestInvestor(0)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", v1.GoalEditable{
		Name:         "Yesterday",
		TargetAmount: decimal.NewFromFloat(100),
		TargetDate:   time.Now().AddDate(0, 0, -1),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), ledger.ErrTargetDateNotFuture.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestCreateGoalInvalidEnums() {
	user := suite.createTestInvestor(0)

	tests := []struct {
		name     string
		editable v1.GoalEditable
	}{
		{"type", v1.GoalEditable{Type: "LOTTERY", TargetAmount: decimal.NewFromFloat(100), TargetDate: time.Now().AddDate(1, 0, 0)}},
		{"priority", v1.GoalEditable{Priority: "EXTREME", TargetAmount: decimal.NewFromFloat(100), TargetDate: time.Now().AddDate(1, 0, 0)}},
		{"frequency", v1.GoalEditable{AutoSave: v1.AutoSaveEditable{Frequency: "HOURLY"}, TargetAmount: decimal.NewFromFloat(100), TargetDate: time.Now().AddDate(1, 0, 0)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/goals", tt.editable, asUser(user.ID))
			test.AssertHTTPStatus(t, http.StatusBadRequest, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateGoalInsufficientFunds() {
	user := suite.createTestInvestor(50)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", v1.GoalEditable{
		Name:          "Too much",
		TargetAmount:  decimal.NewFromFloat(1000),
		TargetDate:    time.Now().AddDate(1, 0, 0),
		InitialAmount: decimal.NewFromFloat(100),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), *response.Error, "Available: 50")

	// The goal was not created
	var count int64
	models.DB.Model(&models.Goal{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestGetGoalsSorted() {
	user := suite.createTestInvestor(0)

	_ = suite.createTestGoal(user.ID, v1.GoalEditable{Name: "Low", Priority: "LOW", TargetAmount: decimal.NewFromFloat(100)})
	_ = suite.createTestGoal(user.ID, v1.GoalEditable{Name: "Critical", Priority: "CRITICAL", TargetAmount: decimal.NewFromFloat(100)})
	_ = suite.createTestGoal(user.ID, v1.GoalEditable{Name: "Medium", TargetAmount: decimal.NewFromFloat(100)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.GoalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 3) {
		assert.Equal(suite.T(), "Critical", response.Data[0].Name)
		assert.Equal(suite.T(), "Medium", response.Data[1].Name)
		assert.Equal(suite.T(), "Low", response.Data[2].Name)
	}
}

func (suite *TestSuiteStandard) TestGetGoalsFilter() {
	user := suite.createTestInvestor(1000)

	_ = suite.createTestGoal(user.ID, v1.GoalEditable{Name: "Bicycle", Type: "PURCHASE", TargetAmount: decimal.NewFromFloat(400)})
	_ = suite.createTestGoal(user.ID, v1.GoalEditable{Name: "Japan", Type: "TRAVEL", TargetAmount: decimal.NewFromFloat(3000), InitialAmount: decimal.NewFromFloat(300)})

	tests := []struct {
		query string
		count int
	}{
		{"type=TRAVEL", 1},
		{"type=travel", 1},
		{"type=PURCHASE", 1},
		{"type=EDUCATION", 0},
		{"status=ACTIVE", 2},
		{"status=COMPLETED", 0},
		{"priority=MEDIUM", 2},
		{"priority=CRITICAL", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "", asUser(user.ID))
			test.AssertHTTPStatus(t, http.StatusOK, &recorder)

			var response v1.GoalListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)

			// The summary covers all goals of the user, not only the
			// ones matching the filter
			if assert.NotNil(t, response.Summary) {
				assert.True(t, response.Summary.TotalSaved.Equal(decimal.NewFromFloat(300)))
				assert.True(t, response.Summary.TotalTarget.Equal(decimal.NewFromFloat(3400)))
				assert.Equal(t, 2, response.Summary.ActiveGoals)
				assert.Equal(t, 0, response.Summary.CompletedGoals)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGetGoalsInvalidFilter() {
	user := suite.createTestInvestor(0)

	for _, query := range []string{"status=DONE", "type=LOTTERY", "priority=EXTREME"} {
		suite.T().Run(query, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", query), "", asUser(user.ID))
			test.AssertHTTPStatus(t, http.StatusBadRequest, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestGetGoalsPagination() {
	user := suite.createTestInvestor(0)

	for i := 0; i < 3; i++ {
		_ = suite.createTestGoal(user.ID, v1.GoalEditable{
			Name:         fmt.Sprintf("Goal %d", i),
			TargetAmount: decimal.NewFromFloat(100),
		})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals?limit=2", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.GoalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals?limit=2&offset=2", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), uint(2), response.Pagination.Offset)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals?limit=0", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 0)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestGetGoalsOnlyOwn() {
	user := suite.createTestInvestor(0)
	other := suite.createTestInvestor(0)
	_ = suite.createTestGoal(other.ID, v1.GoalEditable{Name: "Not yours", TargetAmount: decimal.NewFromFloat(100)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.GoalListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestGetGoal() {
	user := suite.createTestInvestor(0)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:         "Laptop",
		TargetAmount: decimal.NewFromFloat(1500),
	})

	recorder := test.Request(suite.T(), http.MethodGet, goal.Links.Self, "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), goal.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetGoalOtherUser() {
	user := suite.createTestInvestor(0)
	other := suite.createTestInvestor(0)
	goal := suite.createTestGoal(other.ID, v1.GoalEditable{
		Name:         "Not yours",
		TargetAmount: decimal.NewFromFloat(100),
	})

	recorder := test.Request(suite.T(), http.MethodGet, goal.Links.Self, "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestGetGoalInvalidID() {
	user := suite.createTestInvestor(0)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals/definitely-not-a-uuid", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestUpdateGoal() {
	user := suite.createTestInvestor(0)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:         "Laptop",
		TargetAmount: decimal.NewFromFloat(1500),
	})

	newName := "Gaming laptop"
	newPriority := "HIGH"
	recorder := test.Request(suite.T(), http.MethodPatch, goal.Links.Self, v1.GoalUpdate{
		Name:     &newName,
		Priority: &newPriority,
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "Gaming laptop", response.Data.Name)
	assert.Equal(suite.T(), models.PriorityHigh, response.Data.Priority)

	// Unset fields are not touched
	assert.True(suite.T(), response.Data.TargetAmount.Equal(decimal.NewFromFloat(1500)))
}

func (suite *TestSuiteStandard) TestUpdateGoalTargetBelowCurrent() {
	user := suite.createTestInvestor(500)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:          "Laptop",
		TargetAmount:  decimal.NewFromFloat(1500),
		InitialAmount: decimal.NewFromFloat(500),
	})

	newTarget := decimal.NewFromFloat(400)
	recorder := test.Request(suite.T(), http.MethodPatch, goal.Links.Self, v1.GoalUpdate{
		TargetAmount: &newTarget,
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), ledger.ErrTargetBelowCurrent.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestUpdateSystemGoal() {
	user := suite.createTestInvestor(0)
	goal := suite.createTestSystemGoal(user.ID)

	newName := "My fund now"
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/goals/%s", goal.ID), v1.GoalUpdate{
		Name: &newName,
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusForbidden, &recorder)
}

func (suite *TestSuiteStandard) TestDeleteGoal() {
	user := suite.createTestInvestor(500)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:          "Laptop",
		TargetAmount:  decimal.NewFromFloat(1500),
		InitialAmount: decimal.NewFromFloat(200),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, goal.Links.Self, "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	// The saved amount was refunded to the wallet
	var dbUser models.User
	assert.Nil(suite.T(), models.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.True(suite.T(), dbUser.Wallet.Balance.Equal(decimal.NewFromFloat(500)))

	// The goal stays visible as cancelled
	recorder = test.Request(suite.T(), http.MethodGet, goal.Links.Self, "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.GoalStatusCancelled, response.Data.Status)
	assert.True(suite.T(), response.Data.CurrentAmount.IsZero())
}

func (suite *TestSuiteStandard) TestDeleteSystemGoal() {
	user := suite.createTestInvestor(0)
	goal := suite.createTestSystemGoal(user.ID)

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/goals/%s", goal.ID), "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusForbidden, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), ledger.ErrSystemGoalImmutable.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestGoalContribution() {
	user := suite.createTestInvestor(500)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:         "Laptop",
		TargetAmount: decimal.NewFromFloat(1500),
	})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Links.Contributions, v1.GoalAmount{
		Amount: decimal.NewFromFloat(150),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.True(suite.T(), response.Data.CurrentAmount.Equal(decimal.NewFromFloat(150)))
	assert.Equal(suite.T(), models.GoalStatusActive, response.Data.Status)

	var dbUser models.User
	assert.Nil(suite.T(), models.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.True(suite.T(), dbUser.Wallet.Balance.Equal(decimal.NewFromFloat(350)))
}

func (suite *TestSuiteStandard) TestGoalContributionCompletes() {
	user := suite.createTestInvestor(500)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:         "Concert tickets",
		TargetAmount: decimal.NewFromFloat(200),
	})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Links.Contributions, v1.GoalAmount{
		Amount: decimal.NewFromFloat(200),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), models.GoalStatusCompleted, response.Data.Status)
	assert.NotNil(suite.T(), response.Data.CompletedAt)
}

func (suite *TestSuiteStandard) TestGoalContributionGuards() {
	user := suite.createTestInvestor(10)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:         "Laptop",
		TargetAmount: decimal.NewFromFloat(1500),
	})

	// A non-positive amount is rejected
	recorder := test.Request(suite.T(), http.MethodPost, goal.Links.Contributions, v1.GoalAmount{
		Amount: decimal.Zero,
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrAmountNotPositive.Error(), *response.Error)

	// The wallet must cover the contribution
	recorder = test.Request(suite.T(), http.MethodPost, goal.Links.Contributions, v1.GoalAmount{
		Amount: decimal.NewFromFloat(50),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), *response.Error, "Available: 10")
}

func (suite *TestSuiteStandard) TestGoalWithdrawal() {
	user := suite.createTestInvestor(500)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:          "Laptop",
		TargetAmount:  decimal.NewFromFloat(1500),
		InitialAmount: decimal.NewFromFloat(300),
	})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Links.Withdrawals, v1.GoalAmount{
		Amount: decimal.NewFromFloat(120),
		Reason: "Unexpected car repair",
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.CurrentAmount.Equal(decimal.NewFromFloat(180)))

	var dbUser models.User
	assert.Nil(suite.T(), models.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.True(suite.T(), dbUser.Wallet.Balance.Equal(decimal.NewFromFloat(320)))
}

func (suite *TestSuiteStandard) TestGoalWithdrawalReopens() {
	user := suite.createTestInvestor(500)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:         "Concert tickets",
		TargetAmount: decimal.NewFromFloat(200),
	})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Links.Contributions, v1.GoalAmount{
		Amount: decimal.NewFromFloat(200),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	recorder = test.Request(suite.T(), http.MethodPost, goal.Links.Withdrawals, v1.GoalAmount{
		Amount: decimal.NewFromFloat(50),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), models.GoalStatusActive, response.Data.Status)
	assert.Nil(suite.T(), response.Data.CompletedAt)
}

func (suite *TestSuiteStandard) TestGoalWithdrawalLocked() {
	user := suite.createTestInvestor(500)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:               "Locked",
		TargetAmount:       decimal.NewFromFloat(1000),
		InitialAmount:      decimal.NewFromFloat(100),
		IsWithdrawalLocked: true,
	})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Links.Withdrawals, v1.GoalAmount{
		Amount: decimal.NewFromFloat(50),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), ledger.ErrWithdrawalLocked.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestGoalWithdrawalInsufficientFunds() {
	user := suite.createTestInvestor(500)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:          "Laptop",
		TargetAmount:  decimal.NewFromFloat(1500),
		InitialAmount: decimal.NewFromFloat(50),
	})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Links.Withdrawals, v1.GoalAmount{
		Amount: decimal.NewFromFloat(50.01),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), *response.Error, "Available: 50")
}

func (suite *TestSuiteStandard) TestCompleteGoal() {
	user := suite.createTestInvestor(0)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:         "Laptop",
		TargetAmount: decimal.NewFromFloat(1500),
	})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Links.Self+"/complete", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.GoalStatusCompleted, response.Data.Status)
	assert.NotNil(suite.T(), response.Data.CompletedAt)

	// Completing twice is an error
	recorder = test.Request(suite.T(), http.MethodPost, goal.Links.Self+"/complete", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestPauseResumeGoal() {
	user := suite.createTestInvestor(0)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:         "Laptop",
		TargetAmount: decimal.NewFromFloat(1500),
	})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Links.Self+"/pause", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.GoalStatusOnHold, response.Data.Status)

	// Pausing a goal that is already on hold is an error
	recorder = test.Request(suite.T(), http.MethodPost, goal.Links.Self+"/pause", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	recorder = test.Request(suite.T(), http.MethodPost, goal.Links.Self+"/resume", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.GoalStatusActive, response.Data.Status)

	// Resuming an active goal is an error
	recorder = test.Request(suite.T(), http.MethodPost, goal.Links.Self+"/resume", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetGoalProgress() {
	user := suite.createTestInvestor(500)
	goal := suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:          "Laptop",
		TargetAmount:  decimal.NewFromFloat(1000),
		InitialAmount: decimal.NewFromFloat(250),
	})

	recorder := test.Request(suite.T(), http.MethodGet, goal.Links.Progress, "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ProgressResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	report := response.Data
	assert.Equal(suite.T(), "Laptop", report.GoalName)
	assert.True(suite.T(), report.ProgressPercentage.Equal(decimal.NewFromFloat(25)))
	assert.Len(suite.T(), report.Milestones, 4)
	assert.True(suite.T(), report.Milestones[0].IsReached)
}

func (suite *TestSuiteStandard) TestGoalsNoHeader() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
}
