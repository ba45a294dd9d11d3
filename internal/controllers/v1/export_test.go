package v1_test

import (
	"encoding/json"
	"net/http"

	v1 "github.com/goalvault/backend/internal/controllers/v1"
	"github.com/goalvault/backend/internal/models"
	"github.com/goalvault/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsExport() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetExport() {
	user := suite.createTestInvestor(0)
	_ = suite.createTestGoal(user.ID, v1.GoalEditable{
		Name:         "Exported",
		TargetAmount: decimal.NewFromFloat(100),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Contains(suite.T(), response.Data, "Goal")
	assert.Contains(suite.T(), response.Data, "User")
	assert.False(suite.T(), response.CreationTime.IsZero())

	var goals []models.Goal
	assert.Nil(suite.T(), json.Unmarshal(response.Data["Goal"], &goals))
	if assert.Len(suite.T(), goals, 1) {
		assert.Equal(suite.T(), "Exported", goals[0].Name)
	}
}
