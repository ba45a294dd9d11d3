package v1_test

import (
	"net/http"

	v1 "github.com/goalvault/backend/internal/controllers/v1"
	"github.com/goalvault/backend/internal/models"
	"github.com/goalvault/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsUsers() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/users", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/users/me", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateUser() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", v1.UserEditable{
		Name:  "Ada",
		Email: "ada@example.com",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// The default role is investor with a wallet
	assert.Equal(suite.T(), models.RoleInvestor, response.Data.Role)
	if assert.NotNil(suite.T(), response.Data.Wallet) {
		assert.True(suite.T(), response.Data.Wallet.Balance.IsZero())
	}

	// The system goals were seeded
	var goals []models.Goal
	err := models.DB.Where("user_id = ?", response.Data.ID).Find(&goals).Error
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), goals, 2) {
		for _, goal := range goals {
			assert.True(suite.T(), goal.IsSystemGoal)
		}
	}
}

func (suite *TestSuiteStandard) TestCreateUserConsultant() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", v1.UserEditable{
		Name:  "Grace",
		Email: "grace@example.com",
		Role:  "consultant",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Consultants have no wallet and no system goals
	assert.Nil(suite.T(), response.Data.Wallet)

	var count int64
	models.DB.Model(&models.Goal{}).Where("user_id = ?", response.Data.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestCreateUserInvalidRole() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", v1.UserEditable{
		Email: "nobody@example.com",
		Role:  "SUPERUSER",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestCreateUserDuplicateEmail() {
	user := suite.createTestInvestor(0)
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", v1.UserEditable{
		Email: user.Email,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrUserEmailNotUnique.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestCreateUserInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", `{ "email": `)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetUserMe() {
	user := suite.createTestInvestor(150)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), user.ID, response.Data.ID)
	if assert.NotNil(suite.T(), response.Data.Wallet) {
		assert.True(suite.T(), response.Data.Wallet.Balance.Equal(user.Wallet.Balance))
	}
}

func (suite *TestSuiteStandard) TestGetUserMeNoHeader() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "")
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
}

func (suite *TestSuiteStandard) TestGetUserMeInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", map[string]string{"X-User-ID": "not-a-uuid"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetUserMeUnknown() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", asUser(uuid.New()))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
