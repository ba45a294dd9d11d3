package v1_test

import (
	"net/http"

	v1 "github.com/goalvault/backend/internal/controllers/v1"
	"github.com/goalvault/backend/internal/models"
	"github.com/goalvault/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsWallet() {
	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1/wallet", "GET"},
		{"http://example.com/v1/wallet/deposits", "POST"},
		{"http://example.com/v1/wallet/withdrawals", "POST"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodOptions, tt.path, "")
		test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
		assert.Equal(suite.T(), tt.allow, recorder.Header().Get("allow"))
	}
}

func (suite *TestSuiteStandard) TestGetWallet() {
	user := suite.createTestInvestor(271.74)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/wallet", "", asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.WalletResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromFloat(271.74)))
	assert.Equal(suite.T(), "http://example.com/v1/wallet/deposits", response.Data.Links.Deposits)
}

func (suite *TestSuiteStandard) TestGetWalletConsultant() {
	consultant := models.User{
		Email: "consultant@example.com",
		Role:  models.RoleConsultant,
	}
	err := models.DB.Create(&consultant).Error
	assert.Nil(suite.T(), err)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/wallet", "", asUser(consultant.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.WalletResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrNoWallet.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestWalletDeposit() {
	user := suite.createTestInvestor(0)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/wallet/deposits", v1.WalletTransaction{
		Amount: decimal.NewFromFloat(1000),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.WalletResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromFloat(1000)))
	assert.True(suite.T(), response.Data.TotalDeposited.Equal(decimal.NewFromFloat(1000)))
}

func (suite *TestSuiteStandard) TestWalletDepositInvalidAmount() {
	user := suite.createTestInvestor(0)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/wallet/deposits", v1.WalletTransaction{
		Amount: decimal.NewFromFloat(-10),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestWalletWithdrawal() {
	user := suite.createTestInvestor(500)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/wallet/withdrawals", v1.WalletTransaction{
		Amount: decimal.NewFromFloat(120),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.WalletResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromFloat(380)))
	assert.True(suite.T(), response.Data.TotalWithdrawn.Equal(decimal.NewFromFloat(120)))
}

func (suite *TestSuiteStandard) TestWalletWithdrawalInsufficientFunds() {
	user := suite.createTestInvestor(100)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/wallet/withdrawals", v1.WalletTransaction{
		Amount: decimal.NewFromFloat(100.01),
	}, asUser(user.ID))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.WalletResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), *response.Error, "Available: 100")
}
