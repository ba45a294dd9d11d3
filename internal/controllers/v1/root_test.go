package v1_test

import (
	"net/http"

	v1 "github.com/goalvault/backend/internal/controllers/v1"
	"github.com/goalvault/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), v1.Links{
		Goals:  "http://example.com/v1/goals",
		Users:  "http://example.com/v1/users",
		Wallet: "http://example.com/v1/wallet",
		Export: "http://example.com/v1/export",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptionsV1() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}
