package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goalvault/backend/internal/httputil"
	"github.com/goalvault/backend/internal/ledger"
	"github.com/goalvault/backend/internal/models"
)

// engine serializes and applies all fund movements. It is shared by all
// handlers so that per-owner serialization spans the whole process.
var engine = ledger.New(nil)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Goals  string `json:"goals" example:"https://example.com/api/v1/goals"`   // URL of the goal collection endpoint
	Users  string `json:"users" example:"https://example.com/api/v1/users"`   // URL of the user collection endpoint
	Wallet string `json:"wallet" example:"https://example.com/api/v1/wallet"` // URL of the wallet endpoint
	Export string `json:"export" example:"https://example.com/api/v1/export"` // URL of the export endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Goals:  url + "/v1/goals",
			Users:  url + "/v1/users",
			Wallet: url + "/v1/wallet",
			Export: url + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
