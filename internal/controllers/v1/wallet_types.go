package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/goalvault/backend/internal/models"
	"github.com/shopspring/decimal"
)

// WalletTransaction is the request body for wallet deposits and withdrawals.
type WalletTransaction struct {
	Amount decimal.Decimal `json:"amount" example:"250" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount to move
}

type WalletLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/wallet"`                     // The wallet itself
	Deposits    string `json:"deposits" example:"https://example.com/api/v1/wallet/deposits"`        // Endpoint for deposits into the wallet
	Withdrawals string `json:"withdrawals" example:"https://example.com/api/v1/wallet/withdrawals"`  // Endpoint for withdrawals from the wallet
}

type Wallet struct {
	Balance        decimal.Decimal `json:"balance" example:"271.74"`        // Funds available for contributions
	TotalDeposited decimal.Decimal `json:"totalDeposited" example:"1500"`   // All-time sum of external deposits
	TotalWithdrawn decimal.Decimal `json:"totalWithdrawn" example:"228.26"` // All-time sum of external withdrawals
	Links          WalletLinks     `json:"links"`
}

// newWallet returns the API v1 representation of the resource
func newWallet(c *gin.Context, model models.Wallet) Wallet {
	url := c.GetString(string(models.DBContextURL))

	return Wallet{
		Balance:        model.Balance,
		TotalDeposited: model.TotalDeposited,
		TotalWithdrawn: model.TotalWithdrawn,
		Links: WalletLinks{
			Self:        fmt.Sprintf("%s/v1/wallet", url),
			Deposits:    fmt.Sprintf("%s/v1/wallet/deposits", url),
			Withdrawals: fmt.Sprintf("%s/v1/wallet/withdrawals", url),
		},
	}
}

type WalletResponse struct {
	Error *string `json:"error" example:"this user does not have a wallet"` // The error, if any occurred
	Data  *Wallet `json:"data"`                                             // The resource
}
