package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goalvault/backend/internal/httputil"
	"github.com/goalvault/backend/internal/models"
)

func RegisterWalletRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsWallet)
		r.GET("", GetWallet)
	}
	{
		r.OPTIONS("/deposits", OptionsWalletDeposits)
		r.POST("/deposits", CreateWalletDeposit)
	}
	{
		r.OPTIONS("/withdrawals", OptionsWalletWithdrawals)
		r.POST("/withdrawals", CreateWalletWithdrawal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallet
// @Success		204
// @Router			/v1/wallet [options]
func OptionsWallet(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallet
// @Success		204
// @Router			/v1/wallet/deposits [options]
func OptionsWalletDeposits(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallet
// @Success		204
// @Router			/v1/wallet/withdrawals [options]
func OptionsWalletWithdrawals(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get wallet
// @Description	Returns the wallet of the requesting user
// @Tags			Wallet
// @Produce		json
// @Success		200	{object}	WalletResponse
// @Failure		400	{object}	WalletResponse
// @Failure		401	{object}	WalletResponse
// @Failure		404	{object}	WalletResponse
// @Failure		500	{object}	WalletResponse
// @Router			/v1/wallet [get]
func GetWallet(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{
			Error: &e,
		})
		return
	}

	if !user.HasWallet() {
		e := models.ErrNoWallet.Error()
		c.JSON(status(models.ErrNoWallet), WalletResponse{
			Error: &e,
		})
		return
	}

	apiResource := newWallet(c, user.Wallet)
	c.JSON(http.StatusOK, WalletResponse{Data: &apiResource})
}

// @Summary		Deposit funds
// @Description	Adds external funds to the wallet of the requesting user
// @Tags			Wallet
// @Accept			json
// @Produce		json
// @Success		201			{object}	WalletResponse
// @Failure		400			{object}	WalletResponse
// @Failure		401			{object}	WalletResponse
// @Failure		404			{object}	WalletResponse
// @Failure		500			{object}	WalletResponse
// @Param			deposit	body		WalletTransaction	true	"Deposit"
// @Router			/v1/wallet/deposits [post]
func CreateWalletDeposit(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{
			Error: &e,
		})
		return
	}

	var data WalletTransaction
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{
			Error: &e,
		})
		return
	}

	user, err = engine.Deposit(user.ID, data.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{
			Error: &e,
		})
		return
	}

	apiResource := newWallet(c, user.Wallet)
	c.JSON(http.StatusCreated, WalletResponse{Data: &apiResource})
}

// @Summary		Withdraw funds
// @Description	Removes uncommitted funds from the wallet of the requesting user
// @Tags			Wallet
// @Accept			json
// @Produce		json
// @Success		201			{object}	WalletResponse
// @Failure		400			{object}	WalletResponse
// @Failure		401			{object}	WalletResponse
// @Failure		404			{object}	WalletResponse
// @Failure		500			{object}	WalletResponse
// @Param			withdrawal	body		WalletTransaction	true	"Withdrawal"
// @Router			/v1/wallet/withdrawals [post]
func CreateWalletWithdrawal(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{
			Error: &e,
		})
		return
	}

	var data WalletTransaction
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{
			Error: &e,
		})
		return
	}

	user, err = engine.WithdrawFunds(user.ID, data.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{
			Error: &e,
		})
		return
	}

	apiResource := newWallet(c, user.Wallet)
	c.JSON(http.StatusCreated, WalletResponse{Data: &apiResource})
}
