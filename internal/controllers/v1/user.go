package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goalvault/backend/internal/httputil"
	"github.com/goalvault/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Defaults for the system goals that are seeded for every new investor.
var (
	defaultEmergencyTarget = decimal.NewFromInt(3000)
	defaultUnlockThreshold = decimal.NewFromInt(5000)
)

func RegisterUserRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsUsers)
		r.POST("", CreateUser)
	}
	{
		r.OPTIONS("/me", OptionsUserMe)
		r.GET("/me", GetUserMe)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUsers(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users/me [options]
func OptionsUserMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create user
// @Description	Creates a new user. Investors get a wallet and the emergency and investment system goals.
// @Tags			Users
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users [post]
func CreateUser(c *gin.Context) {
	var editable UserEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	user, err := editable.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	// The user and their system goals are created in one transaction, an
	// investor never exists without their emergency and investment funds.
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		if !user.HasWallet() {
			return nil
		}

		now := time.Now().In(time.UTC)

		emergency := models.NewEmergencyGoal(user.ID, defaultEmergencyTarget, now)
		if err := tx.Create(&emergency).Error; err != nil {
			return err
		}

		investment := models.NewInvestmentGoal(user.ID, defaultUnlockThreshold, now)
		return tx.Create(&investment).Error
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	apiResource := newUser(c, user)
	c.JSON(http.StatusCreated, UserResponse{Data: &apiResource})
}

// @Summary		Get the requesting user
// @Description	Returns the user making the request
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	UserResponse
// @Failure		401	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Router			/v1/users/me [get]
func GetUserMe(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	apiResource := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &apiResource})
}
