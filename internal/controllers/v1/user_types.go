package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/goalvault/backend/internal/models"
)

type UserEditable struct {
	Name  string `json:"name" example:"Ada" default:""`                             // Name of the user
	Email string `json:"email" example:"ada@example.com" default:""`                // Email address, unique across all users
	Role  string `json:"role" example:"INVESTOR" default:"INVESTOR" enums:"INVESTOR,CONSULTANT,ADMIN"` // Role of the user. Only investors carry a wallet.
}

// model returns the database resource for the API representation of the editable fields
func (editable UserEditable) model() (models.User, error) {
	role := models.RoleInvestor
	if editable.Role != "" {
		parsed, ok := models.ParseUserRole(editable.Role)
		if !ok {
			return models.User{}, errRoleInvalid
		}

		role = parsed
	}

	return models.User{
		Name:  editable.Name,
		Email: editable.Email,
		Role:  role,
	}, nil
}

type UserLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/users/me"`  // The user themselves
	Goals  string `json:"goals" example:"https://example.com/api/v1/goals"`    // The goals of this user
	Wallet string `json:"wallet" example:"https://example.com/api/v1/wallet"`  // The wallet of this user, empty for users without a wallet
}

type User struct {
	models.DefaultModel
	Name   string          `json:"name" example:"Ada"`
	Email  string          `json:"email" example:"ada@example.com"`
	Role   models.UserRole `json:"role" example:"INVESTOR"`
	Wallet *models.Wallet  `json:"wallet"` // The wallet, null for users without one
	Links  UserLinks       `json:"links"`
}

// newUser returns the API v1 representation of the resource
func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	user := User{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Email:        model.Email,
		Role:         model.Role,
		Links: UserLinks{
			Self:  fmt.Sprintf("%s/v1/users/me", url),
			Goals: fmt.Sprintf("%s/v1/goals", url),
		},
	}

	if model.HasWallet() {
		wallet := model.Wallet
		user.Wallet = &wallet
		user.Links.Wallet = fmt.Sprintf("%s/v1/wallet", url)
	}

	return user
}

type UserResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *User   `json:"data"`                                                          // The resource
}
