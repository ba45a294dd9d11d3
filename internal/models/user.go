package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// swagger:enum UserRole
type UserRole string

const (
	RoleInvestor   UserRole = "INVESTOR"
	RoleConsultant UserRole = "CONSULTANT"
	RoleAdmin      UserRole = "ADMIN"
)

// ParseUserRole parses the string case-insensitively into a UserRole.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(strings.ToUpper(s)) {
	case RoleInvestor, RoleConsultant, RoleAdmin:
		return UserRole(strings.ToUpper(s)), true
	}

	return "", false
}

type User struct {
	DefaultModel
	Name  string   `json:"name" example:"Ada"`
	Email string   `json:"email" gorm:"uniqueIndex" example:"ada@example.com"`
	Role  UserRole `json:"role" example:"INVESTOR"`

	// The wallet only carries funds for investor users, see HasWallet.
	Wallet Wallet `json:"wallet" gorm:"embedded;embeddedPrefix:wallet_"`
}

// HasWallet reports whether this user carries a virtual wallet.
// Only investors do, consultants and admins hold no funds.
func (u User) HasWallet() bool {
	return u.Role == RoleInvestor
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))

	return nil
}

// Returns all users on this instance for export
func (User) Export() (json.RawMessage, error) {
	var users []User
	err := DB.Unscoped().Where(&User{}).Find(&users).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&users)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
