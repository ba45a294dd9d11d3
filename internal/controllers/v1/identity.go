package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/goalvault/backend/internal/httputil"
	"github.com/goalvault/backend/internal/models"
	"github.com/google/uuid"
)

// currentUser resolves the requesting user from the X-User-ID header.
//
// Authentication terminates in front of this service, the header is set
// by the gateway after token verification. An unknown ID is a not found
// error, a missing header is an authentication error.
func currentUser(c *gin.Context) (models.User, error) {
	header := c.GetHeader("X-User-ID")
	if header == "" {
		return models.User{}, errMissingUserHeader
	}

	id, err := uuid.Parse(header)
	if err != nil {
		return models.User{}, httputil.ErrInvalidUUID
	}

	var user models.User
	err = models.DB.First(&user, "id = ?", id).Error
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}
