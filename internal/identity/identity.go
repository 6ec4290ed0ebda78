// Package identity reads the user a request is made for and checks their
// access to budgets.
//
// Users are authenticated by the API gateway in front of this service,
// which forwards the ID of the user in the X-User-ID header.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/budget-steps/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Header is the request header carrying the user ID.
const Header = "X-User-ID"

const contextKey = "identity_user"

var (
	ErrUnauthenticated = errors.New("the request does not identify a user")
	ErrForbidden       = errors.New("access to the budget is not allowed")
)

type httpError struct {
	Error string `json:"error"`
}

// Middleware stores the user of the request in the context.
//
// With required set, requests without a valid user are rejected. Otherwise
// they are processed without a user, trusting the gateway to have checked
// access already.
func Middleware(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		value := c.GetHeader(Header)
		if value == "" {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: ErrUnauthenticated.Error()})
				return
			}

			c.Next()
			return
		}

		id, err := strconv.ParseUint(value, 10, 0)
		if err != nil || id == 0 {
			log.Debug().Str("request-id", requestid.Get(c)).Str("value", value).Msg("invalid user header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: fmt.Sprintf("%s: %s is not a valid user ID", ErrUnauthenticated, Header)})
			return
		}

		c.Set(contextKey, uint(id))
		c.Next()
	}
}

// User returns the user of the request, nil when the request has none.
func User(c *gin.Context) *uint {
	value, ok := c.Get(contextKey)
	if !ok {
		return nil
	}

	id := value.(uint)
	return &id
}

// Access reads the access users have to budgets.
type Access interface {
	Role(ctx context.Context, budgetID, userID uint) (models.Role, bool, error)
	VisibleBudgets(ctx context.Context, userID uint) ([]uint, error)
}

// Authorizer checks the access of users to budgets.
type Authorizer struct {
	access Access
}

func NewAuthorizer(access Access) *Authorizer {
	return &Authorizer{access: access}
}

// Require returns an error wrapping ErrForbidden when the user does not
// hold the role on the budget. Requests without user are always allowed.
func (a *Authorizer) Require(ctx context.Context, user *uint, budgetID uint, role models.Role) error {
	if user == nil {
		return nil
	}

	held, ok, err := a.access.Role(ctx, budgetID, *user)
	if err != nil {
		return err
	}

	if !ok || !held.Allows(role) {
		return fmt.Errorf("user %d is not allowed to act as %s on budget %d: %w", *user, role, budgetID, ErrForbidden)
	}

	return nil
}

// Visible returns the IDs of the budgets the user can read. For requests
// without user, it returns nil which does not restrict anything.
func (a *Authorizer) Visible(ctx context.Context, user *uint) ([]uint, error) {
	if user == nil {
		return nil, nil
	}

	return a.access.VisibleBudgets(ctx, *user)
}
