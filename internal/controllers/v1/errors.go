package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/budget-steps/backend/internal/httputil"
	"github.com/budget-steps/backend/internal/identity"
	"github.com/budget-steps/backend/internal/ledger"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"there is no step with ID 4: not found"`
}

var (
	errInvalidID             = errors.New("the ID in the URL must be a positive integer")
	errBudgetNotSet          = errors.New("the budget query parameter must be set")
	errStepNotSet            = errors.New("the step query parameter must be set")
	errKindEmpty             = errors.New("the kind query parameter must be planned or actual when it is set")
	errOwnerNotSet           = errors.New("the ownerUserId must be set when the request does not identify a user")
	errAccountFieldImmutable = errors.New("only the archived field of an account can be updated")
	errArchivedNotSet        = errors.New("the archived field must be set")
)

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	var typeError *json.UnmarshalTypeError

	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, identity.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, identity.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrInvalidRange),
		errors.Is(err, ledger.ErrCrossBudgetReference),
		errors.Is(err, ledger.ErrInvalidOperation),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidQueryString),
		errors.Is(err, httputil.ErrValidation),
		errors.As(err, &typeError),
		errors.Is(err, errInvalidID),
		errors.Is(err, errBudgetNotSet),
		errors.Is(err, errStepNotSet),
		errors.Is(err, errKindEmpty),
		errors.Is(err, errOwnerNotSet),
		errors.Is(err, errAccountFieldImmutable),
		errors.Is(err, errArchivedNotSet):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// failure returns the status and message to respond with for err.
//
// Details of server errors are logged, the client only receives the
// request ID to report.
func failure(c *gin.Context, err error) (int, *string) {
	code := status(err)
	message := err.Error()

	if code == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		message = fmt.Sprintf("an error occurred on the server during your request, please contact your server administrator. The request id is '%s', send this to your server administrator to help them finding the problem", requestid.Get(c))
	}

	return code, &message
}
