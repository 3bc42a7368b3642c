package utils

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// ErrorStatus binds a sentinel error to the HTTP status it is reported with.
type ErrorStatus struct {
	Err  error
	Code int
}

// RespondWithServiceError reports err with the status of the first matching
// rule. Unmatched errors are logged and surface as a generic 500.
func RespondWithServiceError(w http.ResponseWriter, err error, rules ...ErrorStatus) {
	for _, rule := range rules {
		if errors.Is(err, rule.Err) {
			RespondWithError(w, rule.Code, err.Error())
			return
		}
	}
	zap.L().Error("request failed", zap.Error(err))
	RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
