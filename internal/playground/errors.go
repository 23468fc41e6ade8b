package playground

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
	"github.com/msto63/rubic/pkg/core/logging"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// GlobalErrorHandler answers with the status that belongs to the error's
// code. Unclassified errors become 500 and are logged.
func GlobalErrorHandler(logger *logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var mdwErr *mdwerror.Error
		if errors.As(err, &mdwErr) {
			code := mdwErr.Code()
			status := code.HTTPStatus()
			if status >= http.StatusInternalServerError {
				logger.Error("Request failed", "path", c.Path(), "error", err.Error())
			}
			_ = c.JSON(status, ErrorResponse{
				Error:   mdwErr.Error(),
				Code:    code.String(),
				Details: mdwErr.Details(),
			})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, ErrorResponse{Error: fmt.Sprintf("%v", he.Message)})
			return
		}

		logger.Error("Unhandled error", "path", c.Path(), "error", err.Error())
		_ = c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func invalidInput(format string, args ...interface{}) error {
	return mdwerror.Newf(format, args...).WithCode(mdwerror.CodeInvalidInput)
}
