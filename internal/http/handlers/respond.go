package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v5"
)

var errBadBody = errors.New("request body is not valid JSON")

// bindJSON decodes the request body into v.
func bindJSON(c *echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return fmt.Errorf("%w: %v", errBadBody, err)
	}
	return nil
}

// RespondError writes err as a JSON body when it is a client error and
// returns it unchanged otherwise, leaving it to the server error handler.
func RespondError(c *echo.Context, err error) error {
	ce, ok := ClassifyError(err)
	if !ok {
		return err
	}
	body := map[string]any{"error": ce.Message}
	if len(ce.Fields) > 0 {
		body["fields"] = ce.Fields
	}
	return c.JSON(ce.Status, body)
}

func isFormRequest(c *echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ct, echo.MIMEApplicationForm) || strings.HasPrefix(ct, echo.MIMEMultipartForm)
}

func noContent(c *echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
