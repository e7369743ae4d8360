package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v5"
)

func isHX(c *echo.Context) bool {
	if c == nil || c.Request() == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(c.Request().Header.Get("HX-Request")), "true")
}

func setHXRedirect(c *echo.Context, url string) {
	if c == nil {
		return
	}
	c.Response().Header().Set("HX-Redirect", url)
}

// setHXToast asks the page to show a toast after an htmx request.
func setHXToast(c *echo.Context, category, title string) {
	c.Response().Header().Set("HX-Trigger", `{"toast":{"category":"`+category+`","title":"`+jsonEscape(title)+`"}}`)
}

func jsonEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	return r.Replace(s)
}

// addVary merges values into the Vary header without duplicates. A "*"
// anywhere replaces the header with "*".
func addVary(c *echo.Context, values ...string) {
	if c == nil || len(values) == 0 {
		return
	}

	header := c.Response().Header()
	var tokens []string
	for _, line := range header.Values(echo.HeaderVary) {
		tokens = append(tokens, strings.Split(line, ",")...)
	}
	tokens = append(tokens, values...)

	seen := make(map[string]bool, len(tokens))
	combined := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if token == "*" {
			header.Set(echo.HeaderVary, "*")
			return
		}
		canonical := http.CanonicalHeaderKey(token)
		if seen[strings.ToLower(canonical)] {
			continue
		}
		seen[strings.ToLower(canonical)] = true
		combined = append(combined, canonical)
	}
	if len(combined) == 0 {
		return
	}
	header.Set(echo.HeaderVary, strings.Join(combined, ", "))
}
