package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/open-sspm/open-aigov/internal/http/viewmodels"
)

const flashToastCookieName = "oag_toast"

// setFlashToast stores a toast for the next page render. Toasts survive one
// redirect and expire after 30 seconds.
func setFlashToast(c *echo.Context, toast viewmodels.ToastViewData) {
	toast, ok := cleanToast(toast)
	if !ok {
		return
	}
	payload, err := json.Marshal(toast)
	if err != nil {
		return
	}
	c.SetCookie(toastCookie(base64.RawURLEncoding.EncodeToString(payload), 30))
}

func popFlashToast(c *echo.Context) *viewmodels.ToastViewData {
	cookie, err := c.Cookie(flashToastCookieName)
	if err != nil || cookie == nil {
		return nil
	}
	c.SetCookie(toastCookie("", -1))

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var toast viewmodels.ToastViewData
	if err := json.Unmarshal(raw, &toast); err != nil {
		return nil
	}
	toast, ok := cleanToast(toast)
	if !ok {
		return nil
	}
	return &toast
}

func toastCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     flashToastCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge < 0 {
		cookie.Expires = time.Unix(0, 0)
	}
	return cookie
}

func cleanToast(toast viewmodels.ToastViewData) (viewmodels.ToastViewData, bool) {
	switch category := strings.ToLower(strings.TrimSpace(toast.Category)); category {
	case "success", "error", "warning", "info":
		toast.Category = category
	default:
		toast.Category = "info"
	}
	toast.Title = strings.TrimSpace(toast.Title)
	toast.Description = strings.TrimSpace(toast.Description)
	return toast, toast.Title != "" || toast.Description != ""
}
