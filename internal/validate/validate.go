// Package validate holds the field validators shared by credential, model and risk forms.
//
// Validators return an empty string when the value is acceptable and a
// user-facing message otherwise, so callers can collect them into FieldErrors.
package validate

import (
	"encoding/json"
	"net"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlPattern   = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
	guidPattern  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

func Required(value string) string {
	if strings.TrimSpace(value) == "" {
		return "This field is required"
	}
	return ""
}

func Email(value string) string {
	if msg := Required(value); msg != "" {
		return msg
	}
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		return "Enter a valid email address"
	}
	return ""
}

func URL(value string) string {
	if msg := Required(value); msg != "" {
		return msg
	}
	if !urlPattern.MatchString(strings.TrimSpace(value)) {
		return "Enter a valid URL starting with http:// or https://"
	}
	return ""
}

// OptionalURL accepts an empty value and otherwise applies URL.
func OptionalURL(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return URL(value)
}

func GUID(value string) string {
	if msg := Required(value); msg != "" {
		return msg
	}
	if !guidPattern.MatchString(strings.TrimSpace(value)) {
		return "Enter a valid GUID"
	}
	return ""
}

// JSON accepts any syntactically valid JSON document.
func JSON(value string) string {
	if msg := Required(value); msg != "" {
		return msg
	}
	if !json.Valid([]byte(strings.TrimSpace(value))) {
		return "Enter valid JSON"
	}
	return ""
}

// HostURL validates a workspace or account host. A bare host is accepted and
// treated as https. The host must end in a registrable domain.
func HostURL(value string) string {
	if msg := Required(value); msg != "" {
		return msg
	}
	host, ok := NormalizeHostURL(value)
	if !ok {
		return "Enter a valid host URL"
	}
	u, _ := url.Parse(host)
	hostname := u.Hostname()
	if ip := net.ParseIP(hostname); ip != nil {
		return "Enter a host name, not an IP address"
	}
	if _, err := publicsuffix.EffectiveTLDPlusOne(hostname); err != nil {
		return "Enter a host under a registrable domain"
	}
	return ""
}

// NormalizeHostURL returns value as an https URL without trailing slash.
func NormalizeHostURL(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	if !strings.Contains(value, "://") {
		value = "https://" + value
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", false
	}
	return strings.TrimRight(u.String(), "/"), true
}

// FieldErrors maps a form field to its message. It is returned as an error
// when at least one field failed.
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, msg string) {
	if msg == "" {
		return
	}
	if _, exists := fe[field]; exists {
		return
	}
	fe[field] = msg
}

// Check runs fn against value and records a failure under field.
func (fe FieldErrors) Check(field, value string, fn func(string) string) {
	fe.Add(field, fn(value))
}

func (fe FieldErrors) Any() bool {
	return len(fe) > 0
}

// Err returns fe as an error, or nil when empty.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(fe[f])
	}
	return b.String()
}

// Merge copies other into fe with keys prefixed, e.g. "risks.new-1.name".
func (fe FieldErrors) Merge(prefix string, other FieldErrors) {
	for k, v := range other {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		fe.Add(key, v)
	}
}
