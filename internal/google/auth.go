package google

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
)

// OAuth scopes used by sheetcal. The row source only ever reads.
const (
	ScopeSpreadsheetsReadonly = "https://www.googleapis.com/auth/spreadsheets.readonly"
	ScopeCalendar             = "https://www.googleapis.com/auth/calendar"
)

// NewClient returns an HTTP client authenticated via the service-account key
// at credentialsFile for the given scopes. A non-empty subject enables
// domain-wide delegation and issues tokens on behalf of that user.
func NewClient(ctx context.Context, credentialsFile, subject string, scopes ...string) (*http.Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading service-account key: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parsing service-account key: %w", err)
	}
	conf.Subject = subject

	return conf.Client(ctx), nil
}
