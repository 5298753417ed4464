// Package google builds authenticated HTTP clients for the Google APIs from
// a service-account key file.
//
// The daemon runs headless, so three-legged OAuth is not an option; instead a
// service account (optionally impersonating a Workspace user via domain-wide
// delegation) signs for the Sheets and Calendar scopes. The spreadsheet must
// be shared with the service account, and calendar writes require either the
// delegated subject or the calendar being shared with the account directly.
package google
