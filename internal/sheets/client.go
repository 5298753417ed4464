package sheets

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	sheets "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"github.com/schedsync/sheetcal/internal/schedule"
)

// Column positions within the fetched A:G block.
const (
	colDaySpec  = 0 // A
	colCell     = 1 // B
	colLocation = 5 // F
	colStableID = 6 // G

	// firstDataRow is the first spreadsheet row holding schedule data;
	// rows above it are headers.
	firstDataRow = 4
)

// Client wraps the Google Sheets service for one schedule spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	rowLimit      int
}

// NewClient creates a Sheets client over an authenticated HTTP client.
func NewClient(ctx context.Context, httpClient *http.Client, spreadsheetID string, rowLimit int) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		rowLimit:      rowLimit,
	}, nil
}

// ListPeriods returns the spreadsheet's tab titles in sheet order. Each title
// is a period label.
func (c *Client) ListPeriods(ctx context.Context) ([]string, error) {
	resp, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	periods := make([]string, 0, len(resp.Sheets))
	for _, s := range resp.Sheets {
		if s.Properties != nil {
			periods = append(periods, s.Properties.Title)
		}
	}
	return periods, nil
}

// FetchRows reads the data rows of one period tab and maps them into RawRows.
// Rows are returned in sheet order with their 1-based row numbers; empty rows
// are kept (the assembler skips them) so numbering stays aligned.
func (c *Client) FetchRows(ctx context.Context, period string) ([]schedule.RawRow, error) {
	readRange := fmt.Sprintf("%s!A%d:G%d", period, firstDataRow, c.rowLimit)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", readRange, err)
	}

	rows := make([]schedule.RawRow, 0, len(resp.Values))
	for i, row := range resp.Values {
		rows = append(rows, mapRow(period, firstDataRow+i, row))
	}
	return rows, nil
}

// mapRow isolates the four columns the engine needs out of one value row.
func mapRow(period string, rowNumber int, row []interface{}) schedule.RawRow {
	return schedule.RawRow{
		SheetSource: period,
		RowIndex:    rowNumber,
		DaySpec:     cellString(row, colDaySpec),
		Cell:        cellString(row, colCell),
		Location:    strings.TrimSpace(cellString(row, colLocation)),
		StableID:    strings.TrimSpace(cellString(row, colStableID)),
	}
}

// cellString extracts column idx as a string; missing trailing columns are
// simply absent from the API response.
func cellString(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	if s, ok := row[idx].(string); ok {
		return s
	}
	return fmt.Sprint(row[idx])
}
