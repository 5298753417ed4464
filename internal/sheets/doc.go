// Package sheets is the row source: it reads the human-maintained schedule
// spreadsheet through the Google Sheets API and isolates the columns the
// extraction engine needs.
//
// Each spreadsheet tab is one period, its title the period label (for example
// "2025.09"). Within a tab, rows 1–3 are headers; data rows carry the day
// specifier in column A, the schedule cell in column B, the location in
// column F and the stable row identifier in column G.
package sheets
