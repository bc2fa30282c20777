package report

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type lateEntryRow struct {
	Name        string
	Code        string
	Time        string
	LateMinutes int
}

type repeatLateRow struct {
	Name             string
	Code             string
	LateCount        int
	TotalLateMinutes int
}

type dailyReportData struct {
	Date         string
	Present      int
	Late         int
	LateMinutes  int
	LateEntries  []lateEntryRow
	RepeatLate   []repeatLateRow
	LookbackDays int
}

type fortnightlyRow struct {
	Name string
	Code string
	Summary
}

type fortnightlyReportData struct {
	From string
	To   string
	Rows []fortnightlyRow
}

type overtimeRow struct {
	Name        string
	Code        string
	Date        string
	Hours       string
	Description string
}

type overtimeReportData struct {
	Month      string
	Rows       []overtimeRow
	TotalHours string
}

func renderTemplate(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
