package services

import "time"

const (
	// ReportDateLayout is the ISO date format used for range queries.
	ReportDateLayout = "2006-01-02"
	// ReportPeriodLayout keys one reporting month, e.g. "2025-02".
	ReportPeriodLayout = "2006-01"
	// ReportMonthLabelLayout is the human-readable month, e.g. "February 2025".
	ReportMonthLabelLayout = "January 2006"
)

// MonthlyWindow returns the inclusive [first day, last day] date range of
// the calendar month preceding now, in now's location. The window depends
// only on now, so a run is deterministic for a given invocation time.
func MonthlyWindow(now time.Time) (start, end time.Time) {
	firstOfCurrent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start = firstOfCurrent.AddDate(0, -1, 0)
	end = firstOfCurrent.AddDate(0, 0, -1)
	return start, end
}
