package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyWindowMidMonth(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

	start, end := MonthlyWindow(now)

	assert.Equal(t, "2025-02-01", start.Format(ReportDateLayout))
	assert.Equal(t, "2025-02-28", end.Format(ReportDateLayout))
}

func TestMonthlyWindowYearBoundary(t *testing.T) {
	now := time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)

	start, end := MonthlyWindow(now)

	assert.Equal(t, "2024-12-01", start.Format(ReportDateLayout))
	assert.Equal(t, "2024-12-31", end.Format(ReportDateLayout))
}

func TestMonthlyWindowLeapFebruary(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	start, end := MonthlyWindow(now)

	assert.Equal(t, "2024-02-01", start.Format(ReportDateLayout))
	assert.Equal(t, "2024-02-29", end.Format(ReportDateLayout))
}

func TestMonthlyWindowKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2025, time.July, 20, 23, 59, 0, 0, loc)

	start, end := MonthlyWindow(now)

	assert.Equal(t, loc, start.Location())
	assert.Equal(t, "2025-06-01", start.Format(ReportDateLayout))
	assert.Equal(t, "2025-06-30", end.Format(ReportDateLayout))
}
