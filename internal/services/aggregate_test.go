package services

import (
	"testing"

	"bookly_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }

func TestTopNByCountStableTieBreak(t *testing.T) {
	// B and C both count 5; B appears first, so B must rank before C.
	keys := []string{
		"A", "B", "C", "B", "C", "A", "B", "C",
		"B", "C", "A", "B", "C", "D",
	}

	ranked := TopNByCount(keys, 5)

	require.Len(t, ranked, 4)
	assert.Equal(t, models.ServiceCount{Name: "B", Count: 5}, ranked[0])
	assert.Equal(t, models.ServiceCount{Name: "C", Count: 5}, ranked[1])
	assert.Equal(t, models.ServiceCount{Name: "A", Count: 3}, ranked[2])
	assert.Equal(t, models.ServiceCount{Name: "D", Count: 1}, ranked[3])
}

func TestTopNByCountTruncates(t *testing.T) {
	keys := []string{"a", "b", "c", "a", "b", "a"}

	ranked := TopNByCount(keys, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Name)
	assert.Equal(t, "b", ranked[1].Name)
}

func TestTopNByCountEmptyInput(t *testing.T) {
	assert.Empty(t, TopNByCount(nil, 5))
}

func TestAggregateRevenueIgnoresNonCompleted(t *testing.T) {
	appointments := []models.Appointment{
		{Status: models.AppointmentStatusCompleted, Amount: strPtr("10")},
		{Status: models.AppointmentStatusCancelled, Amount: strPtr("999")},
	}

	summary := Aggregate(appointments, "EUR")

	assert.Equal(t, 2, summary.TotalCount)
	assert.Equal(t, 1, summary.CompletedCount)
	assert.Equal(t, 1, summary.CancelledCount)
	assert.Equal(t, 10.0, summary.CompletedRevenue)
	assert.Equal(t, "EUR", summary.Currency)
}

func TestAggregateCoercesBadAmountsToZero(t *testing.T) {
	appointments := []models.Appointment{
		{Status: models.AppointmentStatusCompleted, Amount: strPtr("25.50")},
		{Status: models.AppointmentStatusCompleted, Amount: strPtr("not-a-number")},
		{Status: models.AppointmentStatusCompleted, Amount: nil},
		{Status: models.AppointmentStatusCompleted, Amount: strPtr("")},
	}

	summary := Aggregate(appointments, "USD")

	assert.Equal(t, 25.5, summary.CompletedRevenue)
	// Only the unparseable non-empty value counts as a data-quality problem.
	assert.Equal(t, 1, summary.InvalidAmountCount)
}

func TestAggregateDistinctCustomers(t *testing.T) {
	appointments := []models.Appointment{
		{Status: models.AppointmentStatusCompleted, CustomerID: int64Ptr(1)},
		{Status: models.AppointmentStatusPending, CustomerID: int64Ptr(1)},
		{Status: models.AppointmentStatusPending, CustomerID: int64Ptr(2)},
		{Status: models.AppointmentStatusCancelled, CustomerID: nil},
	}

	summary := Aggregate(appointments, "USD")

	assert.Equal(t, 2, summary.DistinctCustomers)
}

func TestAggregateTopServices(t *testing.T) {
	appointments := []models.Appointment{
		{Status: models.AppointmentStatusCompleted, ServiceName: strPtr("Haircut")},
		{Status: models.AppointmentStatusCompleted, ServiceName: strPtr("Massage")},
		{Status: models.AppointmentStatusCancelled, ServiceName: strPtr("Haircut")},
		{Status: models.AppointmentStatusPending, ServiceName: nil},
	}

	summary := Aggregate(appointments, "USD")

	require.Len(t, summary.TopServices, 2)
	assert.Equal(t, models.ServiceCount{Name: "Haircut", Count: 2}, summary.TopServices[0])
	assert.Equal(t, models.ServiceCount{Name: "Massage", Count: 1}, summary.TopServices[1])
}

func TestAggregateEmptyInput(t *testing.T) {
	summary := Aggregate(nil, "USD")

	assert.Equal(t, 0, summary.TotalCount)
	assert.Equal(t, 0.0, summary.CompletedRevenue)
	assert.Empty(t, summary.TopServices)
}
