package services

import (
	"sort"
	"strconv"
	"strings"

	"bookly_backend/internal/models"
)

// TopServicesLimit is how many ranked services a monthly report carries.
const TopServicesLimit = 5

// TopNByCount returns the n most frequent values in keys, descending by
// count. Ties keep the order in which a value was first encountered, so the
// ranking is deterministic for a given input order.
func TopNByCount(keys []string, n int) []models.ServiceCount {
	counts := make(map[string]int)
	order := []string{}
	for _, k := range keys {
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	// order is first-seen order; SliceStable preserves it among equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if n > len(order) {
		n = len(order)
	}
	ranked := make([]models.ServiceCount, 0, n)
	for _, k := range order[:n] {
		ranked = append(ranked, models.ServiceCount{Name: k, Count: counts[k]})
	}
	return ranked
}

// parseAmount coerces a raw amount column value to a float. A missing or
// blank value coerces to zero and is not a data-quality problem; a non-empty
// value that fails to parse also coerces to zero but is flagged.
func parseAmount(raw *string) (value float64, ok bool) {
	if raw == nil {
		return 0, true
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return 0, true
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Aggregate computes the report summary for one tenant's appointments. It is
// a pure function of its input: source records are never mutated.
func Aggregate(appointments []models.Appointment, currency string) models.ReportSummary {
	summary := models.ReportSummary{Currency: currency}
	customers := make(map[int64]struct{})
	serviceNames := []string{}

	for i := range appointments {
		appt := &appointments[i]
		summary.TotalCount++

		amount, ok := parseAmount(appt.Amount)
		if !ok {
			summary.InvalidAmountCount++
		}

		switch appt.Status {
		case models.AppointmentStatusCompleted:
			summary.CompletedCount++
			summary.CompletedRevenue += amount
		case models.AppointmentStatusCancelled:
			summary.CancelledCount++
		}

		if appt.CustomerID != nil {
			customers[*appt.CustomerID] = struct{}{}
		}
		if appt.ServiceName != nil && *appt.ServiceName != "" {
			serviceNames = append(serviceNames, *appt.ServiceName)
		}
	}

	summary.DistinctCustomers = len(customers)
	summary.TopServices = TopNByCount(serviceNames, TopServicesLimit)
	return summary
}
