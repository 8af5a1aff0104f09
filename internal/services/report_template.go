package services

import (
	"fmt"
	"html/template"
	"strings"

	"bookly_backend/internal/models"
)

// monthlyReportData is the data fed into the report email template.
type monthlyReportData struct {
	TenantName     string
	Month          string
	Summary        models.ReportSummary
	CompletionRate float64
	AvgRevenue     float64
}

const monthlyReportTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2933; max-width: 640px; margin: 0 auto;">
  <h1 style="font-size: 20px;">Monthly report for {{.TenantName}}</h1>
  <p style="color: #52606d;">Here is how your business did in {{.Month}}.</p>

  <table style="width: 100%; border-collapse: collapse;">
    <tr>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb;">Total appointments</td>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb; text-align: right;"><strong>{{.Summary.TotalCount}}</strong></td>
    </tr>
    <tr>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb;">Completed</td>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb; text-align: right;"><strong>{{.Summary.CompletedCount}}</strong></td>
    </tr>
    <tr>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb;">Cancelled</td>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb; text-align: right;"><strong>{{.Summary.CancelledCount}}</strong></td>
    </tr>
    <tr>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb;">Completion rate</td>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb; text-align: right;"><strong>{{printf "%.1f" .CompletionRate}}%</strong></td>
    </tr>
    <tr>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb;">Revenue (completed)</td>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb; text-align: right;"><strong>{{printf "%.2f" .Summary.CompletedRevenue}} {{.Summary.Currency}}</strong></td>
    </tr>
    <tr>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb;">Average per completed appointment</td>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb; text-align: right;"><strong>{{printf "%.2f" .AvgRevenue}} {{.Summary.Currency}}</strong></td>
    </tr>
    <tr>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb;">Unique customers</td>
      <td style="padding: 8px; border-bottom: 1px solid #e4e7eb; text-align: right;"><strong>{{.Summary.DistinctCustomers}}</strong></td>
    </tr>
  </table>

{{if .Summary.TopServices}}
  <h2 style="font-size: 16px; margin-top: 24px;">Most requested services</h2>
  <ol>
{{range .Summary.TopServices}}    <li style="padding: 2px 0;">{{.Name}} ({{.Count}})</li>
{{end}}  </ol>
{{end}}
  <p style="color: #9aa5b1; font-size: 12px; margin-top: 32px;">
    You receive this report because you have an active Bookly account.
  </p>
</body>
</html>`

var reportTmpl = template.Must(template.New("monthly_report").Parse(monthlyReportTemplate))

// RenderMonthlyReport renders the HTML email body for one tenant's monthly
// report. monthLabel is the long-form month, e.g. "February 2025".
func RenderMonthlyReport(tenantName, monthLabel string, summary models.ReportSummary) (string, error) {
	data := monthlyReportData{
		TenantName:     tenantName,
		Month:          monthLabel,
		Summary:        summary,
		CompletionRate: summary.CompletionRate(),
		AvgRevenue:     summary.AvgRevenuePerCompleted(),
	}

	var buf strings.Builder
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render monthly report: %w", err)
	}
	return buf.String(), nil
}
