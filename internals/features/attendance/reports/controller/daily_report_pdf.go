// file: internals/features/attendance/reports/controller/daily_report_pdf.go
package controller

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/gofiber/fiber/v2"

	d "github.com/IdanZeman/Miuim-sub008/internals/features/attendance/reports/dto"
	helper "github.com/IdanZeman/Miuim-sub008/internals/helpers"
)

// DailyPDF renders the daily report as a downloadable PDF.
func (ctl *ReportController) DailyPDF(c *fiber.Ctx) error {
	orgID, err := helper.GetOrgID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	day, err := queryDay(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}

	report, err := ctl.buildDailyReport(c, orgID, day)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := renderDailyReportPDF(&buf, report); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="daily_report_%s.pdf"`, report.Date))
	return c.Send(buf.Bytes())
}

func renderDailyReportPDF(buf *bytes.Buffer, report d.DailyReportResponse) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Daily Presence Report: %s", report.Date))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("People: %d    Available: %d", report.TotalPeople, report.TotalAvailable))
	pdf.Ln(12)

	for _, team := range report.Teams {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, fmt.Sprintf("%s (%d/%d available)", team.TeamName, team.Available, team.Total))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		statuses := make([]string, 0, len(team.ByStatus))
		for status := range team.ByStatus {
			statuses = append(statuses, status)
		}
		sort.Strings(statuses)
		for _, status := range statuses {
			pdf.Cell(0, 8, fmt.Sprintf("  - %s: %d", status, team.ByStatus[status]))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if len(report.Teams) == 0 {
		pdf.Cell(0, 8, "No active people for this date.")
		pdf.Ln(8)
	}

	return pdf.Output(buf)
}
