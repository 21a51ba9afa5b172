// Package excel provides Excel report generation for the fleet monitor. It
// implements the report.Writer interface to generate .xlsx files with a poll
// summary sheet and a per-host detail sheet.
package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"fleetmon/internal/model"
	"fleetmon/internal/report"
)

const (
	// Sheet names
	sheetSummary = "Summary"
	sheetHosts   = "Hosts"

	// Default sheet to remove
	defaultSheet = "Sheet1"

	// Colors for conditional formatting (RGB without #)
	colorAlertBg  = "FFC7CE" // Red background for alerting hosts
	colorAlertFg  = "9C0006" // Dark red text for alerting hosts
	colorHeaderBg = "4472C4" // Blue background for header
	colorHeaderFg = "FFFFFF" // White text for header
	colorOKBg     = "C6EFCE" // Green background for healthy hosts
	colorOKFg     = "006100" // Dark green text for healthy hosts

	// Column widths
	defaultColWidth = 15.0
	wideColWidth    = 40.0
)

// Writer implements report.Writer for Excel format.
type Writer struct {
	timezone *time.Location
}

var _ report.Writer = (*Writer)(nil)

// NewWriter creates a new Excel report writer. If timezone is nil, it
// defaults to the local timezone.
func NewWriter(timezone *time.Location) *Writer {
	if timezone == nil {
		timezone = time.Local
	}
	return &Writer{
		timezone: timezone,
	}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "excel"
}

// Write generates an Excel report from the poll result.
func (w *Writer) Write(result *model.PollResult, outputPath string) error {
	if result == nil {
		return fmt.Errorf("poll result is nil")
	}

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := w.createSummarySheet(f, result); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := w.createHostsSheet(f, result); err != nil {
		return fmt.Errorf("failed to create hosts sheet: %w", err)
	}

	_ = f.DeleteSheet(defaultSheet)

	idx, _ := f.GetSheetIndex(sheetSummary)
	f.SetActiveSheet(idx)

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	return nil
}

// createSummarySheet creates the poll summary worksheet.
func (w *Writer) createSummarySheet(f *excelize.File, result *model.PollResult) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return err
	}

	f.SetCellValue(sheetSummary, "A1", "Fleet CPU Poll Report")
	f.SetCellStyle(sheetSummary, "A1", "A1", titleStyle)

	rows := [][]interface{}{
		{"Started at", result.StartedAt.In(w.timezone).Format("2006-01-02 15:04:05")},
		{"Duration", fmt.Sprintf("%.1fs", result.Duration.Seconds())},
		{"Hosts polled", result.Summary.TotalHosts},
		{"Healthy hosts", result.Summary.HealthyHosts},
		{"Alerting hosts", result.Summary.AlertingHosts},
		{"Failed hosts", result.Summary.FailedHosts},
		{"Version", result.Version},
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+3)
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return err
		}
	}

	f.SetColWidth(sheetSummary, "A", "A", defaultColWidth)
	f.SetColWidth(sheetSummary, "B", "B", wideColWidth)

	return nil
}

// createHostsSheet creates the per-host detail worksheet with alert
// highlighting.
func (w *Writer) createHostsSheet(f *excelize.File, result *model.PollResult) error {
	if _, err := f.NewSheet(sheetHosts); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: colorHeaderFg},
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorHeaderBg}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	alertStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: colorAlertFg},
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorAlertBg}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	okStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: colorOKFg},
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorOKBg}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	header := []interface{}{"Host", "Average CPU (%)", "Instant CPU (%)", "Samples", "Status", "Details"}
	if err := f.SetSheetRow(sheetHosts, "A1", &header); err != nil {
		return err
	}
	f.SetCellStyle(sheetHosts, "A1", "F1", headerStyle)

	for i, host := range result.Hosts {
		if host == nil {
			continue
		}
		rowNum := i + 2

		status := "ok"
		details := host.Details
		switch {
		case host.Failed():
			status = "failed"
		case host.Alert:
			status = "alert"
		}

		row := []interface{}{host.Host, host.Average, host.Instant, host.SampleCount, status, details}
		cell := fmt.Sprintf("A%d", rowNum)
		if err := f.SetSheetRow(sheetHosts, cell, &row); err != nil {
			return err
		}

		statusCell := fmt.Sprintf("E%d", rowNum)
		if host.Alert {
			f.SetCellStyle(sheetHosts, statusCell, statusCell, alertStyle)
		} else {
			f.SetCellStyle(sheetHosts, statusCell, statusCell, okStyle)
		}
	}

	f.SetColWidth(sheetHosts, "A", "E", defaultColWidth)
	f.SetColWidth(sheetHosts, "F", "F", wideColWidth)

	return nil
}
