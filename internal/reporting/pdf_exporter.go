// Package reporting renders a PlacementRecommendation as a printable
// site-survey report, in the shape of the teacher's
// internal/adapters/reporting/pdf_exporter.go (header, score box,
// statistics, findings table, recommendations, footer). This is new
// surface spec.md treats as "higher layer, not part of the core's
// testable contract" (spec.md §6), so it lives outside internal/core
// entirely and only ever reads a PlacementRecommendation value.
package reporting

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/lamco-admin/netkit/internal/deadzone"
	"github.com/lamco-admin/netkit/internal/placement"
)

// PDFExporter renders PlacementRecommendation values to PDF bytes.
type PDFExporter struct{}

// NewPDFExporter constructs a PDFExporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// ReportMeta carries the header fields a PlacementRecommendation alone
// doesn't know: the survey's display name and when the report was built.
type ReportMeta struct {
	SurveyName  string
	SSID        string
	GeneratedAt time.Time
}

// Export renders rec as a PDF site-survey report.
func (e *PDFExporter) Export(meta ReportMeta, rec placement.PlacementRecommendation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	e.addHeader(pdf, meta)
	e.addScore(pdf, rec)
	e.addCoverageStats(pdf, rec)
	e.addDeadZones(pdf, rec)
	e.addActionItems(pdf, rec)
	e.addFooter(pdf, meta)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFExporter) addHeader(pdf *gofpdf.Fpdf, meta ReportMeta) {
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 15, "Site Survey Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 14)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s (%s)", meta.SurveyName, meta.SSID), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", meta.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(8)
}

func (e *PDFExporter) scoreColor(score float64) (r, g, b int) {
	switch {
	case score < 40:
		return 220, 53, 69 // Red
	case score < 70:
		return 255, 149, 0 // Orange
	case score < 90:
		return 255, 204, 0 // Yellow
	default:
		return 52, 199, 89 // Green
	}
}

func (e *PDFExporter) addScore(pdf *gofpdf.Fpdf, rec placement.PlacementRecommendation) {
	r, g, b := e.scoreColor(rec.Score)
	pdf.SetFillColor(r, g, b)
	pdf.Rect(20, pdf.GetY(), 170, 30, "F")

	y := pdf.GetY()
	pdf.SetFont("Arial", "B", 36)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(25, y+5)
	pdf.CellFormat(80, 20, fmt.Sprintf("%.0f/100", rec.Score), "", 0, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 18)
	pdf.SetXY(110, y+8)
	pdf.CellFormat(80, 14, fmt.Sprintf("Cost: %s", rec.CostLevel), "", 0, "L", false, 0, "")

	pdf.SetY(y + 35)
	pdf.Ln(5)
}

func (e *PDFExporter) addCoverageStats(pdf *gofpdf.Fpdf, rec placement.PlacementRecommendation) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 10, "Coverage Summary", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(60, 60, 60)

	rows := []struct{ label, value string }{
		{"Current coverage", fmt.Sprintf("%.1f%%", rec.CurrentCoveragePct)},
		{"Target coverage", fmt.Sprintf("%.1f%%", rec.TargetCoveragePct)},
		{"Dead zones", fmt.Sprintf("%d", len(rec.DeadZones))},
		{"New APs suggested", fmt.Sprintf("%d", len(rec.NewAPSuggestions))},
		{"APs flagged for reposition", fmt.Sprintf("%d", len(rec.RepositionSuggestions))},
	}
	for _, row := range rows {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(60, 7, row.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 11)
		pdf.SetTextColor(0, 102, 204)
		pdf.CellFormat(0, 7, row.value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func (e *PDFExporter) severityColor(sev deadzone.Severity) (r, g, b int) {
	switch sev {
	case deadzone.SeverityCritical:
		return 220, 53, 69
	case deadzone.SeverityHigh:
		return 255, 149, 0
	case deadzone.SeverityMedium:
		return 255, 204, 0
	default:
		return 52, 199, 89
	}
}

func (e *PDFExporter) addDeadZones(pdf *gofpdf.Fpdf, rec placement.PlacementRecommendation) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 10, "Dead Zones", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if len(rec.DeadZones) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 7, "No dead zones detected", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(30, 8, "Severity", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Area", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 8, "Centroid", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 8, "Avg signal", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, z := range rec.DeadZones {
		r, g, b := e.severityColor(z.Severity)
		pdf.SetTextColor(r, g, b)
		pdf.CellFormat(30, 7, z.Severity.String(), "1", 0, "C", false, 0, "")

		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(30, 7, fmt.Sprintf("%d cells", z.AreaCells), "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 7, fmt.Sprintf("(%.1f, %.1f)", z.Centroid.X, z.Centroid.Y), "1", 0, "C", false, 0, "")

		signal := "unknown"
		if z.HasAvgSignal {
			signal = fmt.Sprintf("%.1f dBm", z.AvgSignalDBm)
		}
		pdf.CellFormat(55, 7, signal, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(8)
}

func (e *PDFExporter) addActionItems(pdf *gofpdf.Fpdf, rec placement.PlacementRecommendation) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 10, "Recommended Actions", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(60, 60, 60)

	n := 1
	for _, ap := range rec.NewAPSuggestions {
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. Install a new AP near (%.1f, %.1f) to cover a %s dead zone.",
			n, ap.Location.X, ap.Location.Y, ap.Severity), "", "L", false)
		n++
	}
	for _, rep := range rec.RepositionSuggestions {
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. Reposition AP %s: only %.0f%% survey coverage.",
			n, rep.BSSID, rep.CoveragePct), "", "L", false)
		n++
	}
	for _, pw := range rec.PowerAdjustments {
		direction := "increase"
		if pw.WasReduced {
			direction = "reduce"
		}
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s AP %s power from %.0f dBm to %.0f dBm.",
			n, direction, pw.APID, pw.FromDBm, pw.ToDBm), "", "L", false)
		n++
	}
	for _, ch := range rec.ChannelAssignments {
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. Assign AP %s to channel %d.", n, ch.APID, ch.Channel), "", "L", false)
		n++
	}
	if n == 1 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 7, "No action items; coverage meets target.", "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func (e *PDFExporter) addFooter(pdf *gofpdf.Fpdf, meta ReportMeta) {
	pdf.SetY(-20)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 10, fmt.Sprintf("NetKit site survey report - %s", meta.SurveyName), "", 0, "C", false, 0, "")
}
