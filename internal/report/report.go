// Package report renders lists and tasks as a PDF document.
package report

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/adatasks/internal/models"
	"github.com/jung-kurt/gofpdf"
)

// StatsFunc returns the counters of one list.
type StatsFunc func(listID string) models.ListStats

// Render writes an A4 report to w: a totals table with one row per list,
// followed by the tasks of every list grouped under its name.
func Render(w io.Writer, lists []models.List, stats StatsFunc, tasks []models.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("adatasks report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	for _, h := range []struct {
		text  string
		width float64
	}{{"List", 80}, {"Total", 30}, {"Completed", 30}, {"Pending", 30}} {
		pdf.CellFormat(h.width, 7, h.text, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	var sum models.ListStats
	for _, l := range lists {
		s := stats(l.ID)
		sum.Total += s.Total
		sum.Completed += s.Completed
		sum.Pending += s.Pending
		pdf.CellFormat(80, 6, tr(l.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprint(s.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprint(s.Completed), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprint(s.Pending), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 6, "All lists", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, fmt.Sprint(sum.Total), "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, fmt.Sprint(sum.Completed), "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, fmt.Sprint(sum.Pending), "1", 0, "R", false, 0, "")
	pdf.Ln(12)

	byList := make(map[string][]models.Task, len(lists))
	for _, t := range tasks {
		byList[t.ListID] = append(byList[t.ListID], t)
	}

	for _, l := range lists {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(40, 8, tr(l.Name))
		pdf.Ln(9)

		pdf.SetFont("Arial", "", 10)
		items := byList[l.ID]
		if len(items) == 0 {
			pdf.MultiCell(0, 6, "(no tasks)", "0", "L", false)
		}
		for _, t := range items {
			pdf.MultiCell(0, 6, tr(Line(t)), "0", "L", false)
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}

// Line formats one task as a report line.
func Line(t models.Task) string {
	mark := "[ ]"
	if t.Completed {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s (%s)", mark, t.Title, t.Priority)
	if t.Assignee != "" {
		line += " - " + t.Assignee
	}
	if t.CompletedAt != nil {
		line += " done " + t.CompletedAt.Format("2006-01-02")
	}
	return line
}
