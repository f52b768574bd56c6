package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/avelok/stint/internal/config"
	"github.com/avelok/stint/internal/models"
	"github.com/avelok/stint/internal/session"
	"github.com/avelok/stint/internal/util"
)

func (m SessionModel) exportReport() SessionModel {
	dir := util.ReportsDir(config.AppName)
	path, err := GenerateSessionReport(m.summary(), m.store.Totals(), dir)
	if err != nil {
		util.LogError("export report", err)
		return m
	}
	m.exported = path
	return m
}

// GenerateSessionReport writes a one-page summary PDF into dir and returns
// the file path.
func GenerateSessionReport(summary models.SessionSummary, totals models.Totals, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("stint-%s.pdf", summary.CompletedAt.Format("2006-01-02-150405")))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Focus Session: %s", summary.CompletedAt.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Category: %s", summary.Category))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Companion: %s", summary.Companion))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Loops planned: %d", summary.LoopsPlanned))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Focus time: %s", session.FormatTime(summary.FocusSeconds)))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Coins earned: %d", summary.CoinsEarned))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Lifetime: %d coins, %s focused", totals.Coins, session.FormatTime(totals.FocusSeconds)))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
