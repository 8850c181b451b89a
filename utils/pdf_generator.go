package utils

import (
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"biomedico/models"
	"biomedico/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// GenerateReportPDF renders the clinical report for a patient through
// headless Chrome. Returns (nil, nil) when the patient does not exist.
func GenerateReportPDF(repo *repository.ReportRepository, pacienteID int64, generatedBy, templatesDir string) ([]byte, error) {
	clinic, err := repo.GetClinicForReport()
	if err != nil {
		return nil, err
	}

	paciente, err := repo.GetPacienteForReport(pacienteID)
	if err != nil {
		return nil, err
	}
	if paciente == nil {
		return nil, nil
	}

	tmpl, err := template.ParseFiles(filepath.Join(templatesDir, "report_template.html"))
	if err != nil {
		return nil, err
	}

	data := models.ReportData{
		Clinic:      clinic,
		Paciente:    paciente,
		Date:        time.Now().Format("02-Jan-2006"),
		GeneratedBy: generatedBy,
	}

	// Write to a temp HTML file and point Chrome at it; chromedp has no
	// direct string-navigation primitive.
	tmpHTML := filepath.Join(os.TempDir(), "reporte_"+time.Now().Format("20060102150405")+".html")
	out, err := os.Create(tmpHTML)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	if err := tmpl.Execute(out, data); err != nil {
		out.Close()
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, err
	}

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
