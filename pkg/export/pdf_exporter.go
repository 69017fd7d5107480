package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfRowHeight    = 7.0
	pdfMinColWidth  = 14.0
	pdfCellPadding  = 2.0
	pdfWideColumns  = 5
	pdfTruncateMark = "..."
)

// PDFExporter renders datasets into a tabular PDF.
type PDFExporter struct {
	now func() time.Time
}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{now: time.Now}
}

// Render creates a PDF document with the dataset title and a table body.
// Tables with many columns are laid out in landscape.
func (e *PDFExporter) Render(data Dataset) ([]byte, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	orientation := "P"
	if len(data.Headers) > pdfWideColumns {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	generated := e.now().UTC().Format("2006-01-02 15:04 MST")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Generated %s - page %d", generated, pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	if data.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, tr(data.Title), "", 1, "C", false, 0, "")
		pdf.Ln(3)
	}

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	widths := columnWidths(pdf, data, pageWidth-left-right)

	pdf.SetFont("Arial", "B", 10)
	for i, header := range data.Headers {
		pdf.CellFormat(widths[i], 8, tr(header), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range data.Rows {
		for i := range data.Headers {
			value := ""
			if i < len(row) {
				value = fitText(pdf, tr(row[i]), widths[i]-pdfCellPadding)
			}
			pdf.CellFormat(widths[i], pdfRowHeight, value, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths splits the usable width proportionally to the widest cell of each column.
func columnWidths(pdf *gofpdf.Fpdf, data Dataset, usable float64) []float64 {
	pdf.SetFont("Arial", "", 9)
	natural := make([]float64, len(data.Headers))
	for i, header := range data.Headers {
		natural[i] = pdf.GetStringWidth(header) + pdfCellPadding*2
	}
	for _, row := range data.Rows {
		for i := range data.Headers {
			if i >= len(row) {
				continue
			}
			if w := pdf.GetStringWidth(row[i]) + pdfCellPadding*2; w > natural[i] {
				natural[i] = w
			}
		}
	}

	var total float64
	for i := range natural {
		if natural[i] < pdfMinColWidth {
			natural[i] = pdfMinColWidth
		}
		total += natural[i]
	}
	widths := make([]float64, len(natural))
	for i, w := range natural {
		widths[i] = usable * w / total
	}
	return widths
}

// fitText truncates s so it renders within width.
func fitText(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+pdfTruncateMark) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + pdfTruncateMark
}
