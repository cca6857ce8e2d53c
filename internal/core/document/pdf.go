package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Exporter writes generated documents as A4 portrait PDFs with selectable
// text. Page breaks are handled by fpdf; the exporter only lays out the
// title block and the body paragraphs.
type Exporter struct {
	fontFamily string
	fontSize   float64
	margin     float64
}

func NewExporter() *Exporter {
	return &Exporter{
		fontFamily: "Times",
		fontSize:   12,
		margin:     20,
	}
}

// Export produces the PDF bytes for a handle. It holds no state, so a
// failed export can simply be retried.
func (e *Exporter) Export(handle *DocumentHandle) ([]byte, error) {
	if handle == nil || handle.Body == "" {
		return nil, ErrNotGenerated
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(e.margin, e.margin, e.margin)
	pdf.SetAutoPageBreak(true, e.margin)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 2*e.margin

	pdf.SetFont(e.fontFamily, "B", e.fontSize+4)
	pdf.MultiCell(usable, 9, handle.Title, "", "C", false)
	pdf.Ln(4)

	pdf.SetFont(e.fontFamily, "", e.fontSize)
	for _, line := range strings.Split(handle.Body, "\n") {
		if strings.TrimSpace(line) == "" {
			pdf.Ln(5)
			continue
		}
		pdf.MultiCell(usable, 6, line, "", "L", false)
	}

	pdf.SetY(-15)
	pdf.SetFont(e.fontFamily, "I", 8)
	pdf.CellFormat(usable, 5,
		fmt.Sprintf("Generated %s", handle.GeneratedAt.Format("2006-01-02 15:04 MST")),
		"", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
