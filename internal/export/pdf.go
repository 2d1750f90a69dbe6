package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"kasiswa/internal/models"
)

// WritePDF writes the report rows as a minimal PDF: a centered title
// followed by one text line per row.
func WritePDF(w io.Writer, rows []models.ReportRow) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(190, 10, "Laporan Keuangan", "", 1, "C", false, 0, "")

	for _, row := range rows {
		line := fmt.Sprintf("%s | %s | %s | %s",
			row.Date.Format(dateLayout),
			row.StudentName,
			row.Type,
			FormatRupiah(row.Amount),
		)
		pdf.CellFormat(190, 10, line, "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
