package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"kasiswa/internal/models"
)

// csvHeader is the fixed presentation header row. Internal IDs are not
// exported.
var csvHeader = []string{
	"Tanggal", "Nama Siswa", "Absen", "Jenis",
	"Nominal", "Bulan Bayar", "Tahun Bayar", "Keterangan",
}

const dateLayout = "2006-01-02"

// WriteCSV writes the report rows as CSV with the renamed header row,
// formatted dates, and formatted currency.
func WriteCSV(w io.Writer, rows []models.ReportRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Date.Format(dateLayout),
			row.StudentName,
			row.AttendanceNumber,
			row.Type,
			FormatRupiah(row.Amount),
			row.PaymentMonth,
			strconv.Itoa(row.PaymentYear),
			row.Description,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
