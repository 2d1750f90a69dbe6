package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"kasiswa/internal/models"
)

func sampleRows() []models.ReportRow {
	return []models.ReportRow{
		{
			TransactionID:    1,
			StudentName:      "Adam",
			AttendanceNumber: "1",
			Date:             time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Type:             "Pemasukan",
			Amount:           66000,
			PaymentMonth:     "January",
			PaymentYear:      2024,
			Description:      "SPP Januari",
		},
		{
			TransactionID:    2,
			StudentName:      "Toko ATK",
			AttendanceNumber: "-",
			Date:             time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			Type:             "Pengeluaran",
			Amount:           1250000,
			PaymentMonth:     "January",
			PaymentYear:      2024,
			Description:      "Kertas HVS",
		},
	}
}

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{66000, "Rp 66,000"},
		{1234567, "Rp 1,234,567"},
		{1000000000, "Rp 1,000,000,000"},
		{-66000, "-Rp 66,000"},
	}
	for _, c := range cases {
		if got := FormatRupiah(c.amount); got != c.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	t.Run("writes_header_and_rows", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteCSV(&buf, sampleRows()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d records", len(records))
		}

		header := strings.Join(records[0], ",")
		if header != "Tanggal,Nama Siswa,Absen,Jenis,Nominal,Bulan Bayar,Tahun Bayar,Keterangan" {
			t.Errorf("unexpected header: %q", header)
		}

		first := records[1]
		if first[0] != "2024-01-15" {
			t.Errorf("expected formatted date, got %q", first[0])
		}
		if first[1] != "Adam" || first[2] != "1" {
			t.Errorf("expected student identity columns, got %q %q", first[1], first[2])
		}
		if first[4] != "Rp 66,000" {
			t.Errorf("expected formatted amount, got %q", first[4])
		}
		if first[6] != "2024" {
			t.Errorf("expected payment year, got %q", first[6])
		}
	})

	t.Run("empty_rows_yield_header_only", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteCSV(&buf, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		if len(records) != 1 {
			t.Errorf("expected header only, got %d records", len(records))
		}
	})
}

func TestWritePDF(t *testing.T) {
	t.Run("produces_a_pdf_document", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WritePDF(&buf, sampleRows()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
			t.Error("output does not start with a PDF signature")
		}
	})

	t.Run("empty_rows_still_render_title_page", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WritePDF(&buf, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.Len() == 0 {
			t.Error("expected non-empty document")
		}
	})
}
