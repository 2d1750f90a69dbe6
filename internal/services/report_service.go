package services

import (
	"time"

	"kasiswa/internal/models"
)

// ReportFilter holds the four independent report predicates. Nil means "all"
// (no restriction) for that predicate. The date range applies to the
// transaction's own input date, not the payment month/year, and is only
// applied when both endpoints are present: the handler skips the range
// entirely when the input is malformed or half-open.
type ReportFilter struct {
	PaymentMonth *string
	PaymentYear  *int
	Type         *string
	FromDate     *time.Time
	ToDate       *time.Time
}

// FilterReportRows returns exactly the subset of rows satisfying all set
// predicates, preserving the input order. It is a pure function; with every
// predicate unset the input comes back unchanged.
//
// The date-range predicate compares parsed calendar dates, never date
// strings, and is inclusive on both endpoints.
func FilterReportRows(rows []models.ReportRow, filter ReportFilter) []models.ReportRow {
	out := make([]models.ReportRow, 0, len(rows))
	for _, row := range rows {
		if filter.PaymentMonth != nil && row.PaymentMonth != *filter.PaymentMonth {
			continue
		}
		if filter.PaymentYear != nil && row.PaymentYear != *filter.PaymentYear {
			continue
		}
		if filter.Type != nil && row.Type != *filter.Type {
			continue
		}
		if filter.FromDate != nil && filter.ToDate != nil {
			d := dateOnly(row.Date)
			if d.Before(dateOnly(*filter.FromDate)) || d.After(dateOnly(*filter.ToDate)) {
				continue
			}
		}
		out = append(out, row)
	}
	return out
}

// dateOnly truncates a timestamp to its calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// reportService loads the denormalized feed and delegates to FilterReportRows.
type reportService struct {
	transactionService TransactionServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(transactionService TransactionServicer) ReportServicer {
	return &reportService{transactionService: transactionService}
}

// GetReport returns the denormalized transaction rows satisfying the filter,
// ordered by date descending as supplied by the transaction feed.
func (s *reportService) GetReport(filter ReportFilter) ([]models.ReportRow, error) {
	rows, err := s.transactionService.ListAllRows()
	if err != nil {
		return nil, err
	}
	return FilterReportRows(rows, filter), nil
}
