package models

import "time"

// ReportRow is a transaction denormalized with the student identity it was
// recorded against, shaped for report listings and export.
type ReportRow struct {
	TransactionID    uint      `json:"transaction_id"`
	StudentID        *uint     `json:"student_id,omitempty"`
	StudentName      string    `json:"student_name"`
	AttendanceNumber string    `json:"attendance_number"`
	Date             time.Time `json:"date"`
	Type             string    `json:"type"`
	Amount           int64     `json:"amount"`
	PaymentMonth     string    `json:"payment_month"`
	PaymentYear      int       `json:"payment_year"`
	Description      string    `json:"description"`
}

// NewReportRow denormalizes a transaction into a report row. When no student
// is linked the recipient becomes the display name, falling back to "-" when
// the recipient is also absent.
func NewReportRow(t Transaction) ReportRow {
	row := ReportRow{
		TransactionID:    t.ID,
		StudentID:        t.StudentID,
		StudentName:      "-",
		AttendanceNumber: "-",
		Date:             t.Date,
		Type:             t.Type,
		Amount:           t.Amount,
		PaymentMonth:     t.PaymentMonth,
		PaymentYear:      t.PaymentYear,
		Description:      t.Description,
	}

	switch {
	case t.Student != nil:
		row.StudentName = t.Student.Name
		if t.Student.AttendanceNumber != "" {
			row.AttendanceNumber = t.Student.AttendanceNumber
		}
	case t.Recipient != "":
		row.StudentName = t.Recipient
	}

	return row
}
