package services

import (
	"sort"
	"strconv"

	"gorm.io/gorm"

	apperrors "kasiswa/internal/errors"
	"kasiswa/internal/models"
)

// RecapRow is one active student's payment status for a recap year.
// Months maps each canonical month name to whether at least one income-like
// payment was recorded for it. Amount is PaidCount times the fixed monthly
// fee, a synthetic estimate that deliberately ignores the actual transaction
// amounts.
type RecapRow struct {
	AttendanceNumber string          `json:"attendance_number"`
	StudentName      string          `json:"student_name"`
	Months           map[string]bool `json:"months"`
	PaidCount        int             `json:"paid_count"`
	Amount           int64           `json:"amount"`
}

// RecapTotal is the TOTAL summary row: per month, the number of students who
// paid that month; PaidCount is the grand total of paid months across all
// students. The attendance-number column is blank by construction.
type RecapTotal struct {
	MonthCounts map[string]int `json:"month_counts"`
	PaidCount   int            `json:"paid_count"`
}

// RecapRupiah is the RUPIAH summary row: per month, the month's student count
// times the fixed fee; Amount is the grand total of paid months times the fee.
type RecapRupiah struct {
	MonthAmounts map[string]int64 `json:"month_amounts"`
	Amount       int64            `json:"amount"`
}

// Recap is the per-student, per-month payment matrix for one year, plus the
// TOTAL and RUPIAH aggregate rows.
type Recap struct {
	Year       int         `json:"year"`
	MonthlyFee int64       `json:"monthly_fee"`
	Rows       []RecapRow  `json:"rows"`
	Total      RecapTotal  `json:"total"`
	Rupiah     RecapRupiah `json:"rupiah"`
}

// BuildRecap computes the payment recap for a year from full student and
// transaction feeds. It is a pure function: no I/O, no mutation of its
// inputs, recomputed on every call.
//
// Only active students appear; payments of inactive students are not
// reflected anywhere in the result. Transactions count when their payment
// year matches and their type is income-like; several payments for the same
// student and month count once (a policy choice, not a bug).
func BuildRecap(students []models.Student, transactions []models.Transaction, year int, fee int64) *Recap {
	recap := &Recap{
		Year:       year,
		MonthlyFee: fee,
		Rows:       []RecapRow{},
		Total:      RecapTotal{MonthCounts: map[string]int{}},
		Rupiah:     RecapRupiah{MonthAmounts: map[string]int64{}},
	}
	for _, month := range models.Months {
		recap.Total.MonthCounts[month] = 0
		recap.Rupiah.MonthAmounts[month] = 0
	}

	active := make([]models.Student, 0, len(students))
	for _, st := range students {
		if st.IsActive() {
			active = append(active, st)
		}
	}
	if len(active) == 0 {
		return recap
	}

	// studentID -> set of distinct paid months
	paidMonths := make(map[uint]map[string]bool)
	for _, t := range transactions {
		if t.PaymentYear != year || t.Class() != models.ClassIncome || t.StudentID == nil {
			continue
		}
		if paidMonths[*t.StudentID] == nil {
			paidMonths[*t.StudentID] = make(map[string]bool)
		}
		paidMonths[*t.StudentID][t.PaymentMonth] = true
	}

	for _, st := range active {
		row := RecapRow{
			AttendanceNumber: st.AttendanceNumber,
			StudentName:      st.Name,
			Months:           make(map[string]bool, len(models.Months)),
		}
		paid := paidMonths[st.ID]
		for _, month := range models.Months {
			row.Months[month] = paid[month]
			if paid[month] {
				row.PaidCount++
			}
		}
		row.Amount = int64(row.PaidCount) * fee
		recap.Rows = append(recap.Rows, row)
	}

	sort.SliceStable(recap.Rows, func(i, j int) bool {
		return recapLess(recap.Rows[i].AttendanceNumber, recap.Rows[j].AttendanceNumber)
	})

	for _, row := range recap.Rows {
		recap.Total.PaidCount += row.PaidCount
		for _, month := range models.Months {
			if row.Months[month] {
				recap.Total.MonthCounts[month]++
			}
		}
	}
	for _, month := range models.Months {
		recap.Rupiah.MonthAmounts[month] = int64(recap.Total.MonthCounts[month]) * fee
	}
	recap.Rupiah.Amount = int64(recap.Total.PaidCount) * fee

	return recap
}

// recapLess orders attendance numbers with a single per-row key policy:
// a value that parses as an integer gets a numeric key, anything else a
// lexical key. Numeric keys sort before lexical keys, and the empty value
// (attendance number absent) sorts after everything.
func recapLess(a, b string) bool {
	an, aNum := parseAttendance(a)
	bn, bNum := parseAttendance(b)

	switch {
	case aNum && bNum:
		return an < bn
	case aNum:
		return true
	case bNum:
		return false
	case a == "" || b == "":
		return b == "" && a != ""
	default:
		return a < b
	}
}

func parseAttendance(v string) (int, bool) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// recapService loads the data feeds and delegates to BuildRecap.
type recapService struct {
	db             *gorm.DB
	studentService StudentServicer
	fee            int64
}

// NewRecapService creates a new RecapServicer with the given fixed monthly fee.
func NewRecapService(db *gorm.DB, studentService StudentServicer, fee int64) RecapServicer {
	return &recapService{db: db, studentService: studentService, fee: fee}
}

// GetRecap computes the payment recap for the given year.
func (s *recapService) GetRecap(year int) (*Recap, error) {
	students, err := s.studentService.ListAllStudents()
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.db.Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return BuildRecap(students, transactions, year, s.fee), nil
}
