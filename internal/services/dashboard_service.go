package services

import (
	"sort"

	"gorm.io/gorm"

	apperrors "kasiswa/internal/errors"
	"kasiswa/internal/models"
)

// YearlyIncome is one year's income-like total.
type YearlyIncome struct {
	Year  int   `json:"year"`
	Total int64 `json:"total"`
}

// ExpenseGroup is the expense-like total for one exact description string.
// Descriptions are grouped verbatim: two values differing by whitespace or
// case form distinct groups.
type ExpenseGroup struct {
	Description string `json:"description"`
	Total       int64  `json:"total"`
}

// DashboardSummary is the read-only financial overview shown on the dashboard.
type DashboardSummary struct {
	TotalIncome          int64          `json:"total_income"`
	TotalExpense         int64          `json:"total_expense"`
	IncomeByYear         []YearlyIncome `json:"income_by_year"`
	ExpenseByDescription []ExpenseGroup `json:"expense_by_description"`
	ActiveStudentCount   int            `json:"active_student_count"`
}

// BuildDashboard computes the summary from full student and transaction
// feeds. Pure projection: no side effects, tolerates empty inputs.
func BuildDashboard(students []models.Student, transactions []models.Transaction) *DashboardSummary {
	summary := &DashboardSummary{
		IncomeByYear:         []YearlyIncome{},
		ExpenseByDescription: []ExpenseGroup{},
	}

	incomeByYear := make(map[int]int64)
	expenseByDesc := make(map[string]int64)

	for _, t := range transactions {
		switch t.Class() {
		case models.ClassIncome:
			summary.TotalIncome += t.Amount
			incomeByYear[t.PaymentYear] += t.Amount
		case models.ClassExpense:
			summary.TotalExpense += t.Amount
			expenseByDesc[t.Description] += t.Amount
		}
	}

	for year, total := range incomeByYear {
		summary.IncomeByYear = append(summary.IncomeByYear, YearlyIncome{Year: year, Total: total})
	}
	sort.Slice(summary.IncomeByYear, func(i, j int) bool {
		return summary.IncomeByYear[i].Year < summary.IncomeByYear[j].Year
	})

	for desc, total := range expenseByDesc {
		summary.ExpenseByDescription = append(summary.ExpenseByDescription, ExpenseGroup{Description: desc, Total: total})
	}
	sort.Slice(summary.ExpenseByDescription, func(i, j int) bool {
		a, b := summary.ExpenseByDescription[i], summary.ExpenseByDescription[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Description < b.Description
	})

	for _, st := range students {
		if st.IsActive() {
			summary.ActiveStudentCount++
		}
	}

	return summary
}

// dashboardService loads the data feeds and delegates to BuildDashboard.
type dashboardService struct {
	db             *gorm.DB
	studentService StudentServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB, studentService StudentServicer) DashboardServicer {
	return &dashboardService{db: db, studentService: studentService}
}

// GetSummary computes the dashboard summary over all recorded data.
func (s *dashboardService) GetSummary() (*DashboardSummary, error) {
	students, err := s.studentService.ListAllStudents()
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.db.Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return BuildDashboard(students, transactions), nil
}
