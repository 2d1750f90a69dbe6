package services

import (
	"time"

	"kasiswa/internal/models"
	"kasiswa/internal/pagination"
)

// StudentUpdateFields holds optional fields for updating a student.
// Nil pointers leave the corresponding column unchanged.
type StudentUpdateFields struct {
	Name             *string
	AttendanceNumber *string
	ClassName        *string
	ParentContact    *string
	Status           *models.StudentStatus
}

// StudentServicer defines the contract for student-related business logic.
type StudentServicer interface {
	CreateStudent(name, attendanceNumber, className, parentContact string) (*models.Student, error)
	ListStudents(page pagination.PageRequest) (*pagination.PageResponse[models.Student], error)
	ListAllStudents() ([]models.Student, error)
	GetStudentByID(studentID uint) (*models.Student, error)
	UpdateStudent(studentID uint, fields StudentUpdateFields) (*models.Student, error)
	DeleteStudent(studentID uint) error
}

// TransactionUpdateFields holds optional fields for updating a transaction.
type TransactionUpdateFields struct {
	Date         *time.Time
	Type         *string
	Amount       *int64
	PaymentMonth *string
	PaymentYear  *int
	Description  *string
}

// TransactionServicer defines the contract for transaction-related business logic.
// Listings are denormalized with student identity and ordered by date descending.
type TransactionServicer interface {
	CreateTransaction(studentID *uint, recipient string, date time.Time, rawType string, amount int64, paymentMonth string, paymentYear int, description string) (*models.Transaction, error)
	ListTransactions(page pagination.PageRequest) (*pagination.PageResponse[models.ReportRow], error)
	ListAllRows() ([]models.ReportRow, error)
	GetTransactionByID(transactionID uint) (*models.Transaction, error)
	UpdateTransaction(transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(transactionID uint) error
}

// RecapServicer defines the contract for the yearly payment recap.
type RecapServicer interface {
	GetRecap(year int) (*Recap, error)
}

// ReportServicer defines the contract for filtered report listings.
type ReportServicer interface {
	GetReport(filter ReportFilter) ([]models.ReportRow, error)
}

// DashboardServicer defines the contract for the dashboard summary.
type DashboardServicer interface {
	GetSummary() (*DashboardSummary, error)
}
