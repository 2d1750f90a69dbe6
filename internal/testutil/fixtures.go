package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"kasiswa/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestStudent creates an active student with a unique name and
// attendance number.
func CreateTestStudent(t *testing.T, db *gorm.DB) *models.Student {
	t.Helper()
	n := nextID()
	return CreateTestStudentWith(t, db, fmt.Sprintf("Student %d", n), fmt.Sprintf("%d", n), models.StudentStatusActive)
}

// CreateTestStudentWith creates a student with the given name, attendance
// number, and status.
func CreateTestStudentWith(t *testing.T, db *gorm.DB, name, attendanceNumber string, status models.StudentStatus) *models.Student {
	t.Helper()

	student := &models.Student{
		Name:             name,
		AttendanceNumber: attendanceNumber,
		ClassName:        "1A",
		Status:           status,
	}
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("failed to create test student: %v", err)
	}
	return student
}

// CreateTestPayment creates an income-like tuition transaction for a student
// attributed to the given payment month and year.
func CreateTestPayment(t *testing.T, db *gorm.DB, studentID uint, month string, year int, amount int64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		StudentID:    &studentID,
		Date:         time.Now(),
		Type:         "Pemasukan",
		Amount:       amount,
		PaymentMonth: month,
		PaymentYear:  year,
		Description:  "SPP",
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return tx
}

// CreateTestExpense creates an expense-like transaction paid to an external
// recipient.
func CreateTestExpense(t *testing.T, db *gorm.DB, recipient, description string, month string, year int, amount int64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Recipient:    recipient,
		Date:         time.Now(),
		Type:         "Pengeluaran",
		Amount:       amount,
		PaymentMonth: month,
		PaymentYear:  year,
		Description:  description,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return tx
}
