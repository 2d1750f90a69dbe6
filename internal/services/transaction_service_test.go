package services

import (
	"testing"
	"time"

	"kasiswa/internal/pagination"
	"kasiswa/internal/testutil"
)

func TestTransactionService_CreateTransaction(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("records_student_payment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		student := testutil.CreateTestStudent(t, db)

		tx, err := svc.CreateTransaction(&student.ID, "", date, "Pemasukan", 66000, "January", 2024, "SPP Januari")
		testutil.AssertNoError(t, err)

		if tx.ID == 0 {
			t.Error("expected assigned ID")
		}
		if tx.StudentID == nil || *tx.StudentID != student.ID {
			t.Error("expected linked student")
		}
	})

	t.Run("records_expense_to_recipient", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		tx, err := svc.CreateTransaction(nil, "Toko ATK", date, "Pengeluaran", 50000, "January", 2024, "Spidol")
		testutil.AssertNoError(t, err)

		if tx.StudentID != nil {
			t.Error("expense must not be linked to a student")
		}
		if tx.Recipient != "Toko ATK" {
			t.Errorf("expected recipient, got %q", tx.Recipient)
		}
	})

	t.Run("defaults_zero_date_to_now", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		tx, err := svc.CreateTransaction(nil, "Toko ATK", time.Time{}, "Pengeluaran", 50000, "January", 2024, "")
		testutil.AssertNoError(t, err)

		if tx.Date.IsZero() {
			t.Error("expected the date to default to now")
		}
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(nil, "X", date, "Donation", 1000, "January", 2024, "")
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(nil, "X", date, "Pemasukan", -1, "January", 2024, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_non_canonical_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(nil, "X", date, "Pemasukan", 66000, "Januari", 2024, "")
		testutil.AssertAppError(t, err, "INVALID_PAYMENT_MONTH")
	})

	t.Run("rejects_out_of_range_year", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(nil, "X", date, "Pemasukan", 66000, "January", 2019, "")
		testutil.AssertAppError(t, err, "INVALID_PAYMENT_YEAR")

		_, err = svc.CreateTransaction(nil, "X", date, "Pemasukan", 66000, "January", 2031, "")
		testutil.AssertAppError(t, err, "INVALID_PAYMENT_YEAR")
	})

	t.Run("rejects_missing_student", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		missing := uint(9999)
		_, err := svc.CreateTransaction(&missing, "", date, "Pemasukan", 66000, "January", 2024, "")
		testutil.AssertAppError(t, err, "STUDENT_NOT_FOUND")
	})
}

func TestTransactionService_ListTransactions(t *testing.T) {
	t.Run("denormalizes_student_identity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		student := testutil.CreateTestStudentWith(t, db, "Adam", "7", "Active")
		testutil.CreateTestPayment(t, db, student.ID, "January", 2024, 66000)

		result, err := svc.ListTransactions(pagination.PageRequest{Page: 1, PageSize: 10})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 1 {
			t.Fatalf("expected 1 row, got %d", len(result.Data))
		}
		row := result.Data[0]
		if row.StudentName != "Adam" {
			t.Errorf("expected student name, got %q", row.StudentName)
		}
		if row.AttendanceNumber != "7" {
			t.Errorf("expected attendance number, got %q", row.AttendanceNumber)
		}
	})

	t.Run("falls_back_to_recipient_then_dash", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		testutil.CreateTestExpense(t, db, "Toko ATK", "Spidol", "January", 2024, 50000)
		testutil.CreateTestExpense(t, db, "", "Lain-lain", "January", 2024, 10000)

		result, err := svc.ListTransactions(pagination.PageRequest{Page: 1, PageSize: 10})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(result.Data))
		}
		names := map[string]bool{}
		for _, row := range result.Data {
			names[row.StudentName] = true
			if row.AttendanceNumber != "-" {
				t.Errorf("expected dash attendance number for expense row, got %q", row.AttendanceNumber)
			}
		}
		if !names["Toko ATK"] || !names["-"] {
			t.Errorf("expected recipient and dash fallbacks, got %v", names)
		}
	})

	t.Run("orders_date_descending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		student := testutil.CreateTestStudent(t, db)
		old, err := svc.CreateTransaction(&student.ID, "",
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Pemasukan", 66000, "January", 2024, "")
		testutil.AssertNoError(t, err)
		recent, err := svc.CreateTransaction(&student.ID, "",
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "Pemasukan", 66000, "March", 2024, "")
		testutil.AssertNoError(t, err)

		result, err := svc.ListTransactions(pagination.PageRequest{Page: 1, PageSize: 10})
		testutil.AssertNoError(t, err)

		if result.Data[0].TransactionID != recent.ID {
			t.Errorf("expected most recent transaction first, got %d", result.Data[0].TransactionID)
		}
		if result.Data[1].TransactionID != old.ID {
			t.Errorf("expected oldest transaction last, got %d", result.Data[1].TransactionID)
		}
	})
}

func TestTransactionService_UpdateTransaction(t *testing.T) {
	t.Run("updates_provided_fields_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		student := testutil.CreateTestStudent(t, db)
		tx := testutil.CreateTestPayment(t, db, student.ID, "January", 2024, 66000)

		amount := int64(70000)
		updated, err := svc.UpdateTransaction(tx.ID, TransactionUpdateFields{Amount: &amount})
		testutil.AssertNoError(t, err)

		if updated.Amount != 70000 {
			t.Errorf("expected updated amount, got %d", updated.Amount)
		}
		if updated.PaymentMonth != "January" {
			t.Errorf("untouched field changed: %q", updated.PaymentMonth)
		}
	})

	t.Run("validates_like_create", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		student := testutil.CreateTestStudent(t, db)
		tx := testutil.CreateTestPayment(t, db, student.ID, "January", 2024, 66000)

		badMonth := "Januari"
		_, err := svc.UpdateTransaction(tx.ID, TransactionUpdateFields{PaymentMonth: &badMonth})
		testutil.AssertAppError(t, err, "INVALID_PAYMENT_MONTH")

		badType := "Donation"
		_, err = svc.UpdateTransaction(tx.ID, TransactionUpdateFields{Type: &badType})
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")

		badAmount := int64(-5)
		_, err = svc.UpdateTransaction(tx.ID, TransactionUpdateFields{Amount: &badAmount})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		amount := int64(1000)
		_, err := svc.UpdateTransaction(9999, TransactionUpdateFields{Amount: &amount})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionService_DeleteTransaction(t *testing.T) {
	t.Run("deletes_transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		student := testutil.CreateTestStudent(t, db)
		tx := testutil.CreateTestPayment(t, db, student.ID, "January", 2024, 66000)

		err := svc.DeleteTransaction(tx.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetTransactionByID(tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		err := svc.DeleteTransaction(9999)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
