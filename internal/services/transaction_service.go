package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "kasiswa/internal/errors"
	"kasiswa/internal/models"
	"kasiswa/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records a tuition payment or expense. A transaction
// belongs to either a linked student (income) or an external recipient
// (expense); the payment month must be a canonical English month name so
// recap lookups never miss.
func (s *transactionService) CreateTransaction(
	studentID *uint,
	recipient string,
	date time.Time,
	rawType string,
	amount int64,
	paymentMonth string,
	paymentYear int,
	description string,
) (*models.Transaction, error) {
	if !models.IsValidTransactionType(rawType) {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if !models.IsPaymentMonth(paymentMonth) {
		return nil, apperrors.ErrInvalidPaymentMonth
	}
	if paymentYear < 2020 || paymentYear > 2030 {
		return nil, apperrors.ErrInvalidPaymentYear
	}
	if date.IsZero() {
		date = time.Now()
	}

	if studentID != nil {
		var student models.Student
		if err := s.db.First(&student, *studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrStudentNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	transaction := &models.Transaction{
		StudentID:    studentID,
		Recipient:    recipient,
		Date:         date,
		Type:         rawType,
		Amount:       amount,
		PaymentMonth: paymentMonth,
		PaymentYear:  paymentYear,
		Description:  description,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// ListTransactions retrieves a paginated list of denormalized transaction
// rows ordered by date descending.
func (s *transactionService) ListTransactions(page pagination.PageRequest) (*pagination.PageResponse[models.ReportRow], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := s.db.Preload("Student").
		Scopes(pagination.Paginate(page)).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rows := make([]models.ReportRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, models.NewReportRow(t))
	}

	result := pagination.NewPageResponse(rows, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListAllRows retrieves every transaction as a denormalized row ordered by
// date descending. This is the data feed for the report and dashboard engines.
func (s *transactionService) ListAllRows() ([]models.ReportRow, error) {
	var transactions []models.Transaction
	if err := s.db.Preload("Student").
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rows := make([]models.ReportRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, models.NewReportRow(t))
	}
	return rows, nil
}

// GetTransactionByID retrieves a transaction by ID.
func (s *transactionService) GetTransactionByID(transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Student").First(&transaction, transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction updates a transaction in place. Nil fields are left
// unchanged; provided fields are validated the same way as on create.
func (s *transactionService) UpdateTransaction(transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(transactionID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if fields.Date != nil {
		updates["date"] = *fields.Date
	}
	if fields.Type != nil {
		if !models.IsValidTransactionType(*fields.Type) {
			return nil, apperrors.ErrInvalidTransactionType
		}
		updates["type"] = *fields.Type
	}
	if fields.Amount != nil {
		if *fields.Amount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
		}
		updates["amount"] = *fields.Amount
	}
	if fields.PaymentMonth != nil {
		if !models.IsPaymentMonth(*fields.PaymentMonth) {
			return nil, apperrors.ErrInvalidPaymentMonth
		}
		updates["payment_month"] = *fields.PaymentMonth
	}
	if fields.PaymentYear != nil {
		if *fields.PaymentYear < 2020 || *fields.PaymentYear > 2030 {
			return nil, apperrors.ErrInvalidPaymentYear
		}
		updates["payment_year"] = *fields.PaymentYear
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}

	if len(updates) == 0 {
		return transaction, nil
	}

	if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// DeleteTransaction deletes a transaction by ID.
func (s *transactionService) DeleteTransaction(transactionID uint) error {
	transaction, err := s.GetTransactionByID(transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}
