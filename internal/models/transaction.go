package models

import "time"

// TransactionClass is the semantic class of a transaction. The raw type
// labels mix English and Indonesian synonyms ("Income", "Tuition",
// "Pemasukan" vs "Expense", "Pengeluaran"), so class membership is resolved
// once via Classify instead of comparing labels throughout the code.
type TransactionClass string

const (
	ClassIncome  TransactionClass = "income"
	ClassExpense TransactionClass = "expense"
	ClassUnknown TransactionClass = "unknown"
)

// incomeTypes and expenseTypes are the raw labels accepted from historical
// data and the entry form.
var incomeTypes = map[string]bool{
	"Income":    true,
	"Tuition":   true,
	"Pemasukan": true,
}

var expenseTypes = map[string]bool{
	"Expense":     true,
	"Pengeluaran": true,
}

// Classify maps a raw transaction type label to its semantic class.
func Classify(rawType string) TransactionClass {
	switch {
	case incomeTypes[rawType]:
		return ClassIncome
	case expenseTypes[rawType]:
		return ClassExpense
	default:
		return ClassUnknown
	}
}

// IsValidTransactionType reports whether the label belongs to a known class.
func IsValidTransactionType(rawType string) bool {
	return Classify(rawType) != ClassUnknown
}

// Transaction represents a tuition payment or school expense.
//
// Exactly one of StudentID and Recipient is meaningfully used: a linked
// student for income, an external recipient for expenses. Deleting a student
// does not delete or reassign their transactions, so StudentID may reference
// a row that no longer exists.
type Transaction struct {
	Base
	StudentID    *uint     `json:"student_id,omitempty"`
	Recipient    string    `json:"recipient"`
	Date         time.Time `gorm:"not null" json:"date"`
	Type         string    `gorm:"not null" json:"type"`
	Amount       int64     `gorm:"type:bigint;not null" json:"amount"`
	PaymentMonth string    `gorm:"not null" json:"payment_month"`
	PaymentYear  int       `gorm:"not null" json:"payment_year"`
	Description  string    `json:"description"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// Class returns the semantic class of the transaction's raw type label.
func (t *Transaction) Class() TransactionClass {
	return Classify(t.Type)
}
