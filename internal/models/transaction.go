package models

import "github.com/shopspring/decimal"

// Direction says which way money moved.
type Direction string

const (
	Deposit    Direction = "Deposit"
	Withdrawal Direction = "Withdrawal"
)

// Category is a semantic label assigned from the transaction description.
type Category string

const (
	CategoryCash        Category = "CASH"
	CategoryWithdrawal  Category = "Withdrawal"
	CategoryTransfer    Category = "Transfer"
	CategorySalary      Category = "Salary"
	CategoryInterest    Category = "Interest"
	CategoryCharge      Category = "Charge"
	CategoryRefund      Category = "Refund"
	CategoryCardPayment Category = "Card Payment"
	CategoryCreditCard  Category = "Credit Card"
	CategoryDividend    Category = "Dividend"
	CategoryOther       Category = "Other"
)

// TransactionRecord is one normalized statement entry. Amount fields are
// nil when the source token was absent or failed to parse; Description is
// never empty. Records are immutable once built.
type TransactionRecord struct {
	Date                string           `json:"date,omitempty"` // ISO-8601, empty if unparseable
	Description         string           `json:"description"`
	Debit               *decimal.Decimal `json:"debit,omitempty"`
	Credit              *decimal.Decimal `json:"credit,omitempty"`
	Balance             *decimal.Decimal `json:"balance,omitempty"`
	Direction           Direction        `json:"direction"`
	Category            Category         `json:"category"`
	CounterpartyAccount string           `json:"counterpartyAccount,omitempty"`
	CounterpartyName    string           `json:"counterpartyName,omitempty"`
	SourcePage          int              `json:"sourcePage"`
}
