package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		description string
		want        models.Category
	}{
		{"ATM CASH WDL MG ROAD", models.CategoryCash},
		{"CSH DEP COUNTER", models.CategoryCash},
		{"UPI/P2M/4012/GROCERY MART", models.CategoryWithdrawal},
		{"IMPS-403112-RAVI", models.CategoryWithdrawal},
		{"NEFT TO RAVI KUMAR", models.CategoryTransfer},
		{"RTGS INWARD ACME CORP", models.CategoryTransfer},
		{"SALARY MAR 2024 ACME CORP", models.CategorySalary},
		{"PAYROLL CREDIT", models.CategorySalary},
		{"INT.PD:01-01-2024 TO 31-03-2024", models.CategoryInterest},
		{"SMS CHRG QTRLY", models.CategoryCharge},
		{"ANNUAL FEE RECOVERY", models.CategoryCharge},
		{"REV OF TXN 788123", models.CategoryRefund},
		{"POS 412938 AMAZON RETAIL", models.CategoryCardPayment},
		{"CREDIT CARD PAYMENT RECEIVED", models.CategoryCreditCard},
		{"DIV WARRANT 2023-24", models.CategoryDividend},
		{"CHEQUE CLEARING 001234", models.CategoryOther},
		{"", models.CategoryOther},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.description))
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	assert.Equal(t, models.CategoryCash, Classify("atm cash wdl"))
	assert.Equal(t, models.CategorySalary, Classify("Salary Credit"))
}

// Order decides ties: ATM outranks the transfer keywords, so a cash
// withdrawal routed over NEFT still reads as cash.
func TestClassifyPrecedence(t *testing.T) {
	assert.Equal(t, models.CategoryCash, Classify("NEFT ATM SETTLEMENT"))
	assert.Equal(t, models.CategoryWithdrawal, Classify("UPI RTGS BRIDGE"))
}

func TestCounterparty(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantAccount string
		wantName    string
	}{
		{
			name:        "to with account",
			description: "NEFT TO RAVI KUMAR 9876543210123",
			wantAccount: "9876543210123",
			wantName:    "RAVI KUMAR",
		},
		{
			name:        "from",
			description: "IMPS FROM ACME CORP",
			wantAccount: "",
			wantName:    "ACME CORP",
		},
		{
			name:        "account only",
			description: "TRANSFER 123456789",
			wantAccount: "123456789",
			wantName:    "",
		},
		{
			name:        "short digit run ignored",
			description: "CHQ 12345678",
			wantAccount: "",
			wantName:    "",
		},
		{
			name:        "too long digit run ignored",
			description: "REF 1234567890123456789",
			wantAccount: "",
			wantName:    "",
		},
		{
			name:        "digits stripped from name",
			description: "UPI TO GROCERY MART 402913338811",
			wantAccount: "402913338811",
			wantName:    "GROCERY MART",
		},
		{
			name:        "no hints",
			description: "ATM CASH WDL",
			wantAccount: "",
			wantName:    "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			account, name := Counterparty(tc.description)
			assert.Equal(t, tc.wantAccount, account)
			assert.Equal(t, tc.wantName, name)
		})
	}
}
