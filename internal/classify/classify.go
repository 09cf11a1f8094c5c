// Package classify assigns semantic categories and counterparty hints to
// transaction descriptions using ordered keyword rules.
package classify

import (
	"strings"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// Rule maps a category to the keywords that select it.
type Rule struct {
	Category models.Category
	Keywords []string
}

// Rules is the classification table. Order is precedence: when a
// description contains keywords from more than one category, the earlier
// entry wins, so the order must never be reshuffled.
var Rules = []Rule{
	{models.CategoryCash, []string{"ATM", "CSH", "CASH", "CASA"}},
	{models.CategoryWithdrawal, []string{"UPI", "IMPS"}},
	{models.CategoryTransfer, []string{"NEFT", "RTGS"}},
	{models.CategorySalary, []string{"SALARY", "PAYROLL"}},
	{models.CategoryInterest, []string{"INT", "INTEREST"}},
	{models.CategoryCharge, []string{"CHRG", "CHARGE", "FEE", "GST"}},
	{models.CategoryRefund, []string{"REV", "REFUND"}},
	{models.CategoryCardPayment, []string{"POS", "DEBIT CARD"}},
	{models.CategoryCreditCard, []string{"CREDIT CARD PAYMENT"}},
	{models.CategoryDividend, []string{"DIV", "DIVIDEND"}},
}

// Classify returns the first category whose keyword list has a
// case-insensitive substring match in the description, or CategoryOther.
func Classify(description string) models.Category {
	desc := strings.ToUpper(description)
	for _, rule := range Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(desc, kw) {
				return rule.Category
			}
		}
	}
	return models.CategoryOther
}
