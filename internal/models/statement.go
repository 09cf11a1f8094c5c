package models

// StatementPeriod is the date range printed on the statement, kept as the
// source text (the range labels are too varied to normalize reliably).
type StatementPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StatementMeta holds account-level details scraped from the first
// recognizable block of text. Every field is independently optional;
// the first value found wins and is never overwritten.
type StatementMeta struct {
	AccountNumber string           `json:"accountNumber,omitempty"`
	AccountHolder string           `json:"accountHolder,omitempty"`
	IFSC          string           `json:"ifsc,omitempty"`
	Branch        string           `json:"branch,omitempty"`
	Period        *StatementPeriod `json:"statementPeriod,omitempty"`
}

// IsEmpty reports whether no metadata field was populated.
func (m StatementMeta) IsEmpty() bool {
	return m.AccountNumber == "" && m.AccountHolder == "" &&
		m.IFSC == "" && m.Branch == "" && m.Period == nil
}

// Statement is the full result for one document: metadata plus the
// ordered transaction sequence. Transactions is never nil so the JSON
// encoding is always an array.
type Statement struct {
	Meta         StatementMeta       `json:"meta"`
	Transactions []TransactionRecord `json:"transactions"`
}

// Page is one page of upstream extraction output: either layout-preserved
// plain text, a detected table (ordered rows of ordered cells), or neither
// when the page had no recoverable content. The engine does not care which
// collaborator produced it.
type Page struct {
	Text  string
	Table [][]string
}
