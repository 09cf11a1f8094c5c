package parser

import "strings"

// Role is one of the five canonical column meanings that heterogeneous
// statement headers are mapped to.
type Role string

const (
	RoleDate        Role = "date"
	RoleParticulars Role = "particulars"
	RoleDebit       Role = "debit"
	RoleCredit      Role = "credit"
	RoleBalance     Role = "balance"
)

// headerAliases maps each role to the column names banks actually print.
// Checked in order; the first role with a matching alias wins.
var headerAliases = []struct {
	role    Role
	aliases []string
}{
	{RoleDate, []string{"date", "txn date", "transaction date", "value date", "tran date"}},
	{RoleParticulars, []string{"particulars", "description", "narration", "transaction particulars", "details", "remarks"}},
	{RoleDebit, []string{"debit", "withdrawal amt.", "withdrawal", "debit amount", "dr"}},
	{RoleCredit, []string{"credit", "deposit amt.", "deposit", "credit amount", "cr"}},
	{RoleBalance, []string{"balance", "running balance", "closing balance", "bal"}},
}

// Canonicalize maps a raw column header to a canonical role name. Headers
// matching no alias pass through (lower-cased, trimmed) as opaque labels;
// they keep their position but never participate in record assembly.
// Aliases of three characters or fewer ("dr", "cr", "bal") match as
// prefixes only, longer aliases by prefix or containment.
func Canonicalize(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	for _, entry := range headerAliases {
		for _, alias := range entry.aliases {
			if len(alias) <= 3 {
				if strings.HasPrefix(h, alias) {
					return string(entry.role)
				}
				continue
			}
			if strings.HasPrefix(h, alias) || strings.Contains(h, alias) {
				return string(entry.role)
			}
		}
	}
	return h
}
