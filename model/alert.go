package model

import "database/sql"

const ledgerTimeLayout = "2006-01-02 15:04:05"

// AlertColumns is the header row of the alert ledger: the original record
// columns plus the rejection reason.
var AlertColumns = []string{
	"id", "company_name", "company_id", "amount",
	"status", "created_at", "updated_at", "motivo",
}

// Alert is a rejected record plus the reason for the first rule it failed.
// Alerts accumulate in an append-only ledger across runs.
type Alert struct {
	Record TypedRecord
	Reason string
}

// Row renders the alert as a ledger row in AlertColumns order. Null fields
// render as empty strings.
func (a Alert) Row() []string {
	r := a.Record

	amount := ""
	if r.Amount.Valid {
		amount = r.Amount.Decimal.String()
	}

	return []string{
		stringOrEmpty(r.ID),
		stringOrEmpty(r.CompanyName),
		stringOrEmpty(r.CompanyID),
		amount,
		stringOrEmpty(r.Status),
		timeOrEmpty(r.CreatedAt),
		timeOrEmpty(r.UpdatedAt),
		a.Reason,
	}
}

func stringOrEmpty(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

func timeOrEmpty(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(ledgerTimeLayout)
}
