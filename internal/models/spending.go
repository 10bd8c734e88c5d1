package models

import "time"

// SpendingType represents the direction of a spending record.
type SpendingType string

const (
	SpendingTypeExpense SpendingType = "expense"
	SpendingTypeIncome  SpendingType = "income"
)

// DateLayout is the calendar date format used as the range-query and
// filter key. Dates in this layout compare correctly as plain strings.
const DateLayout = "2006-01-02"

// Transaction represents an immutable spending record. Records are created
// and deleted but never edited.
type Transaction struct {
	ID        string       `json:"id"`
	Amt       float64      `json:"amt"`
	Cat       string       `json:"cat"`
	Details   string       `json:"details,omitempty"`
	Type      SpendingType `json:"type"`
	AssetID   string       `json:"assetId,omitempty"`
	Date      string       `json:"date"`
	CreatedAt time.Time    `json:"createdAt"`

	// ClientRef is a client-generated idempotency key attached when the
	// record is first submitted, so a retried add after a timeout cannot
	// produce a duplicate server-side record.
	ClientRef string `json:"clientRef,omitempty"`
}

// Categories is the fixed set of spending category labels.
var Categories = []string{
	"Food", "Transport", "Bills", "Investing", "Entertainment", "Other",
}

// ValidCategory reports whether cat is one of the fixed category labels.
func ValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}
