package domain

import "time"

// ActivityType categorizes the subject of an activity entry.
type ActivityType string

const (
	ActivityGeneral ActivityType = "general"
	ActivityClient  ActivityType = "client"
	ActivityProduct ActivityType = "product"
	ActivityExpense ActivityType = "expense"
	ActivityInvoice ActivityType = "invoice"
	ActivityQuote   ActivityType = "quote"
)

// Activity is an immutable, append-only audit entry describing a completed
// business action. Entries are never updated or deleted by application flow.
type Activity struct {
	ActivityID   string       `json:"activityID"`
	UserID       string       `json:"userID"`
	Description  string       `json:"description"`
	ActivityType ActivityType `json:"activityType"`
	RelatedID    *string      `json:"relatedID,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}
