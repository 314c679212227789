package domain

// ClientStatus indicates whether a client relationship is active.
type ClientStatus string

const (
	ClientActive   ClientStatus = "Active"
	ClientInactive ClientStatus = "Inactive"
)

// Client is a customer that invoices and quotes are issued to.
type Client struct {
	ClientID      string       `json:"clientID"`
	UserID        string       `json:"userID"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone,omitempty"`
	Address       string       `json:"address,omitempty"`
	TaxID         string       `json:"taxID,omitempty"`
	ContactPerson string       `json:"contactPerson,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	Status        ClientStatus `json:"status"`
	AuditFields
}
