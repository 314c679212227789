package domain

// User is an account owner. Every other entity in the system belongs to
// exactly one user, and all reads and writes are scoped by that ownership.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"isActive"`

	// Company profile, shown on generated documents. All optional.
	CompanyName string `json:"companyName,omitempty"`
	TaxID       string `json:"taxID,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`

	AuditFields
}

// GoogleUserInfo holds the subset of the Google ID token claims the
// application cares about.
type GoogleUserInfo struct {
	Email         string
	EmailVerified bool
	Name          string
	Subject       string
}
