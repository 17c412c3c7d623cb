package customer

import "time"

type KYCStatus string

const (
	KYCUnknown    KYCStatus = "UNKNOWN"
	KYCUnverified KYCStatus = "UNVERIFIED"
	KYCVerified   KYCStatus = "VERIFIED"
	KYCContracted KYCStatus = "CONTRACTED"
)

type Address struct {
	Country    string `json:"country"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Line1      string `json:"line1"`
}

// Customer is the root entity. ID and CreatedAt are immutable after
// creation; UpdatedAt is refreshed on every successful mutation.
type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	NationalID  int64     `json:"nationalId"`
	Address     Address   `json:"address"`
	DateOfBirth string    `json:"dateOfBirth"` // calendar date, YYYY-MM-DD
	KYCStatus   KYCStatus `json:"kycStatus"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Payload is the create/update request body. KYCStatus and IsActive are
// pointers because updates apply them only when explicitly provided.
type Payload struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	NationalID  int64      `json:"nationalId"`
	Address     *Address   `json:"address"`
	DateOfBirth string     `json:"dateOfBirth"`
	KYCStatus   *KYCStatus `json:"kycStatus"`
	IsActive    *bool      `json:"isActive"`
}
