package domain

// Customer holds the profile and the free transaction quota of a bank customer.
type Customer struct {
	CustomerID       int32  `json:"customer_id"`
	Name             string `json:"name"`
	TFN              string `json:"tfn,omitempty"`
	Address          string `json:"address,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	Postcode         string `json:"postcode,omitempty"`
	Mobile           string `json:"mobile,omitempty"`
	FreeTransactions int32  `json:"free_transactions"`
	Version          int64  `json:"-"`
}

// Login holds the credentials of a customer.
type Login struct {
	LoginID      string `json:"login_id"`
	CustomerID   int32  `json:"customer_id"`
	PasswordHash string `json:"-"`
}

// Payee is the recipient of bill payments. Payees live outside the ledger.
type Payee struct {
	PayeeID  int32  `json:"payee_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Phone    string `json:"phone"`
}
