package models

// TransactionQuery is the transient search state of a transaction listing
type TransactionQuery struct {
	AccountID  string     `json:"accountId"`
	SearchTerm string     `json:"searchTerm"`
	FilterType TypeFilter `json:"filterType"`
}
