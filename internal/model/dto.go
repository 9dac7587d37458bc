package model

type DepositIntentRequest struct {
	Amount      int64  `json:"amount" binding:"required,min=1" example:"1500"`
	PhoneNumber string `json:"phone_number,omitempty" example:"+22990000000"`
}

type DepositIntentResponse struct {
	Status      string `json:"status" example:"PENDING"`
	ReferenceID string `json:"reference_id" example:"KKI_1760400000000_000042_1a2b3c4d"`
	Amount      int64  `json:"amount" example:"1500"`
	Currency    string `json:"currency" example:"XOF"`
	PublicKey   string `json:"public_key,omitempty"`
	Sandbox     bool   `json:"sandbox"`
}

type VerifyDepositRequest struct {
	TransactionID string `json:"transaction_id" binding:"required" example:"KKIA_TX_1"`
	ReferenceID   string `json:"reference_id" binding:"required" example:"REF_1"`
}

type DepositResponse struct {
	Status      string       `json:"status" example:"success"`
	Message     string       `json:"message" example:"Deposit verified and credited"`
	Balance     int64        `json:"balance" example:"3200"`
	Transaction *LedgerEntry `json:"transaction"`
}

type DepositStatusResponse struct {
	ReferenceID           string      `json:"reference_id"`
	Status                EntryStatus `json:"status"`
	Amount                int64       `json:"amount"`
	Currency              string      `json:"currency"`
	ProviderTransactionID *string     `json:"provider_transaction_id"`
}

type WithdrawalRequestBody struct {
	Amount      int64  `json:"amount" binding:"required,min=1" example:"2000"`
	PhoneNumber string `json:"phone_number" binding:"required" example:"+22990000000"`
	RequestID   string `json:"request_id,omitempty" example:"c0ffee00-req-0001"`
}

type WithdrawalResponse struct {
	Status      string       `json:"status" example:"success"`
	Idempotent  bool         `json:"idempotent"`
	Message     string       `json:"message" example:"Withdrawal request submitted"`
	ReferenceID string       `json:"reference_id" example:"WREQ_c0ffee00-req-0001"`
	Balance     int64        `json:"balance" example:"3000"`
	Transaction *LedgerEntry `json:"transaction"`
}

type RejectWithdrawalRequest struct {
	Reason string `json:"reason" binding:"required" example:"Invalid account"`
}

type AdminActionResponse struct {
	Message     string       `json:"message" example:"Withdrawal rejected and balance refunded"`
	Applied     bool         `json:"applied"`
	Balance     *int64       `json:"balance,omitempty"`
	Transaction *LedgerEntry `json:"transaction"`
}

type WebhookResponse struct {
	Status        string `json:"status" example:"processed"`
	Reason        string `json:"reason,omitempty" example:"intent_not_found"`
	ReferenceID   string `json:"reference_id,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	ResultStatus  string `json:"result_status,omitempty" example:"SUCCESS"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient balance"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_BALANCE"`
	Details string `json:"details,omitempty"`
}

type BalanceResponse struct {
	UserID  int64 `json:"user_id" example:"1"`
	Balance int64 `json:"balance" example:"3200"`
}

type TransactionListResponse struct {
	Transactions []*LedgerEntry `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}
