package dto

// CreateExpenseRequest represents an expense submission.
// Category is free text; the client offers a suggestion list but the
// server only requires it to be non-empty.
type CreateExpenseRequest struct {
	Title          string  `json:"title" binding:"required"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	Category       string  `json:"category" binding:"required"`
	Type           string  `json:"type" binding:"required,oneof=OPERATIONAL CAPITAL MAINTENANCE EMERGENCY"`
	Date           string  `json:"date" binding:"required"` // YYYY-MM-DD
	ReceiptNumber  string  `json:"receiptNumber"`
	Vendor         string  `json:"vendor"`
	Description    string  `json:"description"`
	Department     string  `json:"department" binding:"required,oneof=SUPER_ADMIN ADMIN HR FINANCE IT MARKETING SALES OPERATIONS"`
	SubmitterEmail string  `json:"submitterEmail" binding:"required"`
	SubmittedBy    string  `json:"submittedBy"`
}
