package dto

// CreateCompanyRequest represents a request to register a company
type CreateCompanyRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
}
