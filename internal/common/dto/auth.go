package dto

// RegisterRequest represents a department user registration request
type RegisterRequest struct {
	EmailID  string `json:"emailId" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=SUPER_ADMIN ADMIN HR FINANCE IT MARKETING SALES OPERATIONS"`
}

// LoginRequest represents a login request for any account kind
type LoginRequest struct {
	EmailID  string `json:"emailId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateSuperAdminRequest represents a request to create a super admin account
type CreateSuperAdminRequest struct {
	EmailID  string `json:"emailId" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// AccountInfo is the account payload returned by login and create endpoints.
// The password hash never leaves the database layer.
type AccountInfo struct {
	ID      uint   `json:"id"`
	EmailID string `json:"emailId"`
	Role    string `json:"role"`
	Name    string `json:"name,omitempty"`
}
