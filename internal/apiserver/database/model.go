package database

import "time"

// Role represents a department or admin-tier role
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleHR         Role = "HR"
	RoleFinance    Role = "FINANCE"
	RoleIT         Role = "IT"
	RoleMarketing  Role = "MARKETING"
	RoleSales      Role = "SALES"
	RoleOperations Role = "OPERATIONS"
)

// ValidRole reports whether s is a recognized role value
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleHR, RoleFinance, RoleIT, RoleMarketing, RoleSales, RoleOperations:
		return true
	}
	return false
}

// AdminTier reports whether the role may read and mutate any department
func AdminTier(s string) bool {
	return Role(s) == RoleSuperAdmin || Role(s) == RoleAdmin
}

// ExpenseType classifies an expense
type ExpenseType string

const (
	TypeOperational ExpenseType = "OPERATIONAL"
	TypeCapital     ExpenseType = "CAPITAL"
	TypeMaintenance ExpenseType = "MAINTENANCE"
	TypeEmergency   ExpenseType = "EMERGENCY"
)

// ExpenseStatus is the approval state of an expense
type ExpenseStatus string

const (
	StatusPending  ExpenseStatus = "PENDING"
	StatusApproved ExpenseStatus = "APPROVED"
	StatusRejected ExpenseStatus = "REJECTED"
)

// SuperAdmin represents a super admin account
type SuperAdmin struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	EmailID        string    `json:"emailId" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password       string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	SuperAdminName string    `json:"superAdminName" gorm:"type:varchar(255)"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// RestaurantAdmin represents an admin (restaurant) account
type RestaurantAdmin struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	EmailID        string    `json:"emailId" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password       string    `json:"-" gorm:"not null"`
	RestaurantName string    `json:"restaurantName" gorm:"type:varchar(255)"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// DepartmentUser represents an employee account tied to a department role
type DepartmentUser struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	EmailID   string    `json:"emailId" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      Role      `json:"role" gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Company represents a registered company
type Company struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CompanyName string    `json:"companyName" gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Expense represents a submitted expense record
type Expense struct {
	ID             uint          `json:"id" gorm:"primaryKey;autoIncrement"`
	Title          string        `json:"title" gorm:"type:varchar(255);not null"`
	Amount         float64       `json:"amount" gorm:"not null"`
	Category       string        `json:"category" gorm:"type:varchar(100);not null"`
	Type           ExpenseType   `json:"type" gorm:"type:varchar(20);not null"`
	Date           time.Time     `json:"date" gorm:"not null"`
	ReceiptNumber  string        `json:"receiptNumber,omitempty" gorm:"type:varchar(100)"`
	Vendor         string        `json:"vendor,omitempty" gorm:"type:varchar(255)"`
	Description    string        `json:"description,omitempty" gorm:"type:text"`
	Department     Role          `json:"department" gorm:"type:varchar(20);not null;index"`
	SubmitterEmail string        `json:"submitterEmail" gorm:"type:varchar(255);not null;index"`
	SubmittedBy    string        `json:"submittedBy,omitempty" gorm:"type:varchar(255)"`
	Status         ExpenseStatus `json:"status" gorm:"type:varchar(10);not null;default:'PENDING'"`
	CreatedAt      time.Time     `json:"createdAt"`
}
