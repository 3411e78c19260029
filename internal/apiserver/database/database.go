package database

import (
	"context"
)

// Database defines the methods for database operations.
type Database interface {
	// Close closes the database connection.
	Close() error

	// Transaction runs fn inside a transaction carried through the context.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	// CreateSuperAdmin creates a new super admin account.
	CreateSuperAdmin(ctx context.Context, admin *SuperAdmin) error

	// GetSuperAdminByEmail retrieves a super admin by email.
	GetSuperAdminByEmail(ctx context.Context, emailID string) (*SuperAdmin, error)

	// CountSuperAdmins returns the number of super admin accounts.
	CountSuperAdmins(ctx context.Context) (int64, error)

	// CreateRestaurantAdmin creates a new admin (restaurant) account.
	CreateRestaurantAdmin(ctx context.Context, admin *RestaurantAdmin) error

	// GetRestaurantAdminByEmail retrieves an admin account by email.
	GetRestaurantAdminByEmail(ctx context.Context, emailID string) (*RestaurantAdmin, error)

	// CreateDepartmentUser creates a new department user account.
	CreateDepartmentUser(ctx context.Context, user *DepartmentUser) error

	// GetDepartmentUserByEmail retrieves a department user by email.
	GetDepartmentUserByEmail(ctx context.Context, emailID string) (*DepartmentUser, error)

	// CreateCompany creates a new company.
	CreateCompany(ctx context.Context, company *Company) error

	// ListCompanies retrieves all companies ordered by name.
	ListCompanies(ctx context.Context) ([]*Company, error)

	// CreateExpense creates a new expense record.
	CreateExpense(ctx context.Context, expense *Expense) error

	// ListExpenses retrieves all expense records system-wide.
	ListExpenses(ctx context.Context) ([]*Expense, error)

	// ListExpensesByDepartment retrieves the expense records of one department.
	ListExpensesByDepartment(ctx context.Context, department Role) ([]*Expense, error)

	// GetExpense retrieves an expense by id.
	GetExpense(ctx context.Context, id uint) (*Expense, error)

	// DeleteExpense deletes an expense by id. Deleting an id that no longer
	// exists reports gorm.ErrRecordNotFound.
	DeleteExpense(ctx context.Context, id uint) error
}
