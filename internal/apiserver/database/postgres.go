package database

import (
	"context"
	"fmt"

	"github.com/chloroplast/expense-server/internal/common/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Postgres implements the Database interface using PostgreSQL
type Postgres struct {
	db  *gorm.DB
	cfg *config.DatabaseConfig
}

// NewPostgres creates a new Postgres instance
func NewPostgres(cfg *config.DatabaseConfig) (Database, error) {
	db := &Postgres{
		cfg: cfg,
	}

	gormDB, err := gorm.Open(postgres.Open(db.cfg.GetDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := gormDB.AutoMigrate(&SuperAdmin{}, &RestaurantAdmin{}, &DepartmentUser{}, &Company{}, &Expense{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	db.db = gormDB
	return db, nil
}

// Close closes the database connection
func (db *Postgres) Close() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction runs fn inside a transaction carried through the context
func (db *Postgres) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return db.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithTransaction(ctx, tx))
	})
}

// CreateSuperAdmin creates a new super admin account
func (db *Postgres) CreateSuperAdmin(ctx context.Context, admin *SuperAdmin) error {
	return getDBFromContext(ctx, db.db).Create(admin).Error
}

// GetSuperAdminByEmail retrieves a super admin by email
func (db *Postgres) GetSuperAdminByEmail(ctx context.Context, emailID string) (*SuperAdmin, error) {
	var admin SuperAdmin
	err := getDBFromContext(ctx, db.db).
		Where("email_id = ?", emailID).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// CountSuperAdmins returns the number of super admin accounts
func (db *Postgres) CountSuperAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := getDBFromContext(ctx, db.db).
		Model(&SuperAdmin{}).
		Count(&count).Error
	return count, err
}

// CreateRestaurantAdmin creates a new admin (restaurant) account
func (db *Postgres) CreateRestaurantAdmin(ctx context.Context, admin *RestaurantAdmin) error {
	return getDBFromContext(ctx, db.db).Create(admin).Error
}

// GetRestaurantAdminByEmail retrieves an admin account by email
func (db *Postgres) GetRestaurantAdminByEmail(ctx context.Context, emailID string) (*RestaurantAdmin, error) {
	var admin RestaurantAdmin
	err := getDBFromContext(ctx, db.db).
		Where("email_id = ?", emailID).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// CreateDepartmentUser creates a new department user account
func (db *Postgres) CreateDepartmentUser(ctx context.Context, user *DepartmentUser) error {
	return getDBFromContext(ctx, db.db).Create(user).Error
}

// GetDepartmentUserByEmail retrieves a department user by email
func (db *Postgres) GetDepartmentUserByEmail(ctx context.Context, emailID string) (*DepartmentUser, error) {
	var user DepartmentUser
	err := getDBFromContext(ctx, db.db).
		Where("email_id = ?", emailID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateCompany creates a new company
func (db *Postgres) CreateCompany(ctx context.Context, company *Company) error {
	return getDBFromContext(ctx, db.db).Create(company).Error
}

// ListCompanies retrieves all companies ordered by name
func (db *Postgres) ListCompanies(ctx context.Context) ([]*Company, error) {
	var companies []*Company
	err := getDBFromContext(ctx, db.db).
		Order("company_name").
		Find(&companies).Error
	return companies, err
}

// CreateExpense creates a new expense record
func (db *Postgres) CreateExpense(ctx context.Context, expense *Expense) error {
	return getDBFromContext(ctx, db.db).Create(expense).Error
}

// ListExpenses retrieves all expense records system-wide
func (db *Postgres) ListExpenses(ctx context.Context) ([]*Expense, error) {
	var expenses []*Expense
	err := getDBFromContext(ctx, db.db).
		Order("date desc, id desc").
		Find(&expenses).Error
	return expenses, err
}

// ListExpensesByDepartment retrieves the expense records of one department
func (db *Postgres) ListExpensesByDepartment(ctx context.Context, department Role) ([]*Expense, error) {
	var expenses []*Expense
	err := getDBFromContext(ctx, db.db).
		Where("department = ?", department).
		Order("date desc, id desc").
		Find(&expenses).Error
	return expenses, err
}

// GetExpense retrieves an expense by id
func (db *Postgres) GetExpense(ctx context.Context, id uint) (*Expense, error) {
	var expense Expense
	err := getDBFromContext(ctx, db.db).
		Where("id = ?", id).
		First(&expense).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense deletes an expense by id
func (db *Postgres) DeleteExpense(ctx context.Context, id uint) error {
	result := getDBFromContext(ctx, db.db).Delete(&Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
