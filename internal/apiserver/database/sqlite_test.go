package database

import (
	"context"
	"testing"
	"time"

	"github.com/chloroplast/expense-server/internal/common/config"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	cfg := &config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"}
	dbi, err := NewSQLite(cfg)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	return dbi.(*SQLite)
}

func TestSQLite_Accounts(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()

	sa := &SuperAdmin{EmailID: "root@chloroplast.io", Password: "hash", SuperAdminName: "Root", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	assert.NoError(t, db.CreateSuperAdmin(ctx, sa))
	assert.NotZero(t, sa.ID)

	got, err := db.GetSuperAdminByEmail(ctx, "root@chloroplast.io")
	assert.NoError(t, err)
	assert.Equal(t, "Root", got.SuperAdminName)

	count, err := db.CountSuperAdmins(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// duplicate email within the same account kind
	dup := &SuperAdmin{EmailID: "root@chloroplast.io", Password: "hash2"}
	err = db.CreateSuperAdmin(ctx, dup)
	assert.Error(t, err)
	assert.True(t, IsDuplicateKeyError(err))

	// same email in a different kind is a separate namespace
	ra := &RestaurantAdmin{EmailID: "root@chloroplast.io", Password: "hash", RestaurantName: "HQ Canteen"}
	assert.NoError(t, db.CreateRestaurantAdmin(ctx, ra))
	gotRA, err := db.GetRestaurantAdminByEmail(ctx, "root@chloroplast.io")
	assert.NoError(t, err)
	assert.Equal(t, "HQ Canteen", gotRA.RestaurantName)

	du := &DepartmentUser{EmailID: "alice@chloroplast.io", Password: "hash", Role: RoleHR}
	assert.NoError(t, db.CreateDepartmentUser(ctx, du))
	gotDU, err := db.GetDepartmentUserByEmail(ctx, "alice@chloroplast.io")
	assert.NoError(t, err)
	assert.Equal(t, RoleHR, gotDU.Role)

	_, err = db.GetDepartmentUserByEmail(ctx, "nobody@chloroplast.io")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSQLite_Companies(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()

	assert.NoError(t, db.CreateCompany(ctx, &Company{CompanyName: "Zen Foods"}))
	assert.NoError(t, db.CreateCompany(ctx, &Company{CompanyName: "Acme Traders"}))

	err := db.CreateCompany(ctx, &Company{CompanyName: "Zen Foods"})
	assert.True(t, IsDuplicateKeyError(err))

	companies, err := db.ListCompanies(ctx)
	assert.NoError(t, err)
	if assert.Len(t, companies, 2) {
		// ordered by name
		assert.Equal(t, "Acme Traders", companies[0].CompanyName)
		assert.Equal(t, "Zen Foods", companies[1].CompanyName)
	}
}

func TestSQLite_Expenses(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()

	e1 := &Expense{Title: "Toner", Amount: 100, Category: "Office Supplies", Type: TypeOperational,
		Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Department: RoleHR,
		SubmitterEmail: "alice@chloroplast.io", Status: StatusPending}
	e2 := &Expense{Title: "Laptop", Amount: 200, Category: "Equipment & Hardware", Type: TypeCapital,
		Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), Department: RoleIT,
		SubmitterEmail: "bob@chloroplast.io", Status: StatusPending}
	assert.NoError(t, db.CreateExpense(ctx, e1))
	assert.NoError(t, db.CreateExpense(ctx, e2))
	assert.NotZero(t, e1.ID)

	all, err := db.ListExpenses(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	hr, err := db.ListExpensesByDepartment(ctx, RoleHR)
	assert.NoError(t, err)
	if assert.Len(t, hr, 1) {
		assert.Equal(t, "Toner", hr[0].Title)
	}

	got, err := db.GetExpense(ctx, e2.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", got.Title)

	assert.NoError(t, db.DeleteExpense(ctx, e1.ID))
	// second delete of the same id must miss
	assert.ErrorIs(t, db.DeleteExpense(ctx, e1.ID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, db.DeleteExpense(ctx, 9999), gorm.ErrRecordNotFound)
}

func TestSQLite_Transaction(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()

	err := db.Transaction(ctx, func(ctx context.Context) error {
		return db.CreateCompany(ctx, &Company{CompanyName: "Tx Co"})
	})
	assert.NoError(t, err)

	// rollback on error
	err = db.Transaction(ctx, func(ctx context.Context) error {
		if err := db.CreateCompany(ctx, &Company{CompanyName: "Rolled Back Co"}); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.Error(t, err)

	companies, err := db.ListCompanies(ctx)
	assert.NoError(t, err)
	assert.Len(t, companies, 1)
}
