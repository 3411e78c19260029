package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/chloroplast/expense-server/internal/apiserver/database"
	"github.com/chloroplast/expense-server/internal/auth/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// dbMock implements database.Database with overridable functions so
// each test controls exactly the calls it expects.
type dbMock struct {
	createSuperAdminFunc         func(ctx context.Context, admin *database.SuperAdmin) error
	getSuperAdminByEmailFunc     func(ctx context.Context, emailID string) (*database.SuperAdmin, error)
	countSuperAdminsFunc         func(ctx context.Context) (int64, error)
	createRestaurantAdminFunc    func(ctx context.Context, admin *database.RestaurantAdmin) error
	getRestaurantAdminFunc       func(ctx context.Context, emailID string) (*database.RestaurantAdmin, error)
	createDepartmentUserFunc     func(ctx context.Context, user *database.DepartmentUser) error
	getDepartmentUserFunc        func(ctx context.Context, emailID string) (*database.DepartmentUser, error)
	createCompanyFunc            func(ctx context.Context, company *database.Company) error
	listCompaniesFunc            func(ctx context.Context) ([]*database.Company, error)
	createExpenseFunc            func(ctx context.Context, expense *database.Expense) error
	listExpensesFunc             func(ctx context.Context) ([]*database.Expense, error)
	listExpensesByDepartmentFunc func(ctx context.Context, department database.Role) ([]*database.Expense, error)
	getExpenseFunc               func(ctx context.Context, id uint) (*database.Expense, error)
	deleteExpenseFunc            func(ctx context.Context, id uint) error
}

func (m *dbMock) Close() error { return nil }

func (m *dbMock) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *dbMock) CreateSuperAdmin(ctx context.Context, admin *database.SuperAdmin) error {
	if m.createSuperAdminFunc != nil {
		return m.createSuperAdminFunc(ctx, admin)
	}
	return nil
}

func (m *dbMock) GetSuperAdminByEmail(ctx context.Context, emailID string) (*database.SuperAdmin, error) {
	if m.getSuperAdminByEmailFunc != nil {
		return m.getSuperAdminByEmailFunc(ctx, emailID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *dbMock) CountSuperAdmins(ctx context.Context) (int64, error) {
	if m.countSuperAdminsFunc != nil {
		return m.countSuperAdminsFunc(ctx)
	}
	return 0, nil
}

func (m *dbMock) CreateRestaurantAdmin(ctx context.Context, admin *database.RestaurantAdmin) error {
	if m.createRestaurantAdminFunc != nil {
		return m.createRestaurantAdminFunc(ctx, admin)
	}
	return nil
}

func (m *dbMock) GetRestaurantAdminByEmail(ctx context.Context, emailID string) (*database.RestaurantAdmin, error) {
	if m.getRestaurantAdminFunc != nil {
		return m.getRestaurantAdminFunc(ctx, emailID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *dbMock) CreateDepartmentUser(ctx context.Context, user *database.DepartmentUser) error {
	if m.createDepartmentUserFunc != nil {
		return m.createDepartmentUserFunc(ctx, user)
	}
	return nil
}

func (m *dbMock) GetDepartmentUserByEmail(ctx context.Context, emailID string) (*database.DepartmentUser, error) {
	if m.getDepartmentUserFunc != nil {
		return m.getDepartmentUserFunc(ctx, emailID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *dbMock) CreateCompany(ctx context.Context, company *database.Company) error {
	if m.createCompanyFunc != nil {
		return m.createCompanyFunc(ctx, company)
	}
	return nil
}

func (m *dbMock) ListCompanies(ctx context.Context) ([]*database.Company, error) {
	if m.listCompaniesFunc != nil {
		return m.listCompaniesFunc(ctx)
	}
	return nil, nil
}

func (m *dbMock) CreateExpense(ctx context.Context, expense *database.Expense) error {
	if m.createExpenseFunc != nil {
		return m.createExpenseFunc(ctx, expense)
	}
	return nil
}

func (m *dbMock) ListExpenses(ctx context.Context) ([]*database.Expense, error) {
	if m.listExpensesFunc != nil {
		return m.listExpensesFunc(ctx)
	}
	return nil, nil
}

func (m *dbMock) ListExpensesByDepartment(ctx context.Context, department database.Role) ([]*database.Expense, error) {
	if m.listExpensesByDepartmentFunc != nil {
		return m.listExpensesByDepartmentFunc(ctx, department)
	}
	return nil, nil
}

func (m *dbMock) GetExpense(ctx context.Context, id uint) (*database.Expense, error) {
	if m.getExpenseFunc != nil {
		return m.getExpenseFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *dbMock) DeleteExpense(ctx context.Context, id uint) error {
	if m.deleteExpenseFunc != nil {
		return m.deleteExpenseFunc(ctx, id)
	}
	return nil
}

func newTestJWTService(t *testing.T) *jwt.Service {
	t.Helper()
	svc, err := jwt.NewService(jwt.Config{
		SecretKey: "this-is-a-very-long-secret-key-for-testing",
	})
	require.NoError(t, err)
	return svc
}

// withClaims injects authenticated claims the way the JWT middleware
// does, so handler tests exercise authorization without real tokens.
func withClaims(accountID uint, emailID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("claims", &jwt.Claims{
			AccountID: accountID,
			EmailID:   emailID,
			Role:      role,
		})
		c.Next()
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
