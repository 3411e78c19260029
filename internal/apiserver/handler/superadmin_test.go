package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/chloroplast/expense-server/internal/apiserver/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newSuperAdminRouter(db database.Database, t *testing.T, claims gin.HandlerFunc) *gin.Engine {
	t.Helper()
	h := NewSuperAdmin(db, newTestJWTService(t), testLogger(), nil)
	r := gin.New()
	r.POST("/superadmin/login", h.Login)
	create := r.Group("/superadmin")
	if claims != nil {
		create.Use(claims)
	}
	create.POST("/create", h.Create)
	return r
}

func TestSuperAdminLoginSuccess(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("root-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	db := &dbMock{
		getSuperAdminByEmailFunc: func(_ context.Context, emailID string) (*database.SuperAdmin, error) {
			return &database.SuperAdmin{
				ID:             1,
				EmailID:        emailID,
				Password:       string(hashed),
				SuperAdminName: "Root",
			}, nil
		},
	}
	r := newSuperAdminRouter(db, t, nil)

	w := doJSON(t, r, http.MethodPost, "/superadmin/login", gin.H{
		"emailId":  "root@example.com",
		"password": "root-pass",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, true, resp["status"])
	assert.Equal(t, "SUPER_ADMIN", resp["role"])
	assert.NotEmpty(t, resp["token"])

	data, ok := resp["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Root", data["name"])
}

func TestSuperAdminLoginInvalidCredentials(t *testing.T) {
	db := &dbMock{
		getSuperAdminByEmailFunc: func(_ context.Context, _ string) (*database.SuperAdmin, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	r := newSuperAdminRouter(db, t, nil)

	w := doJSON(t, r, http.MethodPost, "/superadmin/login", gin.H{
		"emailId":  "root@example.com",
		"password": "root-pass",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, false, resp["status"])
	assert.Equal(t, "Invalid email or password", resp["message"])
}

func TestSuperAdminCreateSuccess(t *testing.T) {
	var created *database.SuperAdmin
	db := &dbMock{
		createSuperAdminFunc: func(_ context.Context, admin *database.SuperAdmin) error {
			admin.ID = 2
			created = admin
			return nil
		},
	}
	r := newSuperAdminRouter(db, t, withClaims(1, "root@example.com", "SUPER_ADMIN"))

	w := doJSON(t, r, http.MethodPost, "/superadmin/create", gin.H{
		"emailId":  "second@example.com",
		"password": "another-pass",
		"name":     "Second Root",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, true, resp["status"])
	assert.Equal(t, "Super admin created successfully", resp["message"])
	assert.NotEmpty(t, resp["token"])

	require.NotNil(t, created)
	assert.Equal(t, "second@example.com", created.EmailID)
	assert.Equal(t, "Second Root", created.SuperAdminName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("another-pass")))

	data, ok := resp["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), data["accountId"])
}

func TestSuperAdminCreateDuplicate(t *testing.T) {
	db := &dbMock{
		createSuperAdminFunc: func(_ context.Context, _ *database.SuperAdmin) error {
			return gorm.ErrDuplicatedKey
		},
	}
	r := newSuperAdminRouter(db, t, withClaims(1, "root@example.com", "SUPER_ADMIN"))

	w := doJSON(t, r, http.MethodPost, "/superadmin/create", gin.H{
		"emailId":  "root@example.com",
		"password": "another-pass",
		"name":     "Root Again",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "This Mail is Already Registered", resp["message"])
}

func TestSuperAdminCreateMissingFields(t *testing.T) {
	r := newSuperAdminRouter(&dbMock{}, t, withClaims(1, "root@example.com", "SUPER_ADMIN"))

	w := doJSON(t, r, http.MethodPost, "/superadmin/create", gin.H{
		"emailId":  "second@example.com",
		"password": "another-pass",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
