package handler

import (
	"net/http"
	"time"

	"github.com/chloroplast/expense-server/internal/apiserver/database"
	"github.com/chloroplast/expense-server/internal/auth/jwt"
	"github.com/chloroplast/expense-server/internal/common/dto"
	"github.com/chloroplast/expense-server/internal/common/errorx"
	"github.com/chloroplast/expense-server/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SuperAdmin handles super admin authentication and provisioning
type SuperAdmin struct {
	db         database.Database
	jwtService *jwt.Service
	errs       *errorx.ErrorHandler
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewSuperAdmin creates a new super admin handler
func NewSuperAdmin(db database.Database, jwtService *jwt.Service, logger *zap.Logger, m *metrics.Metrics) *SuperAdmin {
	return &SuperAdmin{
		db:         db,
		jwtService: jwtService,
		errs:       errorx.NewErrorHandler(logger),
		logger:     logger,
		metrics:    m,
	}
}

// Login handles super admin login
func (h *SuperAdmin) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.HandleError(c, errorx.ErrValidation.WithMessage("emailId and password are required"))
		return
	}

	admin, err := h.db.GetSuperAdminByEmail(c.Request.Context(), req.EmailID)
	if err != nil {
		h.metrics.IncLogin("superadmin", "failure")
		h.errs.HandleError(c, errorx.ErrInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		h.metrics.IncLogin("superadmin", "failure")
		h.errs.HandleError(c, errorx.ErrInvalidCredentials)
		return
	}

	token, err := h.jwtService.GenerateToken(admin.ID, admin.EmailID, string(database.RoleSuperAdmin))
	if err != nil {
		h.errs.HandleError(c, err)
		return
	}

	h.metrics.IncLogin("superadmin", "success")
	c.JSON(http.StatusOK, dto.OK("Login successful").
		WithToken(token).
		WithRole(string(database.RoleSuperAdmin)).
		WithData(dto.AccountInfo{
			ID:      admin.ID,
			EmailID: admin.EmailID,
			Role:    string(database.RoleSuperAdmin),
			Name:    admin.SuperAdminName,
		}))
}

// Create provisions a new super admin account. The route is guarded by
// a SUPER_ADMIN bearer token; the first account comes from config
// seeding at startup.
func (h *SuperAdmin) Create(c *gin.Context) {
	var req dto.CreateSuperAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.HandleError(c, errorx.ErrValidation.WithMessage("emailId, password and name are required"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.errs.HandleError(c, err)
		return
	}

	admin := &database.SuperAdmin{
		EmailID:        req.EmailID,
		Password:       string(hashed),
		SuperAdminName: req.Name,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := h.db.CreateSuperAdmin(c.Request.Context(), admin); err != nil {
		if database.IsDuplicateKeyError(err) {
			h.errs.HandleError(c, errorx.ErrDuplicateCredential)
			return
		}
		h.errs.HandleError(c, err)
		return
	}

	token, err := h.jwtService.GenerateToken(admin.ID, admin.EmailID, string(database.RoleSuperAdmin))
	if err != nil {
		h.errs.HandleError(c, err)
		return
	}

	createdBy := ""
	if claims, ok := claimsFrom(c); ok {
		createdBy = claims.EmailID
	}
	h.logger.Info("super admin created",
		zap.String("emailId", admin.EmailID),
		zap.String("createdBy", createdBy))

	c.JSON(http.StatusOK, dto.OK("Super admin created successfully").
		WithToken(token).
		WithData(gin.H{"accountId": admin.ID}))
}
