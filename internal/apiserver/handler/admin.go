package handler

import (
	"net/http"

	"github.com/chloroplast/expense-server/internal/apiserver/database"
	"github.com/chloroplast/expense-server/internal/auth/jwt"
	"github.com/chloroplast/expense-server/internal/common/dto"
	"github.com/chloroplast/expense-server/internal/common/errorx"
	"github.com/chloroplast/expense-server/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Admin handles restaurant admin authentication
type Admin struct {
	db         database.Database
	jwtService *jwt.Service
	errs       *errorx.ErrorHandler
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewAdmin creates a new restaurant admin handler
func NewAdmin(db database.Database, jwtService *jwt.Service, logger *zap.Logger, m *metrics.Metrics) *Admin {
	return &Admin{
		db:         db,
		jwtService: jwtService,
		errs:       errorx.NewErrorHandler(logger),
		logger:     logger,
		metrics:    m,
	}
}

// Login handles restaurant admin login
func (h *Admin) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.HandleError(c, errorx.ErrValidation.WithMessage("emailId and password are required"))
		return
	}

	admin, err := h.db.GetRestaurantAdminByEmail(c.Request.Context(), req.EmailID)
	if err != nil {
		h.metrics.IncLogin("admin", "failure")
		h.errs.HandleError(c, errorx.ErrInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		h.metrics.IncLogin("admin", "failure")
		h.errs.HandleError(c, errorx.ErrInvalidCredentials)
		return
	}

	token, err := h.jwtService.GenerateToken(admin.ID, admin.EmailID, string(database.RoleAdmin))
	if err != nil {
		h.errs.HandleError(c, err)
		return
	}

	h.metrics.IncLogin("admin", "success")
	c.JSON(http.StatusOK, dto.OK("Login successful").
		WithToken(token).
		WithRole(string(database.RoleAdmin)).
		WithData(dto.AccountInfo{
			ID:      admin.ID,
			EmailID: admin.EmailID,
			Role:    string(database.RoleAdmin),
			Name:    admin.RestaurantName,
		}))
}
