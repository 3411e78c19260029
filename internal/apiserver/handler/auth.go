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

// Auth handles department user registration and login
type Auth struct {
	db         database.Database
	jwtService *jwt.Service
	errs       *errorx.ErrorHandler
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewAuth creates a new department user authentication handler
func NewAuth(db database.Database, jwtService *jwt.Service, logger *zap.Logger, m *metrics.Metrics) *Auth {
	return &Auth{
		db:         db,
		jwtService: jwtService,
		errs:       errorx.NewErrorHandler(logger),
		logger:     logger,
		metrics:    m,
	}
}

// Register handles department user registration
func (h *Auth) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.HandleError(c, errorx.ErrValidation.WithMessage("emailId, password and a valid role are required"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.errs.HandleError(c, err)
		return
	}

	user := &database.DepartmentUser{
		EmailID:   req.EmailID,
		Password:  string(hashed),
		Role:      database.Role(req.Role),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := h.db.CreateDepartmentUser(c.Request.Context(), user); err != nil {
		if database.IsDuplicateKeyError(err) {
			h.errs.HandleError(c, errorx.ErrDuplicateCredential)
			return
		}
		h.errs.HandleError(c, err)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.EmailID, string(user.Role))
	if err != nil {
		h.errs.HandleError(c, err)
		return
	}

	h.logger.Info("department user registered",
		zap.String("emailId", user.EmailID),
		zap.String("role", string(user.Role)))

	c.JSON(http.StatusOK, dto.OK("Registration successful").
		WithToken(token).
		WithData(gin.H{"accountId": user.ID}))
}

// Login handles department user login
func (h *Auth) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.HandleError(c, errorx.ErrValidation.WithMessage("emailId and password are required"))
		return
	}

	user, err := h.db.GetDepartmentUserByEmail(c.Request.Context(), req.EmailID)
	if err != nil {
		h.metrics.IncLogin("department", "failure")
		h.errs.HandleError(c, errorx.ErrInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		h.metrics.IncLogin("department", "failure")
		h.errs.HandleError(c, errorx.ErrInvalidCredentials)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.EmailID, string(user.Role))
	if err != nil {
		h.errs.HandleError(c, err)
		return
	}

	h.metrics.IncLogin("department", "success")
	c.JSON(http.StatusOK, dto.OK("Login successful").
		WithToken(token).
		WithRole(string(user.Role)))
}
