package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/chloroplast/expense-server/internal/apiserver/database"
	"github.com/chloroplast/expense-server/internal/common/dto"
	"github.com/chloroplast/expense-server/internal/common/errorx"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Company handles company registration and listing
type Company struct {
	db     database.Database
	errs   *errorx.ErrorHandler
	logger *zap.Logger
}

// NewCompany creates a new company handler
func NewCompany(db database.Database, logger *zap.Logger) *Company {
	return &Company{
		db:     db,
		errs:   errorx.NewErrorHandler(logger),
		logger: logger,
	}
}

// Create registers a new company name
func (h *Company) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.HandleError(c, errorx.ErrValidation.WithMessage("companyName is required"))
		return
	}

	name := strings.TrimSpace(req.CompanyName)
	if name == "" {
		h.errs.HandleError(c, errorx.ErrValidation.WithMessage("companyName must not be blank"))
		return
	}

	company := &database.Company{
		CompanyName: name,
		CreatedAt:   time.Now(),
	}
	if err := h.db.CreateCompany(c.Request.Context(), company); err != nil {
		if database.IsDuplicateKeyError(err) {
			h.errs.HandleError(c, errorx.ErrDuplicateCredential.WithMessage("Company already exists"))
			return
		}
		h.errs.HandleError(c, err)
		return
	}

	h.logger.Info("company registered", zap.String("companyName", name))
	c.JSON(http.StatusOK, dto.OK("Company added successfully").
		WithData(gin.H{"companyId": company.ID}))
}

// List returns all companies ordered by name
func (h *Company) List(c *gin.Context) {
	companies, err := h.db.ListCompanies(c.Request.Context())
	if err != nil {
		h.errs.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Companies fetched successfully").
		WithData(gin.H{"companies": companies}))
}
