package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/chloroplast/expense-server/internal/aggregate"
	"github.com/chloroplast/expense-server/internal/apiserver/database"
	"github.com/chloroplast/expense-server/internal/common/dto"
	"github.com/chloroplast/expense-server/internal/common/errorx"
	"github.com/chloroplast/expense-server/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Expense handles the expense ledger endpoints. All routes require a
// valid bearer token; department users are scoped to their own
// department while admin-tier roles see everything.
type Expense struct {
	db      database.Database
	errs    *errorx.ErrorHandler
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewExpense creates a new expense ledger handler
func NewExpense(db database.Database, logger *zap.Logger, m *metrics.Metrics) *Expense {
	return &Expense{
		db:      db,
		errs:    errorx.NewErrorHandler(logger),
		logger:  logger,
		metrics: m,
	}
}

// Create handles expense submission
func (h *Expense) Create(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		h.errs.HandleError(c, errorx.ErrTokenInvalid)
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.HandleError(c, errorx.ErrValidation.WithMessage("title, amount (> 0), category, type, date, department and submitterEmail are required"))
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		h.errs.HandleError(c, errorx.ErrValidation.WithMessage("date must be in YYYY-MM-DD format"))
		return
	}

	if !database.AdminTier(claims.Role) {
		if req.Department != claims.Role || req.SubmitterEmail != claims.EmailID {
			h.errs.HandleError(c, errorx.ErrForbidden.WithMessage("You can only submit expenses for your own department"))
			return
		}
	}

	expense := &database.Expense{
		Title:          req.Title,
		Amount:         req.Amount,
		Category:       req.Category,
		Type:           database.ExpenseType(req.Type),
		Date:           date,
		ReceiptNumber:  req.ReceiptNumber,
		Vendor:         req.Vendor,
		Description:    req.Description,
		Department:     database.Role(req.Department),
		SubmitterEmail: req.SubmitterEmail,
		SubmittedBy:    req.SubmittedBy,
		Status:         database.StatusPending,
		CreatedAt:      time.Now(),
	}
	if err := h.db.CreateExpense(c.Request.Context(), expense); err != nil {
		h.errs.HandleError(c, err)
		return
	}

	h.metrics.IncExpenseCreated(req.Department)
	h.logger.Info("expense created",
		zap.Uint("expenseId", expense.ID),
		zap.String("department", req.Department),
		zap.Float64("amount", req.Amount))

	c.JSON(http.StatusOK, dto.OK("Expense added successfully").
		WithData(gin.H{"expenseId": expense.ID}))
}

// List returns the expenses visible to the caller. Admin-tier roles
// see all departments; everyone else sees only their own.
func (h *Expense) List(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		h.errs.HandleError(c, errorx.ErrTokenInvalid)
		return
	}

	expenses, err := h.visibleExpenses(c, claims.Role)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, dto.OK("Expenses fetched successfully").
		WithData(gin.H{"expenses": expenses}))
}

// Delete removes an expense. Only the submitter or an admin-tier role
// may delete it.
func (h *Expense) Delete(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		h.errs.HandleError(c, errorx.ErrTokenInvalid)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errs.HandleError(c, errorx.ErrValidation.WithMessage("expense id must be a positive integer"))
		return
	}

	expense, err := h.db.GetExpense(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errs.HandleError(c, errorx.ErrNotFound.WithMessage("Expense not found"))
			return
		}
		h.errs.HandleError(c, err)
		return
	}

	if !database.AdminTier(claims.Role) && expense.SubmitterEmail != claims.EmailID {
		h.errs.HandleError(c, errorx.ErrForbidden.WithMessage("You can only delete your own expenses"))
		return
	}

	if err := h.db.DeleteExpense(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errs.HandleError(c, errorx.ErrNotFound.WithMessage("Expense not found"))
			return
		}
		h.errs.HandleError(c, err)
		return
	}

	h.metrics.IncExpenseDeleted()
	c.JSON(http.StatusOK, dto.OK("Expense deleted successfully").
		WithData(gin.H{"ok": true}))
}

// UpdateStatus is the approval workflow endpoint. The dashboard calls
// it but no backend contract exists yet, so it reports as such rather
// than inventing one.
func (h *Expense) UpdateStatus(c *gin.Context) {
	h.errs.HandleError(c, errorx.ErrNotImplemented.WithMessage("Expense status updates are not implemented"))
}

// Summary aggregates the caller-visible expenses for the dashboard
func (h *Expense) Summary(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		h.errs.HandleError(c, errorx.ErrTokenInvalid)
		return
	}

	expenses, err := h.visibleExpenses(c, claims.Role)
	if err != nil {
		return
	}

	total := aggregate.Total(expenses)
	c.JSON(http.StatusOK, dto.OK("Summary computed successfully").
		WithData(gin.H{
			"byDepartment": aggregate.ByDepartment(expenses),
			"byMonth":      aggregate.ByMonth(expenses),
			"byCategory":   aggregate.ByCategory(expenses),
			"totalAmount":  total.TotalAmount,
			"count":        total.Count,
		}))
}

// visibleExpenses resolves the expense set the caller may read,
// applying the optional department query filter. It renders the error
// response itself and returns a non-nil error when the caller should
// bail out.
func (h *Expense) visibleExpenses(c *gin.Context, role string) ([]*database.Expense, error) {
	ctx := c.Request.Context()
	filter := c.Query("department")

	if filter != "" {
		if !database.ValidRole(filter) {
			err := errorx.ErrValidation.WithMessage("unknown department")
			h.errs.HandleError(c, err)
			return nil, err
		}
		if !database.AdminTier(role) && filter != role {
			err := errorx.ErrForbidden.WithMessage("You can only view expenses for your own department")
			h.errs.HandleError(c, err)
			return nil, err
		}
		expenses, err := h.db.ListExpensesByDepartment(ctx, database.Role(filter))
		if err != nil {
			h.errs.HandleError(c, err)
			return nil, err
		}
		return expenses, nil
	}

	if database.AdminTier(role) {
		expenses, err := h.db.ListExpenses(ctx)
		if err != nil {
			h.errs.HandleError(c, err)
			return nil, err
		}
		return expenses, nil
	}

	expenses, err := h.db.ListExpensesByDepartment(ctx, database.Role(role))
	if err != nil {
		h.errs.HandleError(c, err)
		return nil, err
	}
	return expenses, nil
}
