package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/chloroplast/expense-server/internal/common/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IsDuplicateKeyError reports whether err is a unique-constraint violation.
// Dialects word this differently, so the raw message is inspected as well.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique failed")
}

// InitSuperAdmin seeds the bootstrap super admin account from configuration
// when no super admin exists yet. The configured password is stored hashed.
func InitSuperAdmin(db Database, cfg *config.SuperAdminConfig) error {
	if cfg == nil || cfg.EmailID == "" {
		return nil
	}

	ctx := context.Background()
	count, err := db.CountSuperAdmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &SuperAdmin{
		EmailID:        cfg.EmailID,
		Password:       string(hashed),
		SuperAdminName: cfg.Name,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := db.CreateSuperAdmin(ctx, admin); err != nil {
		// A concurrent boot may have seeded it first
		if IsDuplicateKeyError(err) {
			return nil
		}
		return err
	}
	return nil
}
