package tenant

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForClient returns a GORM scope that filters by client_id. Every
// non-platform-owner query against tenant-owned tables goes through it.
func ForClient(clientID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("client_id = ?", clientID)
	}
}
