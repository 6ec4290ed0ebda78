package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultModel is the base model for all resources.
//
// IDs are allocated by the database and are strictly increasing, the
// ledger relies on this for creation order.
type DefaultModel struct {
	ID        uint      `json:"id" gorm:"primaryKey" example:"42"`                // ID of the resource
	CreatedAt time.Time `json:"createdAt" example:"2025-01-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2025-01-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}
