// internal/model/plan.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionPlan is shared immutable reference data: a price plus the
// feature keys the plan unlocks. The catalog is read-only from this
// subsystem's point of view.
type SubscriptionPlan struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string     `gorm:"type:text;not null" json:"name"`
	Price     float64    `gorm:"type:numeric;not null" json:"price"`
	Features  StringList `gorm:"type:text[];not null;default:'{}'" json:"features"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
