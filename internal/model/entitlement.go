// internal/model/entitlement.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Entitlement is a per-user, per-feature grant. Organization-granted and
// self-purchased entitlements for the same feature key are separate rows and
// never collide: the organization one traces back to a subscription, the
// personal one has no subscription reference.
type Entitlement struct {
	ID                         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID                     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	FeatureKey                 string     `gorm:"type:text;not null;index" json:"feature_key"`
	IsActive                   bool       `gorm:"not null;default:true" json:"is_active"`
	GrantedByOrganization      bool       `gorm:"not null;default:false" json:"granted_by_organization"`
	OrganizationSubscriptionID *uuid.UUID `gorm:"type:uuid;index" json:"organization_subscription_id,omitempty"`
	GrantedByID                *uuid.UUID `gorm:"type:uuid" json:"granted_by,omitempty"`
	GrantedAt                  time.Time  `gorm:"not null" json:"granted_at"`
	ExpiresAt                  *time.Time `json:"expires_at,omitempty"`
	RevokedAt                  *time.Time `json:"revoked_at,omitempty"`
	CreatedAt                  time.Time  `json:"created_at"`
	UpdatedAt                  time.Time  `json:"updated_at"`
}
