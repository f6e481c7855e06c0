// internal/model/invitation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationExpired   InvitationStatus = "expired"
	InvitationCancelled InvitationStatus = "cancelled"
)

// Invitation is a pending offer to join an organization. At most one pending
// invitation exists per (organization, email) pair; the three non-pending
// states are terminal.
type Invitation struct {
	ID                     uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"organization_id"`
	OrganizationType       OrganizationType `gorm:"type:organization_type;not null" json:"organization_type"`
	Email                  string           `gorm:"type:citext;not null;index" json:"email"`
	MemberType             MemberType       `gorm:"type:member_type;not null" json:"member_type"`
	InvitedByID            uuid.UUID        `gorm:"type:uuid;not null" json:"invited_by"`
	AutoAssignSubscription bool             `gorm:"not null;default:false" json:"auto_assign_subscription"`
	TargetLicensePoolID    *uuid.UUID       `gorm:"type:uuid" json:"target_license_pool_id,omitempty"`
	Status                 InvitationStatus `gorm:"type:invitation_status;not null;default:'pending'" json:"status"`
	InvitationToken        string           `gorm:"type:text;uniqueIndex;not null" json:"invitation_token"`
	ExpiresAt              time.Time        `gorm:"not null" json:"expires_at"`
	AcceptedAt             *time.Time       `json:"accepted_at,omitempty"`
	AcceptedByID           *uuid.UUID       `gorm:"type:uuid" json:"accepted_by,omitempty"`
	Message                string           `gorm:"type:text" json:"invitation_message,omitempty"`
	Metadata               JSONMap          `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}
