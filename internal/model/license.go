// internal/model/license.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// LicensePool is a named subdivision of a subscription's seats for one member
// type. The sum of allocated seats across a subscription's pools must not
// exceed the subscription's total seats.
type LicensePool struct {
	ID                         uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationSubscriptionID uuid.UUID        `gorm:"type:uuid;not null;index" json:"organization_subscription_id"`
	OrganizationID             uuid.UUID        `gorm:"type:uuid;not null;index" json:"organization_id"`
	OrganizationType           OrganizationType `gorm:"type:organization_type;not null" json:"organization_type"`
	PoolName                   string           `gorm:"type:text;not null" json:"pool_name"`
	MemberType                 MemberType       `gorm:"type:member_type;not null" json:"member_type"`
	AllocatedSeats             int              `gorm:"not null" json:"allocated_seats"`
	AssignedSeats              int              `gorm:"not null;default:0" json:"assigned_seats"`
	AvailableSeats             int              `gorm:"not null" json:"available_seats"`
	AutoAssignNewMembers       bool             `gorm:"not null;default:false" json:"auto_assign_new_members"`
	AssignmentCriteria         JSONMap          `gorm:"type:jsonb" json:"assignment_criteria"`
	IsActive                   bool             `gorm:"not null;default:true" json:"is_active"`
	CreatedByID                uuid.UUID        `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt                  time.Time        `json:"created_at"`
	UpdatedAt                  time.Time        `json:"updated_at"`
}

type AssignmentStatus string

const (
	AssignmentActive     AssignmentStatus = "active"
	AssignmentUnassigned AssignmentStatus = "unassigned"
)

// LicenseAssignment binds one user to one pool. Rows are never deleted;
// unassignment flips the status and records who revoked it, so transfer and
// re-assignment history stays queryable.
type LicenseAssignment struct {
	ID                         uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LicensePoolID              uuid.UUID        `gorm:"type:uuid;not null;index" json:"license_pool_id"`
	OrganizationSubscriptionID uuid.UUID        `gorm:"type:uuid;not null;index" json:"organization_subscription_id"`
	UserID                     uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	MemberType                 MemberType       `gorm:"type:member_type;not null" json:"member_type"`
	Status                     AssignmentStatus `gorm:"type:assignment_status;not null;default:'active'" json:"status"`
	AssignedAt                 time.Time        `gorm:"not null" json:"assigned_at"`
	AssignedByID               uuid.UUID        `gorm:"type:uuid;not null" json:"assigned_by"`
	RevokedAt                  *time.Time       `json:"revoked_at,omitempty"`
	RevokedByID                *uuid.UUID       `gorm:"type:uuid" json:"revoked_by,omitempty"`
	RevocationReason           *string          `gorm:"type:text" json:"revocation_reason,omitempty"`
	TransferredFrom            *uuid.UUID       `gorm:"type:uuid" json:"transferred_from,omitempty"`
	TransferredTo              *uuid.UUID       `gorm:"type:uuid" json:"transferred_to,omitempty"`
	CreatedAt                  time.Time        `json:"created_at"`
	UpdatedAt                  time.Time        `json:"updated_at"`
}
