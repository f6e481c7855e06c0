// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string           `gorm:"type:text;not null" json:"name"`
	OrgType   OrganizationType `gorm:"type:organization_type;not null" json:"organization_type"`
	Email     string           `gorm:"type:citext" json:"email"`
	Phone     string           `gorm:"type:text" json:"phone"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	Members []OrganizationMember `gorm:"foreignKey:OrganizationID" json:"-"`
}

// OrganizationMember links a user to an organization once an invitation is
// accepted.
type OrganizationMember struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	MemberType     MemberType `gorm:"type:member_type;not null" json:"member_type"`
	JoinedAt       time.Time  `json:"joined_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}
