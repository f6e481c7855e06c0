// internal/model/subscription.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

// OrganizationSubscription is a purchased block of seats. AvailableSeats is
// kept equal to TotalSeats - AssignedSeats by the repository's conditional
// updates; it is never adjusted independently.
type OrganizationSubscription struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"organization_id"`
	OrganizationType   OrganizationType   `gorm:"type:organization_type;not null" json:"organization_type"`
	SubscriptionPlanID uuid.UUID          `gorm:"type:uuid;not null" json:"subscription_plan_id"`
	PurchasedByID      uuid.UUID          `gorm:"type:uuid;not null" json:"purchased_by"`
	TotalSeats         int                `gorm:"not null" json:"total_seats"`
	AssignedSeats      int                `gorm:"not null;default:0" json:"assigned_seats"`
	AvailableSeats     int                `gorm:"not null" json:"available_seats"`
	TargetMemberType   MemberType         `gorm:"type:member_type;not null" json:"target_member_type"`
	Status             SubscriptionStatus `gorm:"type:subscription_status;not null;default:'active'" json:"status"`
	BillingCycle       BillingCycle       `gorm:"type:billing_cycle;not null;default:'monthly'" json:"billing_cycle"`
	StartDate          time.Time          `gorm:"not null" json:"start_date"`
	EndDate            time.Time          `gorm:"not null" json:"end_date"`
	AutoRenew          bool               `gorm:"not null;default:false" json:"auto_renew"`
	PricePerSeat       float64            `gorm:"type:numeric;not null" json:"price_per_seat"`
	TotalAmount        float64            `gorm:"type:numeric;not null" json:"total_amount"`
	DiscountPercentage int                `gorm:"not null;default:0" json:"discount_percentage"`
	FinalAmount        float64            `gorm:"type:numeric;not null" json:"final_amount"`
	CancellationReason *string            `gorm:"type:text" json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time         `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`

	SubscriptionPlan SubscriptionPlan `gorm:"foreignKey:SubscriptionPlanID" json:"-"`
}
