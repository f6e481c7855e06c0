// internal/model/billing.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentSuccess  PaymentStatus = "success"
	PaymentPending  PaymentStatus = "pending"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// PaymentTransaction is a gateway-settled payment. The gateway itself is an
// external collaborator; this row is the record it left behind.
type PaymentTransaction struct {
	ID                         uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID             uuid.UUID        `gorm:"type:uuid;not null;index" json:"organization_id"`
	OrganizationType           OrganizationType `gorm:"type:organization_type;not null" json:"organization_type"`
	OrganizationSubscriptionID *uuid.UUID       `gorm:"type:uuid" json:"organization_subscription_id,omitempty"`
	GatewayPaymentID           string           `gorm:"type:text" json:"gateway_payment_id"`
	Amount                     float64          `gorm:"type:numeric;not null" json:"amount"`
	Currency                   string           `gorm:"type:text;not null;default:'INR'" json:"currency"`
	Status                     PaymentStatus    `gorm:"type:payment_status;not null" json:"status"`
	PaymentMethod              string           `gorm:"type:text" json:"payment_method"`
	Description                string           `gorm:"type:text" json:"description"`
	SeatCount                  int              `json:"seat_count"`
	InvoiceID                  *string          `gorm:"type:text" json:"invoice_id,omitempty"`
	CreatedAt                  time.Time        `json:"created_at"`
	UpdatedAt                  time.Time        `json:"updated_at"`
}

type AddonOrderStatus string

const (
	AddonOrderPending   AddonOrderStatus = "pending"
	AddonOrderCompleted AddonOrderStatus = "completed"
	AddonOrderCancelled AddonOrderStatus = "cancelled"
)

// AddonOrder is a per-member add-on purchase keyed by feature, not by plan.
type AddonOrder struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"organization_id"`
	AddonFeatureKey string           `gorm:"type:text;not null" json:"addon_feature_key"`
	TargetMemberIDs StringList       `gorm:"type:text[];not null;default:'{}'" json:"target_member_ids"`
	Amount          float64          `gorm:"type:numeric;not null" json:"amount"`
	Status          AddonOrderStatus `gorm:"type:addon_order_status;not null;default:'pending'" json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// MemberCount is the number of members an order covers, defaulting to one
// when no explicit targets were recorded.
func (o *AddonOrder) MemberCount() int {
	if len(o.TargetMemberIDs) == 0 {
		return 1
	}
	return len(o.TargetMemberIDs)
}
