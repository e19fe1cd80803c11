package entities

import (
	"time"

	"gorm.io/datatypes"

	"github.com/mrlokans/lending-library/internal/money"
)

type Plan struct {
	ID       uint        `gorm:"primaryKey" json:"id"`
	Duration string      `gorm:"size:255" json:"duration"`
	Cost     money.Money `gorm:"type:decimal(10,2)" json:"cost"`
	Details  string      `gorm:"size:500" json:"details"`
}

func (Plan) TableName() string {
	return "plans"
}

// Payment is written once per completed rental or subscription and never changed.
type Payment struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      string         `gorm:"size:50" json:"user_id"`
	Amount      money.Money    `gorm:"type:decimal(10,2)" json:"amount"`
	PaymentDate datatypes.Date `json:"payment_date"`
	Method      string         `gorm:"column:payment_method;size:255" json:"payment_method"`
}

func (Payment) TableName() string {
	return "payments"
}

type CheckoutKind string

const (
	CheckoutRental       CheckoutKind = "rental"
	CheckoutSubscription CheckoutKind = "subscription"
)

// Checkout records either a book rental or a plan subscription. Exactly one of
// BookID and PlanID is set.
type Checkout struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     string         `gorm:"size:50" json:"user_id"`
	BookID     *uint          `json:"book_id,omitempty"`
	PlanID     *uint          `json:"plan_id,omitempty"`
	Rating     *string        `gorm:"size:255" json:"rating,omitempty"`
	ReviewDate datatypes.Date `json:"review_date"`
}

func (Checkout) TableName() string {
	return "checkouts"
}

func (c Checkout) Kind() CheckoutKind {
	if c.PlanID != nil {
		return CheckoutSubscription
	}
	return CheckoutRental
}

// NewRental builds the checkout row for a book rental. An empty rating is stored as NULL.
func NewRental(username string, bookID uint, rating string, on time.Time) *Checkout {
	c := &Checkout{
		UserID:     username,
		BookID:     &bookID,
		ReviewDate: datatypes.Date(on),
	}
	if rating != "" {
		c.Rating = &rating
	}
	return c
}

func NewSubscription(username string, planID uint, on time.Time) *Checkout {
	return &Checkout{
		UserID:     username,
		PlanID:     &planID,
		ReviewDate: datatypes.Date(on),
	}
}

func NewPayment(username string, amount money.Money, method string, on time.Time) *Payment {
	return &Payment{
		UserID:      username,
		Amount:      amount,
		PaymentDate: datatypes.Date(on),
		Method:      method,
	}
}
