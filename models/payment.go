package models

import "time"

// PaymentRequest describes a checkout attempt for one lesson booking.
type PaymentRequest struct {
	UserID   string  `json:"userId"`
	LessonID string  `json:"lessonId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"` // "card" or "cash"
}

// Invoice records the outcome of a payment attempt.
type Invoice struct {
	InvoiceID    string    `bson:"invoiceId" json:"invoiceId"`
	UserID       string    `bson:"userId" json:"userId"`
	LessonID     string    `bson:"lessonId" json:"lessonId"`
	PaymentID    string    `bson:"paymentId,omitempty" json:"paymentId,omitempty"` // Stripe PaymentIntent ID for card payments
	Amount       float64   `bson:"amount" json:"amount"`
	Currency     string    `bson:"currency" json:"currency"`
	Method       string    `bson:"method" json:"method"`
	Status       string    `bson:"status" json:"status"` // "pending", "requires_confirmation", "paid"
	ClientSecret string    `bson:"-" json:"clientSecret,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
