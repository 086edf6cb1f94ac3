package sales

import "time"

const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentPartial = "partial"
)

// Record is one sale. TotalAmount is computed from quantity and unit price at
// creation time and persisted as-is; it is never recomputed afterwards.
type Record struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	ProductType     string    `gorm:"not null"`
	Quantity        float64   `gorm:"type:numeric(12,2);not null"`
	Unit            string    `gorm:"not null"`
	CustomerName    string    `gorm:"not null"`
	CustomerContact string    `gorm:"not null;default:''"`
	SaleDate        time.Time `gorm:"type:date;not null"`
	UnitPrice       float64   `gorm:"type:numeric(12,2);not null"`
	TotalAmount     float64   `gorm:"type:numeric(14,2);not null"`
	PaymentStatus   string    `gorm:"not null;default:'pending'"`
	Notes           string    `gorm:"not null;default:''"`
	CreatedBy       string    `gorm:"type:uuid"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Record) TableName() string {
	return "sales_records"
}

type CreateInput struct {
	ProductType     string
	Quantity        float64
	Unit            string
	CustomerName    string
	CustomerContact string
	SaleDate        time.Time
	UnitPrice       float64
	PaymentStatus   string
	Notes           string
	CreatedBy       string
}

func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPaid, PaymentPending, PaymentPartial:
		return true
	}
	return false
}
