package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusOK     PaymentStatus = "ok"
	PaymentStatusFailed PaymentStatus = "failed"
)

type Invoice struct {
	BaseModel
	PersonID uuid.UUID `gorm:"index"`

	// Bumped whenever the pricing engine rebuilds the line items.
	LastModification int64

	Items    []InvoiceItem
	Payments []Payment

	Person Person `gorm:"foreignKey:PersonID"`
}

// Total is the invoice amount in cents.
func (i *Invoice) Total() int64 {
	var total int64
	for _, item := range i.Items {
		total += item.Total()
	}
	return total
}

func (i *Invoice) GoodPayments() []Payment {
	return i.paymentsWithStatus(PaymentStatusOK)
}

func (i *Invoice) BadPayments() []Payment {
	return i.paymentsWithStatus(PaymentStatusFailed)
}

// Frozen reports whether any payment attempt, successful or not, has been
// recorded. A frozen invoice must never be regenerated.
func (i *Invoice) Frozen() bool {
	return len(i.Payments) > 0
}

// Paid reports whether good payments cover the invoice total.
func (i *Invoice) Paid() bool {
	var paid int64
	for _, p := range i.GoodPayments() {
		paid += p.Amount
	}
	return len(i.Items) > 0 && paid >= i.Total()
}

func (i *Invoice) paymentsWithStatus(status PaymentStatus) []Payment {
	var out []Payment
	for _, p := range i.Payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

type InvoiceItem struct {
	BaseModel
	InvoiceID   uuid.UUID `gorm:"index"`
	Description string
	Qty         int
	// Unit cost in cents.
	Cost int64
}

func (ii *InvoiceItem) Total() int64 {
	return int64(ii.Qty) * ii.Cost
}

type Payment struct {
	BaseModel
	InvoiceID uuid.UUID     `gorm:"index"`
	Amount    int64         // cents
	Status    PaymentStatus `gorm:"index"`

	// Gateway reference and raw callback payload, kept for reconciliation.
	GatewayRef string
	Receipt    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
