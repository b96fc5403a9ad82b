package db_models

type Person struct {
	BaseModel
	FirstName    string
	LastName     string
	Email        string `gorm:"unique"`
	Handle       string `gorm:"unique"`
	PasswordHash string
	Role         string // "attendee" or "organiser"
	URLHash      string `gorm:"index"` // used in confirmation email links

	Proposals    []Proposal
	Invoices     []Invoice
	Registration *Registration
}

// IsSpeaker reports whether any of the person's proposals was accepted.
// Computed once and passed around instead of re-scanning per pricing rule.
func (p *Person) IsSpeaker() bool {
	for _, proposal := range p.Proposals {
		if proposal.Accepted {
			return true
		}
	}
	return false
}

// FirstInvoice returns the invoice the pricing engine owns, or nil.
// Invoices are ordered by creation, the first one is the registration invoice.
func (p *Person) FirstInvoice() *Invoice {
	if len(p.Invoices) == 0 {
		return nil
	}
	return &p.Invoices[0]
}
