package services

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"confreg/internal/models/db_models"
	"confreg/internal/repositories"
	"confreg/pkg/utils"
)

// PricingConfig carries the early-bird window. The deadline and capacity
// are conference-wide settings, not per registration.
type PricingConfig struct {
	EarlybirdDeadline time.Time
	EarlybirdLimit    int
}

func PricingConfigFromEnv() PricingConfig {
	cfg := PricingConfig{
		EarlybirdDeadline: time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC),
		EarlybirdLimit:    15,
	}

	if raw := os.Getenv("EARLYBIRD_DEADLINE"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			cfg.EarlybirdDeadline = parsed
		}
	}
	if raw := os.Getenv("EARLYBIRD_LIMIT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			cfg.EarlybirdLimit = parsed
		}
	}

	return cfg
}

// Flat add-on rates in cents.
const (
	dinnerTicketCost = 5000
	ppAdultCost      = 29700
	ppChildCost      = 14300
)

// PriceTable maps a registration type to its [earlybird, standard] cost in
// cents.
type PriceTable struct {
	types  map[db_models.RegistrationType][2]int64
	dinner int64
}

func DefaultPriceTable() *PriceTable {
	return &PriceTable{
		types: map[db_models.RegistrationType][2]int64{
			db_models.RegTypeProfessional: {59840, 74800},
			db_models.RegTypeHobbyist:     {28160, 35200},
			db_models.RegTypeConcession:   {15400, 15400},
			db_models.RegTypeSpeaker:      {0, 0},
		},
		dinner: dinnerTicketCost,
	}
}

// TypeAmount returns the registration cost for the type. The second return
// is false for unknown types; the zero cost then stands, callers guard.
func (p *PriceTable) TypeAmount(t db_models.RegistrationType, earlybird bool) (int64, bool) {
	costs, ok := p.types[t]
	if !ok {
		return 0, false
	}
	if earlybird {
		return costs[0], true
	}
	return costs[1], true
}

func (p *PriceTable) DinnerAmount(tickets int) int64 {
	return p.dinner * int64(tickets)
}

type PricingService interface {
	// CheckEarlybird reports whether the early-bird tier is open plus the
	// advisory capacity message. Advisory only: it prices registrations,
	// it never blocks them.
	CheckEarlybird(ctx context.Context) (bool, string, error)

	// CheckDiscount evaluates the registration's attached discount code.
	// applied=true with a non-empty message can still be a warning (the
	// code was minted for a different tier).
	CheckDiscount(registration *db_models.Registration) (applied bool, message string)

	// BuildInvoice (re)generates the invoice for the registration's owner.
	// Idempotent: an invoice with any recorded payment is returned as-is.
	BuildInvoice(ctx context.Context, registrationID string) (*db_models.Invoice, error)
}

type pricingService struct {
	registrationRepo repositories.RegistrationRepository
	invoiceRepo      repositories.InvoiceRepository
	prices           *PriceTable
	cfg              PricingConfig
	logger           *zap.Logger
	now              func() time.Time
}

func NewPricingService(
	registrationRepo repositories.RegistrationRepository,
	invoiceRepo repositories.InvoiceRepository,
	cfg PricingConfig,
	logger *zap.Logger,
) PricingService {
	return &pricingService{
		registrationRepo: registrationRepo,
		invoiceRepo:      invoiceRepo,
		prices:           DefaultPriceTable(),
		cfg:              cfg,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *pricingService) CheckEarlybird(ctx context.Context) (bool, string, error) {
	timeleft := s.cfg.EarlybirdDeadline.Sub(s.now())
	if timeleft < 0 {
		return false, "Too late.", nil
	}
	daysToGo := fmt.Sprintf(" %.1f days to go.", timeleft.Hours()/24)

	registrations, err := s.registrationRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("earlybird scan failed", zap.Error(err))
		return false, "", utils.ErrDatabaseError
	}

	count := 0
	for _, r := range registrations {
		if r.Type != db_models.RegTypeHobbyist && r.Type != db_models.RegTypeProfessional {
			continue
		}
		invoice := r.Person.FirstInvoice()
		if invoice == nil || !invoice.Paid() {
			continue
		}
		if r.Person.IsSpeaker() {
			continue
		}
		count++
	}

	if count >= s.cfg.EarlybirdLimit {
		return false, "All gone.", nil
	}

	left := s.cfg.EarlybirdLimit - count
	percent := int(math.Round(20.0*float64(left)/float64(s.cfg.EarlybirdLimit))) * 5
	switch {
	case percent == 0:
		return true, "Almost all gone," + daysToGo, nil
	case percent <= 30:
		return true, fmt.Sprintf("Only %d%% left,", percent) + daysToGo, nil
	default:
		return true, fmt.Sprintf("%d%% left,", percent) + daysToGo, nil
	}
}

func (s *pricingService) CheckDiscount(registration *db_models.Registration) (bool, string) {
	discount := registration.Discount
	if discount == nil {
		return false, ""
	}

	if len(discount.Registrations) > 1 {
		return false, "Discount code already used"
	}

	if discount.Type != registration.Type {
		warning := fmt.Sprintf(
			"Your discount is for %s, but you are registering as %s. It still applies, but only covers the %s rate.",
			discount.Type, registration.Type, discount.Type)
		return true, warning
	}

	return true, "Your discount code has been applied"
}

func (s *pricingService) BuildInvoice(ctx context.Context, registrationID string) (*db_models.Invoice, error) {
	registration, err := s.registrationRepo.FindByID(ctx, registrationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if registration == nil {
		return nil, utils.ErrRegistrationNotFound
	}

	invoice, err := s.invoiceRepo.FirstByPersonID(ctx, registration.PersonID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invoice != nil && invoice.Frozen() {
		// Payments recorded: the invoice is immutable, hand it back.
		return invoice, nil
	}

	earlybird, _, err := s.CheckEarlybird(ctx)
	if err != nil {
		return nil, err
	}

	isSpeaker := registration.Person.IsSpeaker()
	items := s.assembleItems(registration, earlybird, isSpeaker)

	if invoice == nil {
		invoice = &db_models.Invoice{PersonID: registration.PersonID}
	}
	if err := s.invoiceRepo.Replace(ctx, invoice, items); err != nil {
		s.logger.Error("invoice rebuild failed",
			zap.String("registration_id", registrationID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return invoice, nil
}

func (s *pricingService) assembleItems(
	registration *db_models.Registration,
	earlybird bool,
	isSpeaker bool,
) []db_models.InvoiceItem {
	var items []db_models.InvoiceItem

	// Registration fee
	description := string(registration.Type) + " Registration"
	if earlybird {
		description += " (earlybird)"
	}
	cost, known := s.prices.TypeAmount(registration.Type, earlybird)
	if !known {
		s.logger.Warn("unknown registration type priced at zero",
			zap.String("type", string(registration.Type)))
	}

	if applied, _ := s.CheckDiscount(registration); applied {
		discount := registration.Discount
		description += " (Discounted " + string(discount.Type) + ")"
		base, _ := s.prices.TypeAmount(discount.Type, earlybird)
		discountAmount := base * discount.Percentage / 100
		if discountAmount > cost {
			cost = 0
		} else {
			cost -= discountAmount
		}
	}
	items = append(items, db_models.InvoiceItem{
		Description: description,
		Qty:         1,
		Cost:        cost,
	})

	// Dinner
	if registration.Dinner > 0 {
		items = append(items, db_models.InvoiceItem{
			Description: "Additional Conference Dinner Tickets",
			Qty:         registration.Dinner,
			Cost:        s.prices.DinnerAmount(1),
		})
	}

	// Accommodation. Same-day checkin/checkout is a zero-night stay and
	// gets no line item.
	if nights := registration.AccommodationNights(); registration.Accommodation != nil && nights > 0 {
		accommodation := registration.Accommodation
		description := "Accommodation - " + accommodation.Name
		if accommodation.Option != "" {
			description += fmt.Sprintf(" (%s)", accommodation.Option)
		}
		items = append(items, db_models.InvoiceItem{
			Description: description,
			Qty:         nights,
			// Nightly rates are stored in whole currency units.
			Cost: accommodation.CostPerNight * 100,
		})
	}

	// Partner's Programme
	if adults := registration.PPAdultCount(isSpeaker); adults > 0 {
		items = append(items, db_models.InvoiceItem{
			Description: "Partner's Programme - Adult",
			Qty:         adults,
			Cost:        ppAdultCost,
		})
	}
	if kids := registration.PPChildCount(isSpeaker); kids > 0 {
		items = append(items, db_models.InvoiceItem{
			Description: "Partner's Programme - Child",
			Qty:         kids,
			Cost:        ppChildCost,
		})
	}

	return items
}
