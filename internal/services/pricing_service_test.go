package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"confreg/internal/models/db_models"
	"confreg/internal/repositories"
)

var testDeadline = time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)

func newTestPricingService(
	registrationRepo repositories.RegistrationRepository,
	invoiceRepo repositories.InvoiceRepository,
	cfg PricingConfig,
	now time.Time,
) *pricingService {
	return &pricingService{
		registrationRepo: registrationRepo,
		invoiceRepo:      invoiceRepo,
		prices:           DefaultPriceTable(),
		cfg:              cfg,
		logger:           zap.NewNop(),
		now:              func() time.Time { return now },
	}
}

// paidRegistration builds a registration whose owner has fully paid their
// invoice, the shape that consumes an early-bird place.
func paidRegistration(regType db_models.RegistrationType) db_models.Registration {
	invoice := db_models.Invoice{
		Items: []db_models.InvoiceItem{
			{Description: string(regType) + " Registration", Qty: 1, Cost: 59840},
		},
		Payments: []db_models.Payment{
			{Amount: 59840, Status: db_models.PaymentStatusOK},
		},
	}
	return db_models.Registration{
		Type:   regType,
		Person: db_models.Person{Invoices: []db_models.Invoice{invoice}},
	}
}

func TestDefaultPriceTable(t *testing.T) {
	prices := DefaultPriceTable()

	cases := []struct {
		regType   db_models.RegistrationType
		earlybird int64
		standard  int64
	}{
		{db_models.RegTypeProfessional, 59840, 74800},
		{db_models.RegTypeHobbyist, 28160, 35200},
		{db_models.RegTypeConcession, 15400, 15400},
		{db_models.RegTypeSpeaker, 0, 0},
	}

	for _, tc := range cases {
		t.Run(string(tc.regType), func(t *testing.T) {
			eb, ok := prices.TypeAmount(tc.regType, true)
			require.True(t, ok)
			assert.Equal(t, tc.earlybird, eb)

			std, ok := prices.TypeAmount(tc.regType, false)
			require.True(t, ok)
			assert.Equal(t, tc.standard, std)
		})
	}

	_, ok := prices.TypeAmount(db_models.RegistrationType("Sponsor"), true)
	assert.False(t, ok)

	assert.Equal(t, int64(15000), prices.DinnerAmount(3))
	assert.Equal(t, int64(0), prices.DinnerAmount(0))
}

func TestCheckEarlybirdTooLate(t *testing.T) {
	svc := newTestPricingService(
		&mockRegistrationRepository{},
		&mockInvoiceRepository{},
		PricingConfig{EarlybirdDeadline: testDeadline, EarlybirdLimit: 15},
		testDeadline.Add(time.Hour),
	)

	open, message, err := svc.CheckEarlybird(context.Background())
	require.NoError(t, err)
	assert.False(t, open)
	assert.Equal(t, "Too late.", message)
}

func TestCheckEarlybirdAllGone(t *testing.T) {
	registrations := make([]db_models.Registration, 0, 15)
	for i := 0; i < 15; i++ {
		registrations = append(registrations, paidRegistration(db_models.RegTypeProfessional))
	}
	regRepo := &mockRegistrationRepository{
		ListAllFunc: func(ctx context.Context) ([]db_models.Registration, error) {
			return registrations, nil
		},
	}

	svc := newTestPricingService(regRepo, &mockInvoiceRepository{},
		PricingConfig{EarlybirdDeadline: testDeadline, EarlybirdLimit: 15},
		testDeadline.AddDate(0, 0, -10))

	open, message, err := svc.CheckEarlybird(context.Background())
	require.NoError(t, err)
	assert.False(t, open)
	assert.Equal(t, "All gone.", message)
}

func TestCheckEarlybirdPercentMessages(t *testing.T) {
	cases := []struct {
		name    string
		limit   int
		taken   int
		message string
	}{
		{"full capacity", 15, 0, "100% left, 10.0 days to go."},
		{"roughly half", 15, 8, "45% left, 10.0 days to go."},
		{"running low", 15, 11, "Only 25% left, 10.0 days to go."},
		{"last place", 15, 14, "Only 5% left, 10.0 days to go."},
		{"rounds to nothing", 50, 49, "Almost all gone, 10.0 days to go."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			registrations := make([]db_models.Registration, 0, tc.taken)
			for i := 0; i < tc.taken; i++ {
				registrations = append(registrations, paidRegistration(db_models.RegTypeHobbyist))
			}
			regRepo := &mockRegistrationRepository{
				ListAllFunc: func(ctx context.Context) ([]db_models.Registration, error) {
					return registrations, nil
				},
			}

			svc := newTestPricingService(regRepo, &mockInvoiceRepository{},
				PricingConfig{EarlybirdDeadline: testDeadline, EarlybirdLimit: tc.limit},
				testDeadline.AddDate(0, 0, -10))

			open, message, err := svc.CheckEarlybird(context.Background())
			require.NoError(t, err)
			assert.True(t, open)
			assert.Equal(t, tc.message, message)
		})
	}
}

func TestCheckEarlybirdCountsOnlyPaidNonSpeakerTiers(t *testing.T) {
	unpaid := db_models.Registration{
		Type:   db_models.RegTypeProfessional,
		Person: db_models.Person{},
	}
	concession := paidRegistration(db_models.RegTypeConcession)
	speaker := paidRegistration(db_models.RegTypeProfessional)
	speaker.Person.Proposals = []db_models.Proposal{{Title: "Keynote", Accepted: true}}
	partiallyPaid := paidRegistration(db_models.RegTypeHobbyist)
	partiallyPaid.Person.Invoices[0].Payments[0].Amount = 100

	regRepo := &mockRegistrationRepository{
		ListAllFunc: func(ctx context.Context) ([]db_models.Registration, error) {
			return []db_models.Registration{
				unpaid, concession, speaker, partiallyPaid,
				paidRegistration(db_models.RegTypeProfessional),
			}, nil
		},
	}

	svc := newTestPricingService(regRepo, &mockInvoiceRepository{},
		PricingConfig{EarlybirdDeadline: testDeadline, EarlybirdLimit: 15},
		testDeadline.AddDate(0, 0, -10))

	open, message, err := svc.CheckEarlybird(context.Background())
	require.NoError(t, err)
	assert.True(t, open)
	// 1 of 15 places taken, 14 left.
	assert.Equal(t, "95% left, 10.0 days to go.", message)
}

func TestCheckDiscount(t *testing.T) {
	t.Run("no code attached", func(t *testing.T) {
		svc := newTestPricingService(&mockRegistrationRepository{}, &mockInvoiceRepository{},
			PricingConfig{}, testDeadline)

		applied, message := svc.CheckDiscount(&db_models.Registration{})
		assert.False(t, applied)
		assert.Empty(t, message)
	})

	t.Run("code already used elsewhere", func(t *testing.T) {
		svc := newTestPricingService(&mockRegistrationRepository{}, &mockInvoiceRepository{},
			PricingConfig{}, testDeadline)

		registration := &db_models.Registration{
			Type: db_models.RegTypeHobbyist,
			Discount: &db_models.DiscountCode{
				Code:          "CREW50",
				Type:          db_models.RegTypeHobbyist,
				Percentage:    50,
				Registrations: []db_models.Registration{{}, {}},
			},
		}

		applied, message := svc.CheckDiscount(registration)
		assert.False(t, applied)
		assert.Equal(t, "Discount code already used", message)
	})

	t.Run("tier mismatch still applies with warning", func(t *testing.T) {
		svc := newTestPricingService(&mockRegistrationRepository{}, &mockInvoiceRepository{},
			PricingConfig{}, testDeadline)

		registration := &db_models.Registration{
			Type: db_models.RegTypeProfessional,
			Discount: &db_models.DiscountCode{
				Code:          "CREW50",
				Type:          db_models.RegTypeHobbyist,
				Percentage:    50,
				Registrations: []db_models.Registration{{}},
			},
		}

		applied, message := svc.CheckDiscount(registration)
		assert.True(t, applied)
		assert.Contains(t, message, "Your discount is for Hobbyist")
		assert.Contains(t, message, "registering as Professional")
	})

	t.Run("matching tier", func(t *testing.T) {
		svc := newTestPricingService(&mockRegistrationRepository{}, &mockInvoiceRepository{},
			PricingConfig{}, testDeadline)

		registration := &db_models.Registration{
			Type: db_models.RegTypeHobbyist,
			Discount: &db_models.DiscountCode{
				Code:          "CREW50",
				Type:          db_models.RegTypeHobbyist,
				Percentage:    50,
				Registrations: []db_models.Registration{{}},
			},
		}

		applied, message := svc.CheckDiscount(registration)
		assert.True(t, applied)
		assert.Equal(t, "Your discount code has been applied", message)
	})
}

func TestBuildInvoiceEarlybirdProfessional(t *testing.T) {
	registration := &db_models.Registration{
		Type:   db_models.RegTypeProfessional,
		Person: db_models.Person{},
	}
	regRepo := &mockRegistrationRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*db_models.Registration, error) {
			return registration, nil
		},
		ListAllFunc: func(ctx context.Context) ([]db_models.Registration, error) {
			return nil, nil
		},
	}

	var captured []db_models.InvoiceItem
	invRepo := &mockInvoiceRepository{
		ReplaceFunc: func(ctx context.Context, invoice *db_models.Invoice, items []db_models.InvoiceItem) error {
			captured = items
			invoice.Items = items
			return nil
		},
	}

	svc := newTestPricingService(regRepo, invRepo,
		PricingConfig{EarlybirdDeadline: testDeadline, EarlybirdLimit: 15},
		testDeadline.AddDate(0, 0, -10))

	invoice, err := svc.BuildInvoice(context.Background(), "reg-1")
	require.NoError(t, err)
	require.NotNil(t, invoice)

	require.Len(t, captured, 1)
	assert.Equal(t, "Professional Registration (earlybird)", captured[0].Description)
	assert.Equal(t, 1, captured[0].Qty)
	assert.Equal(t, int64(59840), captured[0].Cost)
	assert.Equal(t, int64(59840), invoice.Total())
}

func TestBuildInvoiceDiscountedHobbyistAfterDeadline(t *testing.T) {
	registration := &db_models.Registration{
		Type: db_models.RegTypeHobbyist,
		Discount: &db_models.DiscountCode{
			Code:          "CREW50",
			Type:          db_models.RegTypeHobbyist,
			Percentage:    50,
			Registrations: []db_models.Registration{{}},
		},
		Person: db_models.Person{},
	}
	regRepo := &mockRegistrationRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*db_models.Registration, error) {
			return registration, nil
		},
	}

	var captured []db_models.InvoiceItem
	invRepo := &mockInvoiceRepository{
		ReplaceFunc: func(ctx context.Context, invoice *db_models.Invoice, items []db_models.InvoiceItem) error {
			captured = items
			return nil
		},
	}

	svc := newTestPricingService(regRepo, invRepo,
		PricingConfig{EarlybirdDeadline: testDeadline, EarlybirdLimit: 15},
		testDeadline.Add(time.Hour))

	_, err := svc.BuildInvoice(context.Background(), "reg-1")
	require.NoError(t, err)

	require.Len(t, captured, 1)
	assert.Equal(t, "Hobbyist Registration (Discounted Hobbyist)", captured[0].Description)
	// 35200 standard rate less 50%.
	assert.Equal(t, int64(17600), captured[0].Cost)
}

func TestBuildInvoiceDiscountNeverGoesNegative(t *testing.T) {
	registration := &db_models.Registration{
		Type: db_models.RegTypeConcession,
		Discount: &db_models.DiscountCode{
			Code:          "COMP100",
			Type:          db_models.RegTypeProfessional,
			Percentage:    100,
			Registrations: []db_models.Registration{{}},
		},
		Person: db_models.Person{},
	}
	regRepo := &mockRegistrationRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*db_models.Registration, error) {
			return registration, nil
		},
	}

	var captured []db_models.InvoiceItem
	invRepo := &mockInvoiceRepository{
		ReplaceFunc: func(ctx context.Context, invoice *db_models.Invoice, items []db_models.InvoiceItem) error {
			captured = items
			return nil
		},
	}

	svc := newTestPricingService(regRepo, invRepo,
		PricingConfig{EarlybirdDeadline: testDeadline, EarlybirdLimit: 15},
		testDeadline.Add(time.Hour))

	_, err := svc.BuildInvoice(context.Background(), "reg-1")
	require.NoError(t, err)

	require.Len(t, captured, 1)
	assert.Equal(t, int64(0), captured[0].Cost)
}

func TestBuildInvoiceFrozenIsReturnedUnchanged(t *testing.T) {
	frozen := &db_models.Invoice{
		Items: []db_models.InvoiceItem{
			{Description: "Professional Registration", Qty: 1, Cost: 74800},
		},
		Payments: []db_models.Payment{
			{Amount: 74800, Status: db_models.PaymentStatusFailed},
		},
	}
	registration := &db_models.Registration{
		Type:   db_models.RegTypeProfessional,
		Person: db_models.Person{},
	}
	regRepo := &mockRegistrationRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*db_models.Registration, error) {
			return registration, nil
		},
	}

	replaceCalled := false
	invRepo := &mockInvoiceRepository{
		FirstByPersonIDFunc: func(ctx context.Context, personID string) (*db_models.Invoice, error) {
			return frozen, nil
		},
		ReplaceFunc: func(ctx context.Context, invoice *db_models.Invoice, items []db_models.InvoiceItem) error {
			replaceCalled = true
			return nil
		},
	}

	svc := newTestPricingService(regRepo, invRepo,
		PricingConfig{EarlybirdDeadline: testDeadline, EarlybirdLimit: 15},
		testDeadline.AddDate(0, 0, -10))

	invoice, err := svc.BuildInvoice(context.Background(), "reg-1")
	require.NoError(t, err)
	require.NotNil(t, invoice)

	assert.False(t, replaceCalled)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, int64(74800), invoice.Items[0].Cost)
}

func TestBuildInvoiceWithAllExtras(t *testing.T) {
	one, two := 1, 2
	registration := &db_models.Registration{
		Type:     db_models.RegTypeProfessional,
		Dinner:   2,
		Checkin:  28,
		Checkout: 3,
		Accommodation: &db_models.Accommodation{
			Name:         "University College",
			Option:       "Single room",
			CostPerNight: 60,
		},
		Kids12_17: &one,
		PPAdults:  &one,
		Kids4_6:   &two,
		Person:    db_models.Person{},
	}
	regRepo := &mockRegistrationRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*db_models.Registration, error) {
			return registration, nil
		},
		ListAllFunc: func(ctx context.Context) ([]db_models.Registration, error) {
			return nil, nil
		},
	}

	var captured []db_models.InvoiceItem
	invRepo := &mockInvoiceRepository{
		ReplaceFunc: func(ctx context.Context, invoice *db_models.Invoice, items []db_models.InvoiceItem) error {
			captured = items
			return nil
		},
	}

	svc := newTestPricingService(regRepo, invRepo,
		PricingConfig{EarlybirdDeadline: testDeadline, EarlybirdLimit: 15},
		testDeadline.AddDate(0, 0, -10))

	_, err := svc.BuildInvoice(context.Background(), "reg-1")
	require.NoError(t, err)

	require.Len(t, captured, 5)

	assert.Equal(t, "Professional Registration (earlybird)", captured[0].Description)
	assert.Equal(t, int64(59840), captured[0].Cost)

	assert.Equal(t, "Additional Conference Dinner Tickets", captured[1].Description)
	assert.Equal(t, 2, captured[1].Qty)
	assert.Equal(t, int64(5000), captured[1].Cost)

	// Checkin on the 28th, checkout on the 3rd: the stay wraps the month.
	assert.Equal(t, "Accommodation - University College (Single room)", captured[2].Description)
	assert.Equal(t, 6, captured[2].Qty)
	assert.Equal(t, int64(6000), captured[2].Cost)

	// Kids 12-17 are charged at the adult rate.
	assert.Equal(t, "Partner's Programme - Adult", captured[3].Description)
	assert.Equal(t, 2, captured[3].Qty)
	assert.Equal(t, int64(29700), captured[3].Cost)

	assert.Equal(t, "Partner's Programme - Child", captured[4].Description)
	assert.Equal(t, 2, captured[4].Qty)
	assert.Equal(t, int64(14300), captured[4].Cost)
}

func TestBuildInvoiceSkipsZeroNightAccommodation(t *testing.T) {
	registration := &db_models.Registration{
		Type:     db_models.RegTypeProfessional,
		Checkin:  15,
		Checkout: 15,
		Accommodation: &db_models.Accommodation{
			Name:         "University College",
			CostPerNight: 60,
		},
		Person: db_models.Person{},
	}
	regRepo := &mockRegistrationRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*db_models.Registration, error) {
			return registration, nil
		},
		ListAllFunc: func(ctx context.Context) ([]db_models.Registration, error) {
			return nil, nil
		},
	}

	var captured []db_models.InvoiceItem
	invRepo := &mockInvoiceRepository{
		ReplaceFunc: func(ctx context.Context, invoice *db_models.Invoice, items []db_models.InvoiceItem) error {
			captured = items
			return nil
		},
	}

	svc := newTestPricingService(regRepo, invRepo,
		PricingConfig{EarlybirdDeadline: testDeadline, EarlybirdLimit: 15},
		testDeadline.AddDate(0, 0, -10))

	_, err := svc.BuildInvoice(context.Background(), "reg-1")
	require.NoError(t, err)

	require.Len(t, captured, 1)
	assert.Equal(t, "Professional Registration (earlybird)", captured[0].Description)
	for _, item := range captured {
		assert.Greater(t, item.Qty, 0)
	}
}

func TestBuildInvoiceReusesExistingUnfrozenInvoice(t *testing.T) {
	existing := &db_models.Invoice{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Items: []db_models.InvoiceItem{
			{Description: "Hobbyist Registration (earlybird)", Qty: 1, Cost: 28160},
		},
	}
	registration := &db_models.Registration{
		Type:   db_models.RegTypeProfessional,
		Person: db_models.Person{},
	}
	regRepo := &mockRegistrationRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*db_models.Registration, error) {
			return registration, nil
		},
		ListAllFunc: func(ctx context.Context) ([]db_models.Registration, error) {
			return nil, nil
		},
	}

	var replaced *db_models.Invoice
	invRepo := &mockInvoiceRepository{
		FirstByPersonIDFunc: func(ctx context.Context, personID string) (*db_models.Invoice, error) {
			return existing, nil
		},
		ReplaceFunc: func(ctx context.Context, invoice *db_models.Invoice, items []db_models.InvoiceItem) error {
			replaced = invoice
			invoice.Items = items
			return nil
		},
	}

	svc := newTestPricingService(regRepo, invRepo,
		PricingConfig{EarlybirdDeadline: testDeadline, EarlybirdLimit: 15},
		testDeadline.AddDate(0, 0, -10))

	invoice, err := svc.BuildInvoice(context.Background(), "reg-1")
	require.NoError(t, err)

	// The existing invoice is repriced in place, not replaced by a new one.
	require.NotNil(t, replaced)
	assert.Equal(t, existing.ID, replaced.ID)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, "Professional Registration (earlybird)", invoice.Items[0].Description)
}

func TestBuildInvoiceSpeakerPaysOwnPartnerProgramme(t *testing.T) {
	one, three := 1, 3
	registration := &db_models.Registration{
		Type: db_models.RegTypeSpeaker,
		// Counts the speaker nominated to pay, not the family headcounts.
		SpeakerPPPayAdult: &one,
		Kids12_17:         &three,
		PPAdults:          &three,
		Person: db_models.Person{
			Proposals: []db_models.Proposal{{Title: "Closing talk", Accepted: true}},
		},
	}
	regRepo := &mockRegistrationRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*db_models.Registration, error) {
			return registration, nil
		},
		ListAllFunc: func(ctx context.Context) ([]db_models.Registration, error) {
			return nil, nil
		},
	}

	var captured []db_models.InvoiceItem
	invRepo := &mockInvoiceRepository{
		ReplaceFunc: func(ctx context.Context, invoice *db_models.Invoice, items []db_models.InvoiceItem) error {
			captured = items
			return nil
		},
	}

	svc := newTestPricingService(regRepo, invRepo,
		PricingConfig{EarlybirdDeadline: testDeadline, EarlybirdLimit: 15},
		testDeadline.AddDate(0, 0, -10))

	_, err := svc.BuildInvoice(context.Background(), "reg-1")
	require.NoError(t, err)

	require.Len(t, captured, 2)
	assert.Equal(t, "Speaker Registration (earlybird)", captured[0].Description)
	assert.Equal(t, int64(0), captured[0].Cost)
	assert.Equal(t, "Partner's Programme - Adult", captured[1].Description)
	assert.Equal(t, 1, captured[1].Qty)
}
