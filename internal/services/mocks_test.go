package services

import (
	"context"
	"errors"

	"confreg/internal/models/db_models"
	"confreg/internal/repositories"
)

var errMailDown = errors.New("smtp connection refused")

var _ repositories.RegistrationRepository = &mockRegistrationRepository{}

type mockRegistrationRepository struct {
	InsertFunc         func(ctx context.Context, registration *db_models.Registration) error
	UpdateFunc         func(ctx context.Context, registration *db_models.Registration) error
	FindByIDFunc       func(ctx context.Context, id string) (*db_models.Registration, error)
	FindByPersonIDFunc func(ctx context.Context, personID string) (*db_models.Registration, error)
	ListAllFunc        func(ctx context.Context) ([]db_models.Registration, error)
}

func (m *mockRegistrationRepository) Insert(ctx context.Context, registration *db_models.Registration) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, registration)
	}
	return nil
}

func (m *mockRegistrationRepository) Update(ctx context.Context, registration *db_models.Registration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, registration)
	}
	return nil
}

func (m *mockRegistrationRepository) FindByID(ctx context.Context, id string) (*db_models.Registration, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockRegistrationRepository) FindByPersonID(ctx context.Context, personID string) (*db_models.Registration, error) {
	if m.FindByPersonIDFunc != nil {
		return m.FindByPersonIDFunc(ctx, personID)
	}
	return nil, nil
}

func (m *mockRegistrationRepository) ListAll(ctx context.Context) ([]db_models.Registration, error) {
	return m.ListAllFunc(ctx)
}

var _ repositories.InvoiceRepository = &mockInvoiceRepository{}

type mockInvoiceRepository struct {
	FindByIDFunc        func(ctx context.Context, id string) (*db_models.Invoice, error)
	FirstByPersonIDFunc func(ctx context.Context, personID string) (*db_models.Invoice, error)
	ReplaceFunc         func(ctx context.Context, invoice *db_models.Invoice, items []db_models.InvoiceItem) error
	AddPaymentFunc      func(ctx context.Context, payment *db_models.Payment) error
}

func (m *mockInvoiceRepository) FindByID(ctx context.Context, id string) (*db_models.Invoice, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockInvoiceRepository) FirstByPersonID(ctx context.Context, personID string) (*db_models.Invoice, error) {
	if m.FirstByPersonIDFunc != nil {
		return m.FirstByPersonIDFunc(ctx, personID)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) Replace(ctx context.Context, invoice *db_models.Invoice, items []db_models.InvoiceItem) error {
	return m.ReplaceFunc(ctx, invoice, items)
}

func (m *mockInvoiceRepository) AddPayment(ctx context.Context, payment *db_models.Payment) error {
	if m.AddPaymentFunc != nil {
		return m.AddPaymentFunc(ctx, payment)
	}
	return nil
}

var _ repositories.PersonRepository = &mockPersonRepository{}

type mockPersonRepository struct {
	InsertFunc       func(ctx context.Context, person *db_models.Person) error
	UpdateFunc       func(ctx context.Context, person *db_models.Person) error
	FindByIDFunc     func(ctx context.Context, id string) (*db_models.Person, error)
	FindByEmailFunc  func(ctx context.Context, email string) (*db_models.Person, error)
	FindByHandleFunc func(ctx context.Context, handle string) (*db_models.Person, error)
}

func (m *mockPersonRepository) Insert(ctx context.Context, person *db_models.Person) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, person)
	}
	return nil
}

func (m *mockPersonRepository) Update(ctx context.Context, person *db_models.Person) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, person)
	}
	return nil
}

func (m *mockPersonRepository) FindByID(ctx context.Context, id string) (*db_models.Person, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPersonRepository) FindByEmail(ctx context.Context, email string) (*db_models.Person, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockPersonRepository) FindByHandle(ctx context.Context, handle string) (*db_models.Person, error) {
	if m.FindByHandleFunc != nil {
		return m.FindByHandleFunc(ctx, handle)
	}
	return nil, nil
}

var _ repositories.DiscountRepository = &mockDiscountRepository{}

type mockDiscountRepository struct {
	FindByCodeFunc func(ctx context.Context, code string) (*db_models.DiscountCode, error)
}

func (m *mockDiscountRepository) FindByCode(ctx context.Context, code string) (*db_models.DiscountCode, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

var _ repositories.AccommodationRepository = &mockAccommodationRepository{}

type mockAccommodationRepository struct {
	ListAllFunc        func(ctx context.Context) ([]db_models.Accommodation, error)
	FindByIDFunc       func(ctx context.Context, id string) (*db_models.Accommodation, error)
	CountOccupantsFunc func(ctx context.Context, accommodationID string) (int64, error)
}

func (m *mockAccommodationRepository) ListAll(ctx context.Context) ([]db_models.Accommodation, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockAccommodationRepository) FindByID(ctx context.Context, id string) (*db_models.Accommodation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAccommodationRepository) CountOccupants(ctx context.Context, accommodationID string) (int64, error) {
	if m.CountOccupantsFunc != nil {
		return m.CountOccupantsFunc(ctx, accommodationID)
	}
	return 0, nil
}

var _ repositories.ProductRepository = &mockProductRepository{}

type mockProductRepository struct {
	InsertCategoryFunc   func(ctx context.Context, category *db_models.ProductCategory) error
	ListCategoriesFunc   func(ctx context.Context) ([]db_models.ProductCategory, error)
	FindCategoryByIDFunc func(ctx context.Context, id string) (*db_models.ProductCategory, error)
	InsertFunc           func(ctx context.Context, product *db_models.Product) error
	UpdateFunc           func(ctx context.Context, product *db_models.Product) error
	DeleteFunc           func(ctx context.Context, id string) error
	FindByIDFunc         func(ctx context.Context, id string) (*db_models.Product, error)
}

func (m *mockProductRepository) InsertCategory(ctx context.Context, category *db_models.ProductCategory) error {
	if m.InsertCategoryFunc != nil {
		return m.InsertCategoryFunc(ctx, category)
	}
	return nil
}

func (m *mockProductRepository) ListCategories(ctx context.Context) ([]db_models.ProductCategory, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockProductRepository) FindCategoryByID(ctx context.Context, id string) (*db_models.ProductCategory, error) {
	if m.FindCategoryByIDFunc != nil {
		return m.FindCategoryByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepository) Insert(ctx context.Context, product *db_models.Product) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, product)
	}
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, product *db_models.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id string) (*db_models.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

var _ PricingService = &mockPricingService{}

type mockPricingService struct {
	CheckEarlybirdFunc func(ctx context.Context) (bool, string, error)
	CheckDiscountFunc  func(registration *db_models.Registration) (bool, string)
	BuildInvoiceFunc   func(ctx context.Context, registrationID string) (*db_models.Invoice, error)
}

func (m *mockPricingService) CheckEarlybird(ctx context.Context) (bool, string, error) {
	if m.CheckEarlybirdFunc != nil {
		return m.CheckEarlybirdFunc(ctx)
	}
	return true, "100% left, 10.0 days to go.", nil
}

func (m *mockPricingService) CheckDiscount(registration *db_models.Registration) (bool, string) {
	if m.CheckDiscountFunc != nil {
		return m.CheckDiscountFunc(registration)
	}
	return false, ""
}

func (m *mockPricingService) BuildInvoice(ctx context.Context, registrationID string) (*db_models.Invoice, error) {
	if m.BuildInvoiceFunc != nil {
		return m.BuildInvoiceFunc(ctx, registrationID)
	}
	return &db_models.Invoice{}, nil
}

var _ IMailService = &mockMailService{}

type mockMailService struct {
	ConfirmationCalls []string
	ReminderCalls     []string
	ResetCalls        []string
	ResetTokens       []string

	FailConfirmation bool
	FailReminder     bool
}

func (m *mockMailService) SendRegistrationConfirmation(to, firstName, urlHash string) error {
	m.ConfirmationCalls = append(m.ConfirmationCalls, to)
	if m.FailConfirmation {
		return errMailDown
	}
	return nil
}

func (m *mockMailService) SendPaymentReminder(to, firstName, totalDisplay string) error {
	if m.FailReminder {
		return errMailDown
	}
	m.ReminderCalls = append(m.ReminderCalls, to)
	return nil
}

func (m *mockMailService) SendMailToResetPassword(to, token string) error {
	m.ResetCalls = append(m.ResetCalls, to)
	m.ResetTokens = append(m.ResetTokens, token)
	return nil
}
