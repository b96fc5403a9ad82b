package services

import (
	"context"

	"go.uber.org/zap"

	"confreg/internal/models/db_models"
	"confreg/internal/models/request_models"
	"confreg/internal/models/response_models"
	"confreg/internal/repositories"
	"confreg/pkg/utils"
)

type RegistrationServiceInterface interface {
	// Signup creates a registration, and an account with it when the
	// caller is anonymous. signedInPersonID is empty for anonymous calls.
	Signup(ctx context.Context, req request_models.NewRegistrationRequest, signedInPersonID string) (*response_models.RegistrationResponse, error)
	Edit(ctx context.Context, registrationID string, req request_models.EditRegistrationRequest, actorID, actorRole string) (*response_models.RegistrationResponse, error)
	List(ctx context.Context) ([]response_models.RegistrationResponse, error)
	Status(ctx context.Context) (*response_models.EarlybirdStatusResponse, error)
	// Pay builds (or returns the frozen) invoice for the registration.
	Pay(ctx context.Context, registrationID, actorID, actorRole string) (*response_models.InvoiceResponse, error)
	// Remind emails every registrant whose invoice is still unpaid.
	Remind(ctx context.Context) (int, error)
}

type RegistrationService struct {
	personRepo        repositories.PersonRepository
	registrationRepo  repositories.RegistrationRepository
	discountRepo      repositories.DiscountRepository
	accommodationRepo repositories.AccommodationRepository
	pricing           PricingService
	mail              IMailService
	logger            *zap.Logger
}

func NewRegistrationService(
	personRepo repositories.PersonRepository,
	registrationRepo repositories.RegistrationRepository,
	discountRepo repositories.DiscountRepository,
	accommodationRepo repositories.AccommodationRepository,
	pricing PricingService,
	mail IMailService,
	logger *zap.Logger,
) RegistrationServiceInterface {
	return &RegistrationService{
		personRepo:        personRepo,
		registrationRepo:  registrationRepo,
		discountRepo:      discountRepo,
		accommodationRepo: accommodationRepo,
		pricing:           pricing,
		mail:              mail,
		logger:            logger,
	}
}

func (r *RegistrationService) Signup(
	ctx context.Context,
	req request_models.NewRegistrationRequest,
	signedInPersonID string,
) (*response_models.RegistrationResponse, error) {
	validation := utils.NewValidationError()

	var person *db_models.Person
	var err error
	if signedInPersonID != "" {
		person, err = r.personRepo.FindByID(ctx, signedInPersonID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if person == nil {
			return nil, utils.ErrAccountNotFound
		}
	} else {
		if req.Person == nil {
			validation.Add("person", "Account details are required when not signed in")
			return nil, validation
		}
		if err := r.validateNewAccount(ctx, *req.Person, validation); err != nil {
			return nil, err
		}
	}

	if person != nil {
		existing, err := r.registrationRepo.FindByPersonID(ctx, person.ID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			validation.Add("registration", "You have already registered")
		}
	}

	fields := req.Registration
	accommodation, err := r.validateFields(ctx, fields, person, signedInPersonID != "", validation)
	if err != nil {
		return nil, err
	}
	if validation.HasErrors() {
		return nil, validation
	}

	if person == nil {
		person, err = r.createPerson(ctx, *req.Person)
		if err != nil {
			return nil, err
		}
	}

	registration := &db_models.Registration{PersonID: person.ID}
	if err := r.applyFields(ctx, registration, fields, accommodation); err != nil {
		return nil, err
	}
	if err := r.registrationRepo.Insert(ctx, registration); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := r.mail.SendRegistrationConfirmation(person.Email, person.FirstName, person.URLHash); err != nil {
		r.logger.Warn("confirmation mail failed",
			zap.String("email", person.Email), zap.Error(err))
	}

	// Keep pricing in sync without surfacing the invoice to the caller.
	if _, err := r.pricing.BuildInvoice(ctx, registration.ID.String()); err != nil {
		r.logger.Error("quiet invoice build failed",
			zap.String("registration_id", registration.ID.String()), zap.Error(err))
	}

	loaded, err := r.registrationRepo.FindByID(ctx, registration.ID.String())
	if err != nil || loaded == nil {
		return nil, utils.ErrDatabaseError
	}
	return toRegistrationResponse(loaded), nil
}

func (r *RegistrationService) Edit(
	ctx context.Context,
	registrationID string,
	req request_models.EditRegistrationRequest,
	actorID, actorRole string,
) (*response_models.RegistrationResponse, error) {
	registration, err := r.registrationRepo.FindByID(ctx, registrationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if registration == nil {
		return nil, utils.ErrRegistrationNotFound
	}
	if registration.PersonID.String() != actorID && actorRole != "organiser" {
		return nil, utils.ErrForbidden
	}

	if invoice := registration.Person.FirstInvoice(); invoice != nil && invoice.Frozen() {
		return nil, utils.ErrInvoiceFrozen
	}

	validation := utils.NewValidationError()
	accommodation, err := r.validateFields(ctx, req.Registration, &registration.Person, true, validation)
	if err != nil {
		return nil, err
	}
	if validation.HasErrors() {
		return nil, validation
	}

	if err := r.applyFields(ctx, registration, req.Registration, accommodation); err != nil {
		return nil, err
	}
	if err := r.registrationRepo.Update(ctx, registration); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Regenerate the invoice so edits are priced immediately.
	if _, err := r.pricing.BuildInvoice(ctx, registrationID); err != nil {
		r.logger.Error("quiet invoice rebuild failed",
			zap.String("registration_id", registrationID), zap.Error(err))
	}

	loaded, err := r.registrationRepo.FindByID(ctx, registrationID)
	if err != nil || loaded == nil {
		return nil, utils.ErrDatabaseError
	}
	return toRegistrationResponse(loaded), nil
}

func (r *RegistrationService) List(ctx context.Context) ([]response_models.RegistrationResponse, error) {
	registrations, err := r.registrationRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.RegistrationResponse, 0, len(registrations))
	for i := range registrations {
		responses = append(responses, *toRegistrationResponse(&registrations[i]))
	}
	return responses, nil
}

func (r *RegistrationService) Status(ctx context.Context) (*response_models.EarlybirdStatusResponse, error) {
	open, message, err := r.pricing.CheckEarlybird(ctx)
	if err != nil {
		return nil, err
	}
	return &response_models.EarlybirdStatusResponse{
		Open:    open,
		Message: message,
	}, nil
}

func (r *RegistrationService) Pay(ctx context.Context, registrationID, actorID, actorRole string) (*response_models.InvoiceResponse, error) {
	registration, err := r.registrationRepo.FindByID(ctx, registrationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if registration == nil {
		return nil, utils.ErrRegistrationNotFound
	}
	if registration.PersonID.String() != actorID && actorRole != "organiser" {
		return nil, utils.ErrForbidden
	}

	invoice, err := r.pricing.BuildInvoice(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

func (r *RegistrationService) Remind(ctx context.Context) (int, error) {
	registrations, err := r.registrationRepo.ListAll(ctx)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	sent := 0
	for i := range registrations {
		registration := &registrations[i]
		invoice := registration.Person.FirstInvoice()
		if invoice != nil && invoice.Paid() {
			continue
		}
		var total int64
		if invoice != nil {
			total = invoice.Total()
		}
		err := r.mail.SendPaymentReminder(
			registration.Person.Email,
			registration.Person.FirstName,
			utils.FormatCents(total),
		)
		if err != nil {
			r.logger.Warn("reminder mail failed",
				zap.String("email", registration.Person.Email), zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}

func (r *RegistrationService) validateNewAccount(
	ctx context.Context,
	req request_models.SignUpRequest,
	validation *utils.ValidationError,
) error {
	existing, err := r.personRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		validation.Add("person.email", "This account already exists. Please try signing in first.")
	}

	existing, err = r.personRepo.FindByHandle(ctx, req.Handle)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		validation.Add("person.handle", "This display name has been taken, sorry. Please use another.")
	}
	return nil
}

// validateFields runs the chained registration validators. person is nil for
// anonymous signups. The resolved accommodation is returned so applyFields
// does not look it up twice.
func (r *RegistrationService) validateFields(
	ctx context.Context,
	fields request_models.RegistrationFields,
	person *db_models.Person,
	signedIn bool,
	validation *utils.ValidationError,
) (*db_models.Accommodation, error) {
	// Discount codes are single-use across people.
	if fields.DiscountCode != "" {
		discount, err := r.discountRepo.FindByCode(ctx, fields.DiscountCode)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if discount != nil {
			for _, other := range discount.Registrations {
				if person == nil || other.PersonID != person.ID {
					validation.Add("registration.discount_code", "Discount code already in use!")
					break
				}
			}
		}
	}

	var accommodation *db_models.Accommodation
	if fields.AccommodationID != "" {
		var err error
		accommodation, err = r.accommodationRepo.FindByID(ctx, fields.AccommodationID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if accommodation == nil {
			validation.Add("registration.accommodation_id", "Unknown accommodation option")
		}
	}

	// Speaker registrations and speaker-only venues need an accepted
	// proposal on the signed-in account.
	claimsSpeaker := fields.Type == string(db_models.RegTypeSpeaker) ||
		(accommodation != nil && accommodation.SpeakerOnly)
	if claimsSpeaker {
		if !signedIn || person == nil {
			validation.Add("registration.type", "Please sign in before claiming a speaker registration")
		} else if !person.IsSpeaker() {
			validation.Add("registration.type", "You don't appear to be a speaker, don't claim a speaker rate")
		}
	}

	r.validatePartnersProgramme(fields, validation)

	return accommodation, nil
}

func (r *RegistrationService) validatePartnersProgramme(
	fields request_models.RegistrationFields,
	validation *utils.ValidationError,
) {
	kids := 0
	for _, count := range []*int{fields.Kids0_3, fields.Kids4_6, fields.Kids7_9, fields.Kids10_11, fields.Kids12_17} {
		if count != nil {
			kids += *count
		}
	}
	adults := 0
	if fields.PPAdults != nil {
		adults = *fields.PPAdults
	}

	if kids > 0 && adults == 0 {
		validation.Add("registration.pp_adults", "Can't have children without an adult in the partners programme")
	}
	if fields.PartnerEmail != "" && adults == 0 {
		validation.Add("registration.pp_adults", "Please specify number of people in the partners programme (or remove partner's email address)")
	}
	if adults > 0 && fields.PartnerEmail == "" {
		validation.Add("registration.partner_email", "Please fill in partner's email address (or zero how many people are attending partners programme)")
	}
}

func (r *RegistrationService) createPerson(ctx context.Context, req request_models.SignUpRequest) (*db_models.Person, error) {
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	urlHash, err := utils.GenerateSecureToken(16)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	person := &db_models.Person{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Handle:       req.Handle,
		PasswordHash: hashed,
		Role:         "attendee",
		URLHash:      urlHash,
	}
	if err := r.personRepo.Insert(ctx, person); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return person, nil
}

func (r *RegistrationService) applyFields(
	ctx context.Context,
	registration *db_models.Registration,
	fields request_models.RegistrationFields,
	accommodation *db_models.Accommodation,
) error {
	registration.Type = db_models.RegistrationType(fields.Type)
	registration.Company = fields.Company
	registration.ShirtSize = fields.ShirtSize
	registration.Diet = fields.Diet
	registration.Special = fields.Special
	registration.Dinner = fields.Dinner
	registration.Checkin = fields.Checkin
	registration.Checkout = fields.Checkout
	registration.PartnerEmail = fields.PartnerEmail
	registration.Kids0_3 = fields.Kids0_3
	registration.Kids4_6 = fields.Kids4_6
	registration.Kids7_9 = fields.Kids7_9
	registration.Kids10_11 = fields.Kids10_11
	registration.Kids12_17 = fields.Kids12_17
	registration.PPAdults = fields.PPAdults
	registration.SpeakerPPPayAdult = fields.SpeakerPPPayAdult
	registration.SpeakerPPPayChild = fields.SpeakerPPPayChild

	if accommodation != nil {
		id := accommodation.ID
		registration.AccommodationID = &id
	} else {
		registration.AccommodationID = nil
	}

	registration.DiscountCode = fields.DiscountCode
	registration.DiscountCodeID = nil
	if fields.DiscountCode != "" {
		discount, err := r.discountRepo.FindByCode(ctx, fields.DiscountCode)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if discount != nil {
			id := discount.ID
			registration.DiscountCodeID = &id
		}
	}
	return nil
}

func toRegistrationResponse(registration *db_models.Registration) *response_models.RegistrationResponse {
	resp := &response_models.RegistrationResponse{
		ID:           registration.ID.String(),
		PersonID:     registration.PersonID.String(),
		Type:         string(registration.Type),
		Dinner:       registration.Dinner,
		Checkin:      registration.Checkin,
		Checkout:     registration.Checkout,
		DiscountCode: registration.DiscountCode,
	}
	if registration.Accommodation != nil {
		resp.Accommodation = registration.Accommodation.Name
	}
	if invoice := registration.Person.FirstInvoice(); invoice != nil {
		resp.InvoiceID = invoice.ID.String()
		resp.Paid = invoice.Paid()
	}
	return resp
}
