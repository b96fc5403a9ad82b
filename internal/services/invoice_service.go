package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"confreg/internal/models/db_models"
	"confreg/internal/models/request_models"
	"confreg/internal/models/response_models"
	"confreg/internal/repositories"
	"confreg/pkg/utils"
)

type InvoiceServiceInterface interface {
	// GetInvoice returns an invoice visible to the actor (owner or
	// organiser).
	GetInvoice(ctx context.Context, invoiceID, actorID, actorRole string) (*response_models.InvoiceResponse, error)
	// RecordPayment attaches a gateway payment result to the invoice.
	// The first recorded payment, good or bad, freezes the invoice against
	// regeneration.
	RecordPayment(ctx context.Context, invoiceID string, req request_models.RecordPaymentRequest) (*response_models.InvoiceResponse, error)
}

type InvoiceService struct {
	invoiceRepo repositories.InvoiceRepository
	logger      *zap.Logger
}

func NewInvoiceService(invoiceRepo repositories.InvoiceRepository, logger *zap.Logger) InvoiceServiceInterface {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (s *InvoiceService) GetInvoice(ctx context.Context, invoiceID, actorID, actorRole string) (*response_models.InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invoice == nil {
		return nil, utils.ErrInvoiceNotFound
	}
	if invoice.PersonID.String() != actorID && actorRole != "organiser" {
		return nil, utils.ErrForbidden
	}

	return toInvoiceResponse(invoice), nil
}

func (s *InvoiceService) RecordPayment(ctx context.Context, invoiceID string, req request_models.RecordPaymentRequest) (*response_models.InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invoice == nil {
		return nil, utils.ErrInvoiceNotFound
	}

	status := db_models.PaymentStatusFailed
	if req.Success {
		status = db_models.PaymentStatusOK
	}
	payment := &db_models.Payment{
		InvoiceID:  invoice.ID,
		Amount:     req.Amount,
		Status:     status,
		GatewayRef: req.GatewayRef,
	}
	if len(req.Receipt) > 0 {
		payment.Receipt = datatypes.JSON(req.Receipt)
	}

	if err := s.invoiceRepo.AddPayment(ctx, payment); err != nil {
		s.logger.Error("payment record failed",
			zap.String("invoice_id", invoiceID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	invoice, err = s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil || invoice == nil {
		return nil, utils.ErrDatabaseError
	}
	return toInvoiceResponse(invoice), nil
}

func toInvoiceResponse(invoice *db_models.Invoice) *response_models.InvoiceResponse {
	items := make([]response_models.InvoiceItemResponse, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, response_models.InvoiceItemResponse{
			Description: item.Description,
			Qty:         item.Qty,
			Cost:        item.Cost,
			Total:       item.Total(),
		})
	}

	return &response_models.InvoiceResponse{
		ID:               invoice.ID.String(),
		PersonID:         invoice.PersonID.String(),
		Items:            items,
		Total:            invoice.Total(),
		TotalDisplay:     utils.FormatCents(invoice.Total()),
		Paid:             invoice.Paid(),
		GoodPayments:     len(invoice.GoodPayments()),
		BadPayments:      len(invoice.BadPayments()),
		LastModification: invoice.LastModification,
	}
}
