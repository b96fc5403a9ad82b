package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"confreg/internal/models/db_models"
)

type InvoiceRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.Invoice, error)
	FirstByPersonID(ctx context.Context, personID string) (*db_models.Invoice, error)
	// Replace persists the invoice with exactly the given line items,
	// deleting whatever items it held before. Runs in one transaction so a
	// failed rebuild does not leave the invoice half-empty.
	Replace(ctx context.Context, invoice *db_models.Invoice, items []db_models.InvoiceItem) error
	AddPayment(ctx context.Context, payment *db_models.Payment) error
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

func (i *invoiceRepository) FindByID(ctx context.Context, id string) (*db_models.Invoice, error) {
	var invoice db_models.Invoice
	err := i.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		First(&invoice, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &invoice, nil
}

func (i *invoiceRepository) FirstByPersonID(ctx context.Context, personID string) (*db_models.Invoice, error) {
	var invoice db_models.Invoice
	err := i.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Where("person_id = ?", personID).
		Order("created_at ASC").
		First(&invoice).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &invoice, nil
}

func (i *invoiceRepository) Replace(ctx context.Context, invoice *db_models.Invoice, items []db_models.InvoiceItem) error {
	return i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if invoice.ID == uuid.Nil {
			if err := tx.Create(invoice).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("invoice_id = ?", invoice.ID).
				Delete(&db_models.InvoiceItem{}).Error; err != nil {
				return err
			}
		}

		for idx := range items {
			items[idx].InvoiceID = invoice.ID
			if err := tx.Create(&items[idx]).Error; err != nil {
				return err
			}
		}

		invoice.Items = items
		invoice.LastModification = time.Now().Unix()
		return tx.Model(invoice).
			Update("last_modification", invoice.LastModification).Error
	})
}

func (i *invoiceRepository) AddPayment(ctx context.Context, payment *db_models.Payment) error {
	return i.db.WithContext(ctx).Create(payment).Error
}
