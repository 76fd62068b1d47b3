package repository

import (
	"github.com/consite-dev/consite-go/internal/domain/invoice"
	"gorm.io/gorm"
)

type InvoiceRepo interface {
	CreateInvoice(inv *invoice.Invoice) error
	FindInvoiceByID(id uint) (*invoice.Invoice, error)
	ListInvoices(contractorID *uint) ([]invoice.Invoice, error)
	SaveInvoice(inv *invoice.Invoice) error
	WithTx(tx *gorm.DB) InvoiceRepo
}

type DBInvoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) *DBInvoiceRepo {
	return &DBInvoiceRepo{db: db}
}

func (r *DBInvoiceRepo) CreateInvoice(inv *invoice.Invoice) error {
	return r.db.Create(inv).Error
}

func (r *DBInvoiceRepo) FindInvoiceByID(id uint) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	if err := r.db.Preload("Contractor").Preload("Project").First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *DBInvoiceRepo) ListInvoices(contractorID *uint) ([]invoice.Invoice, error) {
	var invoices []invoice.Invoice
	query := r.db.Preload("Contractor").Preload("Project")
	if contractorID != nil {
		query = query.Where("contractor_id = ?", *contractorID)
	}
	err := query.Order("created_at desc").Find(&invoices).Error
	return invoices, err
}

func (r *DBInvoiceRepo) SaveInvoice(inv *invoice.Invoice) error {
	return r.db.Save(inv).Error
}

func (r *DBInvoiceRepo) WithTx(tx *gorm.DB) InvoiceRepo {
	if tx == nil {
		return r
	}
	return &DBInvoiceRepo{db: tx}
}
