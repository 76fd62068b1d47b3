package application

import (
	"errors"

	"github.com/consite-dev/consite-go/internal/domain/invoice"
	"github.com/consite-dev/consite-go/internal/domain/user"
	"github.com/consite-dev/consite-go/internal/repository"
	"gorm.io/gorm"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type InvoiceService struct {
	Repos *repository.Repos
}

func NewInvoiceService(repos *repository.Repos) *InvoiceService {
	return &InvoiceService{Repos: repos}
}

// ListInvoices is contractor-scoped for contractors, unscoped for everyone
// else who passed the route gate.
func (s *InvoiceService) ListInvoices(role string, callerID uint) ([]invoice.Invoice, error) {
	var contractorID *uint
	if role == string(user.RoleContractor) {
		contractorID = &callerID
	}
	return s.Repos.Invoice.ListInvoices(contractorID)
}

func (s *InvoiceService) CreateInvoice(callerID uint, input invoice.CreateInvoiceInput) (*invoice.Invoice, error) {
	inv := invoice.Invoice{
		Title:        input.Title,
		Amount:       input.Amount,
		ContractorID: callerID,
		ProjectID:    input.ProjectID,
		Status:       invoice.StatusPending,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
	}
	if err := s.Repos.Invoice.CreateInvoice(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateStatus validates the value against the enum and the transition table
// before writing anything.
func (s *InvoiceService) UpdateStatus(id uint, status string) (*invoice.Invoice, error) {
	inv, err := s.Repos.Invoice.FindInvoiceByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	if err := invoice.CheckTransition(inv.Status, invoice.Status(status)); err != nil {
		return nil, err
	}
	inv.Status = invoice.Status(status)

	inv.Contractor = nil
	inv.Project = nil
	if err := s.Repos.Invoice.SaveInvoice(inv); err != nil {
		return nil, err
	}
	return inv, nil
}
