package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Souley97/Kalpe-sante/internal/models"
	"github.com/Souley97/Kalpe-sante/pkg/ticketcode"
)

// Ticket is the beneficiary-facing projection of a sponsorship: the same
// record presented with its display code, lookup code and QR payload.
type Ticket struct {
	SponsorshipID    int64                    `json:"sponsorship_id"`
	TicketCode       string                   `json:"ticket_code"`
	BeneficiaryName  string                   `json:"beneficiary_name"`
	BeneficiaryPhone string                   `json:"beneficiary_phone"`
	Amount           decimal.Decimal          `json:"amount"`
	RemainingAmount  decimal.Decimal          `json:"remaining_amount"`
	Status           models.SponsorshipStatus `json:"status"`
	Establishment    string                   `json:"establishment"`
	Code             string                   `json:"code"`
	QRPayload        string                   `json:"qr_payload"`
}

// FromSponsorship derives the ticket view. Pure: nothing is stored, a ticket
// is always computed from the sponsorship it mirrors.
func FromSponsorship(s models.Sponsorship) Ticket {
	return Ticket{
		SponsorshipID:    s.ID,
		TicketCode:       ticketcode.TicketCode(s.ID),
		BeneficiaryName:  s.BeneficiaryName,
		BeneficiaryPhone: s.BeneficiaryPhone,
		Amount:           s.Amount,
		RemainingAmount:  s.RemainingAmount,
		Status:           s.Status,
		Establishment:    s.Establishment,
		Code:             ticketcode.Encode(s.ID, s.BeneficiaryName),
		QRPayload:        ticketcode.EncodeQR(s.ID, s.BeneficiaryName, s.RemainingAmount),
	}
}

// TicketService lists ticket views for beneficiaries and agents.
type TicketService struct {
	DB *gorm.DB
}

func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{DB: db}
}

// ListByPhone returns the tickets addressed to one beneficiary phone number,
// most recent first.
func (s *TicketService) ListByPhone(phone string) ([]Ticket, error) {
	var records []models.Sponsorship
	err := s.DB.Where("beneficiary_phone = ?", phone).
		Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return project(records), nil
}

// ListAll returns every ticket, most recent first.
func (s *TicketService) ListAll() ([]Ticket, error) {
	var records []models.Sponsorship
	if err := s.DB.Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return project(records), nil
}

func project(records []models.Sponsorship) []Ticket {
	tickets := make([]Ticket, 0, len(records))
	for _, r := range records {
		tickets = append(tickets, FromSponsorship(r))
	}
	return tickets
}
