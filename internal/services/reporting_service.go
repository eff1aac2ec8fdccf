package services

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Souley97/Kalpe-sante/internal/models"
)

// GlobalStats aggregates the whole sponsorship ledger.
type GlobalStats struct {
	TotalAmount       decimal.Decimal `json:"total_amount"`
	TotalSponsorships int             `json:"total_sponsorships"`
	TotalTickets      int             `json:"total_tickets"`
	ActiveUsers       int             `json:"active_users"`
}

// EstablishmentStats counts consumption attributed to one facility.
type EstablishmentStats struct {
	Name    string          `json:"name"`
	Tickets int             `json:"tickets"`
	Amount  decimal.Decimal `json:"amount"`
}

// ReportingService computes the admin dashboard figures. Everything is a fold
// over the current table contents; nothing is precomputed or cached.
type ReportingService struct {
	DB *gorm.DB
}

func NewReportingService(db *gorm.DB) *ReportingService {
	return &ReportingService{DB: db}
}

// Summarize folds the ledger into global and per-establishment figures.
//
// A sponsorship is attributed to the facility on its establishment column,
// which holds only the most recent redeemer. Records never redeemed carry the
// unused sentinel and count toward no facility.
//
// TotalTickets counts fully consumed tickets. ActiveUsers counts distinct
// beneficiary phones plus the demo operator, so an empty ledger still shows
// one user.
func (s *ReportingService) Summarize() (GlobalStats, []EstablishmentStats, error) {
	var records []models.Sponsorship
	if err := s.DB.Order("id ASC").Find(&records).Error; err != nil {
		return GlobalStats{}, nil, err
	}

	var establishments []models.Establishment
	if err := s.DB.Order("id ASC").Find(&establishments).Error; err != nil {
		return GlobalStats{}, nil, err
	}

	global := GlobalStats{TotalAmount: decimal.Zero}
	phones := map[string]struct{}{}

	byName := make(map[string]*EstablishmentStats, len(establishments))
	names := make([]string, 0, len(establishments))
	for _, e := range establishments {
		byName[e.Name] = &EstablishmentStats{Name: e.Name, Amount: decimal.Zero}
		names = append(names, e.Name)
	}

	for _, r := range records {
		global.TotalAmount = global.TotalAmount.Add(r.Amount)
		global.TotalSponsorships++
		if r.Status == models.SponsorshipExhausted {
			global.TotalTickets++
		}
		phones[r.BeneficiaryPhone] = struct{}{}

		if r.Establishment == models.EstablishmentUnused {
			continue
		}
		entry, ok := byName[r.Establishment]
		if !ok {
			// Facility no longer seeded; keep the figures anyway.
			entry = &EstablishmentStats{Name: r.Establishment, Amount: decimal.Zero}
			byName[r.Establishment] = entry
			names = append(names, r.Establishment)
		}
		entry.Tickets++
		entry.Amount = entry.Amount.Add(r.Amount.Sub(r.RemainingAmount))
	}

	global.ActiveUsers = len(phones) + 1

	stats := make([]EstablishmentStats, 0, len(names))
	for _, name := range names {
		stats = append(stats, *byName[name])
	}

	// Ties keep the seed order.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Tickets > stats[j].Tickets
	})

	return global, stats, nil
}

// ExportCSV writes the per-establishment figures as a CSV document in the
// same order Summarize reports them.
func (s *ReportingService) ExportCSV(w io.Writer) error {
	_, stats, err := s.Summarize()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Établissement", "Tickets Consommés", "Montant Total (FCFA)"}); err != nil {
		return err
	}
	for _, row := range stats {
		record := []string{
			row.Name,
			strconv.Itoa(row.Tickets),
			row.Amount.StringFixed(0),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
