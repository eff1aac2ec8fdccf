package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Souley97/Kalpe-sante/internal/models"
	"github.com/Souley97/Kalpe-sante/pkg/ticketcode"
)

func TestFromSponsorship(t *testing.T) {
	s := models.Sponsorship{
		ID:               7,
		BeneficiaryName:  "Fatou Diop",
		BeneficiaryPhone: "770000001",
		Amount:           amount("20000"),
		RemainingAmount:  amount("5000"),
		Status:           models.SponsorshipActive,
		Establishment:    "CHU de Fann",
	}

	ticket := FromSponsorship(s)

	assert.Equal(t, "SWT-7", ticket.TicketCode)
	assert.Equal(t, "KALPÉ-SANTÉ;7;Fatou Diop", ticket.Code)
	assert.Equal(t, "KALPÉ-SANTÉ;7;Fatou Diop;5000", ticket.QRPayload)
	assert.True(t, ticket.RemainingAmount.Equal(amount("5000")))

	// The projection round-trips through the decoder.
	decoded, err := ticketcode.Decode(ticket.QRPayload)
	require.NoError(t, err)
	assert.Equal(t, s.ID, decoded.SponsorshipID)
	assert.Equal(t, s.BeneficiaryName, decoded.BeneficiaryName)
}

func TestListByPhone(t *testing.T) {
	db := newTestDB(t)
	svc := NewTicketService(db)
	sponsorships := NewSponsorshipService(db, NewHelperService(db), testLogger())
	user, _ := seedSponsor(t, db, "30000")

	for _, phone := range []string{"770000001", "770000002", "770000001"} {
		_, _, err := sponsorships.Create(CreateSponsorshipDTO{
			SponsorUserID:    user.ID,
			BeneficiaryName:  "Fatou Diop",
			BeneficiaryPhone: phone,
			Amount:           amount("5000"),
		})
		require.NoError(t, err)
	}

	tickets, err := svc.ListByPhone("770000001")
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Greater(t, tickets[0].SponsorshipID, tickets[1].SponsorshipID)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
