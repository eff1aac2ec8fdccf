package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Souley97/Kalpe-sante/internal/services"
	"github.com/Souley97/Kalpe-sante/pkg/common"
)

type SponsorshipHandler struct {
	Sponsorships *services.SponsorshipService
	Tickets      *services.TicketService
}

func NewSponsorshipHandler(sponsorships *services.SponsorshipService, tickets *services.TicketService) *SponsorshipHandler {
	return &SponsorshipHandler{Sponsorships: sponsorships, Tickets: tickets}
}

type CreateSponsorshipRequest struct {
	SponsorUserID    int             `json:"sponsor_user_id" binding:"required"`
	BeneficiaryName  string          `json:"beneficiary_name" binding:"required"`
	BeneficiaryPhone string          `json:"beneficiary_phone" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
}

func (h *SponsorshipHandler) Create(c *gin.Context) {
	var req CreateSponsorshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	sponsorship, balance, err := h.Sponsorships.Create(services.CreateSponsorshipDTO{
		SponsorUserID:    req.SponsorUserID,
		BeneficiaryName:  req.BeneficiaryName,
		BeneficiaryPhone: req.BeneficiaryPhone,
		Amount:           req.Amount,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(gin.H{
		"sponsorship":    sponsorship,
		"ticket":         services.FromSponsorship(sponsorship),
		"wallet_balance": balance,
	}, "Sponsorship created"))
}

func (h *SponsorshipHandler) List(c *gin.Context) {
	sponsorID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid user_id", nil, http.StatusBadRequest))
		return
	}

	records, err := h.Sponsorships.List(sponsorID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(records, "Sponsorships fetched"))
}

// Tickets serves the beneficiary view: ?phone= narrows to one beneficiary,
// no filter returns everything.
func (h *SponsorshipHandler) TicketList(c *gin.Context) {
	phone := c.Query("phone")

	var (
		tickets []services.Ticket
		err     error
	)
	if phone != "" {
		tickets, err = h.Tickets.ListByPhone(phone)
	} else {
		tickets, err = h.Tickets.ListAll()
	}
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(tickets, "Tickets fetched"))
}
