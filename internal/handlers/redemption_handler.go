package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Souley97/Kalpe-sante/internal/services"
	"github.com/Souley97/Kalpe-sante/pkg/common"
)

type RedemptionHandler struct {
	Redemptions *services.RedemptionService
}

func NewRedemptionHandler(redemptions *services.RedemptionService) *RedemptionHandler {
	return &RedemptionHandler{Redemptions: redemptions}
}

type RedeemRequest struct {
	Code          string          `json:"code" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Establishment string          `json:"establishment" binding:"required"`
	AgentName     string          `json:"agent_name"`
}

func (h *RedemptionHandler) Redeem(c *gin.Context) {
	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	sponsorship, err := h.Redemptions.Redeem(services.RedeemDTO{
		Code:          req.Code,
		Amount:        req.Amount,
		Establishment: req.Establishment,
		AgentName:     req.AgentName,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"sponsorship": sponsorship,
		"ticket":      services.FromSponsorship(sponsorship),
	}, "Ticket debited"))
}

func (h *RedemptionHandler) History(c *gin.Context) {
	sponsorshipID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid sponsorship id", nil, http.StatusBadRequest))
		return
	}

	rows, err := h.Redemptions.History(sponsorshipID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(rows, "Redemptions fetched"))
}
