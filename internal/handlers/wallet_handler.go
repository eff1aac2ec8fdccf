package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Souley97/Kalpe-sante/internal/services"
	"github.com/Souley97/Kalpe-sante/pkg/common"
)

type WalletHandler struct {
	Wallet *services.WalletService
}

func NewWalletHandler(wallet *services.WalletService) *WalletHandler {
	return &WalletHandler{Wallet: wallet}
}

type TopupRequest struct {
	UserID int             `json:"user_id" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method" binding:"required"`
}

func (h *WalletHandler) Topup(c *gin.Context) {
	var req TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error(), nil, http.StatusBadRequest))
		return
	}

	wallet, entry, err := h.Wallet.Topup(services.TopupDTO{
		UserID: req.UserID,
		Amount: req.Amount,
		Method: req.Method,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"balance":     wallet.Balance,
		"currency":    wallet.Currency,
		"transaction": entry,
	}, "Wallet topped up"))
}

func (h *WalletHandler) Balance(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid user_id", nil, http.StatusBadRequest))
		return
	}

	balance, err := h.Wallet.Balance(userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"balance":  balance,
		"currency": "XOF",
	}, "Balance fetched"))
}

func (h *WalletHandler) Transactions(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid user_id", nil, http.StatusBadRequest))
		return
	}

	entries, err := h.Wallet.Transactions(userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(entries, "Transactions fetched"))
}

func (h *WalletHandler) ArchivedTransactions(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid user_id", nil, http.StatusBadRequest))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.Wallet.ArchivedTransactions(userID, page)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
