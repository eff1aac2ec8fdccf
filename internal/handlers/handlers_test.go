package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Souley97/Kalpe-sante/internal/database"
	"github.com/Souley97/Kalpe-sante/internal/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.MigrateDB(db))
	require.NoError(t, database.Seed(db))

	log := logrus.New()
	log.SetOutput(io.Discard)

	helper := services.NewHelperService(db)
	channels := services.DefaultChannels(log)

	authHandler := NewAuthHandler(services.NewAuthService(db, log))
	walletHandler := NewWalletHandler(services.NewWalletService(db, helper, channels, log))
	sponsorshipHandler := NewSponsorshipHandler(
		services.NewSponsorshipService(db, helper, log),
		services.NewTicketService(db),
	)
	redemptionHandler := NewRedemptionHandler(services.NewRedemptionService(db, log, nil))
	reportHandler := NewReportHandler(db, services.NewReportingService(db))

	r := gin.New()
	r.POST("/auth/login", authHandler.Login)
	r.GET("/auth/me", authHandler.Me)
	r.GET("/wallets/balance", walletHandler.Balance)
	r.POST("/wallets/topup", walletHandler.Topup)
	r.GET("/wallets/transactions", walletHandler.Transactions)
	r.POST("/sponsorships", sponsorshipHandler.Create)
	r.GET("/sponsorships", sponsorshipHandler.List)
	r.GET("/tickets", sponsorshipHandler.TicketList)
	r.POST("/redemptions", redemptionHandler.Redeem)
	r.GET("/redemptions/:id", redemptionHandler.History)
	r.GET("/establishments", reportHandler.Establishments)
	r.GET("/reports/summary", reportHandler.Summary)
	r.GET("/reports/export", reportHandler.ExportCSV)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestVoucherFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	// Login as a citizen.
	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"name": "Moussa Diop", "phone": "771234567", "role": "citizen",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	userID := dataOf(t, w)["id"].(float64)

	// Top up 20000 via Orange Money.
	w = doJSON(t, r, http.MethodPost, "/wallets/topup", gin.H{
		"user_id": userID, "amount": "20000", "method": "orange",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "20000", dataOf(t, w)["balance"])

	// Sponsor Fatou Diop for 20000.
	w = doJSON(t, r, http.MethodPost, "/sponsorships", gin.H{
		"sponsor_user_id":   userID,
		"beneficiary_name":  "Fatou Diop",
		"beneficiary_phone": "770000001",
		"amount":            "20000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := dataOf(t, w)
	assert.Equal(t, "0", created["wallet_balance"])
	ticket := created["ticket"].(map[string]interface{})
	code := ticket["code"].(string)
	assert.True(t, strings.HasPrefix(code, "KALPÉ-SANTÉ;"))

	// The beneficiary sees the ticket.
	w = doJSON(t, r, http.MethodGet, "/tickets?phone=770000001", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The sponsor lists their sponsorships by user id.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/sponsorships?user_id=%.0f", userID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var listEnvelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listEnvelope))
	require.Len(t, listEnvelope.Data, 1)
	assert.Equal(t, "Fatou Diop", listEnvelope.Data[0]["beneficiary_name"])

	// An agent debits 15000 at CHU de Fann.
	w = doJSON(t, r, http.MethodPost, "/redemptions", gin.H{
		"code":          code,
		"amount":        "15000",
		"establishment": "CHU de Fann",
		"agent_name":    "Agent Ndiaye",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	redeemed := dataOf(t, w)["sponsorship"].(map[string]interface{})
	assert.Equal(t, "5000", redeemed["remaining_amount"])
	assert.Equal(t, "active", redeemed["status"])

	// The summary attributes the consumption.
	w = doJSON(t, r, http.MethodGet, "/reports/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := dataOf(t, w)
	global := report["global"].(map[string]interface{})
	assert.Equal(t, "20000", global["total_amount"])
	assert.EqualValues(t, 1, global["total_sponsorships"])

	// CSV export.
	w = doJSON(t, r, http.MethodGet, "/reports/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "Établissement,Tickets Consommés,Montant Total (FCFA)")
	assert.Contains(t, w.Body.String(), "CHU de Fann,1,15000")
}

func TestErrorStatusMapping(t *testing.T) {
	r, _ := newTestRouter(t)

	// Unknown ticket.
	w := doJSON(t, r, http.MethodPost, "/redemptions", gin.H{
		"code": "KALPÉ-SANTÉ;999;Fatou Diop", "amount": "100", "establishment": "CHU de Fann",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Malformed code.
	w = doJSON(t, r, http.MethodPost, "/redemptions", gin.H{
		"code": "garbage", "amount": "100", "establishment": "CHU de Fann",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bad role.
	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"name": "X", "role": "doctor"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown user.
	w = doJSON(t, r, http.MethodGet, "/auth/me?user_id=999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing body fields.
	w = doJSON(t, r, http.MethodPost, "/wallets/topup", gin.H{"user_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExhaustedTicketConflicts(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"name": "Moussa Diop", "role": "citizen"})
	userID := dataOf(t, w)["id"].(float64)
	doJSON(t, r, http.MethodPost, "/wallets/topup", gin.H{"user_id": userID, "amount": "5000", "method": "wave"})

	w = doJSON(t, r, http.MethodPost, "/sponsorships", gin.H{
		"sponsor_user_id": userID, "beneficiary_name": "Fatou Diop",
		"beneficiary_phone": "770000001", "amount": "5000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	code := dataOf(t, w)["ticket"].(map[string]interface{})["code"].(string)

	w = doJSON(t, r, http.MethodPost, "/redemptions", gin.H{
		"code": code, "amount": "5000", "establishment": "CHU de Fann",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/redemptions", gin.H{
		"code": code, "amount": "100", "establishment": "CHU de Fann",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEstablishmentsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/establishments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 4)
	assert.Equal(t, "CHU de Fann", envelope.Data[0]["name"])
}
