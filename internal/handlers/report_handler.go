package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Souley97/Kalpe-sante/internal/models"
	"github.com/Souley97/Kalpe-sante/internal/services"
	"github.com/Souley97/Kalpe-sante/pkg/common"
)

type ReportHandler struct {
	DB        *gorm.DB
	Reporting *services.ReportingService
}

func NewReportHandler(db *gorm.DB, reporting *services.ReportingService) *ReportHandler {
	return &ReportHandler{DB: db, Reporting: reporting}
}

func (h *ReportHandler) Summary(c *gin.Context) {
	global, establishments, err := h.Reporting.Summarize()
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"global":         global,
		"establishments": establishments,
	}, "Report generated"))
}

func (h *ReportHandler) ExportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="rapport-kalpe-sante.csv"`)
	if err := h.Reporting.ExportCSV(c.Writer); err != nil {
		fail(c, err)
	}
}

func (h *ReportHandler) Establishments(c *gin.Context) {
	var establishments []models.Establishment
	if err := h.DB.Order("id ASC").Find(&establishments).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(establishments, "Establishments fetched"))
}
