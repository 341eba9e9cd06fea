package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-orders/internal/audit"
	"github.com/BruksfildServices01/service-orders/internal/httperr"
	"github.com/BruksfildServices01/service-orders/internal/httpresp"
	"github.com/BruksfildServices01/service-orders/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

type auditFilter struct {
	Action   string
	Entity   string
	EntityID *uint
	From     *time.Time
	To       *time.Time // exclusive
	Page     int
	Limit    int
}

// parseAuditFilter reads query parameters. Entity defaults to client events;
// malformed dates and ids are ignored, bad paging falls back to defaults.
func parseAuditFilter(c *gin.Context) auditFilter {
	f := auditFilter{
		Action: c.Query("action"),
		Entity: c.DefaultQuery("entity", audit.EntityClient),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if f.Page <= 0 {
		f.Page = 1
	}

	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}

	if id, err := strconv.ParseUint(c.Query("entity_id"), 10, 64); err == nil {
		v := uint(id)
		f.EntityID = &v
	}
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	return f
}

func (f auditFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.EntityID != nil {
		q = q.Where("entity_id = ?", *f.EntityID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}
	return q
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	f := parseAuditFilter(c)

	q := f.apply(h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Could not count audit logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	httpresp.Page(c, logs, total, f.Page, f.Limit)
}
