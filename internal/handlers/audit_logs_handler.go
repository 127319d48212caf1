package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	"github.com/dommestudio/lash-studio-api/internal/httperr"
	"github.com/dommestudio/lash-studio-api/internal/httpresp"
)

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

// List devolve a trilha de auditoria, mais recente primeiro.
func (h *AuditLogsHandler) List(c *gin.Context) {
	logs, err := h.logger.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})

	httpresp.List(c, logs)
}
