package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	domain "github.com/dommestudio/lash-studio-api/internal/domain/finance"
	"github.com/dommestudio/lash-studio-api/internal/httperr"
	"github.com/dommestudio/lash-studio-api/internal/httpresp"
	"github.com/dommestudio/lash-studio-api/internal/middleware"
	ucfin "github.com/dommestudio/lash-studio-api/internal/usecase/finance"
)

// ======================================================
// HANDLER
// ======================================================

type FinanceHandler struct {
	overview *ucfin.GetOverview
	settle   *ucfin.SettlePayment
}

func NewFinanceHandler(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *FinanceHandler {
	return &FinanceHandler{
		overview: ucfin.NewGetOverview(repo),
		settle:   ucfin.NewSettlePayment(repo, dispatcher),
	}
}

// ======================================================
// OVERVIEW
// ======================================================

// Overview devolve a visão financeira do período: métricas, gráfico,
// extrato e pendências. Padrão é o mês corrente.
func (h *FinanceHandler) Overview(c *gin.Context) {
	filter := domain.FilterMonth
	if p := c.Query("period"); p != "" {
		f, ok := domain.ParseFilter(p)
		if !ok {
			httperr.BadRequest(c, "invalid_period", "Período inválido.")
			return
		}
		filter = f
	}

	out, err := h.overview.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_build_overview", "Erro ao calcular o financeiro.")
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// RECEIVABLES
// ======================================================

// Receivables lista só as pendências. O recorte de período não se aplica
// aqui: saldo devedor não expira quando a semana vira.
func (h *FinanceHandler) Receivables(c *gin.Context) {
	out, err := h.overview.Execute(c.Request.Context(), domain.FilterMonth)
	if err != nil {
		httperr.Internal(c, "failed_to_list_receivables", "Erro ao listar pendências.")
		return
	}

	httpresp.List(c, out.Receivables)
}

// ======================================================
// SETTLE
// ======================================================

func (h *FinanceHandler) Settle(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	result, err := h.settle.Execute(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_settle_payment")
		return
	}

	httpresp.OK(c, result)
}
