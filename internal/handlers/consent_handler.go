package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	"github.com/dommestudio/lash-studio-api/internal/httperr"
	"github.com/dommestudio/lash-studio-api/internal/httpresp"
	"github.com/dommestudio/lash-studio-api/internal/middleware"
	"github.com/dommestudio/lash-studio-api/internal/models"
	"github.com/dommestudio/lash-studio-api/internal/recordstore"
	"github.com/dommestudio/lash-studio-api/internal/signature"
)

// ======================================================
// HANDLER
// ======================================================

// ConsentHandler anexa a ficha de anamnese (com assinatura) a uma entrada
// do dossiê. A assinatura chega como data URL PNG produzido pelo pad.
type ConsentHandler struct {
	clients *recordstore.Collection[models.Client, *models.Client]
	audit   *audit.Dispatcher
}

func NewConsentHandler(store recordstore.Store, audit *audit.Dispatcher) *ConsentHandler {
	return &ConsentHandler{
		clients: recordstore.NewCollection[models.Client](store, recordstore.Clients),
		audit:   audit,
	}
}

// ======================================================
// SAVE ANALYSIS
// ======================================================

func (h *ConsentHandler) SaveAnalysis(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	clientID := c.Param("id")
	entryID := c.Param("entryId")

	var analysis models.Analysis
	if err := c.ShouldBindJSON(&analysis); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// Assinatura vazia = ficha preenchida mas ainda não assinada.
	if analysis.Signature != "" {
		if _, err := signature.ParseDataURL(analysis.Signature); err != nil {
			httperr.BadRequest(c, "invalid_signature", "Assinatura inválida.")
			return
		}
	}

	client, err := h.clients.Get(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_client", "Erro ao carregar cliente.")
		return
	}
	if client == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrada.")
		return
	}

	idx := -1
	for i := range client.Dossie {
		if client.Dossie[i].ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		httperr.NotFound(c, "dossie_entry_not_found", "Entrada do dossiê não encontrada.")
		return
	}

	client.Dossie[idx].Analysis = &analysis

	saved, err := h.clients.Save(c.Request.Context(), client)
	if err != nil {
		httperr.Internal(c, "failed_to_save_analysis", "Erro ao salvar a ficha.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "analysis_saved",
		Entity:   "client",
		EntityID: clientID,
		Metadata: map[string]any{
			"dossie_entry": entryID,
			"signed":       analysis.Signature != "",
		},
	})

	httpresp.OK(c, saved.Dossie[idx])
}
