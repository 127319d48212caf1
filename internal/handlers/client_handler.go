package handlers

import (
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	"github.com/dommestudio/lash-studio-api/internal/httperr"
	"github.com/dommestudio/lash-studio-api/internal/httpresp"
	"github.com/dommestudio/lash-studio-api/internal/middleware"
	"github.com/dommestudio/lash-studio-api/internal/models"
	"github.com/dommestudio/lash-studio-api/internal/recordstore"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	clients *recordstore.Collection[models.Client, *models.Client]
	audit   *audit.Dispatcher
}

func NewClientHandler(store recordstore.Store, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{
		clients: recordstore.NewCollection[models.Client](store, recordstore.Clients),
		audit:   audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Birthday  string `json:"birthday"` // 2006-01-02
	EyeShape  string `json:"eye_shape"`
	Notes     string `json:"notes"`
	PhotoURL  string `json:"photo_url"`
}

func (r *ClientRequest) validate() error {
	if r.Birthday != "" {
		if _, err := time.Parse("2006-01-02", r.Birthday); err != nil {
			return httperr.ErrBusiness("invalid_birthday")
		}
	}
	return nil
}

// ======================================================
// LIST + SEARCH
// ======================================================

// List devolve a carteira em ordem alfabética. O parâmetro q filtra por
// nome ou telefone, sem distinguir maiúsculas.
func (h *ClientHandler) List(c *gin.Context) {
	all, err := h.clients.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	out := make([]*models.Client, 0, len(all))
	for _, cl := range all {
		if q == "" ||
			strings.Contains(strings.ToLower(cl.Name), q) ||
			strings.Contains(cl.Phone, q) {
			out = append(out, cl)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})

	httpresp.List(c, out)
}

// ======================================================
// GET
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.clients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_load_client", "Erro ao carregar cliente.")
		return
	}
	if client == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrada.")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if err := req.validate(); err != nil {
		httperr.BadRequest(c, httperr.BusinessCode(err), "Data de nascimento inválida.")
		return
	}

	client := &models.Client{
		Name:      strings.TrimSpace(req.Name),
		Phone:     req.Phone,
		Email:     req.Email,
		Instagram: req.Instagram,
		Facebook:  req.Facebook,
		Birthday:  req.Birthday,
		EyeShape:  req.EyeShape,
		Notes:     req.Notes,
		PhotoURL:  req.PhotoURL,
		Dossie:    []models.DossieEntry{},
		CreatedAt: time.Now(),
	}

	saved, err := h.clients.Save(c.Request.Context(), client)
	if err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: saved.ID,
	})

	httpresp.Created(c, saved)
}

// ======================================================
// UPDATE
// ======================================================

// Update troca os dados cadastrais preservando dossiê, galeria e last_visit,
// que só mudam pelos fluxos próprios (agendamento, fotos, consentimento).
func (h *ClientHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if err := req.validate(); err != nil {
		httperr.BadRequest(c, httperr.BusinessCode(err), "Data de nascimento inválida.")
		return
	}

	client, err := h.clients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_load_client", "Erro ao carregar cliente.")
		return
	}
	if client == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrada.")
		return
	}

	client.Name = strings.TrimSpace(req.Name)
	client.Phone = req.Phone
	client.Email = req.Email
	client.Instagram = req.Instagram
	client.Facebook = req.Facebook
	client.Birthday = req.Birthday
	client.EyeShape = req.EyeShape
	client.Notes = req.Notes
	if req.PhotoURL != "" {
		client.PhotoURL = req.PhotoURL
	}

	saved, err := h.clients.Save(c.Request.Context(), client)
	if err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: saved.ID,
	})

	httpresp.OK(c, saved)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	client, err := h.clients.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_load_client", "Erro ao carregar cliente.")
		return
	}
	if client == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrada.")
		return
	}

	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: id,
	})

	c.JSON(200, gin.H{"deleted": true})
}
