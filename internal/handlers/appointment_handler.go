package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	domainap "github.com/dommestudio/lash-studio-api/internal/domain/appointment"
	"github.com/dommestudio/lash-studio-api/internal/domain/finance"
	"github.com/dommestudio/lash-studio-api/internal/httperr"
	"github.com/dommestudio/lash-studio-api/internal/httpresp"
	"github.com/dommestudio/lash-studio-api/internal/middleware"
	ucap "github.com/dommestudio/lash-studio-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book     *ucap.BookAppointment
	list     *ucap.ListAppointments
	cancel   *ucap.CancelAppointment
	complete *ucap.CompleteAppointment
	remove   *ucap.RemoveAppointment
}

func NewAppointmentHandler(
	repo domainap.Repository,
	dispatcher *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:     ucap.NewBookAppointment(repo, dispatcher),
		list:     ucap.NewListAppointments(repo),
		cancel:   ucap.NewCancelAppointment(repo, dispatcher),
		complete: ucap.NewCompleteAppointment(repo, dispatcher),
		remove:   ucap.NewRemoveAppointment(repo, dispatcher),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ClientID      string          `json:"client_id"`
	Date          string          `json:"date" binding:"required"`
	Time          string          `json:"time" binding:"required"`
	ServiceType   string          `json:"service_type"`
	Price         decimal.Decimal `json:"price"`
	DepositValue  decimal.Decimal `json:"deposit_value"`
	PaymentMethod string          `json:"payment_method"`
	Installments  int             `json:"installments"`
}

// respondBusiness mapeia código de negócio para o status HTTP correto.
func respondBusiness(c *gin.Context, err error, fallback string) {
	switch code := httperr.BusinessCode(err); code {
	case "appointment_not_found", "client_not_found":
		httperr.NotFound(c, code, "Registro não encontrado.")
	case "invalid_date_or_time", "invalid_price", "invalid_deposit":
		httperr.BadRequest(c, code, "Dados inválidos.")
	case "invalid_state":
		httperr.BadRequest(c, code, "Transição de status inválida.")
	case "":
		httperr.Internal(c, fallback, "Erro interno.")
	default:
		httperr.BadRequest(c, code, "Operação recusada.")
	}
}

// ======================================================
// CREATE / EDIT
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	h.save(c, "")
}

func (h *AppointmentHandler) Edit(c *gin.Context) {
	h.save(c, c.Param("id"))
}

func (h *AppointmentHandler) save(c *gin.Context, appointmentID string) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucap.BookAppointmentInput{
		AppointmentID: appointmentID,
		ClientID:      req.ClientID,
		Date:          req.Date,
		Time:          req.Time,
		ServiceType:   req.ServiceType,
		Price:         req.Price,
		DepositValue:  req.DepositValue,
		PaymentMethod: req.PaymentMethod,
		Installments:  req.Installments,
		ActorID:       userID,
	})
	if err != nil {
		respondBusiness(c, err, "failed_to_save_appointment")
		return
	}

	if appointmentID == "" {
		httpresp.Created(c, ap)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

// List aceita ?period=dia|semana|mes|ano; sem o parâmetro devolve tudo.
func (h *AppointmentHandler) List(c *gin.Context) {
	var filter finance.Filter
	if p := c.Query("period"); p != "" {
		f, ok := finance.ParseFilter(p)
		if !ok {
			httperr.BadRequest(c, "invalid_period", "Período inválido.")
			return
		}
		filter = f
	}

	aps, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	ap, err := h.cancel.Execute(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_cancel_appointment")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	ap, err := h.complete.Execute(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_complete_appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.remove.Execute(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondBusiness(c, err, "failed_to_delete_appointment")
		return
	}

	c.JSON(200, gin.H{"deleted": true})
}
