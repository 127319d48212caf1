package appointment

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	domain "github.com/dommestudio/lash-studio-api/internal/domain/appointment"
	"github.com/dommestudio/lash-studio-api/internal/httperr"
	"github.com/dommestudio/lash-studio-api/internal/models"
	"github.com/dommestudio/lash-studio-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	// Vazio em criação; preenchido em edição.
	AppointmentID string

	// Vazio ou "guest" => atendimento sem ficha.
	ClientID string

	Date string // 2006-01-02
	Time string // 15:04

	ServiceType string

	Price        decimal.Decimal
	DepositValue decimal.Decimal

	PaymentMethod string
	Installments  int

	ActorID string
}

// ======================================================
// USE CASE
// ======================================================

// BookAppointment cria ou edita um agendamento e mantém o dossiê da
// cliente em sincronia. A entrada do dossiê nasce com o appointment_id
// como chave de correlação, nada de casar por data+técnica.
type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	loc := timezone.Location(timezone.DefaultTimezone)

	if _, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if err := domain.ValidatePayment(in.Price, in.DepositValue); err != nil {
		return nil, err
	}

	serviceType := in.ServiceType
	if serviceType == "" {
		serviceType = "Atendimento Personalizado"
	}

	method := in.PaymentMethod
	if method == "" {
		method = models.MethodPix
	}

	installments := 0
	if method == models.MethodCreditCard && in.Installments > 1 {
		installments = in.Installments
	}

	clientID := in.ClientID
	if clientID == "" {
		clientID = models.GuestClientID
	}

	// --------------------------------------------------
	// Agendamento (criação ou edição)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:      clientID,
		Date:          in.Date,
		Time:          in.Time,
		ServiceType:   serviceType,
		Price:         in.Price,
		DepositValue:  in.DepositValue,
		PaymentMethod: method,
		Installments:  installments,
		Status:        string(domain.InitialStatus()),
	}

	action := "appointment_created"
	if in.AppointmentID != "" {
		existing, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		ap.ID = existing.ID
		ap.Status = existing.Status
		ap.CreatedAt = existing.CreatedAt
		action = "appointment_updated"
	} else {
		ap.CreatedAt = time.Now()
	}

	saved, err := uc.repo.SaveAppointment(ctx, ap)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Dossiê (somente clientes com ficha; melhor esforço)
	// --------------------------------------------------
	if clientID != models.GuestClientID {
		if err := uc.syncDossie(ctx, saved, loc); err != nil {
			// O agendamento já está salvo; o dossiê não derruba a operação.
			log.Printf("book: dossie sync failed for appointment %s: %v", saved.ID, err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   action,
		Entity:   "appointment",
		EntityID: saved.ID,
	})

	return saved, nil
}

func (uc *BookAppointment) syncDossie(
	ctx context.Context,
	ap *models.Appointment,
	loc *time.Location,
) error {

	client, err := uc.repo.GetClient(ctx, ap.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return httperr.ErrBusiness("client_not_found")
	}

	notes := domain.DossieNote(
		ap.PaymentMethod,
		ap.Installments,
		ap.DepositValue,
		ap.Receivable(),
	)

	entry := models.DossieEntry{
		AppointmentID: ap.ID,
		Date:          domain.DisplayDate(ap.Date, loc),
		Time:          ap.Time,
		Technique:     ap.ServiceType,
		Price:         ap.Price,
		PaymentMethod: ap.PaymentMethod,
		Notes:         notes,
	}

	if idx := client.FindDossieByAppointment(ap.ID); idx >= 0 {
		entry.ID = client.Dossie[idx].ID
		entry.Photos = client.Dossie[idx].Photos
		entry.Analysis = client.Dossie[idx].Analysis
		client.Dossie[idx] = entry
	} else {
		entry.ID = ap.ID + "-dossie"
		// Mais recente primeiro, como a recepção espera ver.
		client.Dossie = append([]models.DossieEntry{entry}, client.Dossie...)
	}

	client.LastVisit = "Hoje"

	_, err = uc.repo.SaveClient(ctx, client)
	return err
}
