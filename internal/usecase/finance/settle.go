package finance

import (
	"context"
	"log"
	"regexp"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	domainap "github.com/dommestudio/lash-studio-api/internal/domain/appointment"
	domain "github.com/dommestudio/lash-studio-api/internal/domain/finance"
	"github.com/dommestudio/lash-studio-api/internal/httperr"
	"github.com/dommestudio/lash-studio-api/internal/models"
)

// ======================================================
// SETTLE: saga em dois passos
// ======================================================

// Resultado com os dois desfechos separados: o write do agendamento é o
// efeito primário e obrigatório; o carimbo no dossiê é melhor esforço.
type SettleResult struct {
	Appointment    *models.Appointment `json:"appointment"`
	AlreadySettled bool                `json:"already_settled"`
	DossiePatched  bool                `json:"dossie_patched"`
}

var remainingNoteRe = regexp.MustCompile(`Valor restante: R\$ .*`)

// SettlePayment quita o saldo de um agendamento: sinal passa a ser o
// preço cheio (o status "pago" é derivado disso) e a nota do dossiê é
// atualizada. Não há transação entre as duas coleções, e liquidar um
// agendamento já quitado é um no-op seguro.
type SettlePayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSettlePayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SettlePayment {
	return &SettlePayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SettlePayment) Execute(
	ctx context.Context,
	actorID string,
	appointmentID string,
) (*SettleResult, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.PaymentStatus() == models.PaymentPaid {
		return &SettleResult{Appointment: ap, AlreadySettled: true}, nil
	}

	// --------------------------------------------------
	// 1º passo: efeito primário, obrigatório
	// --------------------------------------------------
	ap.DepositValue = ap.Price

	saved, err := uc.repo.SaveAppointment(ctx, ap)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2º passo: dossiê, melhor esforço
	// --------------------------------------------------
	patched := uc.patchDossie(ctx, saved)

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "payment_settled",
		Entity:   "appointment",
		EntityID: saved.ID,
		Metadata: map[string]any{"dossie_patched": patched},
	})

	return &SettleResult{
		Appointment:   saved,
		DossiePatched: patched,
	}, nil
}

func (uc *SettlePayment) patchDossie(ctx context.Context, ap *models.Appointment) bool {
	if ap.ClientID == "" || ap.ClientID == models.GuestClientID {
		return false
	}

	client, err := uc.repo.GetClient(ctx, ap.ClientID)
	if err != nil || client == nil {
		// Cliente apagada ou agendamento órfão: a liquidação já aconteceu.
		log.Printf("settle: client %s unavailable for appointment %s: %v", ap.ClientID, ap.ID, err)
		return false
	}

	idx := client.FindDossieByAppointment(ap.ID)
	if idx < 0 {
		return false
	}

	entry := &client.Dossie[idx]
	if remainingNoteRe.MatchString(entry.Notes) {
		entry.Notes = remainingNoteRe.ReplaceAllString(entry.Notes, domainap.PaidInFullNote)
	} else if entry.Notes == "" {
		entry.Notes = domainap.PaidInFullNote
	} else {
		entry.Notes += " " + domainap.PaidInFullNote
	}

	if _, err := uc.repo.SaveClient(ctx, client); err != nil {
		log.Printf("settle: dossie patch failed for client %s: %v", client.ID, err)
		return false
	}
	return true
}
