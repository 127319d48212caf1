package appointment

import (
	"context"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	domain "github.com/dommestudio/lash-studio-api/internal/domain/appointment"
	"github.com/dommestudio/lash-studio-api/internal/httperr"
)

// RemoveAppointment apaga o agendamento da agenda. A entrada do dossiê
// fica: o histórico da cliente registra o trabalho feito, não a reserva.
type RemoveAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemoveAppointment {
	return &RemoveAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RemoveAppointment) Execute(
	ctx context.Context,
	actorID string,
	appointmentID string,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}
	if ap == nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: appointmentID,
	})

	return nil
}
