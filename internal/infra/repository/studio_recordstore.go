package repository

import (
	"context"

	"github.com/dommestudio/lash-studio-api/internal/models"
	"github.com/dommestudio/lash-studio-api/internal/recordstore"
)

// StudioRepository materializa os contratos de domínio (agenda e finanças)
// sobre o record store genérico. É o único lugar que conhece os nomes das
// coleções dos agregados principais.
type StudioRepository struct {
	appointments *recordstore.Collection[models.Appointment, *models.Appointment]
	clients      *recordstore.Collection[models.Client, *models.Client]
}

func NewStudioRepository(store recordstore.Store) *StudioRepository {
	return &StudioRepository{
		appointments: recordstore.NewCollection[models.Appointment](store, recordstore.Appointments),
		clients:      recordstore.NewCollection[models.Client](store, recordstore.Clients),
	}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *StudioRepository) ListAppointments(ctx context.Context) ([]*models.Appointment, error) {
	return r.appointments.List(ctx)
}

func (r *StudioRepository) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return r.appointments.Get(ctx, id)
}

func (r *StudioRepository) SaveAppointment(ctx context.Context, ap *models.Appointment) (*models.Appointment, error) {
	return r.appointments.Save(ctx, ap)
}

func (r *StudioRepository) DeleteAppointment(ctx context.Context, id string) error {
	return r.appointments.Delete(ctx, id)
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *StudioRepository) ListClients(ctx context.Context) ([]*models.Client, error) {
	return r.clients.List(ctx)
}

func (r *StudioRepository) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return r.clients.Get(ctx, id)
}

func (r *StudioRepository) SaveClient(ctx context.Context, c *models.Client) (*models.Client, error) {
	return r.clients.Save(ctx, c)
}

func (r *StudioRepository) DeleteClient(ctx context.Context, id string) error {
	return r.clients.Delete(ctx, id)
}
