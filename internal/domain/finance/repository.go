package finance

import (
	"context"

	"github.com/dommestudio/lash-studio-api/internal/models"
)

// Repository é o que o motor financeiro precisa do record store.
// Get devolve nil quando o registro não existe.
type Repository interface {
	ListAppointments(ctx context.Context) ([]*models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	SaveAppointment(ctx context.Context, ap *models.Appointment) (*models.Appointment, error)

	ListClients(ctx context.Context) ([]*models.Client, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	SaveClient(ctx context.Context, c *models.Client) (*models.Client, error)
}
