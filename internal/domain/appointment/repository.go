package appointment

import (
	"context"

	"github.com/dommestudio/lash-studio-api/internal/models"
)

// Repository é o contrato de persistência dos fluxos de agenda.
// Get devolve nil quando o registro não existe.
type Repository interface {
	// -------- Appointment --------
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	SaveAppointment(ctx context.Context, ap *models.Appointment) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	ListAppointments(ctx context.Context) ([]*models.Appointment, error)

	// -------- Client --------
	GetClient(ctx context.Context, id string) (*models.Client, error)
	SaveClient(ctx context.Context, c *models.Client) (*models.Client, error)
}
