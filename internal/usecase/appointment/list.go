package appointment

import (
	"context"
	"sort"

	domain "github.com/dommestudio/lash-studio-api/internal/domain/appointment"
	"github.com/dommestudio/lash-studio-api/internal/domain/finance"
	"github.com/dommestudio/lash-studio-api/internal/models"
	"github.com/dommestudio/lash-studio-api/internal/timezone"
)

// ListAppointments devolve a agenda recortada por período, em ordem
// cronológica ascendente (linha do tempo).
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter finance.Filter,
) ([]*models.Appointment, error) {

	aps, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(timezone.DefaultTimezone)
	ref := timezone.Now()

	out := make([]*models.Appointment, 0, len(aps))
	for _, ap := range aps {
		if filter == "" || finance.InPeriod(ap.StartsAt(loc), filter, ref) {
			out = append(out, ap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date == out[j].Date {
			return out[i].Time < out[j].Time
		}
		return out[i].Date < out[j].Date
	})

	return out, nil
}
