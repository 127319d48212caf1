package finance

import (
	"context"
	"sort"

	domain "github.com/dommestudio/lash-studio-api/internal/domain/finance"
	"github.com/dommestudio/lash-studio-api/internal/timezone"
)

// ======================================================
// OVERVIEW
// ======================================================

type Overview struct {
	Filter       domain.Filter        `json:"filter"`
	Metrics      domain.Metrics       `json:"metrics"`
	Chart        []domain.ChartPoint  `json:"chart"`
	Transactions []domain.Transaction `json:"transactions"`
	Receivables  []domain.Transaction `json:"receivables"`
}

// GetOverview recomputa a visão financeira inteira a cada leitura:
// transações derivadas, recorte de período, métricas e série do gráfico.
type GetOverview struct {
	repo domain.Repository
}

func NewGetOverview(repo domain.Repository) *GetOverview {
	return &GetOverview{repo: repo}
}

func (uc *GetOverview) Execute(
	ctx context.Context,
	filter domain.Filter,
) (*Overview, error) {

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := uc.repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(timezone.DefaultTimezone)
	ref := timezone.Now()

	all := domain.ComputeTransactions(appointments, clients, loc)
	period := domain.FilterByPeriod(all, filter, ref)

	// Extrato em ordem cronológica descendente.
	sort.SliceStable(period, func(i, j int) bool {
		return period[i].Date.After(period[j].Date)
	})

	return &Overview{
		Filter:       filter,
		Metrics:      domain.Summarize(period, all),
		Chart:        domain.ChartSeries(period, filter, ref),
		Transactions: period,
		Receivables:  domain.Receivables(all),
	}, nil
}
