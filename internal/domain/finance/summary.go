package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// ===============================
// Métricas
// ===============================

type Metrics struct {
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalInflow     decimal.Decimal `json:"total_inflow"`
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	TicketAverage   decimal.Decimal `json:"ticket_average"`
	Count           int             `json:"count"`
}

// Summarize calcula bruto, caixa e ticket médio sobre o recorte de período,
// mas o saldo devedor SEMPRE sobre o conjunto completo: dívida em aberto
// não expira quando o filtro muda.
func Summarize(period, all []Transaction) Metrics {
	m := Metrics{
		TotalGross:      decimal.Zero,
		TotalInflow:     decimal.Zero,
		TotalReceivable: decimal.Zero,
		TicketAverage:   decimal.Zero,
		Count:           len(period),
	}

	for _, t := range period {
		m.TotalGross = m.TotalGross.Add(t.Total)
		m.TotalInflow = m.TotalInflow.Add(t.Inflow)
	}
	for _, t := range all {
		m.TotalReceivable = m.TotalReceivable.Add(t.Receivable)
	}

	if m.Count > 0 {
		m.TicketAverage = m.TotalGross.DivRound(decimal.NewFromInt(int64(m.Count)), 2)
	}
	return m
}

// ===============================
// Série do gráfico de fluxo de caixa
// ===============================

type ChartPoint struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

var (
	weekdayLabels = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}
	monthLabels   = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}
)

// ChartSeries agrupa o caixa do período em baldes de exibição:
// dia => turnos, semana => dias, mês => semanas do mês, ano => meses.
// Valores são somas reais de inflow, não placeholders.
func ChartSeries(period []Transaction, filter Filter, ref time.Time) []ChartPoint {
	loc := ref.Location()

	var labels []string
	switch filter {
	case FilterDay:
		labels = []string{"Manhã", "Tarde", "Noite"}
	case FilterWeek:
		labels = weekdayLabels
	case FilterMonth:
		labels = []string{"Sem 1", "Sem 2", "Sem 3", "Sem 4", "Sem 5"}
	default:
		labels = monthLabels
	}

	points := make([]ChartPoint, len(labels))
	for i, name := range labels {
		points[i] = ChartPoint{Name: name, Value: decimal.Zero}
	}

	for _, t := range period {
		d := t.Date.In(loc)
		var idx int
		switch filter {
		case FilterDay:
			switch {
			case d.Hour() < 12:
				idx = 0
			case d.Hour() < 18:
				idx = 1
			default:
				idx = 2
			}
		case FilterWeek:
			idx = int(d.Weekday())
		case FilterMonth:
			idx = (d.Day() - 1) / 7
		default:
			idx = int(d.Month()) - 1
		}
		if idx >= 0 && idx < len(points) {
			points[idx].Value = points[idx].Value.Add(t.Inflow)
		}
	}
	return points
}
