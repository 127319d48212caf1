package finance

import "time"

// ===============================
// Filtro de período
// ===============================

type Filter string

const (
	FilterDay   Filter = "dia"
	FilterWeek  Filter = "semana"
	FilterMonth Filter = "mes"
	FilterYear  Filter = "ano"
)

func ParseFilter(s string) (Filter, bool) {
	switch Filter(s) {
	case FilterDay, FilterWeek, FilterMonth, FilterYear:
		return Filter(s), true
	}
	return "", false
}

// FilterByPeriod recorta as transações pelo calendário local da referência.
// Semana é semana de calendário com início no domingo: escolha normativa,
// determinística e independente do "agora".
// Comparações sempre em data de parede local, nunca em UTC deslocado.
func FilterByPeriod(txs []Transaction, filter Filter, ref time.Time) []Transaction {
	loc := ref.Location()

	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if InPeriod(t.Date.In(loc), filter, ref) {
			out = append(out, t)
		}
	}
	return out
}

// InPeriod decide se um instante cai no período da referência.
func InPeriod(t time.Time, filter Filter, ref time.Time) bool {
	switch filter {
	case FilterDay:
		return sameDate(t, ref)
	case FilterWeek:
		ws := weekStart(ref)
		return !t.Before(ws) && t.Before(ws.AddDate(0, 0, 7))
	case FilterMonth:
		return t.Year() == ref.Year() && t.Month() == ref.Month()
	case FilterYear:
		return t.Year() == ref.Year()
	}
	return true
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// weekStart devolve a meia-noite do domingo da semana da referência.
func weekStart(ref time.Time) time.Time {
	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}
