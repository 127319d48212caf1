package finance

import (
	"testing"
	"time"
)

func TestParseFilter(t *testing.T) {
	for _, valid := range []string{"dia", "semana", "mes", "ano"} {
		if _, ok := ParseFilter(valid); !ok {
			t.Fatalf("expected %q to parse", valid)
		}
	}
	if _, ok := ParseFilter("quinzena"); ok {
		t.Fatal("expected unknown filter to be rejected")
	}
}

func TestInPeriod(t *testing.T) {
	loc := mustLoc(t)

	// Quarta-feira, 14 de janeiro de 2026.
	ref := time.Date(2026, 1, 14, 15, 30, 0, 0, loc)

	t.Run("dia compara data de calendário, não janela de 24h", func(t *testing.T) {
		sameDayEarly := time.Date(2026, 1, 14, 0, 5, 0, 0, loc)
		if !InPeriod(sameDayEarly, FilterDay, ref) {
			t.Fatal("expected early same-day instant to be in period")
		}

		dayBefore := time.Date(2026, 1, 13, 23, 59, 0, 0, loc)
		if InPeriod(dayBefore, FilterDay, ref) {
			t.Fatal("expected previous day to be out of period")
		}
	})

	t.Run("semana é de calendário, domingo a sábado", func(t *testing.T) {
		sunday := time.Date(2026, 1, 11, 0, 0, 0, 0, loc)
		saturday := time.Date(2026, 1, 17, 23, 0, 0, 0, loc)
		saturdayBefore := time.Date(2026, 1, 10, 12, 0, 0, 0, loc)
		nextSunday := time.Date(2026, 1, 18, 0, 0, 0, 0, loc)

		if !InPeriod(sunday, FilterWeek, ref) {
			t.Fatal("expected Sunday start to be in period")
		}
		if !InPeriod(saturday, FilterWeek, ref) {
			t.Fatal("expected Saturday end to be in period")
		}
		if InPeriod(saturdayBefore, FilterWeek, ref) {
			t.Fatal("expected previous Saturday to be out of period")
		}
		if InPeriod(nextSunday, FilterWeek, ref) {
			t.Fatal("expected next Sunday to be out of period")
		}
	})

	t.Run("semana quando a referência é o próprio domingo", func(t *testing.T) {
		sundayRef := time.Date(2026, 1, 11, 10, 0, 0, 0, loc)
		if !InPeriod(sundayRef, FilterWeek, sundayRef) {
			t.Fatal("expected Sunday reference to be in its own week")
		}
		if InPeriod(time.Date(2026, 1, 10, 10, 0, 0, 0, loc), FilterWeek, sundayRef) {
			t.Fatal("expected day before Sunday reference to be out")
		}
	})

	t.Run("mês exige mesmo mês e mesmo ano", func(t *testing.T) {
		if !InPeriod(time.Date(2026, 1, 1, 0, 0, 0, 0, loc), FilterMonth, ref) {
			t.Fatal("expected first of month to be in period")
		}
		if InPeriod(time.Date(2025, 1, 14, 15, 30, 0, 0, loc), FilterMonth, ref) {
			t.Fatal("expected same month of another year to be out")
		}
	})

	t.Run("ano", func(t *testing.T) {
		if !InPeriod(time.Date(2026, 12, 31, 23, 0, 0, 0, loc), FilterYear, ref) {
			t.Fatal("expected December of same year to be in period")
		}
		if InPeriod(time.Date(2025, 12, 31, 23, 0, 0, 0, loc), FilterYear, ref) {
			t.Fatal("expected previous year to be out")
		}
	})
}

func TestFilterByPeriod(t *testing.T) {
	loc := mustLoc(t)
	ref := time.Date(2026, 1, 14, 12, 0, 0, 0, loc)

	txs := []Transaction{
		{ID: "hoje", Date: time.Date(2026, 1, 14, 9, 0, 0, 0, loc)},
		{ID: "semana", Date: time.Date(2026, 1, 12, 9, 0, 0, 0, loc)},
		{ID: "mes", Date: time.Date(2026, 1, 2, 9, 0, 0, 0, loc)},
		{ID: "ano", Date: time.Date(2026, 7, 2, 9, 0, 0, 0, loc)},
		{ID: "fora", Date: time.Date(2025, 7, 2, 9, 0, 0, 0, loc)},
	}

	cases := []struct {
		filter Filter
		want   int
	}{
		{FilterDay, 1},
		{FilterWeek, 2},
		{FilterMonth, 3},
		{FilterYear, 4},
	}

	for _, tc := range cases {
		t.Run(string(tc.filter), func(t *testing.T) {
			got := FilterByPeriod(txs, tc.filter, ref)
			if len(got) != tc.want {
				t.Fatalf("filter %s: expected %d transactions, got %d", tc.filter, tc.want, len(got))
			}
		})
	}
}
