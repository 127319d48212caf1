package appointment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dommestudio/lash-studio-api/internal/httperr"
	"github.com/dommestudio/lash-studio-api/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestStatusTransitions(t *testing.T) {
	now := time.Now()

	t.Run("só scheduled pode ser cancelado ou concluído", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusScheduled)}
		if err := Complete(ap, now); err != nil {
			t.Fatalf("complete: %v", err)
		}
		if ap.Status != string(StatusCompleted) {
			t.Fatalf("expected completed, got %s", ap.Status)
		}

		if err := Cancel(ap, now); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("expected invalid_state cancelling a completed appointment, got %v", err)
		}
		if err := Complete(ap, now); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("expected invalid_state completing twice, got %v", err)
		}
	})

	t.Run("cancelamento a partir de scheduled", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusScheduled)}
		if err := Cancel(ap, now); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		if ap.Status != string(StatusCancelled) {
			t.Fatalf("expected cancelled, got %s", ap.Status)
		}
	})
}

func TestValidatePayment(t *testing.T) {
	cases := []struct {
		name    string
		price   string
		deposit string
		code    string
	}{
		{"preço e sinal válidos", "200", "50", ""},
		{"sinal igual ao preço", "200", "200", ""},
		{"preço zero sem sinal", "0", "0", ""},
		{"preço negativo", "-1", "0", "invalid_price"},
		{"sinal negativo", "100", "-1", "invalid_deposit"},
		{"sinal acima do preço", "100", "101", "invalid_deposit"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePayment(dec(tc.price), dec(tc.deposit))
			if tc.code == "" {
				if err != nil {
					t.Fatalf("expected ok, got %v", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestDossieNote(t *testing.T) {

	t.Run("crédito parcelado com sinal", func(t *testing.T) {
		note := DossieNote(models.MethodCreditCard, 3, dec("50"), dec("150"))
		want := "Pagamento via Cartão de Crédito em 3x. Sinal de R$ 50.00 pago. Valor restante: R$ 150.00."
		if note != want {
			t.Fatalf("got %q, want %q", note, want)
		}
	})

	t.Run("pix sem sinal", func(t *testing.T) {
		note := DossieNote(models.MethodPix, 0, decimal.Zero, dec("200"))
		want := "Pagamento via PIX. Valor restante: R$ 200.00."
		if note != want {
			t.Fatalf("got %q, want %q", note, want)
		}
	})

	t.Run("parcelas fora do crédito são ignoradas", func(t *testing.T) {
		note := DossieNote(models.MethodCash, 4, decimal.Zero, decimal.Zero)
		want := "Pagamento via Dinheiro. Valor restante: R$ 0.00."
		if note != want {
			t.Fatalf("got %q, want %q", note, want)
		}
	})
}

func TestDisplayDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	if got := DisplayDate("2026-03-10", loc); got != "10/03/2026" {
		t.Fatalf("expected 10/03/2026, got %s", got)
	}
	// Entrada fora do formato passa adiante sem falhar.
	if got := DisplayDate("hoje", loc); got != "hoje" {
		t.Fatalf("expected passthrough, got %s", got)
	}
}
