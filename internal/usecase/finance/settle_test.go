package finance

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	domainap "github.com/dommestudio/lash-studio-api/internal/domain/appointment"
	"github.com/dommestudio/lash-studio-api/internal/httperr"
	infraRepo "github.com/dommestudio/lash-studio-api/internal/infra/repository"
	"github.com/dommestudio/lash-studio-api/internal/models"
	"github.com/dommestudio/lash-studio-api/internal/recordstore"
)

func newSettleFixture(t *testing.T) (*SettlePayment, *infraRepo.StudioRepository) {
	t.Helper()
	store := recordstore.NewMemoryStore()
	repo := infraRepo.NewStudioRepository(store)
	dispatcher := audit.NewDispatcher(audit.New(store))
	return NewSettlePayment(repo, dispatcher), repo
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSettlePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("quita o agendamento e carimba o dossiê", func(t *testing.T) {
		uc, repo := newSettleFixture(t)

		client, err := repo.SaveClient(ctx, &models.Client{
			Name: "Maria",
			Dossie: []models.DossieEntry{{
				ID:            "d1",
				AppointmentID: "pendente",
				Notes:         "Pagamento via PIX. Sinal de R$ 50.00 pago. Valor restante: R$ 150.00.",
			}},
		})
		if err != nil {
			t.Fatalf("save client: %v", err)
		}

		ap := &models.Appointment{
			ID:           "pendente",
			ClientID:     client.ID,
			Date:         "2026-03-10",
			Time:         "14:00",
			Price:        dec("200"),
			DepositValue: dec("50"),
		}
		// O vínculo do dossiê usa o ID fixado acima.
		client.Dossie[0].AppointmentID = ap.ID
		if _, err := repo.SaveClient(ctx, client); err != nil {
			t.Fatalf("save client: %v", err)
		}
		if _, err := repo.SaveAppointment(ctx, ap); err != nil {
			t.Fatalf("save appointment: %v", err)
		}

		result, err := uc.Execute(ctx, "owner", ap.ID)
		if err != nil {
			t.Fatalf("settle: %v", err)
		}
		if result.AlreadySettled {
			t.Fatal("expected first settlement to act")
		}
		if !result.DossiePatched {
			t.Fatal("expected dossie to be patched")
		}
		if result.Appointment.PaymentStatus() != models.PaymentPaid {
			t.Fatalf("expected derived status pago, got %s", result.Appointment.PaymentStatus())
		}
		if !result.Appointment.DepositValue.Equal(dec("200")) {
			t.Fatalf("expected deposit raised to price, got %s", result.Appointment.DepositValue)
		}

		updated, err := repo.GetClient(ctx, client.ID)
		if err != nil {
			t.Fatalf("reload client: %v", err)
		}
		notes := updated.Dossie[0].Notes
		if strings.Contains(notes, "Valor restante") {
			t.Fatalf("expected remaining-balance note to be replaced, got %q", notes)
		}
		if !strings.Contains(notes, domainap.PaidInFullNote) {
			t.Fatalf("expected paid-in-full note, got %q", notes)
		}
		if !strings.Contains(notes, "Sinal de R$ 50.00 pago.") {
			t.Fatalf("expected original prefix preserved, got %q", notes)
		}
	})

	t.Run("liquidar quitado é no-op idempotente", func(t *testing.T) {
		uc, repo := newSettleFixture(t)

		ap, err := repo.SaveAppointment(ctx, &models.Appointment{
			ClientID:     models.GuestClientID,
			Date:         "2026-03-10",
			Time:         "14:00",
			Price:        dec("100"),
			DepositValue: dec("100"),
		})
		if err != nil {
			t.Fatalf("save appointment: %v", err)
		}

		result, err := uc.Execute(ctx, "owner", ap.ID)
		if err != nil {
			t.Fatalf("settle: %v", err)
		}
		if !result.AlreadySettled {
			t.Fatal("expected already settled")
		}
	})

	t.Run("agendamento inexistente é erro de negócio", func(t *testing.T) {
		uc, _ := newSettleFixture(t)

		_, err := uc.Execute(ctx, "owner", "nao-existe")
		if !httperr.IsBusiness(err, "appointment_not_found") {
			t.Fatalf("expected appointment_not_found, got %v", err)
		}
	})

	t.Run("cliente externo liquida sem carimbar dossiê", func(t *testing.T) {
		uc, repo := newSettleFixture(t)

		ap, err := repo.SaveAppointment(ctx, &models.Appointment{
			ClientID:     models.GuestClientID,
			Date:         "2026-03-10",
			Time:         "14:00",
			Price:        dec("100"),
			DepositValue: dec("20"),
		})
		if err != nil {
			t.Fatalf("save appointment: %v", err)
		}

		result, err := uc.Execute(ctx, "owner", ap.ID)
		if err != nil {
			t.Fatalf("settle: %v", err)
		}
		if result.DossiePatched {
			t.Fatal("guest appointment must not patch any dossie")
		}
		if result.Appointment.PaymentStatus() != models.PaymentPaid {
			t.Fatal("expected settlement to land even without dossie")
		}
	})

	t.Run("cliente apagada não desfaz a liquidação", func(t *testing.T) {
		uc, repo := newSettleFixture(t)

		ap, err := repo.SaveAppointment(ctx, &models.Appointment{
			ClientID:     "cliente-removida",
			Date:         "2026-03-10",
			Time:         "14:00",
			Price:        dec("100"),
			DepositValue: dec("20"),
		})
		if err != nil {
			t.Fatalf("save appointment: %v", err)
		}

		result, err := uc.Execute(ctx, "owner", ap.ID)
		if err != nil {
			t.Fatalf("settle: %v", err)
		}
		if result.DossiePatched {
			t.Fatal("missing client must not report a patch")
		}

		reloaded, err := repo.GetAppointment(ctx, ap.ID)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if reloaded.PaymentStatus() != models.PaymentPaid {
			t.Fatal("primary write must persist even when dossie step fails")
		}
	})
}
