package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	"github.com/dommestudio/lash-studio-api/internal/models"
	"github.com/dommestudio/lash-studio-api/internal/recordstore"
)

type fakeNotifier struct {
	sent []string
	fail bool
}

func (f *fakeNotifier) Send(to, message string) error {
	if f.fail {
		return errors.New("provider down")
	}
	f.sent = append(f.sent, to)
	return nil
}

func newReminderFixture(t *testing.T) (*Service, *fakeNotifier, recordstore.Store) {
	t.Helper()
	store := recordstore.NewMemoryStore()
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier, audit.NewDispatcher(audit.New(store)))
	return svc, notifier, store
}

func saveClient(t *testing.T, store recordstore.Store, c *models.Client) {
	t.Helper()
	col := recordstore.NewCollection[models.Client](store, recordstore.Clients)
	if _, err := col.Save(context.Background(), c); err != nil {
		t.Fatalf("save client: %v", err)
	}
}

func TestSendBirthdayGreetings(t *testing.T) {
	ctx := context.Background()
	ref := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("envia só para quem faz aniversário na data", func(t *testing.T) {
		svc, notifier, store := newReminderFixture(t)

		saveClient(t, store, &models.Client{Name: "Maria Silva", Phone: "+5511999990001", Birthday: "1990-03-10"})
		saveClient(t, store, &models.Client{Name: "Joana", Phone: "+5511999990002", Birthday: "1985-07-22"})
		// Ano diferente não importa, só mês e dia.
		saveClient(t, store, &models.Client{Name: "Clara", Phone: "+5511999990003", Birthday: "2001-03-10"})

		svc.SendBirthdayGreetings(ctx, ref)

		if len(notifier.sent) != 2 {
			t.Fatalf("expected 2 greetings, got %d", len(notifier.sent))
		}
	})

	t.Run("sem telefone não há envio", func(t *testing.T) {
		svc, notifier, store := newReminderFixture(t)

		saveClient(t, store, &models.Client{Name: "Maria", Birthday: "1990-03-10"})

		svc.SendBirthdayGreetings(ctx, ref)

		if len(notifier.sent) != 0 {
			t.Fatalf("expected no greetings, got %d", len(notifier.sent))
		}
	})

	t.Run("aniversário ausente ou inválido é ignorado", func(t *testing.T) {
		svc, notifier, store := newReminderFixture(t)

		saveClient(t, store, &models.Client{Name: "Sem Data", Phone: "+5511999990001"})
		saveClient(t, store, &models.Client{Name: "Data Solta", Phone: "+5511999990002", Birthday: "10 de março"})

		svc.SendBirthdayGreetings(ctx, ref)

		if len(notifier.sent) != 0 {
			t.Fatalf("expected no greetings, got %d", len(notifier.sent))
		}
	})

	t.Run("falha de envio não derruba a varredura", func(t *testing.T) {
		svc, notifier, store := newReminderFixture(t)
		notifier.fail = true

		saveClient(t, store, &models.Client{Name: "Maria", Phone: "+5511999990001", Birthday: "1990-03-10"})

		svc.SendBirthdayGreetings(ctx, ref)
	})
}
