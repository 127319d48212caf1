// Package reminder varre os aniversários das clientes uma vez por dia e
// envia a mensagem de parabéns do estúdio por WhatsApp (ou SMS).
package reminder

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	"github.com/dommestudio/lash-studio-api/internal/config"
	"github.com/dommestudio/lash-studio-api/internal/models"
	"github.com/dommestudio/lash-studio-api/internal/recordstore"
	"github.com/dommestudio/lash-studio-api/internal/timezone"
)

// Notifier abstrai o canal de envio; em teste usa-se um fake.
type Notifier interface {
	Send(to, message string) error
}

type Service struct {
	clients  *recordstore.Collection[models.Client, *models.Client]
	notifier Notifier
	audit    *audit.Dispatcher
}

func NewService(store recordstore.Store, notifier Notifier, audit *audit.Dispatcher) *Service {
	return &Service{
		clients:  recordstore.NewCollection[models.Client](store, recordstore.Clients),
		notifier: notifier,
		audit:    audit,
	}
}

// StartScheduler agenda a varredura diária das 9h no fuso do estúdio.
func (s *Service) StartScheduler() *cron.Cron {
	c := cron.New(cron.WithLocation(timezone.Location(timezone.DefaultTimezone)))

	c.AddFunc("0 9 * * *", func() {
		s.SendBirthdayGreetings(context.Background(), timezone.Now())
	})

	c.Start()
	log.Println("Reminder scheduler started")
	return c
}

// SendBirthdayGreetings envia os parabéns de quem faz aniversário na
// data de referência. Falha de envio nunca derruba a varredura.
func (s *Service) SendBirthdayGreetings(ctx context.Context, ref time.Time) {
	all, err := s.clients.List(ctx)
	if err != nil {
		log.Printf("reminder: failed to list clients: %v", err)
		return
	}

	for _, client := range all {
		if !birthdayMatches(client.Birthday, ref) || client.Phone == "" {
			continue
		}

		message := fmt.Sprintf(
			"Feliz aniversário, %s! 🎉 O estúdio deseja um dia maravilhoso para você.",
			firstName(client.Name),
		)

		status := "sent"
		if err := s.notifier.Send(client.Phone, message); err != nil {
			log.Printf("reminder: failed to send to %s: %v", client.Phone, err)
			status = "failed"
		}

		s.audit.Dispatch(audit.Event{
			Action:   "birthday_greeting_" + status,
			Entity:   "client",
			EntityID: client.ID,
		})
	}
}

// birthdayMatches compara mês e dia, ignorando o ano.
func birthdayMatches(birthday string, ref time.Time) bool {
	t, err := time.Parse("2006-01-02", birthday)
	if err != nil {
		return false
	}
	return t.Month() == ref.Month() && t.Day() == ref.Day()
}

func firstName(name string) string {
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}

// ======================================================
// Twilio
// ======================================================

type TwilioNotifier struct {
	client       *twilio.RestClient
	whatsappFrom string
	smsFrom      string
}

func NewTwilioNotifier(cfg *config.Config) *TwilioNotifier {
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		whatsappFrom: cfg.TwilioWhatsAppNumber,
		smsFrom:      cfg.TwilioPhoneNumber,
	}
}

// Send usa WhatsApp para números E.164 e SMS para o resto, como o
// restante do mercado brasileiro espera.
func (n *TwilioNotifier) Send(to, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(message)

	if strings.HasPrefix(to, "+") && n.whatsappFrom != "" {
		params.SetTo("whatsapp:" + to)
		params.SetFrom("whatsapp:" + n.whatsappFrom)
	} else {
		params.SetTo(to)
		params.SetFrom(n.smsFrom)
	}

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		log.Printf("reminder: message sent, SID %s", *resp.Sid)
	}
	return nil
}
