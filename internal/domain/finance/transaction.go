// Package finance deriva a visão financeira do estúdio a partir dos
// agendamentos: não possui estado próprio, apenas lê, calcula e
// (na liquidação) escreve de volta.
package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dommestudio/lash-studio-api/internal/models"
)

// Rótulo de exibição para agendamento sem ficha de cliente.
const ExternalClientLabel = "Cliente Externo"

const (
	StatusPaid    = "Pago"
	StatusPending = "Pendente"
)

// Transaction é a visão derivada de um agendamento. Nunca é persistida:
// é recalculada em toda leitura.
type Transaction struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name"`
	Procedure  string          `json:"procedure"`
	Method     string          `json:"method"`
	Date       time.Time       `json:"date"`
	Total      decimal.Decimal `json:"total"`
	Inflow     decimal.Decimal `json:"inflow"`
	Receivable decimal.Decimal `json:"receivable"`
	Status     string          `json:"status"`
}

// ComputeTransactions gera uma transação por agendamento, na ordem de
// entrada. Cliente ausente resolve para o rótulo externo; nunca falha.
func ComputeTransactions(
	appointments []*models.Appointment,
	clients []*models.Client,
	loc *time.Location,
) []Transaction {

	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}

	txs := make([]Transaction, 0, len(appointments))
	for _, ap := range appointments {
		name, ok := names[ap.ClientID]
		if !ok {
			name = ExternalClientLabel
		}

		method := ap.PaymentMethod
		if method == "" {
			method = models.MethodPix
		}

		status := StatusPending
		if ap.PaymentStatus() == models.PaymentPaid {
			status = StatusPaid
		}

		txs = append(txs, Transaction{
			ID:         ap.ID,
			ClientID:   ap.ClientID,
			ClientName: name,
			Procedure:  ap.ServiceType,
			Method:     method,
			Date:       ap.StartsAt(loc),
			Total:      ap.Price,
			Inflow:     ap.Inflow(),
			Receivable: ap.Receivable(),
			Status:     status,
		})
	}
	return txs
}

// Receivables devolve apenas as transações com saldo em aberto.
// O saldo devedor é um balanço permanente: nunca passa pelo filtro de período.
func Receivables(txs []Transaction) []Transaction {
	out := make([]Transaction, 0)
	for _, t := range txs {
		if t.Receivable.IsPositive() {
			out = append(out, t)
		}
	}
	return out
}
