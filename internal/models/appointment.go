package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ===============================
// Payment
// ===============================

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "pago"
	PaymentPartial PaymentStatus = "parcial"
	PaymentPending PaymentStatus = "pendente"
)

const (
	MethodCash       = "Dinheiro"
	MethodPix        = "PIX"
	MethodCreditCard = "Cartão de Crédito"
	MethodDebitCard  = "Cartão de Débito"
)

// GuestClientID marca atendimentos sem ficha de cliente.
const GuestClientID = "guest"

// ===============================
// Appointment
// ===============================

type Appointment struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`

	Date string `json:"date"` // 2006-01-02
	Time string `json:"time"` // 15:04

	ServiceType string `json:"service_type"`

	Price        decimal.Decimal `json:"price"`
	DepositValue decimal.Decimal `json:"deposit_value"`

	PaymentMethod string `json:"payment_method"`
	Installments  int    `json:"installments,omitempty"`

	Status string `json:"status"` // scheduled | completed | cancelled

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) GetID() string     { return a.ID }
func (a *Appointment) SetID(id string)   { a.ID = id }
func (a *Appointment) Touch(t time.Time) { a.UpdatedAt = t }

// PaymentStatus é sempre derivado de sinal x preço, nunca gravado.
func (a *Appointment) PaymentStatus() PaymentStatus {
	switch {
	case a.DepositValue.GreaterThanOrEqual(a.Price):
		return PaymentPaid
	case a.DepositValue.IsPositive():
		return PaymentPartial
	default:
		return PaymentPending
	}
}

func (a *Appointment) Inflow() decimal.Decimal {
	if a.PaymentStatus() == PaymentPaid {
		return a.Price
	}
	if a.DepositValue.IsNegative() {
		return decimal.Zero
	}
	return a.DepositValue
}

// Receivable nunca é negativo, mesmo com sinal acima do preço.
func (a *Appointment) Receivable() decimal.Decimal {
	r := a.Price.Sub(a.Inflow())
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// StartsAt resolve data+hora no fuso do estúdio, sem nunca falhar:
// hora inválida cai para meia-noite, data inválida cai para o zero.
func (a *Appointment) StartsAt(loc *time.Location) time.Time {
	if t, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, loc); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("2006-01-02", a.Date, loc); err == nil {
		return t
	}
	return time.Time{}
}
