package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ===============================
// Client + Dossiê
// ===============================

type Client struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`

	Birthday string `json:"birthday,omitempty"` // 2006-01-02
	EyeShape string `json:"eye_shape,omitempty"`
	Notes    string `json:"notes,omitempty"`

	PhotoURL string   `json:"photo_url,omitempty"`
	Gallery  []string `json:"gallery,omitempty"`

	Dossie []DossieEntry `json:"dossie"`

	// Rótulo livre, atualizado de forma oportunista ("Hoje", "12/03" etc).
	LastVisit string `json:"last_visit,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) GetID() string     { return c.ID }
func (c *Client) SetID(id string)   { c.ID = id }
func (c *Client) Touch(t time.Time) { c.UpdatedAt = t }

// DossieEntry é o histórico de procedimentos, desnormalizado do agendamento.
// AppointmentID é a chave de correlação: nunca casamos por data+técnica.
type DossieEntry struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointment_id"`

	Date string `json:"date"` // 02/01/2006
	Time string `json:"time"` // 15:04

	Technique string          `json:"technique"`
	Price     decimal.Decimal `json:"price"`

	PaymentMethod string   `json:"payment_method,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Photos        []string `json:"photos,omitempty"`

	Analysis *Analysis `json:"analysis,omitempty"`
}

// FindDossieByAppointment devolve o índice da entrada ligada ao agendamento,
// ou -1 quando não há vínculo.
func (c *Client) FindDossieByAppointment(appointmentID string) int {
	for i := range c.Dossie {
		if c.Dossie[i].AppointmentID == appointmentID {
			return i
		}
	}
	return -1
}
