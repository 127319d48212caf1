package appointment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dommestudio/lash-studio-api/internal/httperr"
	"github.com/dommestudio/lash-studio-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	return nil
}

// ===============================
// Payment rules
// ===============================

// ValidatePayment garante preço não negativo e sinal dentro do preço.
// O status de pagamento nunca é validado aqui: ele é derivado, não gravado.
func ValidatePayment(price, deposit decimal.Decimal) error {
	if price.IsNegative() {
		return httperr.ErrBusiness("invalid_price")
	}
	if deposit.IsNegative() || deposit.GreaterThan(price) {
		return httperr.ErrBusiness("invalid_deposit")
	}
	return nil
}

// ===============================
// Dossiê
// ===============================

// Frase gravada no dossiê quando a liquidação integral acontece.
const PaidInFullNote = "Pagamento integral recebido."

// DossieNote monta o texto de pagamento da entrada do dossiê, no mesmo
// formato que a recepção sempre usou.
func DossieNote(method string, installments int, deposit, remaining decimal.Decimal) string {
	note := fmt.Sprintf("Pagamento via %s", method)
	if method == models.MethodCreditCard && installments > 1 {
		note += fmt.Sprintf(" em %dx", installments)
	}
	note += "."
	if deposit.IsPositive() {
		note += fmt.Sprintf(" Sinal de R$ %s pago.", deposit.StringFixed(2))
	}
	note += fmt.Sprintf(" Valor restante: R$ %s.", remaining.StringFixed(2))
	return note
}

// DisplayDate converte a data ISO do agendamento para o formato do dossiê.
func DisplayDate(isoDate string, loc *time.Location) string {
	t, err := time.ParseInLocation("2006-01-02", isoDate, loc)
	if err != nil {
		return isoDate
	}
	return t.Format("02/01/2006")
}
