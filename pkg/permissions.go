package pkg

import "rent-a-car-web/models"

// Action es una transición del ciclo de vida que un rol puede solicitar desde la UI
type Action string

const (
	ActionCancel  Action = "cancel"
	ActionConfirm Action = "confirm"
	ActionFinish  Action = "finish"
)

// allowedActions define qué acción puede ver cada rol según el estado de la
// reserva. Desde 'finalizado' y 'cancelado' no hay transiciones.
var allowedActions = map[string]map[string][]Action{
	models.StatusReserved: {
		models.RoleClient: {ActionCancel},
		models.RoleAdmin:  {ActionConfirm},
	},
	models.StatusConfirmed: {
		models.RoleAdmin: {ActionFinish},
	},
}

// AllowedActions resuelve el conjunto de acciones permitidas para (rol, estado).
// Todas las vistas consumen esta tabla, ninguna la reimplementa.
func AllowedActions(role, status string) []Action {
	byRole, ok := allowedActions[status]
	if !ok {
		return nil
	}
	return byRole[role]
}

// CanDo indica si la acción concreta está permitida para (rol, estado)
func CanDo(role, status string, action Action) bool {
	for _, a := range AllowedActions(role, status) {
		if a == action {
			return true
		}
	}
	return false
}

// CanSendMessage indica si el rol puede escribir mensajes en la reserva
func CanSendMessage(role string) bool {
	return role == models.RoleClient
}

// CanSendFeedback indica si se puede adjuntar feedback: solo el cliente,
// solo con la reserva finalizada y solo si aún no tiene feedback
func CanSendFeedback(role string, booking models.Booking) bool {
	return role == models.RoleClient &&
		booking.Status == models.StatusFinished &&
		!booking.HasFeedback()
}
