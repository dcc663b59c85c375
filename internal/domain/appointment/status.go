package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid diz se o valor pertence ao vocabulário de status.
func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// InitialStatus é o status forçado em toda criação, independente do que
// o chamador mandar. O update aceita qualquer status válido: o contrato
// não trata completed/cancelled como terminais.
func InitialStatus() Status {
	return StatusScheduled
}
