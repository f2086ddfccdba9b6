package prescription

// ===============================
// Prescription Status
// ===============================

type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

func IsValid(s Status) bool {
	return s == StatusActive || s == StatusExpired
}

func InitialStatus() Status {
	return StatusActive
}
