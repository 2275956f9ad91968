package models

// Interest statuses. Pending is the explicit default; accepted and
// rejected are terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ValidTransitionStatus reports whether s is a status the workflow accepts
// from the status-update endpoint.
func ValidTransitionStatus(s string) bool {
	return s == StatusAccepted || s == StatusRejected
}
