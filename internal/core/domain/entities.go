package domain

// Role represents user role in the system
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Status represents the review state of an application. Transitions are
// one-directional: Pending -> Approved | Rejected, set by admin action.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// IsTerminal reports whether the status is a final review decision
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}
