package domain

import "time"

// AuditEntry records one admin action for the audit trail.
type AuditEntry struct {
	Actor   string    `json:"actor"`   // email of the authenticated caller
	Role    string    `json:"role"`    // caller's role at the time of the action
	Action  string    `json:"action"`  // e.g. "create_student", "assign_teacher"
	Subject string    `json:"subject"` // what the action touched (name, email or id)
	At      time.Time `json:"at"`
}
