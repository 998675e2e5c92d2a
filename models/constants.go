package models

// ✅ Dinner Statuses
const (
	DinnerStatusOpen      = "open"
	DinnerStatusFull      = "full"
	DinnerStatusClosed    = "closed"
	DinnerStatusCancelled = "cancelled"
)

// ✅ Participant Roles
const (
	ParticipantRoleCreator = "creator"
	ParticipantRoleGuest   = "guest"
)
