package models

// Participant links a user to a dinner they created or joined
type Participant struct {
	DinnerID string `dynamodbav:"dinnerId" json:"dinnerId"` // ✅ Partition Key
	UserID   string `dynamodbav:"userId" json:"userId"`     // ✅ Sort Key
	Role     string `dynamodbav:"role,omitempty" json:"role,omitempty"`
	JoinedAt string `dynamodbav:"joinedAt,omitempty" json:"joinedAt,omitempty"`
}

// ParticipantsTable is the DynamoDB table name for dinner participants
const ParticipantsTable = "FoodBuddyParticipants"

// ParticipantsByUserIndex is the GSI used to list all dinners a user belongs to
const ParticipantsByUserIndex = "userId-index"
