package models

// DinnerEvent defines the structure for a dinner listing
type DinnerEvent struct {
	DinnerID            string   `dynamodbav:"dinnerId" json:"dinnerId"` // ✅ Partition Key
	CreatorID           string   `dynamodbav:"creatorId,omitempty" json:"creatorId,omitempty"`
	Title               string   `dynamodbav:"title,omitempty" json:"title,omitempty"`
	Description         string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	FoodPreferences     []string `dynamodbav:"foodPreferences,omitempty" json:"foodPreferences,omitempty"`
	PersonalityTags     []string `dynamodbav:"personalityTags,omitempty" json:"personalityTags,omitempty"`
	DietaryRestrictions []string `dynamodbav:"dietaryRestrictions,omitempty" json:"dietaryRestrictions,omitempty"`
	Location            string   `dynamodbav:"location,omitempty" json:"location,omitempty"` // Free-text address/venue
	DinnerTime          string   `dynamodbav:"dinnerTime,omitempty" json:"dinnerTime,omitempty"`
	MaxGuests           int      `dynamodbav:"maxGuests,omitempty" json:"maxGuests,omitempty"`
	Status              string   `dynamodbav:"status,omitempty" json:"status,omitempty"`
	PosterKey           string   `dynamodbav:"posterKey,omitempty" json:"posterKey,omitempty"`
	CreatedAt           string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// DinnersTable is the DynamoDB table name for dinner events
const DinnersTable = "FoodBuddyDinners"
