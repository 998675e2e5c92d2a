package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID              string   `dynamodbav:"userId" json:"userId"` // ✅ Partition Key
	Name                string   `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Bio                 string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	AvatarKey           string   `dynamodbav:"avatarKey,omitempty" json:"avatarKey,omitempty"`
	FoodPreferences     []string `dynamodbav:"foodPreferences,omitempty" json:"foodPreferences,omitempty"`
	PersonalityTags     []string `dynamodbav:"personalityTags,omitempty" json:"personalityTags,omitempty"`
	DietaryRestrictions []string `dynamodbav:"dietaryRestrictions,omitempty" json:"dietaryRestrictions,omitempty"`
	// Latitude/Longitude are pointers so an unset location is distinguishable
	// from coordinate zero; both are set together or not at all.
	Latitude  *float64 `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude *float64 `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "FoodBuddyUsers"
