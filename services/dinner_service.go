package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/zhu243450/food-buddies-sub001/models"
	"github.com/zhu243450/food-buddies-sub001/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type DinnerService struct {
	Dynamo *DynamoService
}

// CreateDinner stores a new dinner and enrolls the creator as its first
// participant, so history queries see created and joined dinners uniformly.
func (dns *DinnerService) CreateDinner(ctx context.Context, dinner models.DinnerEvent) (*models.DinnerEvent, error) {
	dinner.DinnerID = uuid.NewString()
	if dinner.Status == "" {
		dinner.Status = models.DinnerStatusOpen
	}
	dinner.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := dns.Dynamo.PutItem(ctx, models.DinnersTable, dinner); err != nil {
		return nil, err
	}

	creator := models.Participant{
		DinnerID: dinner.DinnerID,
		UserID:   dinner.CreatorID,
		Role:     models.ParticipantRoleCreator,
		JoinedAt: dinner.CreatedAt,
	}
	if err := dns.Dynamo.PutItem(ctx, models.ParticipantsTable, creator); err != nil {
		return nil, fmt.Errorf("failed to enroll creator: %w", err)
	}

	log.Printf("Dinner created: %s by %s\n", dinner.DinnerID, dinner.CreatorID)
	return &dinner, nil
}

// GetDinner retrieves a dinner by ID; (nil, nil) when it does not exist
func (dns *DinnerService) GetDinner(ctx context.Context, dinnerID string) (*models.DinnerEvent, error) {
	key := map[string]types.AttributeValue{
		"dinnerId": &types.AttributeValueMemberS{Value: dinnerID},
	}

	item, err := dns.Dynamo.GetItem(ctx, models.DinnersTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var dinner models.DinnerEvent
	if err := attributevalue.UnmarshalMap(item, &dinner); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dinner: %w", err)
	}
	return &dinner, nil
}

// ListOpenDinners returns every dinner currently accepting guests, in the
// order the scan yields them.
func (dns *DinnerService) ListOpenDinners(ctx context.Context) ([]models.DinnerEvent, error) {
	var dinners []models.DinnerEvent
	err := dns.Dynamo.ScanWithFilter(ctx, models.DinnersTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "status") == models.DinnerStatusOpen
	}, &dinners)
	if err != nil {
		return nil, fmt.Errorf("failed to list open dinners: %w", err)
	}
	return dinners, nil
}

// GetParticipants lists everyone enrolled in a dinner
func (dns *DinnerService) GetParticipants(ctx context.Context, dinnerID string) ([]models.Participant, error) {
	keyCondition := "dinnerId = :dinnerId"
	expressionAttributeValues := map[string]types.AttributeValue{
		":dinnerId": &types.AttributeValueMemberS{Value: dinnerID},
	}

	items, err := dns.Dynamo.QueryItems(ctx, models.ParticipantsTable, keyCondition, expressionAttributeValues, nil, 0)
	if err != nil {
		return nil, err
	}

	var participants []models.Participant
	if err := attributevalue.UnmarshalListOfMaps(items, &participants); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participants: %w", err)
	}
	return participants, nil
}

// JoinDinner enrolls a user into an open dinner, marking the dinner full
// when the last seat is taken
func (dns *DinnerService) JoinDinner(ctx context.Context, dinnerID, userID string) (*models.Participant, error) {
	dinner, err := dns.GetDinner(ctx, dinnerID)
	if err != nil {
		return nil, err
	}
	if dinner == nil {
		return nil, fmt.Errorf("dinner not found: %s", dinnerID)
	}
	if dinner.Status != models.DinnerStatusOpen {
		return nil, fmt.Errorf("dinner %s is not open for joining", dinnerID)
	}

	participants, err := dns.GetParticipants(ctx, dinnerID)
	if err != nil {
		return nil, err
	}
	for _, p := range participants {
		if p.UserID == userID {
			return nil, fmt.Errorf("user %s already joined dinner %s", userID, dinnerID)
		}
	}
	if dinner.MaxGuests > 0 && len(participants) >= dinner.MaxGuests {
		return nil, fmt.Errorf("dinner %s is already full", dinnerID)
	}

	participant := models.Participant{
		DinnerID: dinnerID,
		UserID:   userID,
		Role:     models.ParticipantRoleGuest,
		JoinedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := dns.Dynamo.PutItem(ctx, models.ParticipantsTable, participant); err != nil {
		return nil, err
	}

	// Seat just taken was the last one
	if dinner.MaxGuests > 0 && len(participants)+1 >= dinner.MaxGuests {
		if err := dns.UpdateDinnerStatus(ctx, dinnerID, models.DinnerStatusFull); err != nil {
			log.Printf("Failed to mark dinner %s full: %v\n", dinnerID, err)
		}
	}

	return &participant, nil
}

// LeaveDinner removes a guest from a dinner, reopening it if it was full
func (dns *DinnerService) LeaveDinner(ctx context.Context, dinnerID, userID string) error {
	key := map[string]types.AttributeValue{
		"dinnerId": &types.AttributeValueMemberS{Value: dinnerID},
		"userId":   &types.AttributeValueMemberS{Value: userID},
	}
	if err := dns.Dynamo.DeleteItem(ctx, models.ParticipantsTable, key); err != nil {
		return err
	}

	dinner, err := dns.GetDinner(ctx, dinnerID)
	if err != nil || dinner == nil {
		return err
	}
	if dinner.Status == models.DinnerStatusFull {
		return dns.UpdateDinnerStatus(ctx, dinnerID, models.DinnerStatusOpen)
	}
	return nil
}

// UpdateDinnerStatus sets a dinner's status (open, full, closed, cancelled)
func (dns *DinnerService) UpdateDinnerStatus(ctx context.Context, dinnerID, status string) error {
	key := map[string]types.AttributeValue{
		"dinnerId": &types.AttributeValueMemberS{Value: dinnerID},
	}
	updateExpression := "SET #status = :status"
	expressionAttributeValues := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: status},
	}
	expressionAttributeNames := map[string]string{
		"#status": "status",
	}

	_, err := dns.Dynamo.UpdateItem(ctx, models.DinnersTable, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	return err
}

// GetUserDinnerHistory returns every dinner the user created or joined,
// resolved one by one from the participant index.
func (dns *DinnerService) GetUserDinnerHistory(ctx context.Context, userID string) ([]models.DinnerEvent, error) {
	keyCondition := "userId = :userId"
	expressionAttributeValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}

	items, err := dns.Dynamo.QueryItemsWithIndex(ctx, models.ParticipantsTable, models.ParticipantsByUserIndex, keyCondition, expressionAttributeValues, nil, 0)
	if err != nil {
		return nil, err
	}

	var history []models.DinnerEvent
	for _, item := range items {
		dinnerID := utils.ExtractString(item, "dinnerId")
		if dinnerID == "" {
			continue
		}

		dinner, err := dns.GetDinner(ctx, dinnerID)
		if err != nil || dinner == nil {
			continue // Skip dinners that no longer resolve
		}
		history = append(history, *dinner)
	}

	return history, nil
}
