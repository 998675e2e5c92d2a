package utils

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractString(t *testing.T) {
	item := map[string]types.AttributeValue{
		"status":    &types.AttributeValueMemberS{Value: "open"},
		"maxGuests": &types.AttributeValueMemberN{Value: "6"},
	}

	assert.Equal(t, "open", ExtractString(item, "status"))
	assert.Equal(t, "", ExtractString(item, "maxGuests"), "non-string attribute yields empty")
	assert.Equal(t, "", ExtractString(item, "missing"))
}
