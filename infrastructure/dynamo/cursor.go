package dynamo

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"taskboard/domain/apperrors"
)

// The resume position of a paginated traversal is DynamoDB's
// LastEvaluatedKey. Both the table key and the owner index key are plain
// string attributes, so the cursor serializes as a flat JSON object.

func encodeStartKey(key map[string]types.AttributeValue) (string, error) {
	if len(key) == 0 {
		return "", nil
	}
	var plain map[string]string
	if err := attributevalue.UnmarshalMap(key, &plain); err != nil {
		return "", fmt.Errorf("encode cursor: %w", err)
	}
	data, err := json.Marshal(plain)
	if err != nil {
		return "", fmt.Errorf("encode cursor: %w", err)
	}
	return string(data), nil
}

func decodeStartKey(cursor string) (map[string]types.AttributeValue, error) {
	if cursor == "" {
		return nil, nil
	}
	var plain map[string]string
	if err := json.Unmarshal([]byte(cursor), &plain); err != nil {
		return nil, apperrors.ErrInvalidCursor
	}
	if len(plain) == 0 {
		return nil, apperrors.ErrInvalidCursor
	}
	key := make(map[string]types.AttributeValue, len(plain))
	for name, value := range plain {
		key[name] = &types.AttributeValueMemberS{Value: value}
	}
	return key, nil
}
