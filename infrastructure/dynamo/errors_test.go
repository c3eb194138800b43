package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"

	"taskboard/domain/apperrors"
)

func TestClassifyStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			"provisioned throughput exceeded",
			&types.ProvisionedThroughputExceededException{},
			apperrors.ErrStoreThrottled,
		},
		{
			"request limit exceeded",
			&types.RequestLimitExceeded{},
			apperrors.ErrStoreThrottled,
		},
		{
			"generic throttling code",
			&smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down"},
			apperrors.ErrStoreThrottled,
		},
		{
			"unrelated API error",
			&smithy.GenericAPIError{Code: "InternalServerError", Message: "boom"},
			apperrors.ErrStoreUnavailable,
		},
		{
			"plain network error",
			errors.New("connection refused"),
			apperrors.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyStoreError(context.Background(), "GetItem", tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestIsConditionalCheckFailed(t *testing.T) {
	assert.True(t, isConditionalCheckFailed(&types.ConditionalCheckFailedException{}))
	assert.False(t, isConditionalCheckFailed(errors.New("something else")))
	assert.False(t, isConditionalCheckFailed(nil))
}
