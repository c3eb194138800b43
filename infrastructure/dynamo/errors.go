package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"taskboard/domain/apperrors"
	"taskboard/pkg/logger"
)

// classifyStoreError maps a failed store call, after the SDK retryer has
// given up, onto the outcome taxonomy. ConditionalCheckFailed is handled at
// the call sites because its meaning depends on the operation.
func classifyStoreError(ctx context.Context, op string, err error) error {
	logger.ErrorContext(ctx, "DynamoDB call failed", "op", op, "error", err)

	var throughput *types.ProvisionedThroughputExceededException
	if errors.As(err, &throughput) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrStoreThrottled)
	}
	var requestLimit *types.RequestLimitExceeded
	if errors.As(err, &requestLimit) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrStoreThrottled)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ThrottlingException" {
		return fmt.Errorf("%s: %w", op, apperrors.ErrStoreThrottled)
	}

	return fmt.Errorf("%s: %w", op, apperrors.ErrStoreUnavailable)
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
