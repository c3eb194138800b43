package serviceimpl

import (
	"encoding/base64"
	"encoding/json"

	"taskboard/domain/apperrors"
)

// Page size bounds for listings.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// listPlan is one resolved retrieval strategy for a listing request. The
// indexed path is only worth taking when results are bounded to a single
// owner; unscoped listings and deployments without the owner index fall back
// to a filtered scan, which returns the same records at a higher cost.
type listPlan struct {
	UseIndex bool
	OwnerID  string
	Status   string
	Limit    int32
	Cursor   string
}

// planTaskList turns the caller's scope, filter and pagination inputs into a
// plan. A malformed continuation token is a client error, reported as
// apperrors.ErrInvalidCursor before any store call happens.
func planTaskList(scope listScope, status string, limit int, token string, useOwnerIndex bool) (listPlan, error) {
	cursor, err := decodeListToken(token)
	if err != nil {
		return listPlan{}, err
	}

	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return listPlan{
		UseIndex: !scope.Unscoped() && useOwnerIndex,
		OwnerID:  scope.OwnerID,
		Status:   status,
		Limit:    int32(limit),
		Cursor:   cursor,
	}, nil
}

// encodeListToken wraps the adapter's resume position into the opaque token
// handed to clients. An exhausted traversal produces no token.
func encodeListToken(cursor string) string {
	if cursor == "" {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString([]byte(cursor))
}

// decodeListToken reverses encodeListToken. The decoded value must at least
// be valid JSON; the adapter checks the rest.
func decodeListToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || !json.Valid(raw) {
		return "", apperrors.ErrInvalidCursor
	}
	return string(raw), nil
}
