package serviceimpl

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/domain/apperrors"
)

func TestPlanTaskListLimits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int32
	}{
		{"zero falls back to default", 0, DefaultPageLimit},
		{"negative falls back to default", -5, DefaultPageLimit},
		{"in range passes through", 25, 25},
		{"maximum passes through", MaxPageLimit, MaxPageLimit},
		{"over maximum is clamped", 5000, MaxPageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := planTaskList(listScope{OwnerID: "user-1"}, "", tt.limit, "", true)
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan.Limit)
		})
	}
}

func TestPlanTaskListPathSelection(t *testing.T) {
	tests := []struct {
		name          string
		scope         listScope
		useOwnerIndex bool
		wantIndex     bool
	}{
		{"scoped with index", listScope{OwnerID: "user-1"}, true, true},
		{"scoped without index", listScope{OwnerID: "user-1"}, false, false},
		{"unscoped with index", listScope{}, true, false},
		{"unscoped without index", listScope{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := planTaskList(tt.scope, "", 0, "", tt.useOwnerIndex)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, plan.UseIndex)
			assert.Equal(t, tt.scope.OwnerID, plan.OwnerID)
		})
	}
}

func TestListTokenRoundTrip(t *testing.T) {
	cursor := `{"id":"task-42"}`

	token := encodeListToken(cursor)
	require.NotEmpty(t, token)
	assert.NotEqual(t, cursor, token)

	decoded, err := decodeListToken(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)
}

func TestEncodeListTokenEmptyCursor(t *testing.T) {
	assert.Empty(t, encodeListToken(""))
}

func TestDecodeListTokenRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64url", "not valid base64 %%%"},
		{"decodes to non-JSON", base64.RawURLEncoding.EncodeToString([]byte("definitely not json"))},
		{"decodes to blank", base64.RawURLEncoding.EncodeToString([]byte("   "))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeListToken(tt.token)
			assert.ErrorIs(t, err, apperrors.ErrInvalidCursor)
		})
	}
}

func TestDecodeListTokenEmptyIsNoCursor(t *testing.T) {
	decoded, err := decodeListToken("")
	require.NoError(t, err)
	assert.Empty(t, decoded)
}
