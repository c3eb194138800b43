package serviceimpl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard/domain/models"
)

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name    string
		subject models.Subject
		ownerID string
		want    bool
	}{
		{"owner on own record", models.Subject{ID: "user-1"}, "user-1", true},
		{"stranger on owned record", models.Subject{ID: "user-2"}, "user-1", false},
		{"anonymous on owned record", models.AnonymousSubject(), "user-1", false},
		{"anonymous on anonymous record", models.AnonymousSubject(), models.AnonymousOwner, true},
		{"admin on any record", models.Subject{ID: "admin", Admin: true}, "user-1", true},
		{"anyone on ownerless record", models.Subject{ID: "user-2"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &models.Task{ID: "t1", OwnerID: tt.ownerID}
			assert.Equal(t, tt.want, canAccess(tt.subject, task))
		})
	}
}

func TestListScopeFor(t *testing.T) {
	adminScope := listScopeFor(models.Subject{ID: "admin", Admin: true})
	assert.True(t, adminScope.Unscoped())

	userScope := listScopeFor(models.Subject{ID: "user-1"})
	assert.False(t, userScope.Unscoped())
	assert.Equal(t, "user-1", userScope.OwnerID)

	anonScope := listScopeFor(models.AnonymousSubject())
	assert.False(t, anonScope.Unscoped())
	assert.Equal(t, models.AnonymousOwner, anonScope.OwnerID)
}
