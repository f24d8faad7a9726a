package policy

import (
	"testing"

	"github.com/MKhiriev/bitwise-notes/models"
	"github.com/stretchr/testify/assert"
)

const (
	ownerID    = int64(1)
	granteeID  = int64(2)
	strangerID = int64(3)
)

func sampleNote(sharedWith ...int64) models.Note {
	return models.Note{
		OwnerID:       ownerID,
		OwnerEmail:    "owner@example.com",
		Title:         "Plan",
		Content:       "# Q1 goals",
		SharedWithIDs: sharedWith,
	}
}

func TestCanDelete(t *testing.T) {
	note := sampleNote(granteeID)

	assert.True(t, CanDelete(ownerID, note))
	assert.False(t, CanDelete(granteeID, note), "a grantee must not be able to delete")
	assert.False(t, CanDelete(strangerID, note))
}

func TestCanShare(t *testing.T) {
	note := sampleNote(granteeID)

	assert.True(t, CanShare(ownerID, note))
	assert.False(t, CanShare(granteeID, note), "read access must not grant share rights")
	assert.False(t, CanShare(strangerID, note))
}

func TestIsVisible(t *testing.T) {
	tests := []struct {
		name   string
		userID int64
		note   models.Note
		want   bool
	}{
		{name: "owner sees own note", userID: ownerID, note: sampleNote(), want: true},
		{name: "grantee sees shared note", userID: granteeID, note: sampleNote(granteeID), want: true},
		{name: "stranger sees nothing", userID: strangerID, note: sampleNote(granteeID), want: false},
		{name: "empty share set hides from non-owner", userID: granteeID, note: sampleNote(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsVisible(tt.userID, tt.note))
		})
	}
}

// TestIsVisible_MatchesInvariant checks the visibility predicate against its
// definition for every combination of user and share-set membership.
func TestIsVisible_MatchesInvariant(t *testing.T) {
	users := []int64{ownerID, granteeID, strangerID}
	notes := []models.Note{
		sampleNote(),
		sampleNote(granteeID),
		sampleNote(granteeID, strangerID),
	}

	for _, u := range users {
		for _, n := range notes {
			want := u == n.OwnerID || n.IsSharedWith(u)
			assert.Equal(t, want, IsVisible(u, n))
		}
	}
}
