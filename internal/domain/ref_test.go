package domain

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefUnmarshalBareID(t *testing.T) {
	var ref Ref[User]
	require.NoError(t, json.Unmarshal([]byte(`"u42"`), &ref))

	assert.Equal(t, "u42", ref.ID())
	assert.False(t, ref.IsPopulated())

	_, ok := ref.Value()
	assert.False(t, ok)
}

func TestRefUnmarshalPopulated(t *testing.T) {
	raw := []byte(`{"_id":"u42","name":"Ivan","email":"ivan@example.com"}`)

	var ref Ref[User]
	require.NoError(t, json.Unmarshal(raw, &ref))

	assert.Equal(t, "u42", ref.ID())
	require.True(t, ref.IsPopulated())

	user, ok := ref.Value()
	require.True(t, ok)
	assert.Equal(t, "Ivan", user.Name)
}

func TestRefUnmarshalNull(t *testing.T) {
	var ref Ref[User]
	require.NoError(t, json.Unmarshal([]byte(`null`), &ref))
	assert.True(t, ref.IsZero())
}

func TestRefMarshalRoundTrip(t *testing.T) {
	idOnly := NewRef[User]("u1")
	raw, err := json.Marshal(idOnly)
	require.NoError(t, err)
	assert.JSONEq(t, `"u1"`, string(raw))

	populated := NewPopulatedRef(User{ID: "u2", Name: "Olga"})
	raw, err = json.Marshal(populated)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"_id":"u2"`)
}

// TestResolveRef: заполненная ссылка не ходит в fetch, голый id - ходит.
func TestResolveRef(t *testing.T) {
	fetchCalls := 0
	fetch := func(_ context.Context, id string) (User, error) {
		fetchCalls++
		return User{ID: id, Name: "fetched"}, nil
	}

	populated := NewPopulatedRef(User{ID: "u1", Name: "local"})
	user, err := ResolveRef(t.Context(), populated, fetch)
	require.NoError(t, err)
	assert.Equal(t, "local", user.Name)
	assert.Zero(t, fetchCalls)

	bare := NewRef[User]("u2")
	user, err = ResolveRef(t.Context(), bare, fetch)
	require.NoError(t, err)
	assert.Equal(t, "fetched", user.Name)
	assert.Equal(t, 1, fetchCalls)
}

// TestMembershipUnmarshalMixedRefs: API может отдать часть ссылок голыми
// идентификаторами, часть - заполненными объектами, в одном документе.
func TestMembershipUnmarshalMixedRefs(t *testing.T) {
	raw := []byte(`{
		"_id": "m1",
		"user": "u7",
		"plan": {"_id": "p1", "name": "Gold", "price": "4990", "durationDays": 90},
		"gym": {"_id": "g3", "name": "Iron Temple", "city": "Kazan"},
		"startDate": "2025-01-01T00:00:00Z",
		"endDate": "2025-04-01T00:00:00Z",
		"status": "active"
	}`)

	var m Membership
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.Equal(t, "u7", m.User.ID())
	assert.False(t, m.User.IsPopulated())

	plan, ok := m.Plan.Value()
	require.True(t, ok)
	assert.Equal(t, "Gold", plan.Name)
	assert.Equal(t, 90, plan.DurationDays)

	assert.Equal(t, "g3", m.Gym.ID())
	assert.Equal(t, MembershipStatusActive, m.Status)
}
