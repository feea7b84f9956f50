package state

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengarden/greengarden-server/internal/model"
)

func TestSession_Observe(t *testing.T) {
	s := NewSession()

	var seen []*model.User
	unsubscribe := s.Observe(func(u *model.User) { seen = append(seen, u) })

	require.Len(t, seen, 1)
	assert.Nil(t, seen[0])

	user := model.User{ID: uuid.New(), Username: "ann"}
	s.Set(user)

	got, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, user, got)

	s.Clear()
	_, ok = s.Current()
	assert.False(t, ok)

	unsubscribe()
	s.Set(user)

	require.Len(t, seen, 3)
	assert.Equal(t, "ann", seen[1].Username)
	assert.Nil(t, seen[2])
}

func TestSession_ObserverGetsCopy(t *testing.T) {
	s := NewSession()
	s.Set(model.User{Username: "ann"})

	s.Observe(func(u *model.User) {
		if u != nil {
			u.Username = "changed"
		}
	})

	got, _ := s.Current()
	assert.Equal(t, "ann", got.Username)
}
