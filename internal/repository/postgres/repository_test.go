package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRepositories(t *testing.T) {
	db := &Connection{}

	plants := NewPlantRepository(db)
	assert.NotNil(t, plants)
	assert.Equal(t, db, plants.db)

	profiles := NewProfileRepository(db)
	assert.NotNil(t, profiles)
	assert.Equal(t, db, profiles.db)

	tokens := NewRefreshTokenRepository(db)
	assert.NotNil(t, tokens)
	assert.Equal(t, db, tokens.db)

	listener := NewChangeListener(db, PlantsChannel)
	assert.Equal(t, "plants_changed", listener.channel)
	assert.NoError(t, listener.Close())
}

func TestConnection_PingWithoutPool(t *testing.T) {
	db := &Connection{}
	assert.ErrorIs(t, db.Ping(t.Context()), errNoPool)
	assert.ErrorIs(t, db.Close(), errNoPool)
}
