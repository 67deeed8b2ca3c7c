package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundhaus/locale-service/config"
	"github.com/soundhaus/locale-service/internal/domain/model"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	cfg := config.Config{}
	cfg.Database.Enabled = false

	db := InitializeDatabase(cfg)

	require.NotNil(t, db)
	assert.Nil(t, db.Mongo)
	assert.Nil(t, db.Bundles)
	assert.Nil(t, db.Events)
	assert.Nil(t, db.Reporter)

	// Reporting is a no-op service, never nil, so callers can record
	// unconditionally.
	require.NotNil(t, db.Reporting)
	assert.NoError(t, db.Reporting.Record(context.Background(), model.NewEvent(model.EventMissingKey)))
}

func TestInitializeDatabase_InvalidURI(t *testing.T) {
	cfg := config.Config{}
	cfg.Database.Enabled = true
	cfg.Database.URI = "://not-a-uri"

	db := InitializeDatabase(cfg)

	require.NotNil(t, db)
	assert.Nil(t, db.Mongo)
	assert.NotNil(t, db.Reporting)
}
