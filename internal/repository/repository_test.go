package repository_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, database.Options{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := database.NewMigrator(db)
	require.NoError(t, err)
	_, err = m.Up(ctx)
	require.NoError(t, err)
	return db
}

func theHall() *model.Venue {
	return &model.Venue{
		Name:         "The Hall",
		City:         "San Francisco",
		State:        "CA",
		Address:      "1 Main St",
		Phone:        "123-123-1234",
		Genres:       model.Genres{"Jazz", "Folk"},
		FacebookLink: "https://www.facebook.com/thehall",
	}
}

func gunsNPetals() *model.Artist {
	return &model.Artist{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             model.Genres{"Rock n Roll"},
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	}
}
