package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/repository"
)

func TestVenueRepoCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewVenueRepo(newTestDB(t))

	v := theHall()
	v.SeekingTalent = true // derived from the description on write
	require.NoError(t, repo.Create(ctx, v))
	require.NotZero(t, v.ID)

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Hall", got.Name)
	assert.Equal(t, model.Genres{"Jazz", "Folk"}, got.Genres)
	assert.False(t, got.SeekingTalent)
	assert.Empty(t, got.Website)

	_, err = repo.GetByID(ctx, v.ID+100)
	assert.ErrorIs(t, err, repository.ErrVenueNotFound)
}

func TestVenueRepoListOrdersByArea(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewVenueRepo(newTestDB(t))

	for _, spec := range []struct{ name, city, state string }{
		{"Park Square", "New York", "NY"},
		{"The Hall", "San Francisco", "CA"},
		{"Dueling Pianos", "New York", "NY"},
		{"Sunset", "Oakland", "CA"},
	} {
		v := theHall()
		v.Name, v.City, v.State = spec.name, spec.city, spec.state
		require.NoError(t, repo.Create(ctx, v))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(got))
	for _, v := range got {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"Sunset", "The Hall", "Park Square", "Dueling Pianos"}, names)

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Sunset", recent[0].Name)
	assert.Equal(t, "Dueling Pianos", recent[1].Name)
}

func TestVenueRepoSearch(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewVenueRepo(newTestDB(t))

	for _, name := range []string{"The Musical Hop", "Park Square Live Music & Coffee", "The Dueling Pianos Bar", "100% Jazz", "ÉCOLE Hall"} {
		v := theHall()
		v.Name = name
		require.NoError(t, repo.Create(ctx, v))
	}

	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"The Musical Hop", "Park Square Live Music & Coffee", "The Dueling Pianos Bar", "100% Jazz", "ÉCOLE Hall"}},
		{"Hop", []string{"The Musical Hop"}},
		{"music", []string{"The Musical Hop", "Park Square Live Music & Coffee"}},
		{"MUSIC", []string{"The Musical Hop", "Park Square Live Music & Coffee"}},
		{"%", []string{"100% Jazz"}},
		{"ÉCOLE", []string{"ÉCOLE Hall"}},
		{"école", []string{"ÉCOLE Hall"}},
		{"École h", []string{"ÉCOLE Hall"}},
		{"_", nil},
		{"nothing", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.term)
			require.NoError(t, err)
			var names []string
			for _, v := range got {
				names = append(names, v.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestVenueRepoUpdate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewVenueRepo(newTestDB(t))

	v := theHall()
	require.NoError(t, repo.Create(ctx, v))

	v.Name = "The Big Hall"
	v.SeekingDescription = "Looking for local jazz acts"
	require.NoError(t, repo.Update(ctx, v))

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Big Hall", got.Name)
	assert.True(t, got.SeekingTalent)

	// unchanged rows are still an update, not a miss
	require.NoError(t, repo.Update(ctx, v))

	missing := theHall()
	missing.ID = v.ID + 1
	assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrVenueNotFound)
}

func TestVenueRepoDeleteCascadesShows(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	shows := repository.NewShowRepo(db)

	v := theHall()
	require.NoError(t, venues.Create(ctx, v))
	other := theHall()
	other.Name = "Other Place"
	require.NoError(t, venues.Create(ctx, other))
	a := gunsNPetals()
	require.NoError(t, artists.Create(ctx, a))

	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	require.NoError(t, shows.Create(ctx, &model.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: start}))
	require.NoError(t, shows.Create(ctx, &model.Show{VenueID: other.ID, ArtistID: a.ID, StartTime: start}))

	require.NoError(t, venues.Delete(ctx, v.ID))

	_, err := venues.GetByID(ctx, v.ID)
	assert.ErrorIs(t, err, repository.ErrVenueNotFound)
	all, err := shows.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, other.ID, all[0].VenueID)

	assert.ErrorIs(t, venues.Delete(ctx, v.ID), repository.ErrVenueNotFound)
}
