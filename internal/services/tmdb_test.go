package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/movie-ratings/internal/facades"
	"github.com/sbilibin2017/movie-ratings/internal/models"
	"github.com/sbilibin2017/movie-ratings/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTMDBService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := services.NewMockTMDBClient(ctrl)
	cache := services.NewMockTMDBCache(ctrl)
	svc := services.NewTMDBService(client, cache)

	var results []models.TMDBSearchResult
	for i := range 15 {
		results = append(results, models.TMDBSearchResult{ID: i, Title: fmt.Sprintf("Alien %d", i)})
	}

	cache.EXPECT().GetSearch(gomock.Any(), "alien").Return(nil, errors.New("cache miss"))
	client.EXPECT().SearchMovies(gomock.Any(), "alien").Return(results, nil)
	cache.EXPECT().SetSearch(gomock.Any(), "alien", gomock.Len(services.MaxSearchResults)).Return(nil)

	got, err := svc.Search(context.Background(), " alien ")
	require.NoError(t, err)
	assert.Len(t, got, services.MaxSearchResults)
	assert.Equal(t, "Alien 0", got[0].Title)
}

func TestTMDBService_SearchCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := services.NewMockTMDBCache(ctrl)
	svc := services.NewTMDBService(services.NewMockTMDBClient(ctrl), cache)

	cache.EXPECT().GetSearch(gomock.Any(), "heat").Return([]models.TMDBSearchResult{{ID: 949, Title: "Heat"}}, nil)

	got, err := svc.Search(context.Background(), "heat")
	require.NoError(t, err)
	assert.Equal(t, 949, got[0].ID)
}

func TestTMDBService_SearchErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := services.NewMockTMDBClient(ctrl)
	svc := services.NewTMDBService(client, nil)

	_, err := svc.Search(context.Background(), "  ")
	assert.ErrorIs(t, err, services.ErrSearchQueryRequired)

	client.EXPECT().SearchMovies(gomock.Any(), "heat").Return(nil, facades.ErrTMDBNotConfigured)
	_, err = svc.Search(context.Background(), "heat")
	assert.ErrorIs(t, err, services.ErrTMDBNotConfigured)

	client.EXPECT().SearchMovies(gomock.Any(), "nothing").Return(nil, nil)
	got, err := svc.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTMDBService_Movie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := services.NewMockTMDBClient(ctrl)
	cache := services.NewMockTMDBCache(ctrl)
	svc := services.NewTMDBService(client, cache)

	poster := "/poster.jpg"
	runtime := 117
	cache.EXPECT().GetMovie(gomock.Any(), 78).Return(nil, errors.New("cache miss"))
	client.EXPECT().GetMovie(gomock.Any(), 78).Return(&models.TMDBMovie{
		ID: 78, Title: "Blade Runner", ReleaseDate: "1982-06-25", PosterPath: &poster, Runtime: &runtime, Overview: "Replicants.",
	}, nil)
	client.EXPECT().GetCredits(gomock.Any(), 78).Return(&models.TMDBCredits{ID: 78, Crew: []models.TMDBCrewMember{
		{Name: "Ridley Scott", Job: "Director"},
		{Name: "Hampton Fancher", Job: "Screenplay"},
		{Name: "Second Person", Job: "Director"},
	}}, nil)
	cache.EXPECT().SetMovie(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	got, err := svc.Movie(context.Background(), 78)
	require.NoError(t, err)
	assert.Equal(t, "Blade Runner", got.Title)
	assert.Equal(t, "Ridley Scott, Second Person", got.Director)
	require.NotNil(t, got.ReleaseYear)
	assert.Equal(t, 1982, *got.ReleaseYear)
	require.NotNil(t, got.PosterURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", *got.PosterURL)
	assert.Equal(t, &runtime, got.Runtime)
}

func TestTMDBService_MovieWithoutOptionalData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := services.NewMockTMDBClient(ctrl)
	svc := services.NewTMDBService(client, nil)

	client.EXPECT().GetMovie(gomock.Any(), 5).Return(&models.TMDBMovie{ID: 5, Title: "Untitled"}, nil)
	client.EXPECT().GetCredits(gomock.Any(), 5).Return(&models.TMDBCredits{ID: 5}, nil)

	got, err := svc.Movie(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, got.Director)
	assert.Nil(t, got.ReleaseYear)
	assert.Nil(t, got.PosterURL)
}

func TestTMDBService_MovieNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := services.NewMockTMDBClient(ctrl)
	svc := services.NewTMDBService(client, nil)

	client.EXPECT().GetMovie(gomock.Any(), 1).Return(nil, fmt.Errorf("get movie: %w", facades.ErrTMDBNotFound))

	_, err := svc.Movie(context.Background(), 1)
	assert.ErrorIs(t, err, services.ErrExternalMovieNotFound)
}
