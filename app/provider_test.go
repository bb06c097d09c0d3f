package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-container/app"
	fwapp "github.com/km-arc/go-container/framework/app"
	"github.com/km-arc/go-container/framework/container"
)

func newBootedApp() *fwapp.Application {
	application := fwapp.New("testdata/missing.env")
	application.Register(&app.CatalogServiceProvider{})
	application.Boot()
	return application
}

func TestCatalogProvider_SeedsMovies(t *testing.T) {
	application := newBootedApp()

	catalog := container.MustResolve[*app.Catalog](application.Container, "catalog")
	movies := catalog.All()
	require.Len(t, movies, 2)
	assert.Equal(t, "Heat", movies[0].Title)
	assert.Equal(t, 1995, movies[0].Year)
	assert.Equal(t, "The Insider", movies[1].Title)
}

func TestCatalogProvider_CatalogIsSingleton(t *testing.T) {
	application := newBootedApp()

	first := container.MustResolve[*app.Catalog](application.Container, "catalog")
	second := container.MustResolve[*app.Catalog](application.Container, app.CatalogKey)
	assert.Same(t, first, second)
}

func TestCatalogProvider_MovieGetsHeadlineActor(t *testing.T) {
	application := newBootedApp()

	built, err := application.Create(app.MovieKey)
	require.NoError(t, err)
	movie := built.(*app.Movie)
	assert.Equal(t, "Al Pacino", movie.Lead.Name())
}

func TestCatalogProvider_ActorSharedAcrossMovies(t *testing.T) {
	application := newBootedApp()

	catalog := container.MustResolve[*app.Catalog](application.Container, "catalog")
	movies := catalog.All()
	require.Len(t, movies, 2)
	assert.Same(t, movies[0].Lead, movies[1].Lead,
		"the Actor resolves through Get and is a JIT-bound singleton")
}

func TestCatalog_Find(t *testing.T) {
	application := newBootedApp()
	catalog := container.MustResolve[*app.Catalog](application.Container, "catalog")

	movie, ok := catalog.Find("Heat")
	require.True(t, ok)
	assert.Equal(t, 1995, movie.Year)

	_, ok = catalog.Find("Casino")
	assert.False(t, ok)
}
