package app

import (
	"github.com/km-arc/go-container/framework/container"
)

// Type keys for the demo graph.
var (
	ActorKey   = container.TypeKey((*Actor)(nil))
	LeadKey    = container.TypeKey((*HeadlineActor)(nil))
	MovieKey   = container.TypeKey((*Movie)(nil))
	CatalogKey = container.TypeKey((*Catalog)(nil))
)

// CatalogServiceProvider wires the movie catalog into the container:
// constructors for the whole graph, the Actor interface aliased to its
// concrete type, and a few movies seeded through definitions at boot.
type CatalogServiceProvider struct {
	container.BaseProvider
}

func (p *CatalogServiceProvider) Register(app *container.Container) {
	app.RegisterConstructor(LeadKey, NewHeadlineActor)
	app.RegisterConstructor(MovieKey, NewMovie)
	app.RegisterConstructor(CatalogKey, NewCatalog)

	app.Alias(LeadKey, ActorKey)
	app.Alias(CatalogKey, "catalog")
}

func (p *CatalogServiceProvider) Boot(app *container.Container) {
	catalog := container.MustResolve[*Catalog](app, "catalog")

	for _, seed := range []struct {
		title string
		year  int
	}{
		{"Heat", 1995},
		{"The Insider", 1999},
	} {
		def := container.NewDefinition(MovieKey).
			AddMethodCall("SetTitle", seed.title).
			AddMethodCall("SetYear", seed.year)

		movie, err := app.CreateFromDefinition(def)
		if err != nil {
			// Only reachable if the registrations above are broken
			catalog.logger.Error("seeding failed", "title", seed.title, "err", err)
			continue
		}
		catalog.Add(movie.(*Movie))
	}
}
