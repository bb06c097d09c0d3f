// Package app is the demo application: a small movie catalog whose object
// graph is wired entirely through the container.
package app

import (
	"log/slog"
	"sync"
)

// Actor is the typed dependency a Movie's constructor asks for; the
// container resolves it through the alias registered by the provider.
type Actor interface {
	Name() string
}

// HeadlineActor is the concrete Actor the demo binds.
type HeadlineActor struct {
	name string
}

func NewHeadlineActor() *HeadlineActor {
	return &HeadlineActor{name: "Al Pacino"}
}

func (a *HeadlineActor) Name() string { return a.name }

// Movie is built reflectively; its setters are driven by definitions.
type Movie struct {
	Title string
	Year  int
	Lead  Actor
}

func NewMovie(lead Actor) *Movie {
	return &Movie{Lead: lead}
}

func (m *Movie) SetTitle(title string) { m.Title = title }
func (m *Movie) SetYear(year int)      { m.Year = year }

// Catalog holds the movies served over HTTP.
type Catalog struct {
	mu     sync.RWMutex
	logger *slog.Logger
	movies []*Movie
}

func NewCatalog(logger *slog.Logger) *Catalog {
	return &Catalog{logger: logger}
}

// Add appends a movie to the catalog.
func (c *Catalog) Add(m *Movie) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movies = append(c.movies, m)
	c.logger.Info("movie added", "title", m.Title, "lead", m.Lead.Name())
}

// All returns the movies in insertion order.
func (c *Catalog) All() []*Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Find looks a movie up by title.
func (c *Catalog) Find(title string) (*Movie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.movies {
		if m.Title == title {
			return m, true
		}
	}
	return nil, false
}
