package container_test

import (
	"github.com/pkg/errors"

	"github.com/km-arc/go-container/framework/container"
)

// Shared test fixtures: a tiny movie-casting object graph.

// Actor is the interface-typed dependency used to exercise transitive
// resolution.
type Actor interface {
	Name() string
}

// LeadActor is the concrete Actor behind the alias.
type LeadActor struct {
	name string
}

func NewLeadActor() *LeadActor {
	return &LeadActor{name: "Pacino"}
}

func (a *LeadActor) Name() string { return a.name }

// Movie depends on an Actor and exposes setters for definition tests.
type Movie struct {
	Lead    Actor
	Title   string
	Actress string
}

func NewMovie(lead Actor) *Movie { return &Movie{Lead: lead} }

func (m *Movie) SetTitle(title string) { m.Title = title }
func (m *Movie) SetActress()           { m.Actress = "Venora" }
func (m *Movie) SetLead(lead Actor)    { m.Lead = lead }

// Scoreboard has no constructor: bare construction only.
type Scoreboard struct {
	Points int
}

// Greeter has a required untyped parameter.
type Greeter struct {
	Greeting string
	Names    []string
}

func NewGreeter(greeting string, names ...string) *Greeter {
	return &Greeter{Greeting: greeting, Names: names}
}

var errProjector = errors.New("projector is broken")

// NewBrokenProjector always fails, for constructor-error propagation tests.
type Projector struct{}

func NewBrokenProjector() (*Projector, error) { return nil, errProjector }

// Keys used across the test files.
var (
	actorKey      = container.TypeKey((*Actor)(nil))
	leadActorKey  = container.TypeKey((*LeadActor)(nil))
	movieKey      = container.TypeKey((*Movie)(nil))
	scoreboardKey = container.TypeKey((*Scoreboard)(nil))
	greeterKey    = container.TypeKey((*Greeter)(nil))
	projectorKey  = container.TypeKey((*Projector)(nil))
)

// newStudio builds a container with the fixture types registered and the
// Actor interface aliased to the concrete LeadActor.
func newStudio() *container.Container {
	c := container.New()
	c.RegisterConstructor(leadActorKey, NewLeadActor)
	c.RegisterConstructor(movieKey, NewMovie)
	c.RegisterConstructor(greeterKey, NewGreeter)
	c.RegisterConstructor(projectorKey, NewBrokenProjector)
	c.RegisterType(scoreboardKey, (*Scoreboard)(nil))
	c.Alias(leadActorKey, actorKey)
	return c
}
