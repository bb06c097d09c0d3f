package container

// Dependency is a self-describing argument wrapper: wherever a constructor
// or method argument implements it, the container uses the wrapped value
// instead of the argument itself, bypassing type-based lookup. A Dependency
// can also be attached to a Param to force a value for that position.
type Dependency interface {
	Dependency() any
}

// Dep wraps a concrete value as a Dependency.
//
//	def := container.NewDefinition(movieKey, container.Dep(stuntDouble))
func Dep(v any) Dependency { return dep{v: v} }

type dep struct{ v any }

func (d dep) Dependency() any { return d.v }
