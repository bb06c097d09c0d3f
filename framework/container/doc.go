// Package container provides a Laravel-compatible IoC (Inversion of Control)
// container with reflective auto-wiring and a Service Provider system for Go.
//
// # Overview
//
// The container maps string keys to construction recipes and resolves object
// graphs on demand. A recipe is either a fixed value, a factory function, a
// declarative Definition, or — for types in the registry — a reflectively
// invoked constructor whose parameters are resolved recursively.
//
// Everything is plain in-process bookkeeping over a handful of maps; the maps
// are mutex-guarded because Get lazily writes the binding and instance tables.
// The container never tears down what it built: cached instances live until
// Forget or Flush, and disposing of them is the caller's responsibility.
//
// # Bindings
//
//	// Transient — factory runs on every Get()
//	// Laravel: $app->bind(Foo::class, fn($app) => new Foo)
//	c.Set("Foo", container.Factory(func(c *container.Container) (any, error) {
//	    return &Foo{}, nil
//	}), false)
//
//	// Shared — created once, reused
//	// Laravel: $app->singleton(Cache::class, fn($app) => new RedisCache)
//	c.Share("cache", container.Factory(newCache))
//
//	// Fixed value
//	c.Set("answer", container.Value(42), false)
//
//	// Pre-built singleton
//	// Laravel: $app->instance(Config::class, $config)
//	c.Instance("config", cfg)
//
//	// Alias — one hop, never chained
//	// Laravel: $app->alias(Cache::class, 'cache')
//	c.Alias("log/slog.Logger", "logger")
//
// # Resolving
//
//	// Untyped
//	raw, err := c.Get("cache")
//
//	// Generic (preferred — no type assertion required)
//	cache, err := container.Resolve[*RedisCache](c, "cache")
//
// # Reflective construction
//
// Go has no global class table, so constructible types are registered
// explicitly, keyed by their package-qualified name:
//
//	actorKey := container.TypeKey((*LeadActor)(nil))
//	movieKey := container.TypeKey((*Movie)(nil))
//
//	c.RegisterConstructor(actorKey, NewLeadActor)
//	c.RegisterConstructor(movieKey, NewMovie) // func NewMovie(a Actor) *Movie
//	c.Alias(actorKey, container.TypeKey((*Actor)(nil)))
//
//	movie, err := c.Get(movieKey) // NewMovie's Actor parameter resolved via Get
//
// Constructor parameters are resolved in a fixed precedence: an explicit
// positional argument, a Dependency attached to the parameter's schema,
// type-based lookup through Get for named interface/struct parameters, the
// schema's declared default, and otherwise an error naming the parameter.
//
// Get on a key with no binding registers a shared reflective binding on the
// spot (a just-in-time binding). This is deliberate: after the first Get, an
// unbound type key behaves exactly like one registered with Share.
//
// # Definitions
//
//	def := container.NewDefinition(movieKey).
//	    AddMethodCall("SetTitle", "Heat")
//	movie, err := c.CreateFromDefinition(def)
//
//	// or bound into the table:
//	c.SetDefinition("featured", def, true)
//
// # Tags
//
//	// Laravel: $app->tag([CpuReport::class, MemReport::class], 'reports')
//	c.Tag([]string{"CpuReport", "MemReport"}, "reports")
//	reports, err := c.Tagged("reports")
//
// # Extend / Decorate
//
//	// Laravel: $app->extend(Logger::class, fn($logger, $app) => new TimestampLogger($logger))
//	c.Extend("logger", func(instance any, c *container.Container) any {
//	    return instance.(*slog.Logger).With("component", "http")
//	})
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) {
//	    app.Share("mailer", container.Factory(newMailer))
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	registry.Boot()
//
// Deferred providers register their bindings only when one of their declared
// abstracts is first resolved.
package container
