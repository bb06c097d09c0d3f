package container

import (
	"fmt"
	"sync"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// factoryFunc builds a concrete value from the container.
type factoryFunc func(c *Container) (any, error)

// binding holds a registered factory and whether its result is shared.
type binding struct {
	factory factoryFunc
	shared  bool
}

// extender wraps an already-resolved instance with decorator logic.
type extender func(instance any, c *Container) any

// ── Creator ───────────────────────────────────────────────────────────────────

// Creator is what Set and Share accept: either a fixed value or a factory.
// Which one it is gets decided at registration time, never inferred later.
type Creator interface {
	factory() factoryFunc
}

type valueCreator struct{ v any }

func (vc valueCreator) factory() factoryFunc {
	v := vc.v
	return func(*Container) (any, error) { return v, nil }
}

// Value registers a fixed, pre-built value.
//
//	c.Share("config", container.Value(cfg))
func Value(v any) Creator { return valueCreator{v: v} }

type factoryCreator struct{ fn factoryFunc }

func (fc factoryCreator) factory() factoryFunc { return fc.fn }

// Factory registers a builder function. The container passes itself to the
// factory so it can pull further dependencies.
//
//	c.Share("catalog", container.Factory(func(c *container.Container) (any, error) {
//	    logger, err := container.Resolve[*slog.Logger](c, "logger")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return app.NewCatalog(logger), nil
//	}))
func Factory(fn func(c *Container) (any, error)) Creator {
	return factoryCreator{fn: fn}
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container — mirrors Laravel's Illuminate\Container\Container.
//
// It supports:
//   - Set / Share / Instance / Alias / SetDefinition
//   - Get / Resolve (generic)
//   - Reflective construction of registered types (Create / CreateFromDefinition)
//   - Just-in-time bindings: Get on an unbound key of a registered type
//     auto-binds it as a shared reflective constructor
//   - Tags (group multiple abstractions under one tag)
//   - Extend (decorate / wrap resolved instances)
//
// The container never disposes of cached instances; once resolved they live
// until Forget or Flush, and tearing them down is the caller's job.
type Container struct {
	mu sync.RWMutex

	// abstract → binding
	bindings map[string]*binding

	// abstract → resolved shared instance
	instances map[string]any

	// alias → abstract (canonical key); looked up exactly one hop
	aliases map[string]string

	// abstract → extender funcs
	extenders map[string][]extender

	// tag → []abstract
	tags map[string][]string

	// type name → reflective construction metadata
	types map[string]*typeEntry
}

// New creates an empty container.
func New() *Container {
	c := &Container{
		bindings:  make(map[string]*binding),
		instances: make(map[string]any),
		aliases:   make(map[string]string),
		extenders: make(map[string][]extender),
		tags:      make(map[string][]string),
		types:     make(map[string]*typeEntry),
	}
	// Bind the container to itself — like Laravel's $app->instance()
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Set registers a binding under key, replacing any prior one (last write
// wins). A shared binding is resolved once and cached; a non-shared binding
// runs its factory on every Get.
//
//	// Laravel: $app->bind(UserRepository::class, fn($app) => new EloquentUserRepository($app))
//	c.Set("UserRepository", container.Factory(newUserRepository), false)
func (c *Container) Set(key string, creator Creator, shared bool) *Container {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bind(key, creator.factory(), shared)
	return c
}

// Share registers a shared (singleton) binding.
//
//	// Laravel: $app->singleton(Cache::class, fn($app) => new RedisCache($app))
//	c.Share("cache", container.Factory(newRedisCache))
func (c *Container) Share(key string, creator Creator) *Container {
	return c.Set(key, creator, true)
}

// Instance registers a pre-built value as an already-resolved shared binding.
//
//	// Laravel: $app->instance(Config::class, $config)
//	c.Instance("config", myConfig)
func (c *Container) Instance(key string, instance any) *Container {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := c.canonical(key)
	delete(c.bindings, k)
	c.instances[k] = instance
	return c
}

// SetDefinition registers a binding that builds its value from def via
// CreateFromDefinition. The definition is returned so the caller can keep
// mutating it (add arguments, add method calls) before first resolution.
//
//	def := c.SetDefinition("movie", container.NewDefinition(movieKey), true)
//	def.AddMethodCall("SetTitle", "Heat")
func (c *Container) SetDefinition(key string, def *Definition, shared bool) *Definition {
	c.Set(key, Factory(func(c *Container) (any, error) {
		return c.CreateFromDefinition(def)
	}), shared)
	return def
}

// bind is the internal registration helper (must hold mu.Lock).
func (c *Container) bind(key string, factory factoryFunc, shared bool) {
	k := c.canonical(key)

	// Drop any existing shared instance so it's rebuilt with the new factory
	delete(c.instances, k)

	c.bindings[k] = &binding{factory: factory, shared: shared}
}

// Alias registers an alternative name for an abstract. Lookup indirection is
// exactly one hop: an alias pointing at another alias does not get chased.
//
//	// Laravel: $app->alias(Cache::class, 'cache')
//	c.Alias("log/slog.Logger", "logger")
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if abstract == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", abstract))
	}
	c.aliases[alias] = abstract
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get resolves key to an instance.
//
// The key is first resolved through the alias map (one hop). A cached shared
// instance is returned as-is. If no binding exists, the key is treated as a
// type name and a shared reflective binding is registered on the spot — so
// repeated Gets on an unbound type key return one and the same instance after
// the first call. Errors from user factories propagate unwrapped.
//
//	// Laravel: $app->make(UserRepository::class)
//	repo, err := c.Get("UserRepository")
func (c *Container) Get(key string) (any, error) {
	c.mu.RLock()
	k := c.canonical(key)
	if inst, ok := c.instances[k]; ok {
		c.mu.RUnlock()
		return inst, nil
	}
	b, bound := c.bindings[k]
	c.mu.RUnlock()

	if !bound {
		b = c.bindJIT(k)
	}
	return c.runFactory(k, b)
}

// MustGet is Get but panics on failure.
func (c *Container) MustGet(key string) any {
	inst, err := c.Get(key)
	if err != nil {
		panic(fmt.Sprintf("container: %+v", err))
	}
	return inst
}

// bindJIT registers the just-in-time binding for an unbound key: a shared
// factory that reflectively constructs the key as a type name.
func (c *Container) bindJIT(key string) *binding {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Someone may have bound it while we upgraded the lock
	if b, ok := c.bindings[key]; ok {
		return b
	}
	b := &binding{
		factory: func(c *Container) (any, error) { return c.Create(key) },
		shared:  true,
	}
	c.bindings[key] = b
	return b
}

// runFactory executes a binding's factory, optionally caching the result.
func (c *Container) runFactory(key string, b *binding) (any, error) {
	instance, err := b.factory(c)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	exts := c.extenders[key]
	c.mu.RUnlock()
	for _, ext := range exts {
		instance = ext(instance, c)
	}

	if b.shared {
		c.mu.Lock()
		// First resolution wins when two goroutines race here
		if cached, ok := c.instances[key]; ok {
			instance = cached
		} else {
			c.instances[key] = instance
		}
		c.mu.Unlock()
	}
	return instance, nil
}

// ── Extend ────────────────────────────────────────────────────────────────────

// Extend decorates the resolved instance of an abstract. Extenders run after
// the factory, before the result is cached.
//
//	// Laravel: $app->extend(Logger::class, fn($logger, $app) => new TimestampLogger($logger))
//	c.Extend("logger", func(instance any, c *container.Container) any {
//	    return instance.(*slog.Logger).With("app", "demo")
//	})
func (c *Container) Extend(key string, fn extender) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := c.canonical(key)
	c.extenders[k] = append(c.extenders[k], fn)

	// Already-resolved shared instances get re-wrapped in place
	if inst, ok := c.instances[k]; ok {
		c.instances[k] = fn(inst, c)
	}
}

// ── Tags ──────────────────────────────────────────────────────────────────────

// Tag associates multiple abstracts under a named group.
//
//	// Laravel: $app->tag([CpuReport::class, MemoryReport::class], 'reports')
//	c.Tag([]string{"CpuReport", "MemoryReport"}, "reports")
func (c *Container) Tag(keys []string, tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags[tag] = append(c.tags[tag], keys...)
}

// Tagged resolves all abstracts registered under a tag, in tagging order.
//
//	// Laravel: $app->tagged('reports')
//	reports, err := c.Tagged("reports")
func (c *Container) Tagged(tag string) ([]any, error) {
	c.mu.RLock()
	keys := c.tags[tag]
	c.mu.RUnlock()

	result := make([]any, 0, len(keys))
	for _, key := range keys {
		inst, err := c.Get(key)
		if err != nil {
			return nil, err
		}
		result = append(result, inst)
	}
	return result, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound returns true if key has a binding or a resolved instance.
//
//	// Laravel: $app->bound(UserRepository::class)
func (c *Container) Bound(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	k := c.canonical(key)
	_, hasBinding := c.bindings[k]
	_, hasInstance := c.instances[k]
	return hasBinding || hasInstance
}

// Resolved returns true if key has been resolved to a shared instance.
//
//	// Laravel: $app->resolved(Cache::class)
func (c *Container) Resolved(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[c.canonical(key)]
	return ok
}

// Forget removes the binding and any cached instance for key.
//
//	// Laravel: $app->forgetInstance(Cache::class)
func (c *Container) Forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := c.canonical(key)
	delete(c.bindings, k)
	delete(c.instances, k)
}

// Flush resets the entire container, type registry included.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings = make(map[string]*binding)
	c.instances = make(map[string]any)
	c.aliases = make(map[string]string)
	c.extenders = make(map[string][]extender)
	c.tags = make(map[string][]string)
	c.types = make(map[string]*typeEntry)
}

// Bindings returns all registered abstract keys (for debugging).
func (c *Container) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.bindings)+len(c.instances))
	for k := range c.bindings {
		out = append(out, k)
	}
	for k := range c.instances {
		if _, already := c.bindings[k]; !already {
			out = append(out, k)
		}
	}
	return out
}

// canonical resolves an alias to its target key — one hop only (must hold
// at least mu.RLock).
func (c *Container) canonical(key string) string {
	if target, ok := c.aliases[key]; ok {
		return target
	}
	return key
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve calls Get and type-asserts the result.
//
//	// Instead of: db := c.MustGet("db").(*sql.DB)
//	// Write:      db, err := container.Resolve[*sql.DB](c, "db")
func Resolve[T any](c *Container, key string) (T, error) {
	var zero T
	instance, err := c.Get(key)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, newErrorf(key, "[%s] resolved to %T, want %T", key, instance, zero)
	}
	return typed, nil
}

// MustResolve is Resolve but panics on failure.
func MustResolve[T any](c *Container, key string) T {
	typed, err := Resolve[T](c, key)
	if err != nil {
		panic(fmt.Sprintf("container: %+v", err))
	}
	return typed
}
