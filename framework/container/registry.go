package container

import (
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// Go has no class table to reflect over, so reflective construction works
// against an explicit type registry: each constructible type is registered
// under a string key together with either a constructor function (whose
// parameters are introspected and resolved) or a bare struct type.

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// typeEntry describes how to reflectively construct a registered type.
type typeEntry struct {
	name   string
	typ    reflect.Type  // concrete struct type, for bare construction
	ctor   reflect.Value // constructor func; zero when none was declared
	params []Param       // optional per-parameter schema, by position
}

// Param is registration-time metadata for one constructor parameter. It
// stands in for the parameter name, default value, and forced dependency
// that reflection alone cannot recover from a Go func signature.
type Param struct {
	// Name is used in error messages; falls back to the position when empty.
	Name string

	// Dep, when non-nil, forces the resolved value for this parameter.
	Dep Dependency

	// Default is used when the parameter cannot be resolved otherwise.
	// HasDefault distinguishes "default is nil" from "no default".
	Default    any
	HasDefault bool
}

// DefaultParam builds a Param carrying a default value.
func DefaultParam(name string, def any) Param {
	return Param{Name: name, Default: def, HasDefault: true}
}

// ── Type registration ─────────────────────────────────────────────────────────

// RegisterType registers a struct type for bare construction: Create returns
// a pointer to a fresh zero value, no constructor involved. The prototype may
// be a value or a (possibly nil) pointer.
//
//	c.RegisterType(container.TypeKey((*Scoreboard)(nil)), (*Scoreboard)(nil))
func (c *Container) RegisterType(name string, prototype any) *Container {
	t := reflect.TypeOf(prototype)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		panic("container: RegisterType prototype must be a struct or struct pointer")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.types[name] = &typeEntry{name: name, typ: t}
	return c
}

// RegisterConstructor registers a constructor function for name. The
// constructor must return one value, optionally followed by an error. Its
// parameters are resolved on Create; params supplies optional positional
// metadata (names, defaults, forced dependencies).
//
//	c.RegisterConstructor(movieKey, app.NewMovie)
//	c.RegisterConstructor(greeterKey, NewGreeter,
//	    container.DefaultParam("greeting", "hello"))
func (c *Container) RegisterConstructor(name string, ctor any, params ...Param) *Container {
	fv := reflect.ValueOf(ctor)
	if fv.Kind() != reflect.Func {
		panic("container: RegisterConstructor needs a function")
	}
	ft := fv.Type()
	switch ft.NumOut() {
	case 1:
	case 2:
		if !ft.Out(1).Implements(errorType) {
			panic("container: constructor's second return value must be error")
		}
	default:
		panic("container: constructor must return (T) or (T, error)")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.types[name] = &typeEntry{name: name, ctor: fv, params: params}
	return c
}

// KnownType reports whether name is in the type registry.
func (c *Container) KnownType(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.types[name]
	return ok
}

// TypeKey returns the package-qualified type name of v, the canonical key
// under which typed constructor parameters are looked up.
//
//	key := container.TypeKey((*UserRepository)(nil))  // "myapp/repo.UserRepository"
//	c.RegisterConstructor(key, repo.NewUserRepository)
func TypeKey(v any) string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// ── Reflective construction ───────────────────────────────────────────────────

// Create reflectively constructs the type registered under name, bypassing
// the binding table. args are positional constructor-argument overrides; a
// nil slot means "not supplied". Constructor errors propagate unwrapped.
//
//	movie, err := c.Create(movieKey)
//	movie, err := c.Create(movieKey, myActor)
func (c *Container) Create(name string, args ...any) (any, error) {
	c.mu.RLock()
	entry, ok := c.types[name]
	c.mu.RUnlock()
	if !ok {
		return nil, newErrorf(name, "type [%s] is not registered and cannot be constructed", name)
	}
	return c.construct(entry, args)
}

// construct builds an instance from a registry entry.
func (c *Container) construct(entry *typeEntry, args []any) (any, error) {
	if !entry.ctor.IsValid() {
		// No constructor declared: bare zero value
		return reflect.New(entry.typ).Interface(), nil
	}

	in, err := c.resolveParams(entry.name, entry.ctor.Type(), entry.params, args)
	if err != nil {
		return nil, err
	}
	out := entry.ctor.Call(in)
	if len(out) == 2 {
		if ctorErr, _ := out[1].Interface().(error); ctorErr != nil {
			return nil, ctorErr
		}
	}
	return out[0].Interface(), nil
}

// resolveParams produces the positional argument list for a constructor or
// method, applying the resolution precedence per parameter:
//
//  1. explicit argument at the parameter's index (a Dependency is unwrapped)
//  2. a Dependency declared in the parameter's schema
//  3. type-based lookup through Get for named interface/struct parameters
//  4. the schema's default value
//  5. otherwise the parameter is unresolvable and construction fails
func (c *Container) resolveParams(owner string, fn reflect.Type, schema []Param, args []any) ([]reflect.Value, error) {
	n := fn.NumIn()
	in := make([]reflect.Value, 0, n)

	for i := 0; i < n; i++ {
		pt := fn.In(i)

		if fn.IsVariadic() && i == n-1 {
			// Variadic tail takes the leftover explicit args verbatim
			for j := i; j < len(args); j++ {
				v, err := c.convertArg(owner, paramLabel(schema, i), args[j], pt.Elem())
				if err != nil {
					return nil, err
				}
				in = append(in, v)
			}
			break
		}

		var meta Param
		if i < len(schema) {
			meta = schema[i]
		}
		var arg any
		if i < len(args) {
			arg = args[i]
		}

		v, err := c.resolveParam(owner, i, pt, meta, arg)
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}
	return in, nil
}

// resolveParam resolves one formal parameter; first matching rule wins.
func (c *Container) resolveParam(owner string, idx int, pt reflect.Type, meta Param, arg any) (reflect.Value, error) {
	name := meta.Name
	if name == "" {
		name = positionName(idx)
	}

	if arg != nil {
		if d, ok := arg.(Dependency); ok {
			arg = d.Dependency()
		}
		return c.convertArg(owner, name, arg, pt)
	}

	if meta.Dep != nil {
		return c.convertArg(owner, name, meta.Dep.Dependency(), pt)
	}

	if key := lookupKey(pt); key != "" {
		dep, err := c.Get(key)
		if err != nil {
			return reflect.Value{}, errors.Wrapf(err, "resolving parameter %s of %s", name, owner)
		}
		return c.convertArg(owner, name, dep, pt)
	}

	if meta.HasDefault {
		return c.convertArg(owner, name, meta.Default, pt)
	}

	return reflect.Value{}, newErrorf(owner, "required parameter %s of %s cannot be resolved", name, owner)
}

// convertArg adapts a resolved value to the parameter's formal type.
func (c *Container) convertArg(owner, param string, v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	if rv.Type().ConvertibleTo(t) {
		return rv.Convert(t), nil
	}
	return reflect.Value{}, newErrorf(owner, "parameter %s of %s: cannot use value of type %T as %s", param, owner, v, t)
}

// lookupKey maps a parameter type to its container lookup key, or "" when
// the type is not eligible for type-based resolution (builtins, unnamed
// types, non-struct kinds).
func lookupKey(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return ""
	}
	switch t.Kind() {
	case reflect.Interface, reflect.Struct:
		return t.PkgPath() + "." + t.Name()
	default:
		return ""
	}
}

func paramLabel(schema []Param, idx int) string {
	if idx < len(schema) && schema[idx].Name != "" {
		return schema[idx].Name
	}
	return positionName(idx)
}

func positionName(idx int) string {
	return "#" + strconv.Itoa(idx)
}
