package container

import "reflect"

// ── Definition ────────────────────────────────────────────────────────────────

// MethodCall is one post-construction setter invocation.
type MethodCall struct {
	Method string
	Args   []any
}

// Definition is a declarative construction recipe, independent of the
// binding table: a registered type name, positional constructor-argument
// overrides, and an ordered list of method calls to run on the fresh
// instance. Method calls are kept in a slice so they execute in exactly
// the order they were declared.
type Definition struct {
	typeName string
	args     []any
	calls    []MethodCall
}

// NewDefinition creates a Definition for the type registered under typeName.
//
//	def := container.NewDefinition(movieKey, myActor).
//	    AddMethodCall("SetTitle", "Heat")
func NewDefinition(typeName string, args ...any) *Definition {
	return &Definition{typeName: typeName, args: args}
}

// TypeName returns the registered type name this definition constructs.
func (d *Definition) TypeName() string { return d.typeName }

// Arguments returns the positional constructor-argument overrides.
func (d *Definition) Arguments() []any { return d.args }

// SetArguments replaces the constructor-argument overrides.
func (d *Definition) SetArguments(args ...any) *Definition {
	d.args = args
	return d
}

// AddArgument appends one constructor-argument override.
func (d *Definition) AddArgument(arg any) *Definition {
	d.args = append(d.args, arg)
	return d
}

// MethodCalls returns the declared method calls, in declaration order.
func (d *Definition) MethodCalls() []MethodCall { return d.calls }

// AddMethodCall appends a post-construction method invocation.
func (d *Definition) AddMethodCall(method string, args ...any) *Definition {
	d.calls = append(d.calls, MethodCall{Method: method, Args: args})
	return d
}

// ── Definition-based construction ─────────────────────────────────────────────

// CreateFromDefinition constructs an instance per def: it builds the type
// with the definition's arguments as overrides, then invokes each declared
// method call in order, resolving method parameters with the same precedence
// used for constructors. A method call naming a method the type does not
// have fails; a setter returning a non-nil trailing error aborts the build.
//
//	movie, err := c.CreateFromDefinition(
//	    container.NewDefinition(movieKey).AddMethodCall("SetTitle", "Heat"))
func (c *Container) CreateFromDefinition(def *Definition) (any, error) {
	instance, err := c.Create(def.TypeName(), def.Arguments()...)
	if err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(instance)
	for _, call := range def.MethodCalls() {
		m := rv.MethodByName(call.Method)
		if !m.IsValid() {
			return nil, newErrorf(def.TypeName(), "type [%s] has no method %s", def.TypeName(), call.Method)
		}

		owner := def.TypeName() + "." + call.Method
		in, err := c.resolveParams(owner, m.Type(), nil, call.Args)
		if err != nil {
			return nil, err
		}

		out := m.Call(in)
		if len(out) > 0 {
			if last := out[len(out)-1]; last.Type().Implements(errorType) && !last.IsNil() {
				return nil, last.Interface().(error)
			}
		}
	}
	return instance, nil
}
