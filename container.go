package headcontrol

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrDuplicateComponent is returned when a component is added to a
	// Container under a name that's already taken.
	ErrDuplicateComponent = errors.New("component name already in use")

	// ErrUnknownRenderMethod is returned by Container.Call when the method
	// doesn't name a render method of a component in the Container.
	ErrUnknownRenderMethod = errors.New("unknown render method")
)

// Renderer is something that can write its markup to an io.Writer. Any args
// are component specific; the asset loaders treat them as extra files.
type Renderer interface {
	Render(ctx context.Context, w io.Writer, args ...string) error
}

// AssetLoader is a Renderer collecting the stylesheets or scripts a page
// needs.
type AssetLoader interface {
	Renderer

	// AddFiles queues files to be rendered.
	AddFiles(files ...string)
}

// Container holds named Renderers and dispatches render calls to them by
// method name, so that "renderForm" renders the component named "form". It's
// handy for template helpers that only get to pass a string.
//
// The zero value is ready to use.
type Container struct {
	components map[string]Renderer
	names      []string
}

// AddComponent registers r under name.
func (c *Container) AddComponent(name string, r Renderer) error {
	if c.components == nil {
		c.components = map[string]Renderer{}
	}
	if _, ok := c.components[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateComponent, name)
	}
	c.components[name] = r
	c.names = append(c.names, name)
	return nil
}

// Component returns the Renderer registered under name, if there is one.
func (c *Container) Component(name string) (Renderer, bool) {
	r, ok := c.components[name]
	return r, ok
}

// Names returns the names of the registered components, in the order they
// were added.
func (c *Container) Names() []string {
	return append([]string(nil), c.names...)
}

// Call renders the component named by method to w, passing args through.
// The method is expected to look like "render" followed by the component
// name with its first letter capitalized.
func (c *Container) Call(ctx context.Context, w io.Writer, method string, args ...string) error {
	name, ok := componentName(method)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRenderMethod, method)
	}
	comp, ok := c.Component(name)
	if !ok {
		return fmt.Errorf("%w: %q has no component %q", ErrUnknownRenderMethod, method, name)
	}
	return comp.Render(ctx, w, args...)
}

func componentName(method string) (string, bool) {
	rest, ok := strings.CutPrefix(method, "render")
	if !ok || rest == "" {
		return "", false
	}
	first, size := utf8.DecodeRuneInString(rest)
	return string(unicode.ToLower(first)) + rest[size:], true
}
