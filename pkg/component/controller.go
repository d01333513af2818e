// Package component implements the lifecycle controller that mediates
// between property mutation, external state notifications, and render
// invocation.
//
// A Controller owns a property bag and an isolated render target, optionally
// binds one state container, and decides when the externally supplied view
// is re-rendered. Rendering itself and navigation are consumed as opaque
// capabilities (pkg/render, pkg/navigation).
package component

import (
	"fmt"
	"sync"

	"github.com/glintui/glint/pkg/dispatch"
	"github.com/glintui/glint/pkg/errors"
	"github.com/glintui/glint/pkg/events"
	"github.com/glintui/glint/pkg/navigation"
	"github.com/glintui/glint/pkg/props"
	"github.com/glintui/glint/pkg/render"
	"github.com/glintui/glint/pkg/store"
)

// Container is the subset of a state container the controller binds to.
// *store.Store[S] satisfies it for any S.
type Container interface {
	// ListenAny registers a listener for every subsequent state emission.
	ListenAny(fn func(state any)) *store.Subscription
	// CurrentAny returns the latest emitted (or initial) state.
	CurrentAny() any
	// Close permanently shuts the container down.
	Close()
}

// Controller drives one component instance through its lifecycle.
type Controller struct {
	view      View
	container Container
	renderer  render.Renderer
	navigator navigation.Navigator
	stash     *navigation.Stash
	notifier  *events.Notifier

	mu       sync.Mutex
	props    *props.Bag
	target   render.Target
	mounted  bool
	released bool
	sub      *store.Subscription
}

// Option configures a Controller at construction.
type Option func(*Controller)

// WithContainer binds a state container. The controller subscribes on mount
// and closes the container on unmount.
func WithContainer(container Container) Option {
	return func(c *Controller) { c.container = container }
}

// WithRenderer supplies the template renderer; the controller allocates its
// render target from it. Without a renderer every render is silently skipped.
func WithRenderer(renderer render.Renderer) Option {
	return func(c *Controller) { c.renderer = renderer }
}

// WithNavigator supplies the navigation capability used by Navigate.
func WithNavigator(navigator navigation.Navigator) Option {
	return func(c *Controller) { c.navigator = navigator }
}

// WithStash supplies the parameter stash shared with the router integration.
func WithStash(stash *navigation.Stash) Option {
	return func(c *Controller) { c.stash = stash }
}

// WithNotifier supplies the upward notification channel used by Notify.
func WithNotifier(notifier *events.Notifier) Option {
	return func(c *Controller) { c.notifier = notifier }
}

// New creates a Controller for the given view with an empty property bag.
// When a renderer is configured, the render target is allocated here, once;
// every subsequent render goes to it.
func New(view View, opts ...Option) *Controller {
	if view == nil {
		view = ViewBase{}
	}
	c := &Controller{
		view:  view,
		props: props.NewBag(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.renderer != nil {
		c.target = c.renderer.CreateTarget()
	}
	return c
}

// SetProperties shallow-merges partial into the property bag. When the merge
// changes the bag and the component is mounted, one render is triggered;
// an identical repeat merge is a no-op. Keys are never removed.
func (c *Controller) SetProperties(partial map[string]any) {
	c.mu.Lock()
	changed := c.props.Merge(partial)
	mounted := c.mounted
	c.mu.Unlock()

	if changed && mounted {
		c.Render()
	}
}

// SetPropertiesJSON hydrates a property partial from a JSON object document
// and applies it through SetProperties.
func (c *Controller) SetPropertiesJSON(doc []byte) error {
	partial, err := props.FromJSON(doc)
	if err != nil {
		return err
	}
	c.SetProperties(partial)
	return nil
}

// Prop returns the current value of one property.
func (c *Controller) Prop(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props.Get(key)
}

// Props returns a snapshot of the property bag.
func (c *Controller) Props() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props.Snapshot()
}

// Mounted reports whether the component is currently mounted.
func (c *Controller) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}

// Target returns the component's render target (nil without a renderer).
func (c *Controller) Target() render.Target {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// Notifier returns the upward notification channel, if configured.
func (c *Controller) Notifier() *events.Notifier {
	return c.notifier
}

// Mount attaches the component. When a container is bound, the controller
// subscribes to it: each emission runs the view's OnStateChange hook and
// then a render, marshaled through the host dispatch loop when one is
// registered and run inline otherwise. Mount always finishes with one
// immediate render, container or not. Mounting twice is a no-op.
func (c *Controller) Mount() {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	container := c.container
	c.mu.Unlock()

	if container != nil {
		sub := container.ListenAny(func(state any) {
			deliver := func() { c.deliverState(state) }
			if !dispatch.Dispatch(deliver) {
				deliver()
			}
		})
		c.mu.Lock()
		c.sub = sub
		c.mu.Unlock()
	}

	c.Render()
}

// deliverState runs the OnStateChange hook with merged props+state, then
// renders. A panicking hook is reported and the render still happens.
func (c *Controller) deliverState(state any) {
	data := Data{Props: c.Props(), State: state}
	func() {
		defer errors.Recover("component.OnStateChange")
		c.view.OnStateChange(data)
	}()
	c.Render()
}

// Unmount detaches the component: the container subscription (if mount got
// that far) is cancelled and the bound container is closed, exactly once.
// Safe to call without a prior Mount and safe to call repeatedly.
func (c *Controller) Unmount() {
	c.mu.Lock()
	c.mounted = false
	sub := c.sub
	c.sub = nil
	var container Container
	if !c.released {
		c.released = true
		container = c.container
	}
	c.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
	if container != nil {
		container.Close()
	}
}

// Render builds the combined fragment (styles plus markup computed from the
// current properties and container state) and hands it to the renderer.
// With no renderer or target it is silently skipped; a panicking view hook
// is reported and the cycle is dropped. Render never fails the caller.
func (c *Controller) Render() {
	c.mu.Lock()
	renderer := c.renderer
	target := c.target
	data := Data{Props: c.props.Snapshot()}
	container := c.container
	c.mu.Unlock()

	if renderer == nil || target == nil {
		return
	}
	if container != nil {
		data.State = container.CurrentAny()
	}

	fragment, ok := c.buildFragment(data)
	if !ok {
		return
	}
	if err := renderer.Apply(target, fragment); err != nil {
		errors.Report(&errors.GlintError{
			Op:   "component.Render",
			Kind: errors.KindRender,
			Err:  err,
		})
	}
}

// buildFragment runs the view template hooks with panic recovery.
func (c *Controller) buildFragment(data Data) (fragment render.Fragment, ok bool) {
	defer errors.Recover("component.Render")
	fragment = combined(c.view, data)
	return fragment, true
}

// Navigate stashes non-empty params under the destination's path+query key,
// then delegates the path change to the navigator. The stashed params are
// retrievable exactly once by the component entering that route; params not
// passed this way must not be assumed to survive navigation.
func (c *Controller) Navigate(path string, params map[string]any) error {
	if c.navigator == nil {
		return fmt.Errorf("component: navigate without a configured navigator")
	}
	if len(params) > 0 {
		if c.stash == nil {
			return fmt.Errorf("component: navigation params require a configured stash")
		}
		cleanPath, query := navigation.SplitPath(path)
		c.stash.Put(navigation.StashKey(cleanPath, query), params)
	}
	return c.navigator.Go(path)
}

// OnRouteEnter is invoked by the router integration before the component is
// rendered for a matched route. Query parameters, path parameters, and any
// stashed navigation params are merged into one partial — path params
// override query params, stashed params override both — the stash entry is
// consumed, and the result is applied through SetProperties.
func (c *Controller) OnRouteEnter(location navigation.Location) {
	merged := make(map[string]any)
	for key, values := range location.Query {
		if len(values) > 0 {
			merged[key] = values[0]
		}
	}
	for key, value := range location.Params {
		merged[key] = value
	}
	if c.stash != nil {
		if stashed, ok := c.stash.Take(location.Key()); ok {
			for key, value := range stashed {
				merged[key] = value
			}
		}
	}
	if len(merged) > 0 {
		c.SetProperties(merged)
	}
}

// Notify emits an upward notification through the configured notifier.
// A controller without a notifier drops the notification.
func (c *Controller) Notify(name string, detail any) {
	if c.notifier != nil {
		c.notifier.Emit(name, detail)
	}
}
