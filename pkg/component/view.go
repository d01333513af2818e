package component

import "github.com/glintui/glint/pkg/render"

// Data is the merged snapshot handed to the view hooks: the component's
// current properties plus the bound container's current state (nil when the
// component has no container).
type Data struct {
	Props map[string]any
	State any
}

// Prop returns the property stored under key, or nil.
func (d Data) Prop(key string) any {
	return d.Props[key]
}

// View supplies a component's overridable hooks. Views are plain values
// composed into a Controller; embed ViewBase to pick up no-op defaults and
// override only what the component needs.
type View interface {
	// Styles returns the style template fragment.
	Styles() string
	// Render returns the markup template fragment for the given data.
	Render(data Data) string
	// OnStateChange runs before the render triggered by a state emission.
	OnStateChange(data Data)
}

// ViewBase provides no-op defaults for all View hooks.
//
//	type itemView struct {
//	    component.ViewBase
//	}
//
//	func (itemView) Render(data component.Data) string {
//	    return "<p>" + fmt.Sprint(data.Prop("name")) + "</p>"
//	}
type ViewBase struct{}

// Styles returns an empty styles fragment.
func (ViewBase) Styles() string { return "" }

// Render returns an empty markup fragment.
func (ViewBase) Render(Data) string { return "" }

// OnStateChange does nothing.
func (ViewBase) OnStateChange(Data) {}

var _ View = ViewBase{}

// combined builds the fragment handed to the renderer from the two view
// template hooks.
func combined(view View, data Data) render.Fragment {
	return render.Fragment{
		Styles: view.Styles(),
		Markup: view.Render(data),
	}
}
