// Package main provides the Glint demo application.
// It demonstrates idiomatic patterns for building custom elements with
// Glint: a store-backed list, navigation with stashed params, and
// notifications bubbling from a child component to the app shell.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/glintui/glint/pkg/component"
	"github.com/glintui/glint/pkg/dispatch"
	"github.com/glintui/glint/pkg/events"
	"github.com/glintui/glint/pkg/navigation"
	"github.com/glintui/glint/pkg/render"
	"github.com/glintui/glint/pkg/store"
)

// item is a catalog entry shown by the list and detail components.
type item struct {
	SKU   string
	Title string
}

// addItem is the event that appends an entry to the catalog.
type addItem struct {
	Item item
}

func catalogMapper(ctx context.Context, event any, current []item, emit func([]item)) error {
	switch e := event.(type) {
	case addItem:
		next := make([]item, len(current), len(current)+1)
		copy(next, current)
		emit(append(next, e.Item))
		return nil
	default:
		return fmt.Errorf("catalog: unknown event %T", event)
	}
}

// listView renders the catalog as an unordered list.
type listView struct {
	component.ViewBase
}

func (listView) Styles() string { return "ul { list-style: none }" }

func (listView) Render(data component.Data) string {
	items, _ := data.State.([]item)
	var b strings.Builder
	b.WriteString("<ul>")
	for _, it := range items {
		fmt.Fprintf(&b, "<li>%s (%s)</li>", it.Title, it.SKU)
	}
	b.WriteString("</ul>")
	return b.String()
}

// detailView renders one item from its properties.
type detailView struct {
	component.ViewBase
}

func (detailView) Render(data component.Data) string {
	return fmt.Sprintf("<article><h1>%v</h1><p>sku: %v</p></article>",
		data.Prop("title"), data.Prop("sku"))
}

func main() {
	// Pump emissions through an explicit queue, the way a browser host
	// would marshal them onto its event loop.
	queue := dispatch.NewQueue()
	dispatch.RegisterDispatch(queue.Enqueue)

	renderer := render.NewMemoryRenderer()
	stash := navigation.NewStash()
	shell := events.NewNotifier()

	catalog := store.New([]item(nil), catalogMapper, store.WithName[[]item]("catalog"))

	// The app shell reacts to notifications bubbling up from components.
	shell.On("item-selected", func(n events.Notification) {
		log.Printf("shell: selected %v", n.Detail)
	})

	listNotifier := events.NewNotifier()
	listNotifier.SetParent(shell)

	detail := component.New(detailView{},
		component.WithRenderer(renderer),
		component.WithStash(stash))

	// Navigating to /item mounts the detail component and hands it the
	// stashed params, standing in for a real client router.
	navigator := navigation.NavigatorFunc(func(path string) error {
		cleanPath, query := navigation.SplitPath(path)
		if cleanPath != "/item" {
			return fmt.Errorf("no route for %s", path)
		}
		detail.OnRouteEnter(navigation.Location{Path: cleanPath, Query: query})
		detail.Mount()
		return nil
	})

	list := component.New(listView{},
		component.WithRenderer(renderer),
		component.WithContainer(catalog),
		component.WithNavigator(navigator),
		component.WithStash(stash),
		component.WithNotifier(listNotifier))

	list.Mount()

	for _, it := range []item{
		{SKU: "A-1", Title: "Anvil"},
		{SKU: "B-2", Title: "Bellows"},
	} {
		if err := catalog.Add(addItem{Item: it}); err != nil {
			log.Fatalf("add: %v", err)
		}
	}
	if err := catalog.Settle(context.Background()); err != nil {
		log.Fatalf("settle: %v", err)
	}
	queue.Flush()

	printOutput(renderer, list, "list")

	// Select an item: notify the shell, then navigate to the detail view
	// with the full item stashed for the destination.
	selected := item{SKU: "B-2", Title: "Bellows"}
	list.Notify("item-selected", selected.SKU)
	if err := list.Navigate("/item", map[string]any{
		"sku":   selected.SKU,
		"title": selected.Title,
	}); err != nil {
		log.Fatalf("navigate: %v", err)
	}
	queue.Flush()

	printOutput(renderer, detail, "detail")

	list.Unmount()
	detail.Unmount()
}

func printOutput(renderer *render.MemoryRenderer, c *component.Controller, name string) {
	if out, ok := renderer.Output(c.Target()); ok {
		fmt.Printf("%s: %s\n", name, out.Markup)
	}
}
