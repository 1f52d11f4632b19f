// Command listdemo drives both list converters against in-memory console
// hosts. It loads an item list from listdemo.yaml, applies a few mutations,
// and drains a queued UI-thread dispatcher between steps, printing what each
// host renders along the way.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-drift/listbind/cmd/listdemo/internal/config"
	"github.com/go-drift/listbind/pkg/adapter"
	"github.com/go-drift/listbind/pkg/converter"
	"github.com/go-drift/listbind/pkg/host"
	"github.com/go-drift/listbind/pkg/uithread"
)

func main() {
	configPath := flag.String("config", "listdemo.yaml", "path to the demo configuration")
	flag.Parse()

	cfg, err := config.LoadOptional(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "listdemo:", err)
		os.Exit(1)
	}

	// The demo has no platform event loop; a drained queue stands in for the
	// UI thread's message queue.
	var frame uithread.Queue
	uithread.Register(frame.Dispatch)

	a := adapter.New(textBinding(), cfg.Items...)

	switch cfg.Host {
	case config.HostLegacy:
		runLegacy(a, &frame)
	case config.HostRecycler:
		runRecycler(a, cfg, &frame)
	}
}

// consoleRow is the demo's stand-in for a platform row view.
type consoleRow struct {
	text string
}

// textHolder binds one string item into a consoleRow.
type textHolder struct {
	row *consoleRow
}

func (h *textHolder) ItemView() host.View { return h.row }

func textBinding() adapter.Binding[string, *textHolder] {
	return adapter.Binding[string, *textHolder]{
		CreateHolder: func(parent host.Container, viewType int) *textHolder {
			return &textHolder{row: &consoleRow{}}
		},
		BindHolder: func(h *textHolder, item string, position int) {
			h.row.text = fmt.Sprintf("%2d  %s", position, item)
		},
	}
}

func runLegacy(a *adapter.ListAdapter[string, *textHolder], frame *uithread.Queue) {
	widget := &consoleListView{}
	c := converter.NewLegacyConverter(a)
	c.SetItemClickedListener(func(_ *adapter.ListAdapter[string, *textHolder], item string, _ *textHolder, position int) {
		fmt.Printf("clicked %q at position %d\n", item, position)
	})
	c.Register(widget)

	c.NotifyDataSetChanged()
	frame.Drain()

	a.Append("delta")
	a.Remove(0)
	frame.Drain()

	widget.clickRow(1)
}

func runRecycler(a *adapter.ListAdapter[string, *textHolder], cfg *config.Config, frame *uithread.Queue) {
	if cfg.Header != "" {
		a.AddHeader(bannerRow(cfg.Header))
	}
	if cfg.Footer != "" {
		a.AddFooter(bannerRow(cfg.Footer))
	}

	widget := &consoleRecycler{}
	c := converter.NewRecyclerConverter(a, widget)
	defer c.Cleanup()

	c.SetRecyclerItemClickListener(func(h *textHolder, _ host.RecyclerHost, position int, x, y float64) {
		fmt.Printf("touch at (%.0f, %.0f) hit row %d: %s\n", x, y, position, h.row.text)
	})

	a.Append("delta")
	a.Remove(0)
	frame.Drain()

	widget.tapRow(a.HeaderCount()+1, 12, 30)
}

// bannerRow is a self-rendering fixed row showing a title.
func bannerRow(title string) adapter.FixedRow {
	return adapter.FixedRow{
		Create: func(parent host.Container) host.ViewHolder {
			return &textHolder{row: &consoleRow{text: "== " + title + " =="}}
		},
	}
}

// consoleListView is a minimal legacy recycling list widget that renders
// every row to stdout on refresh.
type consoleListView struct {
	source  host.LegacyDataSource
	onClick host.ItemClickFunc
	rows    []host.View
}

func (w *consoleListView) SetDataSource(source host.LegacyDataSource) { w.source = source }
func (w *consoleListView) SetOnItemClick(fn host.ItemClickFunc)       { w.onClick = fn }

func (w *consoleListView) RefreshVisibleRows() {
	if w.source == nil {
		return
	}
	count := w.source.Count()
	fmt.Printf("-- legacy list (%d rows) --\n", count)
	rows := make([]host.View, count)
	for position := 0; position < count; position++ {
		var recycled host.View
		if position < len(w.rows) {
			recycled = w.rows[position]
		}
		view := w.source.View(position, recycled, w)
		rows[position] = view
		if row, ok := view.(*consoleRow); ok {
			fmt.Println(row.text)
		}
	}
	w.rows = rows
}

func (w *consoleListView) clickRow(position int) {
	if w.onClick != nil && position < len(w.rows) {
		w.onClick(position, w.rows[position])
	}
}

// consoleRecycler is a minimal virtualized list widget. It pulls everything
// through its data source on each dataset-changed notification.
type consoleRecycler struct {
	source    host.RecyclerDataSource
	touch     host.TouchListener
	stableIDs bool
	holders   []host.ViewHolder
}

func (w *consoleRecycler) SetDataSource(source host.RecyclerDataSource) { w.source = source }
func (w *consoleRecycler) AddItemTouchListener(l host.TouchListener)    { w.touch = l }
func (w *consoleRecycler) SetHasStableIDs(stable bool)                  { w.stableIDs = stable }

func (w *consoleRecycler) NotifyDataSetChanged() {
	if w.source == nil {
		return
	}
	count := w.source.ItemCount()
	fmt.Printf("-- recycler list (%d rows, stable IDs %v) --\n", count, w.stableIDs)
	w.holders = make([]host.ViewHolder, count)
	for position := 0; position < count; position++ {
		holder := w.source.CreateViewHolder(w, w.source.ItemViewType(position))
		if holder == nil {
			continue
		}
		w.source.BindViewHolder(holder, position)
		w.holders[position] = holder
		if row, ok := holder.ItemView().(*consoleRow); ok {
			fmt.Println(row.text)
		}
	}
}

func (w *consoleRecycler) tapRow(position int, x, y float64) {
	if w.touch != nil && position < len(w.holders) {
		w.touch.OnItemClick(w.holders[position], w, position, x, y)
	}
}
