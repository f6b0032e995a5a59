package v1

import (
	"slices"
)

// EmptyMessage is shown in place of rows when a page has none.
const EmptyMessage = "No results."

// Column renders one attribute of T. Columns without Less are not sortable.
type Column[T any] struct {
	Key    string
	Header string
	Cell   func(T) string
	Less   func(a, b T) bool
}

// Action is one entry of a row's action menu.
type Action struct {
	Label string
	Href  string
	// Dialog names an in-page dialog instead of a link, e.g. the status dialog.
	Dialog string
}

// Table adapts one page of API results. Sorting and column visibility are local to
// the page and never trigger a refetch; only the pager asks for other data.
type Table[T any] struct {
	columns []Column[T]
	rows    []T
	hidden  map[string]bool
	sortKey string
	desc    bool
	actions func(T) []Action
	Pager   *Pager
}

func NewTable[T any](columns []Column[T], data []T, currentPage, totalPages int, onPageChange func(page int)) *Table[T] {
	return &Table[T]{
		columns: columns,
		rows:    data,
		hidden:  map[string]bool{},
		Pager:   NewPager(currentPage, totalPages, onPageChange),
	}
}

// WithActions sets the row action menu.
func (t *Table[T]) WithActions(fn func(T) []Action) *Table[T] {
	t.actions = fn
	return t
}

// SortBy orders the current page by column key. Unknown or unsortable keys are ignored.
func (t *Table[T]) SortBy(key string, desc bool) bool {
	i := slices.IndexFunc(t.columns, func(c Column[T]) bool { return c.Key == key })
	if i < 0 || t.columns[i].Less == nil {
		return false
	}
	less := t.columns[i].Less
	rows := slices.Clone(t.rows)
	slices.SortStableFunc(rows, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
	if desc {
		slices.Reverse(rows)
	}
	t.rows, t.sortKey, t.desc = rows, key, desc
	return true
}

func (t *Table[T]) Hide(key string)   { t.hidden[key] = true }
func (t *Table[T]) Show(key string)   { delete(t.hidden, key) }
func (t *Table[T]) Toggle(key string) { t.hidden[key] = !t.hidden[key] }

func (t *Table[T]) Visible(key string) bool { return !t.hidden[key] }

// Rows returns the rows of the current page in display order.
func (t *Table[T]) Rows() []T { return t.rows }

// HeaderView is one rendered column header.
type HeaderView struct {
	Key      string
	Header   string
	Sortable bool
	Sorted   string // "", "asc" or "desc"
	Visible  bool
}

type RowView struct {
	Cells   []string
	Actions []Action
}

// TableView is what templates render.
type TableView struct {
	Headers      []HeaderView
	Rows         []RowView
	Empty        bool
	EmptyMessage string
	HasActions   bool
	Pager        PagerView
}

// View renders visible columns. href builds the link of a page for the pager.
func (t *Table[T]) View(href func(page int) string) TableView {
	v := TableView{EmptyMessage: EmptyMessage, Empty: len(t.rows) == 0, HasActions: t.actions != nil}
	var shown []Column[T]
	for _, c := range t.columns {
		h := HeaderView{Key: c.Key, Header: c.Header, Sortable: c.Less != nil, Visible: t.Visible(c.Key)}
		if c.Key == t.sortKey {
			h.Sorted = "asc"
			if t.desc {
				h.Sorted = "desc"
			}
		}
		v.Headers = append(v.Headers, h)
		if h.Visible {
			shown = append(shown, c)
		}
	}
	for _, r := range t.rows {
		row := RowView{Cells: make([]string, 0, len(shown))}
		for _, c := range shown {
			row.Cells = append(row.Cells, c.Cell(r))
		}
		if t.actions != nil {
			row.Actions = t.actions(r)
		}
		v.Rows = append(v.Rows, row)
	}
	v.Pager = t.Pager.View(href)
	return v
}

// Pager moves between pages by calling onPageChange with the target page.
// It never calls onPageChange with a page outside [1, total].
type Pager struct {
	current      int
	total        int
	onPageChange func(page int)
}

// NewPager treats a result without pages as a single empty page.
func NewPager(current, total int, onPageChange func(page int)) *Pager {
	total = max(total, 1)
	if onPageChange == nil {
		onPageChange = func(int) {}
	}
	return &Pager{current: clamp(current, 1, total), total: total, onPageChange: onPageChange}
}

func (p *Pager) Current() int  { return p.current }
func (p *Pager) Total() int    { return p.total }
func (p *Pager) CanPrev() bool { return p.current > 1 }
func (p *Pager) CanNext() bool { return p.current < p.total }

func (p *Pager) Prev() bool {
	if !p.CanPrev() {
		return false
	}
	p.onPageChange(p.current - 1)
	return true
}

func (p *Pager) Next() bool {
	if !p.CanNext() {
		return false
	}
	p.onPageChange(p.current + 1)
	return true
}

// GoTo requests page; out of range pages are ignored.
func (p *Pager) GoTo(page int) bool {
	if page < 1 || page > p.total {
		return false
	}
	p.onPageChange(page)
	return true
}

// Pages returns a window of at most five page numbers around the current page.
func (p *Pager) Pages() []int {
	const window = 5
	start := max(1, p.current-window/2)
	end := min(p.total, start+window-1)
	start = max(1, end-window+1)
	pages := make([]int, 0, window)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

type PageLink struct {
	Page    int
	Href    string
	Current bool
}

type PagerView struct {
	Current  int
	Total    int
	PrevHref string
	NextHref string
	Pages    []PageLink
}

func (p *Pager) View(href func(page int) string) PagerView {
	v := PagerView{Current: p.current, Total: p.total}
	if p.CanPrev() {
		v.PrevHref = href(p.current - 1)
	}
	if p.CanNext() {
		v.NextHref = href(p.current + 1)
	}
	for _, n := range p.Pages() {
		v.Pages = append(v.Pages, PageLink{Page: n, Href: href(n), Current: n == p.current})
	}
	return v
}
