package v1

import (
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/api"
	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	logicv1 "github.com/hnh-zeal/petopia-frontend-sub000/internal/logic/v1"
)

type headerView struct {
	logicv1.HeaderView
	SortHref   string
	ToggleHref string
}

type tableView struct {
	logicv1.TableView
	Headers []headerView
	Colspan int
	// Keep carries the current query into the "go to page" form.
	Keep []detailRow
}

// listParams reads the shared list filters from the query string.
func listParams(c *gin.Context) api.ListParams {
	var p api.ListParams
	_ = c.ShouldBindQuery(&p)
	p.Page = max(p.Page, 1)
	if p.PageSize <= 0 || p.PageSize > 100 {
		p.PageSize = defaultPageSize
	}
	return p
}

// withQuery returns the current URL with key set to value; an empty value removes key.
func withQuery(u *url.URL, key, value string) string {
	q := u.Query()
	if value == "" {
		q.Del(key)
	} else {
		q.Set(key, value)
	}
	q.Del("goto")
	out := url.URL{Path: u.Path, RawQuery: q.Encode()}
	return out.String()
}

func pageHref(u *url.URL) func(int) string {
	return func(page int) string { return withQuery(u, "page", strconv.Itoa(page)) }
}

// showTable builds the table of one fetched page and applies the sort and column
// choices of the query. It reports false when the request was answered with a
// redirect to another page.
func showTable[T any](c *gin.Context, columns []logicv1.Column[T], page *domain.Page[T], actions func(T) []logicv1.Action) (*tableView, bool) {
	u := c.Request.URL
	href := pageHref(u)
	tbl := logicv1.NewTable(columns, page.Data, page.CurrentPage, page.TotalPages, func(p int) {
		c.Redirect(http.StatusSeeOther, href(p))
	})
	if actions != nil {
		tbl.WithActions(actions)
	}

	q := u.Query()
	if g := q.Get("goto"); g != "" {
		if n, err := strconv.Atoi(g); err == nil && tbl.Pager.GoTo(n) {
			return nil, false
		}
	}
	if key := q.Get("sort"); key != "" {
		tbl.SortBy(key, q.Get("dir") == "desc")
	}
	hidden := q["hide"]
	for _, key := range hidden {
		tbl.Hide(key)
	}

	tv := tbl.View(href)
	out := &tableView{TableView: tv}
	for _, h := range tv.Headers {
		hv := headerView{HeaderView: h}
		if h.Sortable {
			dir := "asc"
			if h.Sorted == "asc" {
				dir = "desc"
			}
			hv.SortHref = withSort(u, h.Key, dir)
		}
		hv.ToggleHref = withToggle(u, h.Key, hidden)
		out.Headers = append(out.Headers, hv)
		if h.Visible {
			out.Colspan++
		}
	}
	if tv.HasActions {
		out.Colspan++
	}
	for key, values := range q {
		if key == "goto" || key == "page" {
			continue
		}
		for _, v := range values {
			out.Keep = append(out.Keep, detailRow{Label: key, Value: v})
		}
	}
	slices.SortFunc(out.Keep, func(a, b detailRow) int {
		if a.Label < b.Label {
			return -1
		}
		if a.Label > b.Label {
			return 1
		}
		return 0
	})
	return out, true
}

func withSort(u *url.URL, key, dir string) string {
	q := u.Query()
	q.Set("sort", key)
	q.Set("dir", dir)
	q.Del("goto")
	out := url.URL{Path: u.Path, RawQuery: q.Encode()}
	return out.String()
}

func withToggle(u *url.URL, key string, hidden []string) string {
	q := u.Query()
	q.Del("hide")
	q.Del("goto")
	for _, h := range hidden {
		if h != key {
			q.Add("hide", h)
		}
	}
	if !slices.Contains(hidden, key) {
		q.Add("hide", key)
	}
	out := url.URL{Path: u.Path, RawQuery: q.Encode()}
	return out.String()
}

// filterField describes one query filter input of a list page.
func filterField(c *gin.Context, name string) logicv1.Field {
	f := logicv1.Field{Name: name, Label: logicv1.Humanize(name), Input: "text", Value: c.Query(name)}
	switch name {
	case "date":
		f.Input = "date"
	case "month":
		f.Input = "month"
	case "status":
		f.Input = "select"
		for _, s := range []domain.BookingStatus{domain.StatusPending, domain.StatusAccepted, domain.StatusRejected, domain.StatusCancelled, domain.StatusBooked} {
			f.Options = append(f.Options, logicv1.Option{Value: string(s), Label: logicv1.Humanize(string(s)), Selected: f.Value == string(s)})
		}
	case "search":
		f.Label = "Search"
	}
	return f
}

func filterFields(c *gin.Context, names ...string) []logicv1.Field {
	out := make([]logicv1.Field, 0, len(names))
	for _, n := range names {
		out = append(out, filterField(c, n))
	}
	return out
}
