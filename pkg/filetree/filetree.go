// Package filetree paginates and filters the flat list of markdown files
// discovered under a directory.
//
// Entries are kept interleaved with spacer rows so the renderer can draw a
// blank line between files. Spacers sit at odd indices, are never selectable
// and never count as files; every single-step movement moves by two.
package filetree

import (
	"path/filepath"
	"sort"

	"github.com/yaklabco/gomdview/pkg/search"
)

// Entry is one discovered file.
type Entry struct {
	// Path is the file path as discovered, used for opening and sorting.
	Path string

	// Name is the path relative to the discovery root, used for display.
	Name string
}

// NewEntry creates an entry whose display name is path relative to root.
// When path is not below root the path itself is used.
func NewEntry(root, path string) Entry {
	name, err := filepath.Rel(root, path)
	if err != nil || name == "." {
		name = path
	}
	return Entry{Path: path, Name: filepath.ToSlash(name)}
}

type item struct {
	entry  Entry
	spacer bool
}

// Tree holds the discovered files, the active filter and the pager state.
type Tree struct {
	all   []Entry
	items []item

	query    string
	pageSize int
	page     int
	selected int
	finished bool
}

// New creates an empty tree sized for a viewport of viewHeight rows.
func New(viewHeight int) *Tree {
	return &Tree{pageSize: Partition(viewHeight), selected: -1}
}

// Partition returns the number of rows per page for a viewport: half the
// height plus one, rounded up to an even count so a page never ends between
// a file and its spacer. The result is at least 2.
func Partition(viewHeight int) int {
	size := (viewHeight + 2) / 2
	if size%2 != 0 {
		size++
	}
	return max(size, 2)
}

// Resize recomputes the page size. The selection is kept and the page
// follows it.
func (t *Tree) Resize(viewHeight int) {
	t.pageSize = Partition(viewHeight)
	t.page = 0
	if t.selected >= 0 {
		t.page = t.selected / t.pageSize
	}
}

// Add appends a discovered file. It is visible immediately when it matches
// the active filter; ordering is restored by Finish or Search.
func (t *Tree) Add(entry Entry) {
	t.all = append(t.all, entry)
	if t.matches(entry) {
		t.items = append(t.items, item{entry: entry}, item{spacer: true})
	}
}

// Finish marks discovery as complete and sorts the visible entries.
func (t *Tree) Finish() {
	t.finished = true
	t.rebuild()
}

// Finished reports whether discovery has completed.
func (t *Tree) Finished() bool {
	return t.finished
}

// Search re-filters the full file set with an exact fuzzy match against
// each path, sorts by path, resets to the first page and clears the
// selection. An empty query shows every file.
func (t *Tree) Search(query string) {
	t.query = query
	t.rebuild()
	t.page = 0
	t.selected = -1
}

// Query returns the active filter.
func (t *Tree) Query() string {
	return t.query
}

func (t *Tree) matches(entry Entry) bool {
	if t.query == "" {
		return true
	}
	return search.Contains(t.query, entry.Path)
}

func (t *Tree) rebuild() {
	var visible []Entry
	for _, entry := range t.all {
		if t.matches(entry) {
			visible = append(visible, entry)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Path < visible[j].Path
	})

	var keep string
	if entry, ok := t.Selected(); ok {
		keep = entry.Path
	}
	t.items = make([]item, 0, len(visible)*2)
	t.selected = -1
	for _, entry := range visible {
		if entry.Path == keep && keep != "" {
			t.selected = len(t.items)
		}
		t.items = append(t.items, item{entry: entry}, item{spacer: true})
	}
	t.clampPage()
}

// FileCount returns the number of files matching the active filter.
func (t *Tree) FileCount() int {
	return len(t.items) / 2
}

// TotalCount returns the number of discovered files.
func (t *Tree) TotalCount() int {
	return len(t.all)
}

// PageSize returns the rows per page, spacers included.
func (t *Tree) PageSize() int {
	return t.pageSize
}

// PageIndex returns the zero-based current page.
func (t *Tree) PageIndex() int {
	return t.page
}

// PageCount returns the number of pages, at least 1.
func (t *Tree) PageCount() int {
	if len(t.items) == 0 {
		return 1
	}
	return (len(t.items) + t.pageSize - 1) / t.pageSize
}

// Page returns the files on the current page, spacers excluded.
func (t *Tree) Page() []Entry {
	start := t.page * t.pageSize
	end := min(start+t.pageSize, len(t.items))
	var entries []Entry
	for i := start; i < end; i++ {
		if !t.items[i].spacer {
			entries = append(entries, t.items[i].entry)
		}
	}
	return entries
}

// SelectedOnPage returns the position of the selection within Page().
func (t *Tree) SelectedOnPage() (int, bool) {
	if t.selected < 0 || t.selected/t.pageSize != t.page {
		return 0, false
	}
	return (t.selected % t.pageSize) / 2, true
}

// Selected returns the selected file.
func (t *Tree) Selected() (Entry, bool) {
	if t.selected < 0 || t.selected >= len(t.items) {
		return Entry{}, false
	}
	return t.items[t.selected].entry, true
}

// ClearSelection drops the selection without moving the page.
func (t *Tree) ClearSelection() {
	t.selected = -1
}

// Next selects the following file. Without a selection it selects the
// first file on the current page.
func (t *Tree) Next() {
	if len(t.items) == 0 {
		return
	}
	if t.selected < 0 {
		t.selectIndex(t.page * t.pageSize)
		return
	}
	if t.selected+2 < len(t.items) {
		t.selectIndex(t.selected + 2)
	}
}

// Previous selects the preceding file. Without a selection it selects the
// last file on the current page.
func (t *Tree) Previous() {
	if len(t.items) == 0 {
		return
	}
	if t.selected < 0 {
		end := min((t.page+1)*t.pageSize, len(t.items))
		t.selectIndex(end - 2)
		return
	}
	if t.selected >= 2 {
		t.selectIndex(t.selected - 2)
	}
}

// NextPage moves to the following page and selects its first file.
func (t *Tree) NextPage() {
	if (t.page+1)*t.pageSize >= len(t.items) {
		return
	}
	t.selectIndex((t.page + 1) * t.pageSize)
}

// PreviousPage moves to the preceding page and selects its first file.
func (t *Tree) PreviousPage() {
	if t.page == 0 || len(t.items) == 0 {
		return
	}
	t.selectIndex((t.page - 1) * t.pageSize)
}

// First selects the first file.
func (t *Tree) First() {
	if len(t.items) > 0 {
		t.selectIndex(0)
	}
}

// Last selects the last file.
func (t *Tree) Last() {
	if len(t.items) > 0 {
		t.selectIndex(len(t.items) - 2)
	}
}

func (t *Tree) selectIndex(idx int) {
	// Spacers live at odd indices.
	idx -= idx % 2
	idx = min(max(idx, 0), len(t.items)-2)
	t.selected = idx
	t.page = idx / t.pageSize
}

func (t *Tree) clampPage() {
	if t.selected >= 0 {
		t.page = t.selected / t.pageSize
		return
	}
	t.page = min(t.page, t.PageCount()-1)
}
