package component

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Gap between a parent's marker column and its children's marker column,
// on top of the parent's marker width.
const listNestGap = 2

//nolint:gochecknoglobals // Read-only lookup table.
var bullets = []string{"• ", "◦ ", "▪ "}

type listItem struct {
	depth   int
	ordered bool
	marker  string
	words   []Word
}

// transformList renumbers ordered markers, aligns marker columns per depth,
// and wraps every item behind its marker.
func (b *Block) transformList(width int) {
	items := b.listItems()
	renumber(items)

	ordered := map[int]int{}
	markers := map[int]int{}
	maxDepth := 0
	for _, item := range items {
		w := stringWidth(item.marker)
		if item.ordered {
			ordered[item.depth] = max(ordered[item.depth], w)
		}
		markers[item.depth] = max(markers[item.depth], w)
		maxDepth = max(maxDepth, item.depth)
	}

	cols := make([]int, maxDepth+1)
	for depth := 1; depth <= maxDepth; depth++ {
		cols[depth] = cols[depth-1] + listNestGap + markers[depth-1]
	}

	var rows [][]Word
	for _, item := range items {
		indent := cols[item.depth]
		textCol := indent + stringWidth(item.marker)
		if item.ordered {
			indent += ordered[item.depth] - stringWidth(item.marker)
			textCol = cols[item.depth] + ordered[item.depth]
		}

		marker := NewWord(item.marker, KindListMarker)
		lead := NewWord(strings.Repeat(" ", indent), KindWhite)
		hang := NewWord(strings.Repeat(" ", textCol), KindWhite)
		prefix := func(first bool) []Word {
			if first {
				return []Word{lead, marker}
			}
			return []Word{hang}
		}

		wrapped := wrapSource([][]Word{item.words}, max(width, textCol+1), prefix)
		if len(wrapped) == 0 {
			wrapped = [][]Word{{lead, marker}}
		}
		rows = append(rows, wrapped...)
	}

	b.Content = rows
	b.height = len(rows)
}

// listItems pairs every source row with its depth/type metadata. Rows
// without metadata default to depth 0 unordered.
func (b *Block) listItems() []listItem {
	type pair struct {
		depth   int
		ordered bool
	}
	var pairs []pair
	for i := range b.Meta {
		kind := b.Meta[i].kind
		if kind.Tag != WordMetaInfo {
			continue
		}
		switch kind.Meta {
		case MetaListDepth:
			depth, err := strconv.Atoi(b.Meta[i].Content)
			if err != nil || depth < 0 {
				depth = 0
			}
			pairs = append(pairs, pair{depth: depth})
		case MetaListOrdered, MetaListUnordered:
			if len(pairs) > 0 {
				pairs[len(pairs)-1].ordered = kind.Meta == MetaListOrdered
			}
		}
	}

	items := make([]listItem, 0, len(b.source))
	prevDepth := -1
	for idx, row := range b.source {
		item := listItem{}
		if idx < len(pairs) {
			item.depth = pairs[idx].depth
			item.ordered = pairs[idx].ordered
		}
		// A child can only be one level deeper than the item above it.
		if item.depth > prevDepth+1 {
			item.depth = prevDepth + 1
		}
		prevDepth = item.depth

		words := append([]Word(nil), row...)
		if len(words) > 0 && words[0].kind.Tag == WordListMarker {
			words = words[1:]
		}
		item.words = words
		items = append(items, item)
	}
	return items
}

// renumber assigns markers. Ordered markers count per depth with a counter
// stack: entering a deeper level pushes a fresh counter, leaving it pops.
func renumber(items []listItem) {
	var counters []int
	for i := range items {
		depth := items[i].depth
		for len(counters) > depth+1 {
			counters = counters[:len(counters)-1]
		}
		for len(counters) < depth+1 {
			counters = append(counters, 0)
		}
		if items[i].ordered {
			counters[depth]++
			items[i].marker = strconv.Itoa(counters[depth]) + ". "
			continue
		}
		items[i].marker = bullets[depth%len(bullets)]
	}
}

func stringWidth(s string) int {
	return runewidth.StringWidth(s)
}
