// Package picker is a small type-to-filter list used for the dropdown fields.
package picker

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Item struct {
	ID    int
	Label string
	Meta  string
}

type Picker struct {
	title    string
	items    []Item
	filtered []Item
	query    string
	cursor   int
	suggest  bool // filtered holds near misses, not matches
}

type Action int

const (
	ActionNone Action = iota
	ActionSelected
)

type Result struct {
	Action Action
	Item   Item
}

type scoredItem struct {
	item  Item
	score int
}

func New(title string, items []Item) *Picker {
	p := &Picker{title: title}
	p.SetItems(items)
	return p
}

func (p *Picker) Title() string {
	if p == nil {
		return ""
	}
	return p.title
}

func (p *Picker) SetItems(items []Item) {
	if p == nil {
		return
	}
	p.items = append([]Item(nil), items...)
	p.rebuildFiltered()
}

func (p *Picker) Query() string {
	if p == nil {
		return ""
	}
	return p.query
}

func (p *Picker) SetQuery(q string) {
	if p == nil {
		return
	}
	p.query = q
	p.rebuildFiltered()
}

// Reset clears the query and returns the cursor to the first item.
func (p *Picker) Reset() {
	if p == nil {
		return
	}
	p.query = ""
	p.cursor = 0
	p.rebuildFiltered()
}

func (p *Picker) Visible() []Item {
	if p == nil {
		return nil
	}
	return append([]Item(nil), p.filtered...)
}

func (p *Picker) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

// Suggesting reports whether the visible rows are near misses for a query
// that matched nothing.
func (p *Picker) Suggesting() bool {
	return p != nil && p.suggest
}

// MoveTo puts the cursor on the item with the given label, if visible.
func (p *Picker) MoveTo(label string) {
	if p == nil {
		return
	}
	for i, it := range p.filtered {
		if it.Label == label {
			p.cursor = i
			return
		}
	}
}

func (p *Picker) CursorUp() bool {
	if p == nil || p.cursor == 0 {
		return false
	}
	p.cursor--
	return true
}

func (p *Picker) CursorDown() bool {
	if p == nil || p.cursor >= len(p.filtered)-1 {
		return false
	}
	p.cursor++
	return true
}

func (p *Picker) Current() (Item, bool) {
	if p == nil || len(p.filtered) == 0 {
		return Item{}, false
	}
	idx := p.cursor
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.filtered) {
		idx = len(p.filtered) - 1
	}
	return p.filtered[idx], true
}

// Select returns the item under the cursor.
func (p *Picker) Select() Result {
	it, ok := p.Current()
	if !ok {
		return Result{Action: ActionNone}
	}
	return Result{Action: ActionSelected, Item: it}
}

// Type appends printable input to the query; backspace removes one rune.
func (p *Picker) Type(keyName string) {
	if p == nil {
		return
	}
	switch {
	case keyName == "backspace":
		if q := []rune(p.query); len(q) > 0 {
			p.SetQuery(string(q[:len(q)-1]))
		}
	case keyName == "space" || keyName == " ":
		p.SetQuery(p.query + " ")
	case IsPrintableASCIIKey(keyName):
		p.SetQuery(p.query + keyName)
	}
}

func (p *Picker) rebuildFiltered() {
	if p == nil {
		return
	}
	q := strings.TrimSpace(p.query)
	scored := make([]scoredItem, 0, len(p.items))
	for _, it := range p.items {
		matched, score := FuzzyMatchScore(it.Label, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredItem{item: it, score: score})
	}
	p.suggest = false
	if len(scored) == 0 && q != "" {
		scored = p.nearMisses(q)
		p.suggest = len(scored) > 0
	}
	if q != "" {
		sort.SliceStable(scored, func(i, j int) bool {
			if scored[i].score != scored[j].score {
				return scored[i].score > scored[j].score
			}
			return scored[i].item.ID < scored[j].item.ID
		})
	}

	out := make([]Item, 0, len(scored))
	for i := range scored {
		out = append(out, scored[i].item)
	}
	p.filtered = out

	if p.cursor > len(out)-1 {
		p.cursor = len(out) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// nearMisses ranks items by edit distance to the query, keeping those close
// enough to be a typo of the label.
func (p *Picker) nearMisses(q string) []scoredItem {
	ql := strings.ToLower(q)
	var out []scoredItem
	for _, it := range p.items {
		label := strings.ToLower(it.Label)
		dist := levenshtein.ComputeDistance(ql, label)
		if dist > maxTypoDistance(label) {
			continue
		}
		out = append(out, scoredItem{item: it, score: -dist})
	}
	return out
}

func maxTypoDistance(label string) int {
	n := len([]rune(label)) / 3
	if n < 2 {
		return 2
	}
	return n
}

// FuzzyMatchScore reports whether query is a case-insensitive subsequence of
// label, scoring prefix, consecutive and exact matches higher.
func FuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func IsPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
