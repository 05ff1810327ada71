package core

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// PaletteItem is one jump target: a page section or a page-level command.
type PaletteItem struct {
	ID     string
	Label  string
	Meta   string
	Search string // optional override for matching; Label when empty
}

type PaletteAction int

const (
	PaletteActionNone PaletteAction = iota
	PaletteActionMoved
	PaletteActionSelected
	PaletteActionCancelled
)

type PaletteResult struct {
	Action PaletteAction
	Item   PaletteItem
}

// Palette is the filtering state behind the jump screen. All methods are
// nil-receiver safe so a page without registered targets degrades to an
// inert palette instead of a crash.
type Palette struct {
	title    string
	items    []PaletteItem
	filtered []PaletteItem
	query    string
	cursor   int
}

func NewPalette(title string, items []PaletteItem) *Palette {
	p := &Palette{title: strings.TrimSpace(title)}
	p.SetItems(items)
	return p
}

func (p *Palette) Title() string {
	if p == nil {
		return ""
	}
	return p.title
}

func (p *Palette) Query() string {
	if p == nil {
		return ""
	}
	return p.query
}

func (p *Palette) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

func (p *Palette) Items() []PaletteItem {
	if p == nil {
		return nil
	}
	return append([]PaletteItem(nil), p.filtered...)
}

func (p *Palette) SetItems(items []PaletteItem) {
	if p == nil {
		return
	}
	p.items = append([]PaletteItem(nil), items...)
	p.rebuildFiltered()
}

func (p *Palette) SetQuery(q string) {
	if p == nil {
		return
	}
	p.query = q
	p.rebuildFiltered()
}

func (p *Palette) CurrentItem() (PaletteItem, bool) {
	if p == nil || len(p.filtered) == 0 {
		return PaletteItem{}, false
	}
	idx := min(max(p.cursor, 0), len(p.filtered)-1)
	return p.filtered[idx], true
}

func (p *Palette) HandleKey(keyName string) PaletteResult {
	if p == nil {
		return PaletteResult{Action: PaletteActionNone}
	}
	switch keyName {
	case "up", "ctrl+p":
		if p.cursor > 0 {
			p.cursor--
			return PaletteResult{Action: PaletteActionMoved}
		}
		return PaletteResult{Action: PaletteActionNone}
	case "down", "ctrl+n":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
			return PaletteResult{Action: PaletteActionMoved}
		}
		return PaletteResult{Action: PaletteActionNone}
	case "enter":
		item, ok := p.CurrentItem()
		if !ok {
			return PaletteResult{Action: PaletteActionNone}
		}
		return PaletteResult{Action: PaletteActionSelected, Item: item}
	case "esc":
		return PaletteResult{Action: PaletteActionCancelled}
	case "backspace":
		if len(p.query) > 0 {
			p.SetQuery(p.query[:len(p.query)-1])
		}
		return PaletteResult{Action: PaletteActionNone}
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
		return PaletteResult{Action: PaletteActionNone}
	}
}

type scoredPaletteItem struct {
	item  PaletteItem
	score int
	index int
}

func (p *Palette) rebuildFiltered() {
	if p == nil {
		return
	}
	q := strings.TrimSpace(p.query)
	scored := make([]scoredPaletteItem, 0, len(p.items))
	for idx, item := range p.items {
		search := strings.TrimSpace(item.Search)
		if search == "" {
			search = item.Label
		}
		matched, score := matchScore(search, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredPaletteItem{item: item, score: score, index: idx})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})
	p.filtered = p.filtered[:0]
	for _, row := range scored {
		p.filtered = append(p.filtered, row.item)
	}
	if p.cursor > len(p.filtered)-1 {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// matchScore ranks label against query: subsequence matches score by
// adjacency and prefix bonuses; when the subsequence fails, a small
// edit-distance window still admits near misses so a one-letter typo does
// not empty the list.
func matchScore(label, query string) (bool, int) {
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
			return nearMatchScore(labelLower, queryLower)
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

// nearMatchScore admits typos: any word of the label within edit distance 2
// of the query keeps the item listed, ranked below all subsequence matches.
func nearMatchScore(labelLower, queryLower string) (bool, int) {
	if len(queryLower) < 3 {
		return false, 0
	}
	best := -1
	for _, word := range strings.Fields(labelLower) {
		d := levenshtein.ComputeDistance(word, queryLower)
		if d <= 2 && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return false, 0
	}
	return true, 2 - best
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
