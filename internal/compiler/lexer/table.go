package lexer

import (
	"errors"
	"fmt"
	"sort"
)

// Range classifies a token code into one of the registered buckets.
type Range int

const (
	// RangeNone is the classification of codes outside every registered range
	// (delimiters and unknown codes).
	RangeNone Range = iota
	// RangeKeyword covers reserved words.
	RangeKeyword
	// RangeIdentifier covers user-defined names.
	RangeIdentifier
	// RangeConstant covers unsigned integer literals.
	RangeConstant
)

// First code of each range.
const (
	KeywordsBegin    = 301
	ConstantsBegin   = 501
	IdentifiersBegin = 1001
)

// ErrUnknownCode is returned by Lookup for a code that was never registered.
var ErrUnknownCode = errors.New("unknown token code")

// String returns the display name of a Range
func (r Range) String() string {
	switch r {
	case RangeKeyword:
		return "Keyword"
	case RangeIdentifier:
		return "Identifier"
	case RangeConstant:
		return "Constant"
	default:
		return "None"
	}
}

// Entry is one registered code.
type Entry struct {
	Code  int    `json:"code" yaml:"code"`
	Name  string `json:"name" yaml:"name"`
	Range Range  `json:"range" yaml:"range"`
}

// Table maps token codes to display names and ranges.
//
// Thread Safety: Table is NOT thread-safe. The lexer populates it and the
// parser reads it afterwards within the same analysis.
type Table struct {
	byCode map[int]Entry
	byName map[Range]map[string]int
	next   map[Range]int
}

// NewTable creates a table pre-populated with the Signal keywords
func NewTable() *Table {
	t := &Table{
		byCode: make(map[int]Entry),
		byName: make(map[Range]map[string]int),
		next: map[Range]int{
			RangeKeyword:    KeywordsBegin,
			RangeConstant:   ConstantsBegin,
			RangeIdentifier: IdentifiersBegin,
		},
	}

	names := make([]string, 0, len(Keywords))
	for name := range Keywords {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		// Keywords never collide with each other
		_ = t.Register(Keywords[name], name, RangeKeyword)
	}

	return t
}

// Register adds a code with an explicit name and range. Registering the same
// code twice is allowed only with identical name and range.
func (t *Table) Register(code int, name string, r Range) error {
	if r == RangeNone {
		return fmt.Errorf("cannot register %q (code %d) without a range", name, code)
	}
	if existing, ok := t.byCode[code]; ok {
		if existing.Name != name || existing.Range != r {
			return fmt.Errorf("code %d already registered as %s %q", code, existing.Range, existing.Name)
		}
		return nil
	}

	t.byCode[code] = Entry{Code: code, Name: name, Range: r}
	if t.byName[r] == nil {
		t.byName[r] = make(map[string]int)
	}
	t.byName[r][name] = code
	if code >= t.next[r] {
		t.next[r] = code + 1
	}
	return nil
}

// Intern returns the code for name in range r, assigning the next free code
// of that range on first use.
func (t *Table) Intern(name string, r Range) int {
	if code, ok := t.Code(name, r); ok {
		return code
	}
	code := t.next[r]
	_ = t.Register(code, name, r)
	return code
}

// Code returns the code registered for name in range r
func (t *Table) Code(name string, r Range) (int, bool) {
	code, ok := t.byName[r][name]
	return code, ok
}

// Lookup returns the entry for code, or ErrUnknownCode
func (t *Table) Lookup(code int) (Entry, error) {
	entry, ok := t.byCode[code]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %d", ErrUnknownCode, code)
	}
	return entry, nil
}

// RangeOf classifies code. Unknown codes are RangeNone, which is how
// delimiters are matched by raw code without registration.
func (t *Table) RangeOf(code int) Range {
	entry, err := t.Lookup(code)
	if err != nil {
		return RangeNone
	}
	return entry.Range
}

// NameOf returns the display name for code
func (t *Table) NameOf(code int) string {
	if entry, err := t.Lookup(code); err == nil {
		return entry.Name
	}
	if code >= 32 && code < 127 {
		return string(rune(code))
	}
	return fmt.Sprintf("#%d", code)
}

// Entries returns the entries of range r ordered by code
func (t *Table) Entries(r Range) []Entry {
	entries := make([]Entry, 0, len(t.byName[r]))
	for _, code := range t.byName[r] {
		entries = append(entries, t.byCode[code])
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})
	return entries
}

// MarshalText renders the range by name in JSON and YAML output
func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
