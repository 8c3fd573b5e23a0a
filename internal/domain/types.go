package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIllegalMove reports a transition that breaks adjacency, emptiness or membership rules.
	ErrIllegalMove = errors.New("illegal move")
	// ErrMalformed reports an instance the search cannot start from.
	ErrMalformed = errors.New("malformed instance")
)

// Item is a single device. Items with the same Category form a pair.
type Item struct {
	Category string `json:"category"`
	Kind     Kind   `json:"kind"`
}

// String returns the compact identifier, e.g. "LiG" or "HM".
func (i Item) String() string { return i.Category + i.Kind.Suffix() }

// Match returns the counterpart of the item: the generator for a microchip and vice versa.
func (i Item) Match() Item {
	if i.Kind == Microchip {
		return Item{Category: i.Category, Kind: Generator}
	}
	return Item{Category: i.Category, Kind: Microchip}
}

// Less orders items by identifier.
func (i Item) Less(o Item) bool { return i.String() < o.String() }

// ParseItem reads a compact identifier such as "LiG" or "HM".
func ParseItem(code string) (Item, error) {
	code = strings.TrimSpace(code)
	if len(code) < 2 {
		return Item{}, fmt.Errorf("%w: item code %q", ErrMalformed, code)
	}
	cat, suf := code[:len(code)-1], code[len(code)-1:]
	switch suf {
	case "G":
		return Item{Category: cat, Kind: Generator}, nil
	case "M":
		return Item{Category: cat, Kind: Microchip}, nil
	}
	return Item{}, fmt.Errorf("%w: item code %q", ErrMalformed, code)
}

// Move describes one elevator trip.
type Move struct {
	From  int      `json:"from"`
	To    int      `json:"to"`
	Items []string `json:"items"`
}

// Direction reports which way the move goes.
func (m Move) Direction() Direction {
	if m.To < m.From {
		return Down
	}
	return Up
}

func (m Move) String() string {
	return fmt.Sprintf("%s %d->%d [%s]", m.Direction(), m.From, m.To, strings.Join(m.Items, " "))
}

// Solution is a persisted search outcome with metadata.
type Solution struct {
	ID         string     `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string     `json:"name,omitempty" yaml:"name,omitempty"`
	Part       int        `json:"part,omitempty" yaml:"part,omitempty"`
	Floors     [][]string `json:"floors" yaml:"floors"`
	Solved     bool       `json:"solved" yaml:"solved"`
	Cost       int        `json:"cost" yaml:"cost"`
	Moves      []Move     `json:"moves,omitempty" yaml:"moves,omitempty"`
	Explored   int        `json:"explored,omitempty" yaml:"explored,omitempty"`
	DurationMs int64      `json:"durationMs,omitempty" yaml:"durationMs,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// SolutionMeta is a lightweight listing entry.
type SolutionMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Part      int    `json:"part,omitempty"`
	Solved    bool   `json:"solved"`
	Cost      int    `json:"cost"`
	CreatedAt int64  `json:"createdAt"`
}

// Codes converts floors of items to their compact identifiers.
func Codes(floors [][]Item) [][]string {
	out := make([][]string, len(floors))
	for i, f := range floors {
		out[i] = make([]string, 0, len(f))
		for _, it := range f {
			out[i] = append(out[i], it.String())
		}
	}
	return out
}
