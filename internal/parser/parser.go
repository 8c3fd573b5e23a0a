// Package parser turns puzzle text and compact item codes into floors of items.
package parser

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"svw.info/elevator/internal/domain"
)

// Vocabulary maps element names to item categories.
var Vocabulary = map[string]string{
	"cobalt":     "Co",
	"curium":     "Cm",
	"dilithium":  "Dl",
	"elerium":    "Lr",
	"hydrogen":   "H",
	"lithium":    "Li",
	"plutonium":  "Pu",
	"polonium":   "Po",
	"promethium": "Pm",
	"ruthenium":  "Ru",
	"strontium":  "Sr",
	"thulium":    "Tm",
}

var deviceRe = regexp.MustCompile(`(\S+?)(?:-compatible)? (generator|microchip)`)

// DefaultExtras are the items found on the first floor in part two.
var DefaultExtras = []string{"LrG", "LrM", "DlG", "DlM"}

// Category returns the symbol for an element name.
func Category(element string) string {
	element = strings.ToLower(strings.TrimSpace(element))
	if c, ok := Vocabulary[element]; ok {
		return c
	}
	if element == "" {
		return ""
	}
	return strings.ToUpper(element[:1]) + element[1:]
}

// Parse reads one floor per line, e.g.
// "The first floor contains a hydrogen-compatible microchip and a lithium generator."
func Parse(lines []string) ([][]domain.Item, error) {
	var floors [][]domain.Item
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		floor := []domain.Item{}
		for _, m := range deviceRe.FindAllStringSubmatch(line, -1) {
			kind := domain.Generator
			if m[2] == "microchip" {
				kind = domain.Microchip
			}
			floor = append(floor, domain.Item{Category: Category(m[1]), Kind: kind})
		}
		floors = append(floors, floor)
	}
	if len(floors) == 0 {
		return nil, fmt.Errorf("%w: no floors", domain.ErrMalformed)
	}
	return floors, nil
}

// ParseText splits text into lines and parses them.
func ParseText(text string) ([][]domain.Item, error) {
	return Parse(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
}

// ParseCodes reads floors given as compact codes such as [["HM","LiM"],["HG"],["LiG"],[]].
func ParseCodes(codes [][]string) ([][]domain.Item, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: no floors", domain.ErrMalformed)
	}
	floors := make([][]domain.Item, len(codes))
	for i, f := range codes {
		floors[i] = make([]domain.Item, 0, len(f))
		for _, c := range f {
			it, err := domain.ParseItem(c)
			if err != nil {
				return nil, fmt.Errorf("floor %d: %w", i+1, err)
			}
			floors[i] = append(floors[i], it)
		}
	}
	return floors, nil
}

// CheckPairs fails when some category has a generator without a microchip or the reverse.
func CheckPairs(floors [][]domain.Item) error {
	count := make(map[domain.Item]int)
	for _, f := range floors {
		for _, it := range f {
			count[it]++
		}
	}
	var bad []string
	for it, n := range count {
		if n > 1 {
			bad = append(bad, it.String()+" (duplicate)")
			continue
		}
		if count[it.Match()] == 0 {
			bad = append(bad, it.String()+" (unpaired)")
		}
	}
	if len(bad) > 0 {
		slices.Sort(bad)
		return fmt.Errorf("%w: %s", domain.ErrMalformed, strings.Join(bad, ", "))
	}
	return nil
}

// WithExtras returns a copy of floors with the given item codes added to the first floor.
func WithExtras(floors [][]domain.Item, extras []string) ([][]domain.Item, error) {
	if len(floors) == 0 {
		return nil, fmt.Errorf("%w: no floors", domain.ErrMalformed)
	}
	out := make([][]domain.Item, len(floors))
	for i, f := range floors {
		out[i] = slices.Clone(f)
	}
	for _, c := range extras {
		it, err := domain.ParseItem(c)
		if err != nil {
			return nil, err
		}
		out[0] = append(out[0], it)
	}
	return out, nil
}
