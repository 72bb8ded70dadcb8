// =============================================================================
// NZFCC - New Zealand Financial Category Codes
// =============================================================================
//
// Package nzfcc provides closed enumerations for the New Zealand Financial
// Category Codes taxonomy (https://nzfcc.org/explore/):
//
//   CategoryGroup - high-level groups (e.g. "Professional Services")
//   NzfccCode     - leaf category codes (e.g. "Cafes and restaurants")
//
// The constants and their lookup tables are generated from categories.json
// by `nzfcc generate` (see generate.go). This file holds the hand-written
// runtime: the indexes built once at package initialization, and the
// methods shared by every variant.
//
// EXAMPLE DATA:
//   The bundled categories.json is a stand-in with a subset of the
//   taxonomy. Its stable IDs ("group_example_01", "nzfcc_example_001", ...)
//   are placeholders, not NZFCC IDs; do not persist them. Replace
//   categories.json with the published snapshot and run
//   `go generate ./pkg/nzfcc`.
//
// USAGE:
//   id := nzfcc.GroupProfessionalServices.ID()        // "group_..."
//   g := nzfcc.CodeCafesAndRestaurants.Group()        // nzfcc.GroupLifestyle
//   codes := nzfcc.GroupLifestyle.Codes()             // []nzfcc.NzfccCode
//   c, err := nzfcc.ParseNzfccCode("Cafes and restaurants")
//
// ENCODING:
//   Both types implement encoding.TextMarshaler/TextUnmarshaler using the
//   display name, so they work as JSON and YAML values and map keys.
//   Pointers to both types implement pflag.Value for CLI flags.
//
// =============================================================================

package nzfcc

import (
	"fmt"
	"slices"
)

// =============================================================================
// TYPES
// =============================================================================

// CategoryGroup is an NZFCC category group. The zero value is not a group.
type CategoryGroup uint8

// NzfccCode is an NZFCC category code. The zero value is not a code.
type NzfccCode uint16

type categoryGroupEntry struct {
	id      string
	name    string
	variant string
}

type nzfccCodeEntry struct {
	id      string
	name    string
	variant string
	group   CategoryGroup
}

// =============================================================================
// INDEXES
// =============================================================================

// index is built once from the generated tables and never modified.
var index = buildIndex()

type lookupIndex struct {
	groups      []CategoryGroup
	codes       []NzfccCode
	groupByName map[string]CategoryGroup
	groupByID   map[string]CategoryGroup
	codeByName  map[string]NzfccCode
	codeByID    map[string]NzfccCode

	// groupCodes[g-1] lists the codes of group g in snapshot order.
	groupCodes [][]NzfccCode
}

func buildIndex() *lookupIndex {
	idx := &lookupIndex{
		groups:      make([]CategoryGroup, len(categoryGroupTable)),
		codes:       make([]NzfccCode, len(nzfccCodeTable)),
		groupByName: make(map[string]CategoryGroup, len(categoryGroupTable)),
		groupByID:   make(map[string]CategoryGroup, len(categoryGroupTable)),
		codeByName:  make(map[string]NzfccCode, len(nzfccCodeTable)),
		codeByID:    make(map[string]NzfccCode, len(nzfccCodeTable)),
		groupCodes:  make([][]NzfccCode, len(categoryGroupTable)),
	}

	for i, e := range categoryGroupTable {
		g := CategoryGroup(i + 1)
		idx.groups[i] = g
		idx.groupByName[e.name] = g
		idx.groupByID[e.id] = g
	}

	for i, e := range nzfccCodeTable {
		c := NzfccCode(i + 1)
		if !e.group.IsValid() {
			panic(fmt.Sprintf("nzfcc: code %s references invalid group %d", e.id, e.group))
		}
		idx.codes[i] = c
		idx.codeByName[e.name] = c
		idx.codeByID[e.id] = c
		idx.groupCodes[e.group-1] = append(idx.groupCodes[e.group-1], c)
	}

	return idx
}

// =============================================================================
// CATEGORY GROUP
// =============================================================================

// CategoryGroupValues returns every group in snapshot order.
func CategoryGroupValues() []CategoryGroup {
	return slices.Clone(index.groups)
}

// ParseCategoryGroup returns the group whose display name is exactly s.
func ParseCategoryGroup(s string) (CategoryGroup, error) {
	if g, ok := index.groupByName[s]; ok {
		return g, nil
	}
	return 0, &ParseCategoryGroupError{Input: s}
}

// CategoryGroupByID returns the group with the given stable ID.
func CategoryGroupByID(id string) (CategoryGroup, bool) {
	g, ok := index.groupByID[id]
	return g, ok
}

// IsValid reports whether g is one of the generated groups.
func (g CategoryGroup) IsValid() bool {
	return g > 0 && int(g) <= len(categoryGroupTable)
}

// ID returns the stable group ID. Group IDs are prefixed with "group_".
func (g CategoryGroup) ID() string {
	if !g.IsValid() {
		return ""
	}
	return categoryGroupTable[g-1].id
}

// String returns the display name, e.g. "Professional Services".
func (g CategoryGroup) String() string {
	if !g.IsValid() {
		return fmt.Sprintf("CategoryGroup(%d)", uint8(g))
	}
	return categoryGroupTable[g-1].name
}

// VariantName returns the identifier derived from the display name,
// e.g. "ProfessionalServices".
func (g CategoryGroup) VariantName() string {
	if !g.IsValid() {
		return ""
	}
	return categoryGroupTable[g-1].variant
}

// Codes returns every code in the group, in snapshot order.
func (g CategoryGroup) Codes() []NzfccCode {
	if !g.IsValid() {
		return nil
	}
	return slices.Clone(index.groupCodes[g-1])
}

// MarshalText encodes the group as its display name.
func (g CategoryGroup) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, fmt.Errorf("nzfcc: cannot marshal invalid CategoryGroup %d", uint8(g))
	}
	return []byte(categoryGroupTable[g-1].name), nil
}

// UnmarshalText decodes a display name.
func (g *CategoryGroup) UnmarshalText(text []byte) error {
	parsed, err := ParseCategoryGroup(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Set implements pflag.Value. It accepts a display name, a stable ID or a
// variant name.
func (g *CategoryGroup) Set(s string) error {
	if parsed, err := ParseCategoryGroup(s); err == nil {
		*g = parsed
		return nil
	}
	if parsed, ok := CategoryGroupByID(s); ok {
		*g = parsed
		return nil
	}
	for _, candidate := range index.groups {
		if candidate.VariantName() == s {
			*g = candidate
			return nil
		}
	}
	return &ParseCategoryGroupError{Input: s}
}

// Type implements pflag.Value.
func (g *CategoryGroup) Type() string {
	return "CategoryGroup"
}

// =============================================================================
// NZFCC CODE
// =============================================================================

// NzfccCodeValues returns every code in snapshot order.
func NzfccCodeValues() []NzfccCode {
	return slices.Clone(index.codes)
}

// ParseNzfccCode returns the code whose display name is exactly s.
func ParseNzfccCode(s string) (NzfccCode, error) {
	if c, ok := index.codeByName[s]; ok {
		return c, nil
	}
	return 0, &ParseNzfccCodeError{Input: s}
}

// NzfccCodeByID returns the code with the given stable ID.
func NzfccCodeByID(id string) (NzfccCode, bool) {
	c, ok := index.codeByID[id]
	return c, ok
}

// IsValid reports whether c is one of the generated codes.
func (c NzfccCode) IsValid() bool {
	return c > 0 && int(c) <= len(nzfccCodeTable)
}

// ID returns the stable code ID. NZFCC IDs are prefixed with "nzfcc_".
func (c NzfccCode) ID() string {
	if !c.IsValid() {
		return ""
	}
	return nzfccCodeTable[c-1].id
}

// Group returns the group the code belongs to.
func (c NzfccCode) Group() CategoryGroup {
	if !c.IsValid() {
		return 0
	}
	return nzfccCodeTable[c-1].group
}

// String returns the display name, e.g. "Cafes and restaurants".
func (c NzfccCode) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("NzfccCode(%d)", uint16(c))
	}
	return nzfccCodeTable[c-1].name
}

// VariantName returns the identifier derived from the display name,
// e.g. "CafesAndRestaurants".
func (c NzfccCode) VariantName() string {
	if !c.IsValid() {
		return ""
	}
	return nzfccCodeTable[c-1].variant
}

// MarshalText encodes the code as its display name.
func (c NzfccCode) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("nzfcc: cannot marshal invalid NzfccCode %d", uint16(c))
	}
	return []byte(nzfccCodeTable[c-1].name), nil
}

// UnmarshalText decodes a display name.
func (c *NzfccCode) UnmarshalText(text []byte) error {
	parsed, err := ParseNzfccCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Set implements pflag.Value. It accepts a display name, a stable ID or a
// variant name.
func (c *NzfccCode) Set(s string) error {
	if parsed, err := ParseNzfccCode(s); err == nil {
		*c = parsed
		return nil
	}
	if parsed, ok := NzfccCodeByID(s); ok {
		*c = parsed
		return nil
	}
	for _, candidate := range index.codes {
		if candidate.VariantName() == s {
			*c = candidate
			return nil
		}
	}
	return &ParseNzfccCodeError{Input: s}
}

// Type implements pflag.Value.
func (c *NzfccCode) Type() string {
	return "NzfccCode"
}

// =============================================================================
// ERRORS
// =============================================================================

// ParseCategoryGroupError is returned when a string names no group.
type ParseCategoryGroupError struct {
	Input string
}

// Error implements the error interface.
func (e *ParseCategoryGroupError) Error() string {
	return fmt.Sprintf("nzfcc: unknown category group %q", e.Input)
}

// ParseNzfccCodeError is returned when a string names no code.
type ParseNzfccCodeError struct {
	Input string
}

// Error implements the error interface.
func (e *ParseNzfccCodeError) Error() string {
	return fmt.Sprintf("nzfcc: unknown NZFCC code %q", e.Input)
}
