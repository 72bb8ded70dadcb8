// =============================================================================
// NZFCC Generator - Enum Model
// =============================================================================
//
// This module turns a loaded snapshot into the flat variant lists that the
// templates render. All naming checks happen here, before any source text
// is produced, so a failed build never emits a partial file.
//
// CONSTANT NAMES:
//   Go constants share one package namespace, so group and code variants are
//   prefixed to keep them apart:
//     group "Lifestyle"             -> GroupLifestyle
//     code  "Cafes and restaurants" -> CodeCafesAndRestaurants
//
// =============================================================================

package codegen

import (
	"fmt"
	"go/token"
	"math"

	"github.com/ginjaninja78/nzfcc/internal/identifier"
	"github.com/ginjaninja78/nzfcc/internal/taxonomy"
)

const (
	groupConstPrefix = "Group"
	codeConstPrefix  = "Code"
)

// =============================================================================
// MODEL TYPES
// =============================================================================

// GroupVariant is one generated CategoryGroup constant.
type GroupVariant struct {
	// Ident is the derived identifier (e.g. "ProfessionalServices").
	Ident string

	// Const is the Go constant name (e.g. "GroupProfessionalServices").
	Const string

	ID   string
	Name string
}

// CodeVariant is one generated NzfccCode constant.
type CodeVariant struct {
	Ident string
	Const string
	ID    string
	Name  string

	// GroupConst is the constant name of the owning group.
	GroupConst string
}

// Model is everything the templates need.
type Model struct {
	Package string

	// Source is the snapshot file name, recorded in the generated header.
	Source string

	Groups []GroupVariant
	Codes  []CodeVariant
}

// =============================================================================
// MODEL CONSTRUCTION
// =============================================================================

// BuildModel derives identifiers for every group and code in snap.
//
// RETURNS:
//   - The model, with groups in first-appearance order and codes in
//     snapshot order.
//   - *EmptyIdentifierError, *InvalidIdentifierError or
//     *DuplicateIdentifierError on the first naming violation.
func BuildModel(snap *taxonomy.Snapshot, pkg, source string) (*Model, error) {
	if len(snap.Groups) > math.MaxUint8 {
		return nil, fmt.Errorf("%s: %d groups exceed the uint8 range", EnumCategoryGroup, len(snap.Groups))
	}
	if len(snap.Categories) > math.MaxUint16 {
		return nil, fmt.Errorf("%s: %d codes exceed the uint16 range", EnumNzfccCode, len(snap.Categories))
	}

	model := &Model{
		Package: pkg,
		Source:  source,
		Groups:  make([]GroupVariant, 0, len(snap.Groups)),
		Codes:   make([]CodeVariant, 0, len(snap.Categories)),
	}

	// -------------------------------------------------------------------------
	// Groups
	// -------------------------------------------------------------------------
	groupNames := newNameSet(EnumCategoryGroup)
	groupConsts := make(map[string]string, len(snap.Groups))

	for _, g := range snap.Groups {
		ident := identifier.ForGroup(g.Name)
		constName, err := groupNames.claim(g.Name, ident, groupConstPrefix)
		if err != nil {
			return nil, err
		}

		groupConsts[g.ID] = constName
		model.Groups = append(model.Groups, GroupVariant{
			Ident: ident,
			Const: constName,
			ID:    g.ID,
			Name:  g.Name,
		})
	}

	// -------------------------------------------------------------------------
	// Codes
	// -------------------------------------------------------------------------
	codeNames := newNameSet(EnumNzfccCode)

	for _, c := range snap.Categories {
		ident := identifier.ForCode(c.Name)
		constName, err := codeNames.claim(c.Name, ident, codeConstPrefix)
		if err != nil {
			return nil, err
		}

		groupConst, ok := groupConsts[c.Group.ID]
		if !ok {
			// The loader builds Groups from the categories themselves.
			return nil, fmt.Errorf("%s: category %q references unknown group %q", EnumNzfccCode, c.ID, c.Group.ID)
		}

		model.Codes = append(model.Codes, CodeVariant{
			Ident:      ident,
			Const:      constName,
			ID:         c.ID,
			Name:       c.Name,
			GroupConst: groupConst,
		})
	}

	return model, nil
}

// nameSet tracks the identifiers claimed within one enumeration.
type nameSet struct {
	enum  Enum
	owner map[string]string
}

func newNameSet(enum Enum) *nameSet {
	return &nameSet{enum: enum, owner: make(map[string]string)}
}

// claim validates ident and reserves it for displayName, returning the
// prefixed constant name.
func (s *nameSet) claim(displayName, ident, prefix string) (string, error) {
	if ident == "" {
		return "", &EmptyIdentifierError{Enum: s.enum, DisplayName: displayName}
	}

	constName := prefix + ident
	if !token.IsIdentifier(constName) {
		return "", &InvalidIdentifierError{Enum: s.enum, DisplayName: displayName, Identifier: ident}
	}

	if first, taken := s.owner[ident]; taken {
		return "", &DuplicateIdentifierError{
			Enum:       s.enum,
			Identifier: ident,
			First:      first,
			Second:     displayName,
		}
	}
	s.owner[ident] = displayName

	return constName, nil
}
