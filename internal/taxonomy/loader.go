// =============================================================================
// NZFCC Generator - Taxonomy Loader
// =============================================================================
//
// This module parses an NZFCC categories snapshot (the categories.json file
// published at https://nzfcc.org/downloads/categories.json) into ordered
// category and group records.
//
// SNAPSHOT FORMAT:
//   [
//     {
//       "_id": "nzfcc_...",
//       "name": "Cafes and restaurants",
//       "groups": {
//         "personal_finance": { "_id": "group_...", "name": "Lifestyle" }
//       }
//     },
//     ...
//   ]
//
// STRICTNESS:
//   The generated enums are only correct if the whole schema was consumed,
//   so the loader rejects:
//   - unknown fields at any level (keys match exactly, case included)
//   - a key repeated within one object
//   - input that is not valid UTF-8
//   - missing or empty required fields
//   - stable IDs without the expected prefix
//   - duplicate category IDs
//   - a group ID that appears with two different names
//   - trailing data after the top-level array
//
// =============================================================================

package taxonomy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls the loader's ID checks.
type Options struct {
	// GroupIDPrefix is the prefix every group stable ID must carry.
	// Default: "group_"
	GroupIDPrefix string

	// CodeIDPrefix is the prefix every category stable ID must carry.
	// Default: "nzfcc_"
	CodeIDPrefix string
}

// DefaultOptions returns the prefixes used by the published NZFCC snapshot.
func DefaultOptions() Options {
	return Options{
		GroupIDPrefix: "group_",
		CodeIDPrefix:  "nzfcc_",
	}
}

// =============================================================================
// WIRE SCHEMA
// =============================================================================

type rawCategory struct {
	ID     string    `json:"_id" validate:"required,code_id"`
	Name   string    `json:"name" validate:"required"`
	Groups rawGroups `json:"groups"`
}

type rawGroups struct {
	PersonalFinance rawGroup `json:"personal_finance"`
}

type rawGroup struct {
	ID   string `json:"_id" validate:"required,group_id"`
	Name string `json:"name" validate:"required"`
}

// keySchema lists the exact keys allowed in an object. A nil child means the
// value is not an object; its type is checked by the struct decode.
type keySchema map[string]keySchema

var entryKeys = keySchema{
	"_id":  nil,
	"name": nil,
	"groups": {
		"personal_finance": {
			"_id":  nil,
			"name": nil,
		},
	},
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// LoadFile reads and parses the snapshot at path.
//
// PARAMETERS:
//   - path: The snapshot file (usually categories.json).
//   - opts: ID prefix options.
//
// RETURNS:
//   - The parsed snapshot.
//   - A *SnapshotParseError if the file is malformed, or an I/O error.
func LoadFile(path string, opts Options) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	snap, err := parse(data, path, opts)
	if err != nil {
		return nil, err
	}
	snap.Source = path
	return snap, nil
}

// Load parses a snapshot from r.
func Load(r io.Reader, opts Options) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return parse(data, "", opts)
}

func parse(data []byte, path string, opts Options) (*Snapshot, error) {
	fail := func(index int, reason string, err error) error {
		return &SnapshotParseError{Path: path, Index: index, Reason: reason, Err: err}
	}

	// -------------------------------------------------------------------------
	// Step 1: strict decode
	// -------------------------------------------------------------------------
	if !utf8.Valid(data) {
		return nil, fail(-1, "snapshot is not valid UTF-8", nil)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var entries []rawCategory
	if err := dec.Decode(&entries); err != nil {
		return nil, fail(-1, "invalid JSON", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fail(-1, "unexpected data after the category list", err)
	}

	// encoding/json matches keys case-insensitively and lets a repeated key
	// overwrite the first one, so the keys are checked separately.
	if index, err := checkKeys(data); err != nil {
		return nil, fail(index, err.Error(), nil)
	}
	if len(entries) == 0 {
		return nil, fail(-1, "snapshot contains no categories", nil)
	}

	// -------------------------------------------------------------------------
	// Step 2: field validation
	// -------------------------------------------------------------------------
	validate := newValidator(opts)
	for i := range entries {
		if err := validate.Struct(&entries[i]); err != nil {
			return nil, fail(i, describeValidation(err), err)
		}
	}

	// -------------------------------------------------------------------------
	// Step 3: reshape and deduplicate groups
	// -------------------------------------------------------------------------
	snap := &Snapshot{
		Categories: make([]CategoryRecord, 0, len(entries)),
	}
	groups := make(map[string]*GroupRecord)
	seenCodes := make(map[string]int, len(entries))

	for i, e := range entries {
		if first, dup := seenCodes[e.ID]; dup {
			return nil, fail(i, fmt.Sprintf("duplicate category id %q (first seen at entry %d)", e.ID, first), nil)
		}
		seenCodes[e.ID] = i

		rg := e.Groups.PersonalFinance
		group, ok := groups[rg.ID]
		if !ok {
			group = &GroupRecord{ID: rg.ID, Name: rg.Name}
			groups[rg.ID] = group
			snap.Groups = append(snap.Groups, group)
		} else if group.Name != rg.Name {
			return nil, fail(i, fmt.Sprintf("group %q is named both %q and %q", rg.ID, group.Name, rg.Name), nil)
		}

		snap.Categories = append(snap.Categories, CategoryRecord{
			ID:    e.ID,
			Name:  e.Name,
			Group: group,
		})
	}

	return snap, nil
}

// =============================================================================
// KEY CHECKS
// =============================================================================

// checkKeys walks the (already decoded) category list token by token and
// rejects keys that are not spelled exactly as in entryKeys, or that appear
// twice in the same object.
//
// RETURNS:
//   - The index of the offending entry and the reason, or -1 and nil.
func checkKeys(data []byte) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return -1, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return -1, nil
	}

	for i := 0; dec.More(); i++ {
		if err := checkValue(dec, entryKeys, ""); err != nil {
			return i, err
		}
	}
	return -1, nil
}

// checkValue consumes one value. Object keys are checked against schema
// unless schema is nil.
func checkValue(dec *json.Decoder, schema keySchema, path string) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}

	switch delim {
	case '[':
		for dec.More() {
			if err := checkValue(dec, nil, path); err != nil {
				return err
			}
		}

	case '{':
		seen := make(map[string]bool)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := keyTok.(string)

			field := key
			if path != "" {
				field = path + "." + key
			}

			var child keySchema
			if schema != nil {
				sub, known := schema[key]
				if !known {
					return fmt.Errorf("unknown field %q", field)
				}
				if seen[key] {
					return fmt.Errorf("duplicate field %q", field)
				}
				seen[key] = true
				child = sub
			}

			if err := checkValue(dec, child, field); err != nil {
				return err
			}
		}
	}

	// Closing ']' or '}'.
	_, err = dec.Token()
	return err
}

// =============================================================================
// VALIDATION HELPERS
// =============================================================================

func newValidator(opts Options) *validator.Validate {
	v := validator.New()

	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	prefixed := func(prefix string) validator.Func {
		return func(fl validator.FieldLevel) bool {
			return strings.HasPrefix(fl.Field().String(), prefix)
		}
	}
	// Registration only fails for empty or reserved tag names.
	_ = v.RegisterValidation("group_id", prefixed(opts.GroupIDPrefix))
	_ = v.RegisterValidation("code_id", prefixed(opts.CodeIDPrefix))

	return v
}

// describeValidation turns the first validator failure into a short reason
// such as `field "groups.personal_finance._id" is required`.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid entry"
	}

	fe := verrs[0]
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field %q is required", field)
	case "group_id", "code_id":
		return fmt.Sprintf("field %q has an unexpected id prefix: %q", field, fe.Value())
	default:
		return fmt.Sprintf("field %q failed %q", field, fe.Tag())
	}
}
