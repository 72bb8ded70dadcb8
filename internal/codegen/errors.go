package codegen

import "fmt"

// Enum names one of the two generated enumerations.
type Enum string

const (
	// EnumCategoryGroup is the group enumeration.
	EnumCategoryGroup Enum = "CategoryGroup"

	// EnumNzfccCode is the category code enumeration.
	EnumNzfccCode Enum = "NzfccCode"
)

// DuplicateIdentifierError is returned when two display names in the same
// enumeration derive the same identifier.
type DuplicateIdentifierError struct {
	Enum       Enum
	Identifier string

	// First and Second are the colliding display names, in snapshot order.
	First  string
	Second string
}

// Error implements the error interface.
func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("%s: %q and %q both derive identifier %q", e.Enum, e.First, e.Second, e.Identifier)
}

// EmptyIdentifierError is returned when a display name has no letters or
// digits to build an identifier from.
type EmptyIdentifierError struct {
	Enum        Enum
	DisplayName string
}

// Error implements the error interface.
func (e *EmptyIdentifierError) Error() string {
	return fmt.Sprintf("%s: display name %q derives an empty identifier", e.Enum, e.DisplayName)
}

// InvalidIdentifierError is returned when the derived constant name is not
// a valid Go identifier (e.g. it contains a numeric character that Go does
// not accept in identifiers, such as "²").
type InvalidIdentifierError struct {
	Enum        Enum
	DisplayName string
	Identifier  string
}

// Error implements the error interface.
func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("%s: display name %q derives invalid Go identifier %q", e.Enum, e.DisplayName, e.Identifier)
}
