// =============================================================================
// NZFCC Generator - Taxonomy Types
// =============================================================================
//
// This file holds the in-memory records produced by the taxonomy loader.
// They are shared by:
//   - codegen (enum synthesis)
//   - export  (spreadsheet report)
//
// Records are built once per load and are never mutated afterwards.
//
// =============================================================================

package taxonomy

// =============================================================================
// RECORDS
// =============================================================================

// GroupRecord is a category group as it appears in the snapshot.
type GroupRecord struct {
	// ID is the stable group identifier (e.g. "group_clasr0ysw0011hk4m6hlxwr5s").
	ID string

	// Name is the human-readable group name (e.g. "Professional Services").
	Name string
}

// CategoryRecord is a single NZFCC category code.
type CategoryRecord struct {
	// ID is the stable category identifier (e.g. "nzfcc_ckouvvyoo000008mlb4fk2g6a").
	ID string

	// Name is the human-readable category name (e.g. "Cafes and restaurants").
	Name string

	// Group points at the owning group inside Snapshot.Groups.
	// Many categories share one group; it is never nil.
	Group *GroupRecord
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is one complete, parsed taxonomy document.
type Snapshot struct {
	// Source is the path the snapshot was read from, or "" for in-memory input.
	Source string

	// Categories holds every entry in snapshot order.
	Categories []CategoryRecord

	// Groups holds one record per distinct group ID, ordered by first
	// appearance across Categories.
	Groups []*GroupRecord
}

// CodesByGroup buckets categories by owning group ID, preserving snapshot
// order inside each bucket.
func (s *Snapshot) CodesByGroup() map[string][]CategoryRecord {
	buckets := make(map[string][]CategoryRecord, len(s.Groups))
	for _, c := range s.Categories {
		buckets[c.Group.ID] = append(buckets[c.Group.ID], c)
	}
	return buckets
}
