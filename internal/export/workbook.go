// =============================================================================
// NZFCC Generator - Spreadsheet Export
// =============================================================================
//
// This module writes a loaded snapshot to an XLSX workbook so the taxonomy
// can be reviewed outside the code base (e.g. before refreshing the
// generated package).
//
// WORKBOOK LAYOUT:
//   Sheet "Groups": Group ID | Name | Identifier | Code Count
//   Sheet "Codes":  Code ID  | Name | Identifier | Group ID | Group Name
//
//   Row 1 is a bold, frozen header. Rows follow snapshot order. The
//   Identifier column shows the derived identifier, so naming collisions can
//   be spotted before running `generate`.
//
// =============================================================================

package export

import (
	"fmt"

	"github.com/ginjaninja78/nzfcc/internal/identifier"
	"github.com/ginjaninja78/nzfcc/internal/taxonomy"
	"github.com/xuri/excelize/v2"
)

// Sheet names.
const (
	GroupsSheet = "Groups"
	CodesSheet  = "Codes"
)

var (
	groupsHeader = []interface{}{"Group ID", "Name", "Identifier", "Code Count"}
	codesHeader  = []interface{}{"Code ID", "Name", "Identifier", "Group ID", "Group Name"}
)

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// WriteWorkbook writes snap to an XLSX file at path.
//
// PARAMETERS:
//   - snap: A loaded snapshot.
//   - path: The destination .xlsx file.
//
// RETURNS:
//   - An error if the workbook cannot be built or saved.
func WriteWorkbook(snap *taxonomy.Snapshot, path string) error {
	f, err := Build(snap)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Build creates the workbook in memory. The caller must Close it.
func Build(snap *taxonomy.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), GroupsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(CodesSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	// -------------------------------------------------------------------------
	// Groups sheet
	// -------------------------------------------------------------------------
	counts := snap.CodesByGroup()
	groupRows := make([][]interface{}, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		groupRows = append(groupRows, []interface{}{
			g.ID,
			g.Name,
			identifier.ForGroup(g.Name),
			len(counts[g.ID]),
		})
	}
	if err := writeSheet(f, GroupsSheet, groupsHeader, groupRows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	// -------------------------------------------------------------------------
	// Codes sheet
	// -------------------------------------------------------------------------
	codeRows := make([][]interface{}, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		codeRows = append(codeRows, []interface{}{
			c.ID,
			c.Name,
			identifier.ForCode(c.Name),
			c.Group.ID,
			c.Group.Name,
		})
	}
	if err := writeSheet(f, CodesSheet, codesHeader, codeRows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// writeSheet writes a header row and data rows starting at A1.
func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", lastCol, 32); err != nil {
		return fmt.Errorf("failed to size %s columns: %w", sheet, err)
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
