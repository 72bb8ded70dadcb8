// =============================================================================
// NZFCC Generator - File Manager Utility
// =============================================================================
//
// This module provides the file operations used by the generator:
//   - Directory management
//   - All-or-nothing writes of generated files
//   - Output file naming
//
// WRITE STRATEGY:
//   Generated files are first written to temporary files in the target
//   directory. Existing destinations are then moved aside and the
//   temporaries renamed into place. If any step fails, the files already
//   moved are put back, so the directory holds either the complete new
//   generation or the previous one.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for one output directory.
type FileManager struct {
	// OutputDir is the directory where output files are placed.
	OutputDir string

	// FileMode is the permission of written files.
	// Default: 0644
	FileMode os.FileMode
}

// NewFileManager creates a new FileManager for outputDir.
func NewFileManager(outputDir string) *FileManager {
	return &FileManager{
		OutputDir: outputDir,
		FileMode:  0o644,
	}
}

// OutputFile is one file to be written by WriteFiles.
type OutputFile struct {
	// Name is the file name relative to OutputDir.
	Name string

	// Data is the complete file content.
	Data []byte
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectories creates the output directory if it doesn't exist.
func (fm *FileManager) EnsureDirectories() error {
	if err := os.MkdirAll(fm.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// =============================================================================
// WRITING
// =============================================================================

// WriteFiles writes every file into OutputDir, all or nothing.
//
// PARAMETERS:
//   - files: The files to write. Names must be plain file names.
//
// RETURNS:
//   - The written paths, in input order.
//   - An error if any file could not be written. In that case every
//     destination keeps its previous content.
func (fm *FileManager) WriteFiles(files ...OutputFile) ([]string, error) {
	if err := fm.EnsureDirectories(); err != nil {
		return nil, err
	}

	// -------------------------------------------------------------------------
	// Stage every file next to its destination.
	// -------------------------------------------------------------------------
	temps := make([]string, 0, len(files))
	cleanup := func() {
		for _, tmp := range temps {
			_ = os.Remove(tmp)
		}
	}

	for _, f := range files {
		if f.Name == "" || filepath.Base(f.Name) != f.Name {
			cleanup()
			return nil, fmt.Errorf("invalid output file name %q", f.Name)
		}

		tmp, err := fm.writeTemp(f)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to write %s: %w", f.Name, err)
		}
		temps = append(temps, tmp)
	}

	// -------------------------------------------------------------------------
	// Refuse destinations that cannot be replaced by a file.
	// -------------------------------------------------------------------------
	dsts := make([]string, len(files))
	for i, f := range files {
		dsts[i] = filepath.Join(fm.OutputDir, f.Name)
		if info, err := os.Lstat(dsts[i]); err == nil && !info.Mode().IsRegular() {
			cleanup()
			return nil, fmt.Errorf("cannot replace %s: not a regular file", dsts[i])
		}
	}

	// -------------------------------------------------------------------------
	// Move them into place, keeping the replaced files until all succeeded.
	// -------------------------------------------------------------------------
	var moved []string
	backups := make(map[string]string)
	rollback := func() {
		for _, dst := range moved {
			_ = os.Remove(dst)
		}
		for dst, bak := range backups {
			_ = os.Rename(bak, dst)
		}
		cleanup()
	}

	for i, dst := range dsts {
		if FileExists(dst) {
			bak := temps[i] + ".bak"
			if err := os.Rename(dst, bak); err != nil {
				rollback()
				return nil, fmt.Errorf("failed to move %s aside: %w", dst, err)
			}
			backups[dst] = bak
		}

		if err := os.Rename(temps[i], dst); err != nil {
			rollback()
			return nil, fmt.Errorf("failed to move %s into place: %w", files[i].Name, err)
		}
		moved = append(moved, dst)
	}

	for _, bak := range backups {
		_ = os.Remove(bak)
	}

	return dsts, nil
}

// WriteFile writes a single file atomically.
func (fm *FileManager) WriteFile(name string, data []byte) (string, error) {
	paths, err := fm.WriteFiles(OutputFile{Name: name, Data: data})
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

func (fm *FileManager) writeTemp(f OutputFile) (string, error) {
	tmp, err := os.CreateTemp(fm.OutputDir, "."+f.Name+".*.tmp")
	if err != nil {
		return "", err
	}

	if _, err := tmp.Write(f.Data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Chmod(fm.FileMode); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName generates an output file name.
//
// PARAMETERS:
//   - format: The file name format with placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Current date (YYYY-MM-DD)
//   - params: Extra placeholder values, keyed without braces.
//
// RETURNS:
//   - The generated file name.
//
// EXAMPLE:
//   format: "nzfcc_{timestamp}_{uuid}.xlsx"
//   result: "nzfcc_20240115_143052_a1b2c3d4-e5f6-7890-abcd-ef1234567890.xlsx"
func GenerateOutputFileName(format string, params map[string]string) string {
	now := time.Now()

	replacements := []string{
		"{uuid}", uuid.New().String(),
		"{timestamp}", now.Format("20060102_150405"),
		"{date}", now.Format("2006-01-02"),
	}
	for key, value := range params {
		replacements = append(replacements, "{"+key+"}", value)
	}

	return strings.NewReplacer(replacements...).Replace(format)
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
