package nzfcc

// Refresh the snapshot from https://nzfcc.org/downloads/categories.json,
// then regenerate the constants and tables:
//
//go:generate go run ../.. generate --snapshot ../../categories.json --output-dir . --package nzfcc
