// SPDX-License-Identifier: MPL-2.0

// Package audit finds named variables and spreadsheet cell aliases in a host
// document, discovers the expressions that reference them, and removes the
// ones nothing references.
//
// The package is organized around a generic Controller driving a DataSource.
// Two data sources exist: VarSetSource (variable containers) and SheetSource
// (spreadsheet aliases). Both are thin adapters over the document capability;
// the shared machinery (glob/substring filtering, word-boundary reference
// scanning, clone-group exclusion, alias-table normalization) lives in the
// package-level functions.
//
// Every operation reads the live document; nothing is cached across calls.
// The removal path re-checks each item's reference count immediately before
// deleting, so concurrent external edits degrade to per-item failures rather
// than corruption.
package audit
