// Package kind defines the numeric domain tags used throughout the
// expression graph.
//
// This package contains type definitions and static metadata only. All other
// internal packages import kind; kind imports nothing internal. This ensures
// the kind table remains the foundational layer with no circular
// dependencies.
//
// Key design constraints:
//   - Kinds are immutable tags compared by equality
//   - Per-kind metadata (bit widths, evaluator availability) lives in a
//     static descriptor table, not in a type hierarchy
//   - A Value's Kind never changes after construction
package kind
