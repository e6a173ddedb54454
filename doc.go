// Package organizer provides the types and engines for managing the
// financial and case facts of a separation or divorce in a single local
// document. It is designed to be local-first and privacy-first: the whole
// state lives in one JSON file on the user's machine and never leaves it.
//
// The core functionalities include:
//   - Document Store: a single root Document committed through whole-state
//     transitions with a bounded undo/redo history.
//   - Scenario Engine: monthly income, expense, cash-flow and net-worth
//     projections for the current situation and named what-if variants
//     (sell the house, refinance, trim expenses, side income).
//   - Insight Advisor: a small set of fixed advisory rules pointing at the
//     scenarios worth exploring. Advisory only; it never mutates state.
//   - Deadline Rules: planning deadlines derived from the filing date with
//     per-case day-offset overrides, plus the standard disclosure checklist.
//   - Guided Workflow: a step sequence and a resolver that always points at
//     the single next missing input of the case sub-document.
//   - Import/Export: JSON export with optional passphrase obfuscation
//     (explicitly not encryption), CSV ingestion and quick-add parsing.
//
// This package serves as the foundational logic for the `forg` command-line
// tool.
package organizer
