// Package diag defines the core diagnostic model shared by all pipeline phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by lexer / parser / semantic passes.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//   - Keep the external code catalog stable: codes are never reassigned and
//     gaps in the numbering stay gaps.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering responsibilities live in internal/diagfmt; orchestration lives in
// internal/driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with the stable
//     external form Exxxx / Wxxxx.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue. The
//     zero span marks a whole-file notice.
//   - Hints – optional fix suggestions ("declare the variable with 'let'").
//   - Notes – optional secondary context ("function declared here").
//
// Notes should be used sparingly: each note must add new context rather than
// repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Phases should use a diag.Reporter to decouple emission from storage. The
// checker, for example, constructs a ReportBuilder via ReportError /
// ReportWarning and chains WithHint / WithNote before calling Emit; Emit
// forwards to the reporter exactly once. diag.BagReporter aggregates
// diagnostics into a Bag, which supports capping, sorting and deduplication;
// DedupReporter filters repeats before they reach storage.
//
// Keep the data model deterministic: any new fields must avoid side effects so
// the CLI and future tooling can safely serialise diagnostics for caching and
// testing.
package diag
