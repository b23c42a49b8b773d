// Package unicorn provides the functions and types to explore a point-in-time
// snapshot of privately-held billion-dollar companies. It is designed to be
// local-first and auditable: the snapshot is fetched once, persisted in a
// human-readable format, and every report is recomputed from it.
//
// The core functionalities include:
//   - Record Set Management: Loading and validating the company snapshot into
//     an immutable, deduplicated, chronologically ordered set.
//   - Filtering: Selecting companies by industry, country, and founding-year
//     range, the three axes of the analytics dashboard.
//   - Statistics: Computing the dashboard metrics (company count, total and
//     average valuation, average founding year) and the breakdowns (valuation
//     by year joined, country ranking, industry distribution).
//   - Data Persistence: Encoding and decoding the snapshot to and from
//     human-readable, version-controllable formats (CSV in, JSONL at rest).
//
// This package serves as the foundational logic for the `ucs` command-line
// tool, ensuring that all reports are consistent and based on a single
// source of truth.
package unicorn
