// Package leagues compares the currency markets of several game leagues on a
// shared "days since league start" axis.
//
// The input is a collection of poe.ninja market dumps, one per league, each
// recording the exchange rate of many currency categories against the base
// currency (Chaos Orb). The package turns them into a single table:
//   - Catalog: discovering the dump files and reading league and date from
//     their names, most recent first.
//   - Extraction: reading a dump, keeping the rates priced in the base
//     currency, and converting each date into the time elapsed since the
//     league's first snapshot.
//   - Grouping and alignment: pivoting a league into a table indexed by
//     elapsed time with one column per currency, padded to the vocabulary of
//     the newest league.
//   - Join: merging every league into a Combined table whose columns are
//     (currency, league) pairs.
//
// Build runs the whole pipeline, package renderer turns its result into a
// chart or a report.
package leagues
