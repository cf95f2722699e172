// Package cleaning implements the occurrence-record cleaning pipeline:
// loading tab-separated or Excel exports, normalizing column labels,
// filtering rows by study-window year and coordinate completeness, deriving
// the anio/mes temporal columns, and mapping free-text provinces onto
// comunidades autónomas.
//
// Row-level defects (malformed lines, unparseable dates, missing
// coordinates) never raise errors; they are skipped or left null. Structural
// defects (unreadable file, no occurrence sheet) propagate to the caller.
package cleaning
