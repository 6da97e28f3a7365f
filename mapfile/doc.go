// Package mapfile loads road networks from line-oriented text map files.
//
// File format (UTF-8 or ASCII):
//
//	# this is a comment
//	Minis Tirith,Cair Andros,5
//	Cair Andros,Osgiliath,3.5
//
// Each line is classified after stripping surrounding whitespace:
//
//   - empty            → ignored
//   - starts with '#'  → comment, ignored
//   - anything else    → a record FROM,TO,COST
//
// FROM and TO are arbitrary labels without embedded commas; COST must parse
// as a 64-bit floating point number and must be non-negative. Every record
// yields two directed adjacency entries (the road is bidirectional).
//
// Loading is all-or-nothing: the first malformed record aborts the load and
// no partial network is returned. Errors carry the 1-based line number and
// wrap one of the sentinel errors below, so callers can classify them with
// errors.Is.
//
// Errors (sentinel):
//
//   - ErrBadRecord          wrong number of comma-separated fields.
//   - ErrBadCost            cost field is not a number.
//   - core.ErrEmptyLocation a record with an empty endpoint label.
//   - core.ErrNegativeCost  a record with a negative cost.
package mapfile
