// Package dashboard implements the company-facing talent pool view: an
// immutable filter state with a single reducer, a pure filtering and sorting
// engine over the fetched candidate set, an access gate that decides between
// the live list and a locked placeholder, and an interaction ledger that
// tracks shortlist and intro-request state with optimistic updates.
//
// One semantic asymmetry is deliberate and must not be "fixed": the sidebar
// language filter narrows (a candidate must speak ALL selected languages)
// while every other multi-select — location, seniority, expertise, work
// eligibility, and all table-view column filters — broadens (ANY selected
// value matches). Companies select languages as hard requirements and
// everything else as alternatives; the two views encode that product
// decision differently on purpose.
package dashboard
