package domain

// LookupKind discriminates the possible outcomes of an encyclopedia lookup.
type LookupKind int

const (
	PageFound LookupKind = iota
	PageNotFound
	Disambiguation
	LookupFailed
)

// LookupResult is the outcome of resolving a query against the encyclopedia
// service. Callers match on Kind; the remaining fields are only meaningful for
// the kind they belong to.
type LookupResult struct {
	Kind       LookupKind
	Title      string
	Summary    string
	URL        string
	Candidates []string
	Reason     string
}
