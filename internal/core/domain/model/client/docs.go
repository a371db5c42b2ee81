// Package client holds the Client aggregate of the dispatch domain.
//
// A client is one entity carrying a variant tag: an Individual (a person
// identified by full name and national ID) or a Company (a legal entity
// identified by legal name and registration ID). There is no shared name
// field; consumers obtain a display name or billing identifier through
// methods that branch on the variant and fail closed on anything else.
package client
