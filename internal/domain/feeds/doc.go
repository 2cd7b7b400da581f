// Package feeds defines the contracts towards the external paper services:
// the arXiv Atom feed and the code repository index.
package feeds
