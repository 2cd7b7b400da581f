// Package connector implements the clients towards the external paper
// services: the arXiv export API (Atom feed) and the PapersWithCode index.
package connector
