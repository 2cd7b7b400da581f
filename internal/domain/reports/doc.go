// Package reports defines the archive record format of arxiv-daily.json and
// the contracts for persisting the archive and rendering the HTML page.
package reports
