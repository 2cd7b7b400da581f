// Package papers holds the core domain entities of the tracker: the Paper
// entity keyed by its versionless arXiv identifier, the CrawlRun history
// record and the service/repository contracts built around them.
package papers
