// Package report implements the archive store and the HTML renderer that
// produce the arxiv-daily.json and index.html artifacts.
package report
