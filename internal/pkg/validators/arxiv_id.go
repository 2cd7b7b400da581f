package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Matches both identifier schemes used by arXiv: the post-2007 form
// (e.g. 2108.09112 or 2108.09112v1) and the archive-prefixed legacy form
// (e.g. cs/9901002v1 or math.GT/0309136).
var arxivIDPattern = regexp.MustCompile(`^([a-z-]+(\.[A-Za-z]{2})?/\d{7}|\d{4}\.\d{4,5})(v\d+)?$`)

// ArxivIDValidation validates that a field holds a well-formed arXiv identifier.
func ArxivIDValidation(fl validator.FieldLevel) bool {
	return arxivIDPattern.MatchString(fl.Field().String())
}
