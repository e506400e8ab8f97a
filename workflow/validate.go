package workflow

import "regexp"

// InvalidURLMessage is reported for every address the validator rejects.
const InvalidURLMessage = "Please enter a valid url starting with http, https or www."

// urlPattern matches http(s):// or www. prefixed addresses: dotted
// alphanumeric labels with interior hyphens, a 2-5 letter top-level label,
// an optional port and an optional path/query suffix. Case is spelled out in
// the classes because (?i) would also fold non-ASCII letters such as U+017F.
var urlPattern = regexp.MustCompile(`^([Hh][Tt][Tt][Pp][Ss]?://([Ww]{3}\.)?|[Ww]{3}\.)[A-Za-z0-9]+([-.][A-Za-z0-9]+)*\.[A-Za-z]{2,5}(:[0-9]{1,5})?(/.*)?$`)

// ValidationResult is the outcome of a single Validate call.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Validate checks candidate syntactically. It never fails and has no side
// effects.
func Validate(candidate string) ValidationResult {
	if urlPattern.MatchString(candidate) {
		return ValidationResult{Valid: true}
	}
	return ValidationResult{Message: InvalidURLMessage}
}
