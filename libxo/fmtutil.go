package libxo

import "fmt"

// sprintfSimple formats a single string value through a caller-supplied print
// format immediately (at template-build time), used for the roles whose
// content is already known rather than deferred to the host Sprintf pass
// (e.g. a Title's literal content).
func sprintfSimple(format, content string) string {
	if format == "%u" {
		format = "%s"
	}
	return fmt.Sprintf(format, content)
}
