package classify

import (
	"regexp"

	"github.com/vamsi200/drashta/internal/event"
)

// systemClassifier is the generic fallback for any SYSLOG_IDENTIFIER/
// _SYSTEMD_UNIT not recognized by one of the eight named services.
var systemClassifier = Classifier{
	Service: event.ServiceSystem,
	Rules: []Rule{
		{Category: event.CategorySystem, Subtype: event.SystemError, Pattern: regexp.MustCompile(`(?i)\berror\b`)},
		{Category: event.CategorySystem, Subtype: event.SystemWarning, Pattern: regexp.MustCompile(`(?i)\bwarn(?:ing)?\b`)},
	},
	FallbackCategory: event.CategorySystem,
	Fallback:         event.SubtypeOther,
}
