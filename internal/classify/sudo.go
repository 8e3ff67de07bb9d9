package classify

import (
	"regexp"

	"github.com/vamsi200/drashta/internal/event"
)

var sudoClassifier = Classifier{
	Service: event.ServiceSudo,
	Rules: []Rule{
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthNotInSudoers,
			Pattern:  regexp.MustCompile(`(?P<user>\S+) is not in the sudoers file`),
		},
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthIncorrectPassword,
			Pattern:  regexp.MustCompile(`^\s*(?P<user>\S+) : \d+ incorrect password attempt`),
		},
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthSuccess,
			Pattern:  regexp.MustCompile(`^\s*(?P<user>\S+) : TTY=(?P<tty>\S+) ; PWD=(?P<pwd>\S+) ; USER=(?P<target_user>\S+) ; COMMAND=(?P<command>.+)$`),
		},
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthAccountExpired,
			Pattern:  regexp.MustCompile(`account (?P<user>\S+) has expired`),
		},
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthAuthError,
			Pattern:  regexp.MustCompile(`^\s*(?P<user>\S+) : (?:\d+ )?incorrect password attempt.*;.*authentication failure`),
		},
	},
	FallbackCategory: event.CategoryAuth,
	Fallback:         event.SubtypeOther,
}
