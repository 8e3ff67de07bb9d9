package classify

import (
	"regexp"

	"github.com/vamsi200/drashta/internal/event"
)

var sshdClassifier = Classifier{
	Service: event.ServiceSshd,
	Rules: []Rule{
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthSuccess,
			Pattern:  regexp.MustCompile(`^Accepted \w+ for (?P<user>\S+) from (?P<remote_host>\S+) port (?P<port>\d+)`),
		},
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthFailure,
			Pattern:  regexp.MustCompile(`^Failed \S+ for (?:invalid user )?(?P<user>\S+) from (?P<remote_host>\S+) port (?P<port>\d+)`),
		},
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthTooManyAuthFailures,
			Pattern:  regexp.MustCompile(`^Disconnecting(?: authenticating user \S+)? (?P<remote_host>\S+) port \d+: Too many authentication failures`),
		},
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthSessionOpened,
			Pattern:  regexp.MustCompile(`^pam_unix\(sshd:session\): session opened for user (?P<user>\S+)`),
		},
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthSessionClosed,
			Pattern:  regexp.MustCompile(`^pam_unix\(sshd:session\): session closed for user (?P<user>\S+)`),
		},
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthConnectionClosed,
			Pattern:  regexp.MustCompile(`^Connection closed by (?:authenticating user \S+ )?(?P<remote_host>\S+) port (?P<port>\d+)`),
		},
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthIncorrectPassword,
			Pattern:  regexp.MustCompile(`^pam_unix\(sshd:auth\): authentication failure;.*user=(?P<user>\S+)`),
		},
	},
	FallbackCategory: event.CategoryAuth,
	Fallback:         event.SubtypeOther,
}
