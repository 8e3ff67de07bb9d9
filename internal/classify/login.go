package classify

import (
	"regexp"

	"github.com/vamsi200/drashta/internal/event"
)

// loginClassifier covers systemd-logind session lifecycle (Auth) as well as
// the user/group management tools (useradd, userdel, usermod, groupadd,
// groupdel, passwd), which is why its rule table mixes Category values
// instead of using one fixed category like every other classifier.
var loginClassifier = Classifier{
	Service: event.ServiceLogin,
	Rules: []Rule{
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthSessionOpened,
			Pattern:  regexp.MustCompile(`^New session (?P<session_id>\S+) of user (?P<user>\S+)`),
		},
		{
			Category: event.CategoryAuth,
			Subtype:  event.AuthSessionClosed,
			Pattern:  regexp.MustCompile(`^Session (?P<session_id>\S+) logged out`),
		},
		{
			Category: event.CategoryUser,
			Subtype:  event.UserNewUser,
			Pattern:  regexp.MustCompile(`^new user: name=(?P<user>\S+), UID=(?P<uid>\d+), GID=(?P<gid>\d+), home=(?P<home>\S+)`),
		},
		{
			Category: event.CategoryUser,
			Subtype:  event.UserDeleteUser,
			Pattern:  regexp.MustCompile(`^delete user '(?P<user>\S+)'`),
		},
		{
			Category: event.CategoryUser,
			Subtype:  event.UserModifyUser,
			Pattern:  regexp.MustCompile(`^change user '(?P<user>\S+)'`),
		},
		{
			Category: event.CategoryUser,
			Subtype:  event.UserNewGroup,
			Pattern:  regexp.MustCompile(`^new group: name=(?P<group>\S+), GID=(?P<gid>\d+)`),
		},
		{
			Category: event.CategoryUser,
			Subtype:  event.UserDeleteGroup,
			Pattern:  regexp.MustCompile(`^removing group '(?P<group>\S+)'`),
		},
		{
			Category: event.CategoryUser,
			Subtype:  event.UserModifyGroup,
			Pattern:  regexp.MustCompile(`^group changed in (?P<group>\S+)`),
		},
		{
			Category: event.CategoryUser,
			Subtype:  event.UserPasswdChange,
			Pattern:  regexp.MustCompile(`^password changed for (?P<user>\S+)`),
		},
	},
	FallbackCategory: event.CategoryAuth,
	Fallback:         event.SubtypeOther,
}
