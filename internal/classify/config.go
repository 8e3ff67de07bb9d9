package classify

import (
	"regexp"

	"github.com/vamsi200/drashta/internal/event"
)

var configChangeClassifier = Classifier{
	Service: event.ServiceConfigChange,
	Rules: []Rule{
		{
			Category: event.CategoryConfig,
			Subtype:  event.ConfigSessionOpened,
			Pattern:  regexp.MustCompile(`^pam_unix\(cron:session\): session opened for user (?P<user>\S+)`),
		},
		{
			Category: event.CategoryConfig,
			Subtype:  event.ConfigSessionClosed,
			Pattern:  regexp.MustCompile(`^pam_unix\(cron:session\): session closed for user (?P<user>\S+)`),
		},
		{
			Category: event.CategoryConfig,
			Subtype:  event.ConfigCronReload,
			Pattern:  regexp.MustCompile(`^\((?P<user>\S+)\) RELOAD \((?P<crontab>\S+)\)`),
		},
		{
			Category: event.CategoryConfig,
			Subtype:  event.ConfigCmdRun,
			Pattern:  regexp.MustCompile(`^\((?P<user>\S+)\) CMD \((?P<command>.+)\)$`),
		},
		{
			Category: event.CategoryConfig,
			Subtype:  event.ConfigFailure,
			Pattern:  regexp.MustCompile(`(?i)Failed to reload|Reloading failed|unit .* failed`),
		},
	},
	FallbackCategory: event.CategoryConfig,
	Fallback:         event.SubtypeOther,
}
