package classify

import (
	"regexp"

	"github.com/vamsi200/drashta/internal/event"
)

var pkgManagerClassifier = Classifier{
	Service: event.ServicePkgManager,
	Rules: []Rule{
		{
			Category: event.CategoryPackage,
			Subtype:  event.PackageInstalled,
			Pattern:  regexp.MustCompile(`(?i)^install (?P<package>\S+)|Installed:\s*(?P<package2>\S+)`),
		},
		{
			Category: event.CategoryPackage,
			Subtype:  event.PackageRemoved,
			Pattern:  regexp.MustCompile(`(?i)^remove (?P<package>\S+)|Erase:\s*(?P<package2>\S+)`),
		},
		{
			Category: event.CategoryPackage,
			Subtype:  event.PackageUpgraded,
			Pattern:  regexp.MustCompile(`(?i)^upgrade (?P<package>\S+) \S+ (?P<new_version>\S+)|Updated:\s*(?P<package2>\S+)`),
		},
		{
			Category: event.CategoryPackage,
			Subtype:  event.PackageDowngraded,
			Pattern:  regexp.MustCompile(`(?i)^downgrade (?P<package>\S+)`),
		},
		{
			Category: event.CategoryPackage,
			Subtype:  event.PackageReinstalled,
			Pattern:  regexp.MustCompile(`(?i)Reinstalled:\s*(?P<package>\S+)`),
		},
	},
	FallbackCategory: event.CategoryPackage,
	Fallback:         event.SubtypeOther,
}
