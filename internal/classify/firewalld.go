package classify

import (
	"regexp"

	"github.com/vamsi200/drashta/internal/event"
)

var firewalldClassifier = Classifier{
	Service: event.ServiceFirewalld,
	Rules: []Rule{
		{Category: event.CategoryFirewall, Subtype: event.FirewallServiceStarted, Pattern: regexp.MustCompile(`(?i)^firewalld.*starting|successfully started`)},
		{Category: event.CategoryFirewall, Subtype: event.FirewallServiceStopped, Pattern: regexp.MustCompile(`(?i)^firewalld.*stopping|shutting down`)},
		{Category: event.CategoryFirewall, Subtype: event.FirewallConfigReloaded, Pattern: regexp.MustCompile(`(?i)reloaded$|reload\(\) invoked`)},
		{Category: event.CategoryFirewall, Subtype: event.FirewallZoneChanged, Pattern: regexp.MustCompile(`ZONE_CHANGE|zone '(?P<zone>\S+)' changed`)},
		{Category: event.CategoryFirewall, Subtype: event.FirewallServiceModified, Pattern: regexp.MustCompile(`SERVICE_.*service '(?P<service>\S+)'`)},
		{Category: event.CategoryFirewall, Subtype: event.FirewallPortModified, Pattern: regexp.MustCompile(`PORT_.*port '(?P<port>\S+)'`)},
		{Category: event.CategoryFirewall, Subtype: event.FirewallRuleApplied, Pattern: regexp.MustCompile(`(?i)ALLOW|rule (?:family|added)`)},
		{Category: event.CategoryFirewall, Subtype: event.FirewallIptablesCommand, Pattern: regexp.MustCompile(`^WARNING: COMMAND_FAILED: '(?P<command>.+)' failed`)},
		{Category: event.CategoryFirewall, Subtype: event.FirewallInterfaceBinding, Pattern: regexp.MustCompile(`interface '(?P<iface>\S+)' (?:added|removed|bound)`)},
		{Category: event.CategoryFirewall, Subtype: event.FirewallCommandFailed, Pattern: regexp.MustCompile(`COMMAND_FAILED`)},
		{Category: event.CategoryFirewall, Subtype: event.FirewallDBusMessage, Pattern: regexp.MustCompile(`(?i)org\.fedoraproject\.FirewallD1`)},
	},
	FallbackCategory: event.CategoryFirewall,
	Fallback:         event.SubtypeOther,
}
