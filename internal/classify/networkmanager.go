package classify

import (
	"regexp"

	"github.com/vamsi200/drashta/internal/event"
)

var networkManagerClassifier = Classifier{
	Service: event.ServiceNetworkManager,
	Rules: []Rule{
		{Category: event.CategoryNetwork, Subtype: event.NetworkConnectionActivated, Pattern: regexp.MustCompile(`<info>\s*\[.*\] device \((?P<device>\S+)\): Activation: successful`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkConnectionDeactivated, Pattern: regexp.MustCompile(`<info>\s*\[.*\] device \((?P<device>\S+)\): state change.*-> 'disconnected'`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkNewConnection, Pattern: regexp.MustCompile(`new connection '(?P<connection>[^']+)'`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkDhcpLease, Pattern: regexp.MustCompile(`(?i)dhcp4.*address (?P<address>[\d.]+)|lease.*obtained`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkIpConfig, Pattern: regexp.MustCompile(`Configuration: updated devices .* IPv[46] configuration`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkDeviceAdded, Pattern: regexp.MustCompile(`\((?P<device>\S+)\): new \S+ device`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkDeviceRemoved, Pattern: regexp.MustCompile(`\((?P<device>\S+)\): released from master`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkWifiAssociationSuccess, Pattern: regexp.MustCompile(`Supplicant interface state.*-> completed|WiFi.*association.*successful`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkWifiAuthFailure, Pattern: regexp.MustCompile(`(?i)4-way handshake failed|wpa.*auth.*fail`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkWifiScan, Pattern: regexp.MustCompile(`\((?P<device>\S+)\): supplicant interface state: scanning`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkStateChange, Pattern: regexp.MustCompile(`NetworkManager state is now (?P<state>\S+)`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkConnectionAttempt, Pattern: regexp.MustCompile(`Activation: starting connection '(?P<connection>[^']+)'`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkPolicyChange, Pattern: regexp.MustCompile(`policy: set '(?P<connection>[^']+)' \(\S+\) as default`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkDnsConfig, Pattern: regexp.MustCompile(`(?i)dns-mgr: updating resolv\.conf`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkVpnEvent, Pattern: regexp.MustCompile(`VPN connection '(?P<connection>[^']+)'`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkFirewallEvent, Pattern: regexp.MustCompile(`firewall (?:backend|config) `)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkAgentRequest, Pattern: regexp.MustCompile(`agent-manager: agent\(.*\) registered`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkConnectivityCheck, Pattern: regexp.MustCompile(`connectivity (?:check|state) (?:changed )?to (?P<state>\S+)`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkDispatcherEvent, Pattern: regexp.MustCompile(`^req:\d+ '(?P<action>\S+)' \[(?P<device>\S+)\]`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkLinkEvent, Pattern: regexp.MustCompile(`\((?P<device>\S+)\): link (?:connected|disconnected)`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkAuditEvent, Pattern: regexp.MustCompile(`^audit: `)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkSystemdEvent, Pattern: regexp.MustCompile(`systemd: Registered as`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkWarning, Pattern: regexp.MustCompile(`<warn>`)},
		{Category: event.CategoryNetwork, Subtype: event.NetworkError, Pattern: regexp.MustCompile(`<error>`)},
	},
	FallbackCategory: event.CategoryNetwork,
	Fallback:         event.SubtypeOther,
}
