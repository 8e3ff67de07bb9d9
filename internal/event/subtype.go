package event

// Subtype constants, grouped by Category. The full set per category is the
// closed taxonomy from the Glossary; a given Subtype value is only
// meaningful alongside the Category it was declared under.
const (
	AuthSuccess             Subtype = "Success"
	AuthFailure             Subtype = "Failure"
	AuthSessionOpened       Subtype = "SessionOpened"
	AuthSessionClosed       Subtype = "SessionClosed"
	AuthConnectionClosed    Subtype = "ConnectionClosed"
	AuthTooManyAuthFailures Subtype = "TooManyAuthFailures"
	AuthIncorrectPassword   Subtype = "IncorrectPassword"
	AuthAuthError           Subtype = "AuthError"
	AuthAuthFailure         Subtype = "AuthFailure"
	AuthNotInSudoers        Subtype = "NotInSudoers"
	AuthAccountExpired      Subtype = "AccountExpired"
	AuthNologinRefused      Subtype = "NologinRefused"
	AuthWarning             Subtype = "Warning"
	AuthInfo                Subtype = "Info"
)

const (
	UserNewUser      Subtype = "NewUser"
	UserNewGroup     Subtype = "NewGroup"
	UserDeleteGroup  Subtype = "DeleteGroup"
	UserDeleteUser   Subtype = "DeleteUser"
	UserModifyUser   Subtype = "ModifyUser"
	UserModifyGroup  Subtype = "ModifyGroup"
	UserPasswdChange Subtype = "PasswdChange"
	UserInfo         Subtype = "Info"
)

const (
	PackageInstalled   Subtype = "Installed"
	PackageRemoved     Subtype = "Removed"
	PackageUpgraded    Subtype = "Upgraded"
	PackageReinstalled Subtype = "Reinstalled"
	PackageDowngraded  Subtype = "Downgraded"
)

const (
	NetworkNewConnection          Subtype = "NewConnection"
	NetworkConnectionActivated    Subtype = "ConnectionActivated"
	NetworkConnectionDeactivated  Subtype = "ConnectionDeactivated"
	NetworkDhcpLease              Subtype = "DhcpLease"
	NetworkIpConfig                Subtype = "IpConfig"
	NetworkDeviceAdded            Subtype = "DeviceAdded"
	NetworkDeviceRemoved          Subtype = "DeviceRemoved"
	NetworkWifiAssociationSuccess Subtype = "WifiAssociationSuccess"
	NetworkWifiAuthFailure        Subtype = "WifiAuthFailure"
	NetworkStateChange            Subtype = "StateChange"
	NetworkConnectionAttempt      Subtype = "ConnectionAttempt"
	NetworkPolicyChange           Subtype = "PolicyChange"
	NetworkWifiScan               Subtype = "WifiScan"
	NetworkDnsConfig              Subtype = "DnsConfig"
	NetworkVpnEvent               Subtype = "VpnEvent"
	NetworkFirewallEvent          Subtype = "FirewallEvent"
	NetworkAgentRequest           Subtype = "AgentRequest"
	NetworkConnectivityCheck      Subtype = "ConnectivityCheck"
	NetworkDispatcherEvent        Subtype = "DispatcherEvent"
	NetworkLinkEvent              Subtype = "LinkEvent"
	NetworkAuditEvent             Subtype = "AuditEvent"
	NetworkVirtualDeviceEvent     Subtype = "VirtualDeviceEvent"
	NetworkSystemdEvent           Subtype = "SystemdEvent"
	NetworkWarning                Subtype = "Warning"
	NetworkError                  Subtype = "Error"
)

const (
	FirewallServiceStarted   Subtype = "ServiceStarted"
	FirewallServiceStopped   Subtype = "ServiceStopped"
	FirewallConfigReloaded   Subtype = "ConfigReloaded"
	FirewallZoneChanged      Subtype = "ZoneChanged"
	FirewallServiceModified  Subtype = "ServiceModified"
	FirewallPortModified     Subtype = "PortModified"
	FirewallRuleApplied      Subtype = "RuleApplied"
	FirewallIptablesCommand  Subtype = "IptablesCommand"
	FirewallInterfaceBinding Subtype = "InterfaceBinding"
	FirewallCommandFailed    Subtype = "CommandFailed"
	FirewallOperationStatus  Subtype = "OperationStatus"
	FirewallModuleMessage    Subtype = "ModuleMessage"
	FirewallDBusMessage      Subtype = "DBusMessage"
	FirewallWarning          Subtype = "Warning"
	FirewallError            Subtype = "Error"
	FirewallInfo             Subtype = "Info"
)

const (
	KernelPanic                Subtype = "Panic"
	KernelOomKill              Subtype = "OomKill"
	KernelSegfault             Subtype = "Segfault"
	KernelUsbError             Subtype = "UsbError"
	KernelUsbDescriptorError   Subtype = "UsbDescriptorError"
	KernelUsbDeviceEvent       Subtype = "UsbDeviceEvent"
	KernelDiskError            Subtype = "DiskError"
	KernelFsMount              Subtype = "FsMount"
	KernelFsError              Subtype = "FsError"
	KernelCpuError             Subtype = "CpuError"
	KernelMemoryError          Subtype = "MemoryError"
	KernelDeviceDetected       Subtype = "DeviceDetected"
	KernelDriverEvent          Subtype = "DriverEvent"
	KernelNetInterface         Subtype = "NetInterface"
	KernelPciDevice            Subtype = "PciDevice"
	KernelAcpiEvent            Subtype = "AcpiEvent"
	KernelThermalEvent         Subtype = "ThermalEvent"
	KernelDmaError             Subtype = "DmaError"
	KernelAuditEvent           Subtype = "AuditEvent"
	KernelKernelTaint          Subtype = "KernelTaint"
	KernelFirmwareLoad         Subtype = "FirmwareLoad"
	KernelIrqEvent             Subtype = "IrqEvent"
	KernelTaskKilled           Subtype = "TaskKilled"
	KernelRcuStall             Subtype = "RcuStall"
	KernelWatchdog             Subtype = "Watchdog"
	KernelBootEvent            Subtype = "BootEvent"
	KernelEmergency            Subtype = "Emergency"
	KernelAlert                Subtype = "Alert"
	KernelCritical             Subtype = "Critical"
	KernelError                Subtype = "Error"
	KernelWarning              Subtype = "Warning"
	KernelNotice               Subtype = "Notice"
	KernelInfo                 Subtype = "Info"
)

const (
	ConfigCmdRun        Subtype = "CmdRun"
	ConfigCronReload    Subtype = "CronReload"
	ConfigSessionOpened Subtype = "SessionOpened"
	ConfigSessionClosed Subtype = "SessionClosed"
	ConfigFailure       Subtype = "Failure"
	ConfigInfo          Subtype = "Info"
)

const (
	SystemInfo    Subtype = "Info"
	SystemWarning Subtype = "Warning"
	SystemError   Subtype = "Error"
)
