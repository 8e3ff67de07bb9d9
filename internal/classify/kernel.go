package classify

import (
	"regexp"

	"github.com/vamsi200/drashta/internal/event"
)

var kernelClassifier = Classifier{
	Service: event.ServiceKernel,
	Rules: []Rule{
		{Category: event.CategoryKernel, Subtype: event.KernelPanic, Pattern: regexp.MustCompile(`(?i)Kernel panic`)},
		{Category: event.CategoryKernel, Subtype: event.KernelOomKill, Pattern: regexp.MustCompile(`Out of memory: Kill(?:ed)? process (?P<pid>\d+) \((?P<comm>\S+)\)`)},
		{Category: event.CategoryKernel, Subtype: event.KernelSegfault, Pattern: regexp.MustCompile(`(?P<comm>\S+)\[(?P<pid>\d+)\]: segfault at (?P<address>[0-9a-fx]+)`)},
		{Category: event.CategoryKernel, Subtype: event.KernelUsbDescriptorError, Pattern: regexp.MustCompile(`(?i)usb \S+: device descriptor read.*error`)},
		{Category: event.CategoryKernel, Subtype: event.KernelUsbDeviceEvent, Pattern: regexp.MustCompile(`(?i)usb (?P<usb_dev>\S+): New USB device found`)},
		{Category: event.CategoryKernel, Subtype: event.KernelUsbError, Pattern: regexp.MustCompile(`(?i)usb \S+: .*(error|fail)`)},
		{Category: event.CategoryKernel, Subtype: event.KernelDiskError, Pattern: regexp.MustCompile(`(?i)(?P<device>sd[a-z]\d*|nvme\d+n\d+): .*I/O error`)},
		{Category: event.CategoryKernel, Subtype: event.KernelFsMount, Pattern: regexp.MustCompile(`(?P<fs>\w+): mounted filesystem`)},
		{Category: event.CategoryKernel, Subtype: event.KernelFsError, Pattern: regexp.MustCompile(`(?i)EXT4-fs error|XFS.*Corruption`)},
		{Category: event.CategoryKernel, Subtype: event.KernelCpuError, Pattern: regexp.MustCompile(`(?i)mce: \[Hardware Error\]`)},
		{Category: event.CategoryKernel, Subtype: event.KernelMemoryError, Pattern: regexp.MustCompile(`(?i)Memory failure|hardware memory error`)},
		{Category: event.CategoryKernel, Subtype: event.KernelDeviceDetected, Pattern: regexp.MustCompile(`(?P<device>\S+): new device`)},
		{Category: event.CategoryKernel, Subtype: event.KernelDriverEvent, Pattern: regexp.MustCompile(`(?P<driver>\w+): module verification failed|(?P<driver2>\w+): Invalid ROM`)},
		{Category: event.CategoryKernel, Subtype: event.KernelNetInterface, Pattern: regexp.MustCompile(`(?P<iface>(?:eth|en|wl)\w*\d*): link (?:up|down|is not ready)`)},
		{Category: event.CategoryKernel, Subtype: event.KernelPciDevice, Pattern: regexp.MustCompile(`pci (?P<pci_addr>\S+): `)},
		{Category: event.CategoryKernel, Subtype: event.KernelAcpiEvent, Pattern: regexp.MustCompile(`(?i)ACPI: `)},
		{Category: event.CategoryKernel, Subtype: event.KernelThermalEvent, Pattern: regexp.MustCompile(`(?i)thermal.*critical temperature|CPU\d+: Core temperature above threshold`)},
		{Category: event.CategoryKernel, Subtype: event.KernelDmaError, Pattern: regexp.MustCompile(`(?i)DMAR: DRHD|DMA-API:`)},
		{Category: event.CategoryKernel, Subtype: event.KernelAuditEvent, Pattern: regexp.MustCompile(`^audit: `)},
		{Category: event.CategoryKernel, Subtype: event.KernelKernelTaint, Pattern: regexp.MustCompile(`(?i)taints kernel`)},
		{Category: event.CategoryKernel, Subtype: event.KernelFirmwareLoad, Pattern: regexp.MustCompile(`(?i)Direct firmware load for (?P<firmware>\S+)`)},
		{Category: event.CategoryKernel, Subtype: event.KernelIrqEvent, Pattern: regexp.MustCompile(`(?i)irq \d+: nobody cared|genirq: Flags mismatch`)},
		{Category: event.CategoryKernel, Subtype: event.KernelTaskKilled, Pattern: regexp.MustCompile(`(?P<comm>\S+)\[(?P<pid>\d+)\]: .*killed`)},
		{Category: event.CategoryKernel, Subtype: event.KernelRcuStall, Pattern: regexp.MustCompile(`(?i)rcu_sched self-detected stall|rcu: INFO: rcu_`)},
		{Category: event.CategoryKernel, Subtype: event.KernelWatchdog, Pattern: regexp.MustCompile(`(?i)watchdog: BUG: soft lockup|NMI watchdog: `)},
		{Category: event.CategoryKernel, Subtype: event.KernelBootEvent, Pattern: regexp.MustCompile(`^Linux version |^Booting Linux`)},
		{Category: event.CategoryKernel, Subtype: event.KernelEmergency, Pattern: regexp.MustCompile(`(?i)^emerg(?:ency)?:`)},
		{Category: event.CategoryKernel, Subtype: event.KernelAlert, Pattern: regexp.MustCompile(`(?i)^alert:`)},
		{Category: event.CategoryKernel, Subtype: event.KernelCritical, Pattern: regexp.MustCompile(`(?i)^crit(?:ical)?:`)},
		{Category: event.CategoryKernel, Subtype: event.KernelError, Pattern: regexp.MustCompile(`(?i)\berror\b`)},
		{Category: event.CategoryKernel, Subtype: event.KernelWarning, Pattern: regexp.MustCompile(`(?i)\bwarn(?:ing)?\b`)},
		{Category: event.CategoryKernel, Subtype: event.KernelNotice, Pattern: regexp.MustCompile(`(?i)\bnotice\b`)},
	},
	FallbackCategory: event.CategoryKernel,
	Fallback:         event.SubtypeOther,
}
