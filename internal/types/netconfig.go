// Package types defines common types used across the application.
package types

import (
	"net"
	"time"
)

// AddressingMode describes how the interface obtained its address.
type AddressingMode int

const (
	ModeUnset AddressingMode = iota
	ModeDHCP
	ModeStatic
)

func (m AddressingMode) String() string {
	switch m {
	case ModeDHCP:
		return "dhcp"
	case ModeStatic:
		return "static"
	default:
		return "unset"
	}
}

// LinkState is the carrier state of the Ethernet link.
type LinkState int

const (
	LinkUnknown LinkState = iota
	LinkUp
	LinkDown
)

func (s LinkState) String() string {
	switch s {
	case LinkUp:
		return "up"
	case LinkDown:
		return "down"
	default:
		return "unknown"
	}
}

// HardwareStatus reports whether the Ethernet hardware is reachable at all.
type HardwareStatus int

const (
	HardwarePresent HardwareStatus = iota
	HardwareAbsent
)

func (s HardwareStatus) String() string {
	if s == HardwareAbsent {
		return "absent"
	}
	return "present"
}

// LeaseEvent is the outcome of one lease-maintenance step.
type LeaseEvent int

const (
	LeaseNone LeaseEvent = iota
	LeaseRenewFailed
	LeaseRenewed
	LeaseRebindFailed
	LeaseRebound
)

func (e LeaseEvent) String() string {
	switch e {
	case LeaseRenewFailed:
		return "renew failed"
	case LeaseRenewed:
		return "renewed"
	case LeaseRebindFailed:
		return "rebind failed"
	case LeaseRebound:
		return "rebound"
	default:
		return "none"
	}
}

// Default values applied by NetConfig.WithDefaults.
const (
	DefaultDHCPTimeout = 60 * time.Second
)

// NetConfig carries the addressing parameters for one interface.
// The MAC address is taken as supplied and not validated.
type NetConfig struct {
	MAC         net.HardwareAddr
	FallbackIP  net.IP
	Gateway     net.IP
	Subnet      net.IP
	DNS         net.IP
	DHCPTimeout time.Duration
}

// WithDefaults returns a copy with the subnet mask and DHCP timeout filled
// in when left empty.
func (c NetConfig) WithDefaults() NetConfig {
	if isZeroIP(c.Subnet) {
		c.Subnet = net.IPv4(255, 255, 255, 0)
	}
	if c.DHCPTimeout <= 0 {
		c.DHCPTimeout = DefaultDHCPTimeout
	}
	return c
}

// Derived returns a copy with the gateway and DNS server derived from the
// fallback address where they were left as the zero address: the gateway
// becomes the .1 host of the fallback's /24, and the DNS server follows
// the gateway.
func (c NetConfig) Derived() NetConfig {
	if isZeroIP(c.Gateway) {
		if ip4 := c.FallbackIP.To4(); ip4 != nil {
			c.Gateway = net.IPv4(ip4[0], ip4[1], ip4[2], 1)
		}
	}
	if isZeroIP(c.DNS) {
		c.DNS = c.Gateway
	}
	return c
}

func isZeroIP(ip net.IP) bool {
	return len(ip) == 0 || ip.IsUnspecified()
}
