// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
	"net"
	"time"

	"ethwatchd/internal/types"
)

//go:generate mockgen -destination=../mock/mock_driver.go -package=mock ethwatchd/internal/port EthernetDriver

// EthernetDriver is a port for the Ethernet hardware abstraction. All real
// networking (DHCP negotiation, address programming, carrier sensing) lives
// behind this interface so the connection manager can be tested against a
// simulated driver.
type EthernetDriver interface {
	// AcquireDHCP attempts a full DHCP exchange and applies the resulting
	// lease to the interface. It blocks at most for the given timeout.
	AcquireDHCP(ctx context.Context, mac net.HardwareAddr, timeout time.Duration) error

	// HardwareStatus reports whether the Ethernet hardware is present.
	HardwareStatus() types.HardwareStatus

	// LinkStatus reports the current carrier state of the link.
	LinkStatus() types.LinkState

	// ConfigureStatic programs the interface with a static address.
	ConfigureStatic(mac net.HardwareAddr, ip, dns, gateway, subnet net.IP) error

	// Current addressing as seen by the driver.
	LocalIP() net.IP
	GatewayIP() net.IP
	SubnetMask() net.IP
	DNSServerIP() net.IP

	// MaintainLease performs one lease-maintenance step (renew at T1,
	// rebind at T2) and reports what, if anything, happened. Calls are
	// bounded and safe to make on every iteration of a polling loop.
	MaintainLease(ctx context.Context) types.LeaseEvent
}

// ConnectionManager is the primary port for connection-state maintenance.
type ConnectionManager interface {
	// Run starts the maintenance loop and runs until the context is
	// cancelled.
	Run(ctx context.Context) error

	// GetInterfaceName returns the name of the managed network interface.
	GetInterfaceName() string
}
