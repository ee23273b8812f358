package port

import (
	"context"
	"net"
	"time"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/insomniacslk/dhcp/dhcpv4/nclient4"
	"github.com/vishvananda/netlink"
)

//go:generate mockgen -destination=../mock/mock_infrastructure.go -package=mock ethwatchd/internal/port NetworkManager,FileManager,DHCPTransport

// NetworkManager is a port for network interface operations.
// This interface abstracts netlink operations for network configuration.
type NetworkManager interface {
	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)

	// ReplaceAddress adds or replaces an IP address on the interface
	ReplaceAddress(link netlink.Link, addr *netlink.Addr) error

	// DeleteAddress removes an IP address from the interface
	DeleteAddress(link netlink.Link, addr *netlink.Addr) error

	// ListRoutes returns IPv4 routes
	ListRoutes() ([]netlink.Route, error)

	// ReplaceRoute adds or replaces a route
	ReplaceRoute(route *netlink.Route) error

	// SetLinkUp brings the interface up
	SetLinkUp(link netlink.Link) error

	// SetHardwareAddr overrides the interface MAC address
	SetHardwareAddr(link netlink.Link, addr net.HardwareAddr) error
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool
}

// DHCPTransport is a port for the raw DHCPv4 exchanges.
// It hides the packet-level client behind lease-shaped calls.
type DHCPTransport interface {
	// Request performs the full DISCOVER/OFFER/REQUEST/ACK sequence.
	Request(ctx context.Context, interfaceName string, mac net.HardwareAddr, timeout time.Duration) (*nclient4.Lease, error)

	// RequestFromOffer re-runs the REQUEST/ACK half against a held offer,
	// which is how a lease is renewed.
	RequestFromOffer(ctx context.Context, interfaceName string, mac net.HardwareAddr, offer *dhcpv4.DHCPv4, timeout time.Duration) (*nclient4.Lease, error)
}
