// Package ethernet implements the EthernetDriver port for Linux. DHCP
// exchanges go through the DHCPTransport port, address and route
// programming through the NetworkManager port, and carrier sensing uses
// ethtool with sysfs and netlink fallbacks.
package ethernet

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"ethwatchd/internal/pkg/logging"
	"ethwatchd/internal/port"
	"ethwatchd/internal/types"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/insomniacslk/dhcp/dhcpv4/nclient4"
	"github.com/safchain/ethtool"
	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
)

const (
	resolvConfPath = "/etc/resolv.conf"

	// maintenance exchanges are short; the acquisition timeout only
	// applies to the initial AcquireDHCP call
	maintainTimeout = 10 * time.Second

	// wait between failed renew/rebind attempts
	maintainBackoff = 30 * time.Second

	// assumed lease duration when the server sent none
	defaultLeaseTime = 60 * time.Second
)

// Driver is the real EthernetDriver for one Linux interface. It holds the
// current DHCP lease and its T1/T2 bookkeeping; everything else is read
// live from the kernel.
type Driver struct {
	ifaceName  string
	networkMgr port.NetworkManager
	fileMgr    port.FileManager
	transport  port.DHCPTransport
	ethtool    *ethtool.Ethtool // nil when the handle could not be opened

	mac         net.HardwareAddr
	lease       *nclient4.Lease
	leasedAt    time.Time
	nextAttempt time.Time

	resolvConf string
	now        func() time.Time
}

// Ensure Driver implements the EthernetDriver port
var _ port.EthernetDriver = (*Driver)(nil)

// NewDriver creates a driver for the given interface. The interface is not
// resolved here; hardware absence is reported through HardwareStatus rather
// than as a construction error.
func NewDriver(ifaceName string, networkMgr port.NetworkManager, fileMgr port.FileManager, transport port.DHCPTransport) *Driver {
	handle, err := ethtool.NewEthtool()
	if err != nil {
		logging.WithComponentAndInterface("ethernet", ifaceName).
			WithError(err).Debug("ethtool handle unavailable, using sysfs/netlink for carrier state")
		handle = nil
	}

	return &Driver{
		ifaceName:  ifaceName,
		networkMgr: networkMgr,
		fileMgr:    fileMgr,
		transport:  transport,
		ethtool:    handle,
		resolvConf: resolvConfPath,
		now:        time.Now,
	}
}

// Close releases the ethtool handle.
func (d *Driver) Close() {
	if d.ethtool != nil {
		d.ethtool.Close()
	}
}

// AcquireDHCP runs the full DISCOVER/OFFER/REQUEST/ACK exchange and applies
// the resulting lease. A lease that cannot be fully applied is still held;
// only a failed exchange is an acquisition failure.
func (d *Driver) AcquireDHCP(ctx context.Context, mac net.HardwareAddr, timeout time.Duration) error {
	logger := d.logger()

	lease, err := d.transport.Request(ctx, d.ifaceName, mac, timeout)
	if err != nil {
		return fmt.Errorf("DHCP acquisition on %s failed: %w", d.ifaceName, err)
	}

	logger.WithFields(logrus.Fields{
		"ip":         lease.ACK.YourIPAddr.String(),
		"lease_time": lease.ACK.IPAddressLeaseTime(defaultLeaseTime).String(),
	}).Info("DHCP lease acquired")

	if err := d.applyLease(lease.ACK); err != nil {
		logger.WithError(err).Error("Failed to apply DHCP lease")
	}

	d.mac = mac
	d.lease = lease
	d.leasedAt = d.now()
	d.nextAttempt = time.Time{}
	return nil
}

// ConfigureStatic programs the interface with a static address and drops
// any held lease. A non-nil mac that differs from the NIC's current one is
// written to the hardware first.
func (d *Driver) ConfigureStatic(mac net.HardwareAddr, ip, dns, gateway, subnet net.IP) error {
	logger := d.logger()

	link, err := d.networkMgr.GetLinkByName(d.ifaceName)
	if err != nil {
		return fmt.Errorf("failed to get interface: %w", err)
	}

	if len(mac) > 0 && !strings.EqualFold(mac.String(), link.Attrs().HardwareAddr.String()) {
		if err := d.networkMgr.SetHardwareAddr(link, mac); err != nil {
			logger.WithError(err).Warn("Failed to override hardware address")
		}
	}

	if err := d.networkMgr.SetLinkUp(link); err != nil {
		return fmt.Errorf("failed to bring interface up: %w", err)
	}

	ipNet := &net.IPNet{IP: ip, Mask: net.IPMask(subnet.To4())}
	if err := d.programAddress(link, ipNet, 0); err != nil {
		return err
	}

	if len(gateway) > 0 && !gateway.IsUnspecified() {
		if err := d.networkMgr.ReplaceRoute(&netlink.Route{
			LinkIndex: link.Attrs().Index,
			Gw:        gateway,
		}); err != nil {
			return fmt.Errorf("failed to set default gateway: %w", err)
		}
	}

	if len(dns) > 0 && !dns.IsUnspecified() {
		if err := d.writeResolvConf([]net.IP{dns}); err != nil {
			logger.WithError(err).Warn("Failed to configure DNS")
		}
	}

	logger.WithField("ip", ipNet.String()).Info("Static configuration applied")
	d.lease = nil
	return nil
}

// HardwareStatus reports absence only when netlink cannot find the link.
func (d *Driver) HardwareStatus() types.HardwareStatus {
	_, err := d.networkMgr.GetLinkByName(d.ifaceName)
	if err != nil {
		var notFound netlink.LinkNotFoundError
		if errors.As(err, &notFound) {
			return types.HardwareAbsent
		}
	}
	return types.HardwarePresent
}

// LinkStatus reports carrier state. Sources in order of preference:
// ethtool, sysfs carrier file, netlink operational state.
func (d *Driver) LinkStatus() types.LinkState {
	if d.ethtool != nil {
		if state, err := d.ethtool.LinkState(d.ifaceName); err == nil {
			if state != 0 {
				return types.LinkUp
			}
			return types.LinkDown
		}
	}

	carrierPath := fmt.Sprintf("/sys/class/net/%s/carrier", d.ifaceName)
	if data, err := d.fileMgr.ReadFile(carrierPath); err == nil {
		switch strings.TrimSpace(string(data)) {
		case "1":
			return types.LinkUp
		case "0":
			return types.LinkDown
		}
	}

	if link, err := d.networkMgr.GetLinkByName(d.ifaceName); err == nil {
		switch link.Attrs().OperState {
		case netlink.OperUp:
			return types.LinkUp
		case netlink.OperDown, netlink.OperLowerLayerDown:
			return types.LinkDown
		}
	}

	return types.LinkUnknown
}

// LocalIP returns the first IPv4 address on the interface.
func (d *Driver) LocalIP() net.IP {
	if addr := d.firstAddress(); addr != nil {
		return addr.IPNet.IP
	}
	return net.IPv4zero
}

// SubnetMask returns the mask of the first IPv4 address as a dotted quad.
func (d *Driver) SubnetMask() net.IP {
	if addr := d.firstAddress(); addr != nil {
		return net.IP(addr.IPNet.Mask)
	}
	return net.IPv4zero
}

// GatewayIP returns the default route's gateway for this interface.
func (d *Driver) GatewayIP() net.IP {
	link, err := d.networkMgr.GetLinkByName(d.ifaceName)
	if err != nil {
		return net.IPv4zero
	}

	routes, err := d.networkMgr.ListRoutes()
	if err != nil {
		return net.IPv4zero
	}
	for _, route := range routes {
		if route.LinkIndex != link.Attrs().Index || route.Gw == nil {
			continue
		}
		if route.Dst == nil || route.Dst.String() == "0.0.0.0/0" {
			return route.Gw
		}
	}
	return net.IPv4zero
}

// DNSServerIP returns the first nameserver from resolv.conf.
func (d *Driver) DNSServerIP() net.IP {
	data, err := d.fileMgr.ReadFile(d.resolvConf)
	if err != nil {
		return net.IPv4zero
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[0] == "nameserver" {
			if ip := net.ParseIP(fields[1]); ip != nil {
				return ip
			}
		}
	}
	return net.IPv4zero
}

func (d *Driver) firstAddress() *netlink.Addr {
	link, err := d.networkMgr.GetLinkByName(d.ifaceName)
	if err != nil {
		return nil
	}
	addrs, err := d.networkMgr.ListAddresses(link)
	if err != nil {
		return nil
	}
	for i := range addrs {
		if addrs[i].IPNet != nil && addrs[i].IPNet.IP.To4() != nil {
			return &addrs[i]
		}
	}
	return nil
}

// MaintainLease performs one renewal step: nothing before T1, a renew
// against the held offer between T1 and T2, a full rebind past T2. Failed
// attempts back off so a dead server is not hammered every poll.
func (d *Driver) MaintainLease(ctx context.Context) types.LeaseEvent {
	if d.lease == nil {
		return types.LeaseNone
	}

	ack := d.lease.ACK
	leaseDur := ack.IPAddressLeaseTime(defaultLeaseTime)
	t1 := ack.IPAddressRenewalTime(0)
	if t1 <= 0 {
		t1 = leaseDur / 2
	}
	t2 := ack.IPAddressRebindingTime(0)
	if t2 <= 0 {
		t2 = leaseDur * 7 / 8
	}

	now := d.now()
	elapsed := now.Sub(d.leasedAt)
	if elapsed < t1 || now.Before(d.nextAttempt) {
		return types.LeaseNone
	}

	if elapsed < t2 && d.lease.Offer != nil {
		lease, err := d.transport.RequestFromOffer(ctx, d.ifaceName, d.mac, d.lease.Offer, maintainTimeout)
		if err != nil {
			d.nextAttempt = now.Add(maintainBackoff)
			return types.LeaseRenewFailed
		}
		d.adoptLease(lease)
		return types.LeaseRenewed
	}

	lease, err := d.transport.Request(ctx, d.ifaceName, d.mac, maintainTimeout)
	if err != nil {
		d.nextAttempt = now.Add(maintainBackoff)
		return types.LeaseRebindFailed
	}
	d.adoptLease(lease)
	return types.LeaseRebound
}

func (d *Driver) adoptLease(lease *nclient4.Lease) {
	if err := d.applyLease(lease.ACK); err != nil {
		d.logger().WithError(err).Error("Failed to apply refreshed lease")
	}
	d.lease = lease
	d.leasedAt = d.now()
	d.nextAttempt = time.Time{}
}

// applyLease programs the interface from a DHCP ACK: address with lease
// lifetimes, default route, resolv.conf.
func (d *Driver) applyLease(ack *dhcpv4.DHCPv4) error {
	logger := d.logger()

	link, err := d.networkMgr.GetLinkByName(d.ifaceName)
	if err != nil {
		return fmt.Errorf("failed to get interface: %w", err)
	}

	mask := ack.SubnetMask()
	if mask == nil {
		mask = net.IPv4Mask(255, 255, 255, 0)
	}
	ipNet := &net.IPNet{IP: ack.YourIPAddr, Mask: mask}

	leaseTime := ack.IPAddressLeaseTime(defaultLeaseTime)
	if err := d.programAddress(link, ipNet, int(leaseTime.Seconds())); err != nil {
		return err
	}

	if routers := ack.Router(); len(routers) > 0 {
		if err := d.networkMgr.ReplaceRoute(&netlink.Route{
			LinkIndex: link.Attrs().Index,
			Gw:        routers[0],
		}); err != nil {
			return fmt.Errorf("failed to set default gateway: %w", err)
		}
	}

	if dnsServers := ack.DNS(); len(dnsServers) > 0 {
		if err := d.writeResolvConf(dnsServers); err != nil {
			logger.WithError(err).Warn("Failed to configure DNS")
		}
	}

	return nil
}

// programAddress sweeps stale IPv4 addresses off the link, then installs
// the target. A zero lifetime means a permanent (static) address.
func (d *Driver) programAddress(link netlink.Link, ipNet *net.IPNet, lifetimeSec int) error {
	logger := d.logger()

	existing, err := d.networkMgr.ListAddresses(link)
	if err != nil {
		return fmt.Errorf("failed to list addresses: %w", err)
	}
	for _, addr := range existing {
		if addr.IPNet.IP.Equal(ipNet.IP) {
			continue
		}
		if err := d.networkMgr.DeleteAddress(link, &addr); err != nil {
			logger.WithError(err).WithField("address", addr.IPNet.String()).Warn("Failed to remove stale address")
		}
	}

	addr := &netlink.Addr{IPNet: ipNet}
	if lifetimeSec > 0 {
		addr.ValidLft = lifetimeSec
		addr.PreferedLft = lifetimeSec
	}
	if err := d.networkMgr.ReplaceAddress(link, addr); err != nil {
		return fmt.Errorf("failed to program address %s: %w", ipNet.String(), err)
	}
	return nil
}

func (d *Driver) writeResolvConf(dnsServers []net.IP) error {
	var b strings.Builder
	b.WriteString("# Generated by ethwatchd\n")
	for _, dns := range dnsServers {
		fmt.Fprintf(&b, "nameserver %s\n", dns.String())
	}
	content := b.String()

	if current, err := d.fileMgr.ReadFile(d.resolvConf); err == nil && string(current) == content {
		return nil
	}
	if err := d.fileMgr.WriteFile(d.resolvConf, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.resolvConf, err)
	}
	return nil
}

func (d *Driver) logger() *logrus.Entry {
	return logging.WithComponentAndInterface("ethernet", d.ifaceName)
}
