//go:build unit

package ethernet

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"ethwatchd/internal/mock"
	"ethwatchd/internal/types"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/insomniacslk/dhcp/dhcpv4/nclient4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	networkMgr *mock.MockNetworkManager
	fileMgr    *mock.MockFileManager
	transport  *mock.MockDHCPTransport
}

// newTestDriver builds a driver without an ethtool handle and with a
// controllable clock.
func newTestDriver(ctrl *gomock.Controller) (*Driver, *testMocks, *time.Time) {
	m := &testMocks{
		networkMgr: mock.NewMockNetworkManager(ctrl),
		fileMgr:    mock.NewMockFileManager(ctrl),
		transport:  mock.NewMockDHCPTransport(ctrl),
	}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	d := &Driver{
		ifaceName:  "eth0",
		networkMgr: m.networkMgr,
		fileMgr:    m.fileMgr,
		transport:  m.transport,
		resolvConf: "/etc/resolv.conf",
		now:        func() time.Time { return now },
	}
	return d, m, &now
}

func testLink() *netlink.Dummy {
	mac, _ := net.ParseMAC("02:00:00:00:00:01")
	return &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Index: 2, Name: "eth0", HardwareAddr: mac}}
}

// testACK builds an ACK for 10.0.0.5/24 with an 80s lease, which puts
// T1 at 40s and T2 at 70s.
func testACK() *dhcpv4.DHCPv4 {
	ack := &dhcpv4.DHCPv4{
		YourIPAddr: net.ParseIP("10.0.0.5").To4(),
		Options:    make(dhcpv4.Options),
	}
	ack.Options.Update(dhcpv4.OptIPAddressLeaseTime(80 * time.Second))
	ack.Options.Update(dhcpv4.OptSubnetMask(net.IPv4Mask(255, 255, 255, 0)))
	return ack
}

func expectApplyLease(m *testMocks, link *netlink.Dummy) {
	m.networkMgr.EXPECT().GetLinkByName("eth0").Return(link, nil)
	m.networkMgr.EXPECT().ListAddresses(link).Return([]netlink.Addr{}, nil)
	m.networkMgr.EXPECT().ReplaceAddress(link, gomock.Any()).Return(nil)
}

func TestDriver_AcquireDHCP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		driver, m, _ := newTestDriver(ctrl)

		mac, _ := net.ParseMAC("de:ed:ba:fe:fe:c3")
		lease := &nclient4.Lease{ACK: testACK()}

		m.transport.EXPECT().
			Request(gomock.Any(), "eth0", mac, 60*time.Second).
			Return(lease, nil)
		expectApplyLease(m, testLink())

		err := driver.AcquireDHCP(context.Background(), mac, 60*time.Second)
		require.NoError(t, err)
		assert.Same(t, lease, driver.lease)
		assert.Equal(t, mac, driver.mac)
	})

	t.Run("ExchangeFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		driver, m, _ := newTestDriver(ctrl)

		m.transport.EXPECT().
			Request(gomock.Any(), "eth0", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("no offer received"))

		err := driver.AcquireDHCP(context.Background(), nil, 15*time.Second)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DHCP acquisition on eth0 failed")
		assert.Nil(t, driver.lease)
	})

	t.Run("StaleAddressSwept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		driver, m, _ := newTestDriver(ctrl)

		link := testLink()
		stale := netlink.Addr{IPNet: &net.IPNet{
			IP:   net.ParseIP("192.168.10.50"),
			Mask: net.IPv4Mask(255, 255, 255, 0),
		}}

		m.transport.EXPECT().
			Request(gomock.Any(), "eth0", gomock.Any(), gomock.Any()).
			Return(&nclient4.Lease{ACK: testACK()}, nil)
		m.networkMgr.EXPECT().GetLinkByName("eth0").Return(link, nil)
		m.networkMgr.EXPECT().ListAddresses(link).Return([]netlink.Addr{stale}, nil)
		m.networkMgr.EXPECT().DeleteAddress(link, gomock.Any()).Return(nil)
		m.networkMgr.EXPECT().ReplaceAddress(link, gomock.Any()).Return(nil)

		err := driver.AcquireDHCP(context.Background(), nil, 60*time.Second)
		require.NoError(t, err)
	})

	t.Run("RouterAndDNSApplied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		driver, m, _ := newTestDriver(ctrl)

		link := testLink()
		ack := testACK()
		ack.Options.Update(dhcpv4.OptRouter(net.ParseIP("10.0.0.1").To4()))
		ack.Options.Update(dhcpv4.OptDNS(net.ParseIP("10.0.0.1").To4()))

		m.transport.EXPECT().
			Request(gomock.Any(), "eth0", gomock.Any(), gomock.Any()).
			Return(&nclient4.Lease{ACK: ack}, nil)
		m.networkMgr.EXPECT().GetLinkByName("eth0").Return(link, nil)
		m.networkMgr.EXPECT().ListAddresses(link).Return([]netlink.Addr{}, nil)
		m.networkMgr.EXPECT().ReplaceAddress(link, gomock.Any()).Return(nil)
		m.networkMgr.EXPECT().ReplaceRoute(gomock.Any()).DoAndReturn(func(route *netlink.Route) error {
			assert.Equal(t, 2, route.LinkIndex)
			assert.Equal(t, "10.0.0.1", route.Gw.String())
			return nil
		})
		m.fileMgr.EXPECT().ReadFile("/etc/resolv.conf").Return(nil, errors.New("missing"))
		m.fileMgr.EXPECT().
			WriteFile("/etc/resolv.conf", []byte("# Generated by ethwatchd\nnameserver 10.0.0.1\n"), 0644).
			Return(nil)

		err := driver.AcquireDHCP(context.Background(), nil, 60*time.Second)
		require.NoError(t, err)
	})
}

func TestDriver_ConfigureStatic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	driver, m, _ := newTestDriver(ctrl)

	link := testLink()
	mac, _ := net.ParseMAC("de:ed:ba:fe:fe:c3")
	ip := net.ParseIP("192.168.10.50")
	gw := net.ParseIP("192.168.10.1")

	m.networkMgr.EXPECT().GetLinkByName("eth0").Return(link, nil)
	m.networkMgr.EXPECT().SetHardwareAddr(link, mac).Return(nil)
	m.networkMgr.EXPECT().SetLinkUp(link).Return(nil)
	m.networkMgr.EXPECT().ListAddresses(link).Return([]netlink.Addr{}, nil)
	m.networkMgr.EXPECT().ReplaceAddress(link, gomock.Any()).DoAndReturn(func(_ netlink.Link, addr *netlink.Addr) error {
		assert.Equal(t, "192.168.10.50/24", addr.IPNet.String())
		assert.Zero(t, addr.ValidLft)
		return nil
	})
	m.networkMgr.EXPECT().ReplaceRoute(gomock.Any()).DoAndReturn(func(route *netlink.Route) error {
		assert.Equal(t, "192.168.10.1", route.Gw.String())
		return nil
	})
	m.fileMgr.EXPECT().ReadFile("/etc/resolv.conf").Return(nil, errors.New("missing"))
	m.fileMgr.EXPECT().
		WriteFile("/etc/resolv.conf", []byte("# Generated by ethwatchd\nnameserver 192.168.10.1\n"), 0644).
		Return(nil)

	driver.lease = &nclient4.Lease{ACK: testACK()}
	err := driver.ConfigureStatic(mac, ip, gw, gw, net.ParseIP("255.255.255.0"))
	require.NoError(t, err)
	// Static mode drops the lease so no maintenance fires afterwards.
	assert.Nil(t, driver.lease)
}

func TestDriver_HardwareStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	driver, m, _ := newTestDriver(ctrl)

	t.Run("Present", func(t *testing.T) {
		m.networkMgr.EXPECT().GetLinkByName("eth0").Return(testLink(), nil)
		assert.Equal(t, types.HardwarePresent, driver.HardwareStatus())
	})

	t.Run("Absent", func(t *testing.T) {
		m.networkMgr.EXPECT().GetLinkByName("eth0").Return(nil, netlink.LinkNotFoundError{})
		assert.Equal(t, types.HardwareAbsent, driver.HardwareStatus())
	})

	t.Run("OtherErrorStillPresent", func(t *testing.T) {
		m.networkMgr.EXPECT().GetLinkByName("eth0").Return(nil, errors.New("netlink receive: EPERM"))
		assert.Equal(t, types.HardwarePresent, driver.HardwareStatus())
	})
}

func TestDriver_LinkStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	driver, m, _ := newTestDriver(ctrl)
	carrierPath := "/sys/class/net/eth0/carrier"

	t.Run("CarrierUp", func(t *testing.T) {
		m.fileMgr.EXPECT().ReadFile(carrierPath).Return([]byte("1\n"), nil)
		assert.Equal(t, types.LinkUp, driver.LinkStatus())
	})

	t.Run("CarrierDown", func(t *testing.T) {
		m.fileMgr.EXPECT().ReadFile(carrierPath).Return([]byte("0\n"), nil)
		assert.Equal(t, types.LinkDown, driver.LinkStatus())
	})

	t.Run("OperStateFallback", func(t *testing.T) {
		m.fileMgr.EXPECT().ReadFile(carrierPath).Return(nil, errors.New("missing"))
		link := testLink()
		link.LinkAttrs.OperState = netlink.OperUp
		m.networkMgr.EXPECT().GetLinkByName("eth0").Return(link, nil)
		assert.Equal(t, types.LinkUp, driver.LinkStatus())
	})

	t.Run("NothingAnswers", func(t *testing.T) {
		m.fileMgr.EXPECT().ReadFile(carrierPath).Return(nil, errors.New("missing"))
		m.networkMgr.EXPECT().GetLinkByName("eth0").Return(nil, errors.New("gone"))
		assert.Equal(t, types.LinkUnknown, driver.LinkStatus())
	})
}

func TestDriver_AddressQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	driver, m, _ := newTestDriver(ctrl)
	link := testLink()

	t.Run("LocalIPAndMask", func(t *testing.T) {
		addr := netlink.Addr{IPNet: &net.IPNet{
			IP:   net.ParseIP("10.0.0.5").To4(),
			Mask: net.IPv4Mask(255, 255, 255, 0),
		}}
		m.networkMgr.EXPECT().GetLinkByName("eth0").Return(link, nil).Times(2)
		m.networkMgr.EXPECT().ListAddresses(link).Return([]netlink.Addr{addr}, nil).Times(2)

		assert.Equal(t, "10.0.0.5", driver.LocalIP().String())
		assert.Equal(t, "255.255.255.0", driver.SubnetMask().String())
	})

	t.Run("NoAddresses", func(t *testing.T) {
		m.networkMgr.EXPECT().GetLinkByName("eth0").Return(link, nil)
		m.networkMgr.EXPECT().ListAddresses(link).Return([]netlink.Addr{}, nil)
		assert.Equal(t, "0.0.0.0", driver.LocalIP().String())
	})

	t.Run("GatewayFromDefaultRoute", func(t *testing.T) {
		routes := []netlink.Route{
			{LinkIndex: 9, Gw: net.ParseIP("172.16.0.1")}, // other interface
			{LinkIndex: 2, Gw: net.ParseIP("10.0.0.1")},
		}
		m.networkMgr.EXPECT().GetLinkByName("eth0").Return(link, nil)
		m.networkMgr.EXPECT().ListRoutes().Return(routes, nil)
		assert.Equal(t, "10.0.0.1", driver.GatewayIP().String())
	})

	t.Run("DNSFromResolvConf", func(t *testing.T) {
		content := "# Generated by ethwatchd\nnameserver 10.0.0.1\nnameserver 8.8.8.8\n"
		m.fileMgr.EXPECT().ReadFile("/etc/resolv.conf").Return([]byte(content), nil)
		assert.Equal(t, "10.0.0.1", driver.DNSServerIP().String())
	})
}

func TestDriver_MaintainLease(t *testing.T) {
	ctx := context.Background()

	t.Run("NoLease", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		driver, _, _ := newTestDriver(ctrl)

		assert.Equal(t, types.LeaseNone, driver.MaintainLease(ctx))
	})

	t.Run("BeforeT1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		driver, _, now := newTestDriver(ctrl)

		driver.lease = &nclient4.Lease{Offer: testACK(), ACK: testACK()}
		driver.leasedAt = now.Add(-10 * time.Second)
		assert.Equal(t, types.LeaseNone, driver.MaintainLease(ctx))
	})

	t.Run("RenewAfterT1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		driver, m, now := newTestDriver(ctrl)

		offer := testACK()
		driver.lease = &nclient4.Lease{Offer: offer, ACK: testACK()}
		driver.leasedAt = now.Add(-50 * time.Second) // past T1 (40s), before T2 (70s)

		renewed := &nclient4.Lease{Offer: offer, ACK: testACK()}
		m.transport.EXPECT().
			RequestFromOffer(gomock.Any(), "eth0", gomock.Any(), offer, maintainTimeout).
			Return(renewed, nil)
		expectApplyLease(m, testLink())

		assert.Equal(t, types.LeaseRenewed, driver.MaintainLease(ctx))
		assert.Same(t, renewed, driver.lease)
		assert.Equal(t, *now, driver.leasedAt)
	})

	t.Run("RenewFailsThenBacksOff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		driver, m, now := newTestDriver(ctrl)

		driver.lease = &nclient4.Lease{Offer: testACK(), ACK: testACK()}
		driver.leasedAt = now.Add(-50 * time.Second)

		m.transport.EXPECT().
			RequestFromOffer(gomock.Any(), "eth0", gomock.Any(), gomock.Any(), maintainTimeout).
			Return(nil, errors.New("no ack"))

		assert.Equal(t, types.LeaseRenewFailed, driver.MaintainLease(ctx))
		// Backoff: the immediate next step does not retry.
		assert.Equal(t, types.LeaseNone, driver.MaintainLease(ctx))
	})

	t.Run("RebindAfterT2", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		driver, m, now := newTestDriver(ctrl)

		driver.lease = &nclient4.Lease{Offer: testACK(), ACK: testACK()}
		driver.leasedAt = now.Add(-75 * time.Second) // past T2 (70s)

		rebound := &nclient4.Lease{Offer: testACK(), ACK: testACK()}
		m.transport.EXPECT().
			Request(gomock.Any(), "eth0", gomock.Any(), maintainTimeout).
			Return(rebound, nil)
		expectApplyLease(m, testLink())

		assert.Equal(t, types.LeaseRebound, driver.MaintainLease(ctx))
	})

	t.Run("RebindFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		driver, m, now := newTestDriver(ctrl)

		driver.lease = &nclient4.Lease{Offer: testACK(), ACK: testACK()}
		driver.leasedAt = now.Add(-75 * time.Second)

		m.transport.EXPECT().
			Request(gomock.Any(), "eth0", gomock.Any(), maintainTimeout).
			Return(nil, errors.New("no ack"))

		assert.Equal(t, types.LeaseRebindFailed, driver.MaintainLease(ctx))
	})

	t.Run("MissingOfferForcesRebind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		driver, m, now := newTestDriver(ctrl)

		driver.lease = &nclient4.Lease{ACK: testACK()} // no held offer
		driver.leasedAt = now.Add(-50 * time.Second)

		rebound := &nclient4.Lease{Offer: testACK(), ACK: testACK()}
		m.transport.EXPECT().
			Request(gomock.Any(), "eth0", gomock.Any(), maintainTimeout).
			Return(rebound, nil)
		expectApplyLease(m, testLink())

		assert.Equal(t, types.LeaseRebound, driver.MaintainLease(ctx))
	})
}
