// Package conn implements connection-state maintenance for a single
// Ethernet interface: one DHCP attempt with a static fallback, then a
// cooperative loop that keeps the lease alive and logs link transitions.
package conn

import (
	"context"
	"errors"
	"time"

	"ethwatchd/internal/pkg/logging"
	"ethwatchd/internal/port"
	"ethwatchd/internal/types"

	"github.com/sirupsen/logrus"
)

// ErrNoHardware is returned by Initialize when the driver reports no
// Ethernet hardware at all. There is no recovery; callers are expected
// to halt.
var ErrNoHardware = errors.New("ethernet hardware not detected")

const (
	// DefaultLinkCheckInterval is how often Maintain polls the link state.
	DefaultLinkCheckInterval = 10 * time.Second

	// defaultSettleDelay gives the driver time to stabilize after a
	// static configuration is applied.
	defaultSettleDelay = 1 * time.Second

	// pollInterval is the cadence of the Run loop's Maintain calls.
	pollInterval = 1 * time.Second
)

// Manager owns the connection state for one interface: the addressing mode,
// the last observed link state, and the timestamp of the last link check.
// It is not safe for concurrent use; Initialize and Maintain must be called
// from a single goroutine.
type Manager struct {
	ifaceName string
	driver    port.EthernetDriver
	cfg       types.NetConfig

	linkCheckInterval time.Duration
	settleDelay       time.Duration

	mode      types.AddressingMode
	lastLink  types.LinkState
	lastCheck time.Time

	// Overridable in tests to drive the clock without sleeping.
	now   func() time.Time
	sleep func(time.Duration)
}

// Ensure Manager implements the ConnectionManager port
var _ port.ConnectionManager = (*Manager)(nil)

// NewManager creates a connection manager for the given interface. The
// configuration is completed with defaults and keeps its zero-address
// gateway/DNS until a static fallback actually derives them.
func NewManager(ifaceName string, driver port.EthernetDriver, cfg types.NetConfig, linkCheckInterval time.Duration) *Manager {
	if linkCheckInterval <= 0 {
		linkCheckInterval = DefaultLinkCheckInterval
	}
	return &Manager{
		ifaceName:         ifaceName,
		driver:            driver,
		cfg:               cfg.WithDefaults(),
		linkCheckInterval: linkCheckInterval,
		settleDelay:       defaultSettleDelay,
		mode:              types.ModeUnset,
		lastLink:          types.LinkUnknown,
		now:               time.Now,
		sleep:             time.Sleep,
	}
}

// GetInterfaceName returns the name of the managed network interface.
func (m *Manager) GetInterfaceName() string {
	return m.ifaceName
}

// Mode returns the current addressing mode.
func (m *Manager) Mode() types.AddressingMode {
	return m.mode
}

// Initialize attempts DHCP and falls back to the configured static address
// if that fails. It returns ErrNoHardware when the driver reports absent
// hardware after a failed DHCP attempt; every other outcome leaves the
// interface configured, in either DHCP or static mode.
func (m *Manager) Initialize(ctx context.Context) error {
	logger := m.logger()
	logger.WithField("timeout", m.cfg.DHCPTimeout.String()).Info("Attempting DHCP configuration")

	if err := m.driver.AcquireDHCP(ctx, m.cfg.MAC, m.cfg.DHCPTimeout); err != nil {
		logger.WithError(err).Warn("DHCP configuration failed")

		if m.driver.HardwareStatus() == types.HardwareAbsent {
			logger.Error("Ethernet hardware not found, cannot continue")
			return ErrNoHardware
		}

		if m.driver.LinkStatus() == types.LinkDown {
			logger.Warn("Ethernet link is down")
		}

		cfg := m.cfg.Derived()
		logger.WithFields(logrus.Fields{
			"ip":      cfg.FallbackIP.String(),
			"gateway": cfg.Gateway.String(),
			"netmask": cfg.Subnet.String(),
			"dns":     cfg.DNS.String(),
		}).Info("Falling back to static configuration")

		if err := m.driver.ConfigureStatic(cfg.MAC, cfg.FallbackIP, cfg.DNS, cfg.Gateway, cfg.Subnet); err != nil {
			// Not fatal: only missing hardware aborts initialization.
			logger.WithError(err).Error("Failed to apply static configuration")
		}

		m.sleep(m.settleDelay)
		m.mode = types.ModeStatic
	} else {
		m.mode = types.ModeDHCP
	}

	m.reportConfig(logger)
	m.lastCheck = m.now()
	return nil
}

// Maintain performs one cooperative maintenance step: a lease-maintenance
// call in DHCP mode, plus a link-state poll once per link-check interval.
// Link transitions are logged edge-triggered; the check timestamp advances
// every time the poll fires, whether or not the state changed.
func (m *Manager) Maintain(ctx context.Context) {
	logger := m.logger()

	if m.mode == types.ModeDHCP {
		switch event := m.driver.MaintainLease(ctx); event {
		case types.LeaseNone:
		case types.LeaseRenewFailed:
			logger.Warn("DHCP lease renew failed")
		case types.LeaseRenewed:
			logger.WithField("ip", m.driver.LocalIP().String()).Info("DHCP lease renewed")
		case types.LeaseRebindFailed:
			logger.Warn("DHCP lease rebind failed")
		case types.LeaseRebound:
			logger.WithField("ip", m.driver.LocalIP().String()).Info("DHCP lease rebound")
		}
	}

	if m.now().Sub(m.lastCheck) >= m.linkCheckInterval {
		status := m.driver.LinkStatus()
		if status != m.lastLink {
			logger.WithFields(logrus.Fields{
				"previous": m.lastLink.String(),
				"current":  status.String(),
			}).Info("Link status changed")
			m.lastLink = status
		}
		m.lastCheck = m.now()
	}
}

// IsLinkUp reports whether the driver currently sees carrier. It queries
// the driver directly and does not consult the cached link state.
func (m *Manager) IsLinkUp() bool {
	return m.driver.LinkStatus() == types.LinkUp
}

// PrintConfig reports the current network configuration. Read-only.
func (m *Manager) PrintConfig() {
	m.reportConfig(m.logger())
}

// Run drives the cooperative maintenance loop until the context is
// cancelled. This method implements the ConnectionManager port.
func (m *Manager) Run(ctx context.Context) error {
	logger := m.logger()
	logger.WithField("link_check_interval", m.linkCheckInterval.String()).Info("Starting connection maintenance")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Connection maintenance stopped due to context cancellation")
			return ctx.Err()
		case <-ticker.C:
			m.Maintain(ctx)
		}
	}
}

func (m *Manager) reportConfig(logger *logrus.Entry) {
	logger.WithFields(logrus.Fields{
		"ip":      m.driver.LocalIP().String(),
		"gateway": m.driver.GatewayIP().String(),
		"netmask": m.driver.SubnetMask().String(),
		"dns":     m.driver.DNSServerIP().String(),
		"mode":    m.mode.String(),
		"link":    m.driver.LinkStatus().String(),
	}).Info("Network configuration")
}

func (m *Manager) logger() *logrus.Entry {
	return logging.WithComponentAndInterface("conn", m.ifaceName)
}
