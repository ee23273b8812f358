// Package dhcp provides the DHCPv4 transport adapter over the
// insomniacslk/dhcp nclient4 library.
package dhcp

import (
	"context"
	"fmt"
	"net"
	"time"

	"ethwatchd/internal/port"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/insomniacslk/dhcp/dhcpv4/nclient4"
)

// TransportAdapter implements the DHCPTransport port. Each exchange opens
// a fresh raw-socket client and closes it, so no packet sockets are held
// between maintenance steps.
type TransportAdapter struct{}

// Ensure TransportAdapter implements the DHCPTransport port
var _ port.DHCPTransport = (*TransportAdapter)(nil)

// NewTransportAdapter creates a new DHCP transport adapter.
func NewTransportAdapter() *TransportAdapter {
	return &TransportAdapter{}
}

// Request performs the full DISCOVER/OFFER/REQUEST/ACK sequence.
func (t *TransportAdapter) Request(ctx context.Context, interfaceName string, mac net.HardwareAddr, timeout time.Duration) (*nclient4.Lease, error) {
	client, err := newClient(interfaceName, mac, timeout)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	lease, err := client.Request(ctx)
	if err != nil {
		return nil, fmt.Errorf("DHCP lease request failed: %w", err)
	}
	return lease, nil
}

// RequestFromOffer re-runs the REQUEST/ACK half against a held offer.
func (t *TransportAdapter) RequestFromOffer(ctx context.Context, interfaceName string, mac net.HardwareAddr, offer *dhcpv4.DHCPv4, timeout time.Duration) (*nclient4.Lease, error) {
	client, err := newClient(interfaceName, mac, timeout)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	lease, err := client.RequestFromOffer(ctx, offer)
	if err != nil {
		return nil, fmt.Errorf("DHCP renewal request failed: %w", err)
	}
	return lease, nil
}

func newClient(interfaceName string, mac net.HardwareAddr, timeout time.Duration) (*nclient4.Client, error) {
	opts := []nclient4.ClientOpt{nclient4.WithTimeout(timeout)}
	if len(mac) > 0 {
		opts = append(opts, nclient4.WithHWAddr(mac))
	}

	client, err := nclient4.New(interfaceName, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create DHCP client: %w", err)
	}
	return client, nil
}
