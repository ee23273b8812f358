//go:build unit

package dhcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTransportAdapter(t *testing.T) {
	adapter := NewTransportAdapter()
	assert.NotNil(t, adapter)
}

func TestTransportAdapter_Request_NoInterface(t *testing.T) {
	// A real exchange needs a DHCP server; here we only pin the error
	// path for a missing interface.
	adapter := NewTransportAdapter()

	_, err := adapter.Request(context.Background(), "nonexistent", nil, 2*time.Second)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create DHCP client")
}
