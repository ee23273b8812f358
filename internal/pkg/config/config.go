package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"ethwatchd/internal/pkg/logging"
	"ethwatchd/internal/types"

	"gopkg.in/yaml.v3"
)

// InterfaceConfig holds the addressing setup for the watched interface.
// Gateway and DNS may be left empty; when DHCP fails they are derived
// from the fallback address.
type InterfaceConfig struct {
	Name              string `yaml:"name"`
	MAC               string `yaml:"mac,omitempty"` // override; defaults to the NIC's own address
	FallbackIP        string `yaml:"fallback_ip"`
	Gateway           string `yaml:"gateway,omitempty"`
	Netmask           string `yaml:"netmask,omitempty"`
	DNS               string `yaml:"dns,omitempty"`
	DHCPTimeout       string `yaml:"dhcp_timeout,omitempty"`        // Go duration, default 60s
	LinkCheckInterval string `yaml:"link_check_interval,omitempty"` // Go duration, default 10s
}

// Config represents the main configuration structure.
type Config struct {
	Logging   logging.LogConfig `yaml:"logging"`
	Interface InterfaceConfig   `yaml:"interface"`
}

// Load loads configuration from a YAML file.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	iface := c.Interface

	if iface.Name == "" {
		return fmt.Errorf("interface name is required")
	}
	if iface.FallbackIP == "" {
		return fmt.Errorf("interface %s: fallback_ip is required", iface.Name)
	}

	if err := validateIPv4(iface.Name, "fallback_ip", iface.FallbackIP); err != nil {
		return err
	}
	for field, value := range map[string]string{
		"gateway": iface.Gateway,
		"netmask": iface.Netmask,
		"dns":     iface.DNS,
	} {
		if value == "" {
			continue
		}
		if err := validateIPv4(iface.Name, field, value); err != nil {
			return err
		}
	}

	if iface.MAC != "" {
		if _, err := net.ParseMAC(iface.MAC); err != nil {
			return fmt.Errorf("interface %s: invalid mac: %w", iface.Name, err)
		}
	}

	for field, value := range map[string]string{
		"dhcp_timeout":        iface.DHCPTimeout,
		"link_check_interval": iface.LinkCheckInterval,
	} {
		if value == "" {
			continue
		}
		if d, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("interface %s: invalid %s: %w", iface.Name, field, err)
		} else if d <= 0 {
			return fmt.Errorf("interface %s: %s must be positive", iface.Name, field)
		}
	}

	return nil
}

// NetConfig converts the interface section into the typed addressing
// parameters consumed by the connection manager. Validate must have
// passed first.
func (c *Config) NetConfig() types.NetConfig {
	iface := c.Interface

	cfg := types.NetConfig{
		FallbackIP: net.ParseIP(iface.FallbackIP),
		Gateway:    net.ParseIP(iface.Gateway),
		Subnet:     net.ParseIP(iface.Netmask),
		DNS:        net.ParseIP(iface.DNS),
	}
	if iface.MAC != "" {
		cfg.MAC, _ = net.ParseMAC(iface.MAC)
	}
	if iface.DHCPTimeout != "" {
		cfg.DHCPTimeout, _ = time.ParseDuration(iface.DHCPTimeout)
	}
	return cfg.WithDefaults()
}

// LinkCheckInterval returns the configured link-poll interval, or zero
// when unset so the manager applies its default.
func (c *Config) LinkCheckInterval() time.Duration {
	if c.Interface.LinkCheckInterval == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Interface.LinkCheckInterval)
	return d
}

func validateIPv4(ifaceName, field, value string) error {
	ip := net.ParseIP(value)
	if ip == nil {
		return fmt.Errorf("interface %s: invalid %s: %s", ifaceName, field, value)
	}
	if ip.To4() == nil {
		return fmt.Errorf("interface %s: %s must be IPv4: %s", ifaceName, field, value)
	}
	return nil
}
