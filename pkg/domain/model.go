package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Model describes the protocol being analyzed.
//
// Node i listens for one slot at every multiple of WakePeriods[i]. The gateway
// sends its addressed preamble in every slot t with t mod GatewayPeriod != IdlePhase.
type Model struct {
	WakePeriods   [NodeCount]int  `json:"wake_periods" yaml:"wake_periods" mapstructure:"wake_periods"`
	GatewayPeriod int             `json:"gateway_period" yaml:"gateway_period" mapstructure:"gateway_period"`
	IdlePhase     int             `json:"idle_phase" yaml:"idle_phase" mapstructure:"idle_phase"`
	ListenCost    int             `json:"listen_cost" yaml:"listen_cost" mapstructure:"listen_cost"`
	TransmitCost  int             `json:"transmit_cost" yaml:"transmit_cost" mapstructure:"transmit_cost"`
	Finished      [NodeCount]bool `json:"finished" yaml:"finished" mapstructure:"finished"`

	// MaxSlots bounds the enumeration for models whose probability mass never drains.
	MaxSlots int `json:"max_slots" yaml:"max_slots" mapstructure:"max_slots"`
}

// DefaultModel returns the three-node protocol: wake periods 4/6/8,
// a 2-slot preamble every 3 slots, 10mW listening and 100mW transmitting.
func DefaultModel() Model {
	return Model{
		WakePeriods:   DefaultWakePeriods,
		GatewayPeriod: DefaultGatewayPeriod,
		IdlePhase:     DefaultIdlePhase,
		ListenCost:    DefaultListenCost,
		TransmitCost:  DefaultTransmitCost,
		MaxSlots:      DefaultMaxSlots,
	}
}

// Validate checks that the parameters describe a well-formed protocol.
func (m Model) Validate() error {
	for i, p := range m.WakePeriods {
		if p <= 0 {
			return fmt.Errorf("%w: %s[%d] must be positive, got %d", ErrInvalidModel, KeyWakePeriods, i, p)
		}
	}
	if m.GatewayPeriod <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidModel, KeyGatewayPeriod, m.GatewayPeriod)
	}
	if m.IdlePhase < 0 || m.IdlePhase >= m.GatewayPeriod {
		return fmt.Errorf("%w: %s must be in [0, %d), got %d", ErrInvalidModel, KeyIdlePhase, m.GatewayPeriod, m.IdlePhase)
	}
	if m.ListenCost < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidModel, KeyListenCost)
	}
	if m.TransmitCost < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidModel, KeyTransmitCost)
	}
	if m.MaxSlots <= 0 || m.MaxSlots > MaxAllowedSlots {
		return fmt.Errorf("%w: %s must be in [1, %d], got %d", ErrInvalidModel, KeyMaxSlots, MaxAllowedSlots, m.MaxSlots)
	}
	return nil
}

// Listening reports whether node i is awake at slot t, ignoring whether it finished.
func (m Model) Listening(i, t int) bool {
	return t%m.WakePeriods[i] == 0
}

// GatewayIdle reports whether the gateway stays silent at slot t.
func (m Model) GatewayIdle(t int) bool {
	return t%m.GatewayPeriod == m.IdlePhase
}

// Fingerprint returns a stable digest of the parameters, suitable as a cache key.
func (m Model) Fingerprint() string {
	// Fixed-size fields only, so the encoding cannot fail.
	data, _ := json.Marshal(m)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
