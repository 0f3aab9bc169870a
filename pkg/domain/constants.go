package domain

// NodeCount is the number of sensor nodes served by the gateway.
const NodeCount = 3

// Field constants for mapstructure, YAML and JSON standardization.
const (
	KeyWakePeriods   = "wake_periods"
	KeyGatewayPeriod = "gateway_period"
	KeyIdlePhase     = "idle_phase"
	KeyListenCost    = "listen_cost"
	KeyTransmitCost  = "transmit_cost"
	KeyFinished      = "finished"
	KeyMaxSlots      = "max_slots"
)

// Default protocol parameters.
// Slots are 1s long, so costs are expressed in mW per slot.
const (
	DefaultGatewayPeriod = 3
	DefaultIdlePhase     = 1
	DefaultListenCost    = 10  // mW while listening for one slot
	DefaultTransmitCost  = 100 // mW for the reply slot after an address match
	DefaultMaxSlots      = 200
)

// Limits on the work a single enumeration may do. States are never merged,
// so the tree grows roughly with the cube of the horizon.
const (
	MaxAllowedSlots        = 1000
	DefaultExpansionBudget = 1_000_000
)

// DefaultWakePeriods are the wake intervals of nodes 1, 2 and 3.
var DefaultWakePeriods = [NodeCount]int{4, 6, 8}

// Traversal selects the order in which pending states are expanded.
// Every complete traversal yields the same expectations.
type Traversal string

const (
	BreadthFirst Traversal = "breadth_first" // FIFO work queue
	DepthFirst   Traversal = "depth_first"   // LIFO work stack
)

// BranchKind classifies a child produced by one expansion.
type BranchKind string

const (
	BranchIdle  BranchKind = "idle"  // Gateway silent, nobody can reply
	BranchMatch BranchKind = "match" // Gateway addressed a listening node, which replies
	BranchMiss  BranchKind = "miss"  // Gateway addressed a node that is asleep
)
