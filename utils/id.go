package utils

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

// IDGenerator hands out unique, time ordered int64 identifiers.
type IDGenerator interface {
	NextID() int64
}

// The snowflake layout is narrowed to 41 time bits, 4 node bits and 8 step
// bits so every id stays below 2^53 and decodes exactly as a JSON number.
const (
	idEpoch    = int64(1704067200000) // 2024-01-01T00:00:00Z in ms
	idNodeBits = 4
	idStepBits = 8

	MaxNodeID = 1<<idNodeBits - 1
	MaxSafeID = 1<<53 - 1
)

var snowflakeLayout sync.Once

type snowflakeGenerator struct {
	node *snowflake.Node
}

// NewIDGenerator accepts node ids 0..MaxNodeID.
func NewIDGenerator(nodeID int64) (IDGenerator, error) {
	snowflakeLayout.Do(func() {
		snowflake.Epoch = idEpoch
		snowflake.NodeBits = idNodeBits
		snowflake.StepBits = idStepBits
	})
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &snowflakeGenerator{node: node}, nil
}

func (g *snowflakeGenerator) NextID() int64 {
	return g.node.Generate().Int64()
}

// SequenceGenerator counts up from a start value. Used where ids must be predictable.
type SequenceGenerator struct {
	mu   sync.Mutex
	next int64
}

func NewSequenceGenerator(start int64) *SequenceGenerator {
	return &SequenceGenerator{next: start}
}

func (g *SequenceGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.next
	g.next++
	return id
}
