package interfaces

import (
	"github.com/golang/protobuf/ptypes/timestamp"
)

// HistoryEntry represents a single history entry from Fabric
type HistoryEntry struct {
	TxID      string               `json:"tx_id"`
	Timestamp *timestamp.Timestamp `json:"timestamp"`
	IsDelete  bool              `json:"is_delete"`
	Value     []byte            `json:"value"`
}
