package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	// 2024-01-01 00:00:00 UTC，单位毫秒
	matchEpochMilli int64 = 1704067200000

	nodeBits uint8 = 10
	seqBits  uint8 = 12

	maxNodeID int64 = -1 ^ (-1 << nodeBits)
	maxSeq    int64 = -1 ^ (-1 << seqBits)

	nodeShift uint8 = seqBits
	timeShift uint8 = nodeBits + seqBits

	nodeIDEnv = "HIGHLANDER_NODE_ID"
)

// MatchIDs 生成对局编号（时间戳|节点|序号），同一进程内单调递增，多进程靠节点号区分。
type MatchIDs struct {
	mu     sync.Mutex
	nodeID int64
	lastTS int64
	seq    int64
}

func NewMatchIDs(nodeID int64) (*MatchIDs, error) {
	if nodeID < 0 || nodeID > maxNodeID {
		return nil, fmt.Errorf("match id node out of range: %d", nodeID)
	}
	return &MatchIDs{nodeID: nodeID}, nil
}

func (g *MatchIDs) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := max(time.Now().UnixMilli(), g.lastTS) // 时钟回拨时不回退
	if ts == g.lastTS {
		g.seq = (g.seq + 1) & maxSeq
		if g.seq == 0 {
			for ts <= g.lastTS {
				ts = time.Now().UnixMilli()
			}
		}
	} else {
		g.seq = 0
	}

	g.lastTS = ts
	return ((ts - matchEpochMilli) << timeShift) | (g.nodeID << nodeShift) | g.seq
}

var defaultMatchIDs = sync.OnceValue(func() *MatchIDs {
	node := int64(1)
	if raw := strings.TrimSpace(os.Getenv(nodeIDEnv)); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed >= 0 && parsed <= maxNodeID {
			node = parsed
		}
	}
	g, _ := NewMatchIDs(node)
	return g
})

// NextMatchID 使用进程级生成器，节点号取自 HIGHLANDER_NODE_ID（非法时回退为 1）。
func NextMatchID() int64 {
	return defaultMatchIDs().Next()
}
