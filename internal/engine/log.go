package engine

import (
	"fmt"

	"github.com/ericogr/deckbattle/internal/logging"
)

// DefaultLogCap is the number of entries a battle log keeps.
const DefaultLogCap = 20

// BattleLog is a bounded, most-recent-first message history. It exists for
// the presentation layer and is never consulted for battle state.
type BattleLog struct {
	entries []string
	limit   int
	fields  logging.Fields
}

// NewBattleLog returns an empty log holding at most limit entries.
func NewBattleLog(limit int) *BattleLog {
	if limit <= 0 {
		limit = DefaultLogCap
	}
	return &BattleLog{entries: make([]string, 0, limit), limit: limit}
}

// Add records msg as the newest entry, silently evicting the oldest one when
// the log is full. Every entry is mirrored to the structured logger.
func (l *BattleLog) Add(msg string) {
	if len(l.entries) < l.limit {
		l.entries = append(l.entries, "")
	}
	copy(l.entries[1:], l.entries[:len(l.entries)-1])
	l.entries[0] = msg

	f := logging.Fields{"entry": msg}
	for k, v := range l.fields {
		f[k] = v
	}
	logging.Debug("battle log", f)
}

func (l *BattleLog) Addf(format string, args ...interface{}) {
	l.Add(fmt.Sprintf(format, args...))
}

// Entries returns a copy of the log, most recent first.
func (l *BattleLog) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *BattleLog) Len() int { return len(l.entries) }
