package core

// EventKind 事件类型
type EventKind int

const (
	EventLevelStarted EventKind = iota
	EventBombPlaced
	EventBombDetonated
	EventEnemyKilled
	EventBonusCollected
	EventPlayerDied
	EventTimeUp
	EventLifeLost
	EventLevelCleared
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventLevelStarted:
		return "level-started"
	case EventBombPlaced:
		return "bomb-placed"
	case EventBombDetonated:
		return "bomb-detonated"
	case EventEnemyKilled:
		return "enemy-killed"
	case EventBonusCollected:
		return "bonus-collected"
	case EventPlayerDied:
		return "player-died"
	case EventTimeUp:
		return "time-up"
	case EventLifeLost:
		return "life-lost"
	case EventLevelCleared:
		return "level-cleared"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event 一帧内发生的领域事件，由边界层记录日志
type Event struct {
	Kind     EventKind
	Tick     uint64
	Level    int
	Tile     Tile
	Species  Species
	Points   int
	Bonus    BonusKind
	Segments int
	Lives    int
	Score    int
}

func (g *Game) emit(e Event) {
	e.Tick = g.tick
	e.Level = g.level
	g.events = append(g.events, e)
}

// Events 本帧产生的事件，下一次 Update 时清空
func (g *Game) Events() []Event {
	return g.events
}
