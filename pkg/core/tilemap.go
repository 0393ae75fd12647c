package core

import (
	"fmt"
	"iter"
	"strings"
)

// Symbol 地图字符
type Symbol byte

const (
	SymHard     Symbol = '#' // 硬墙
	SymSpawn    Symbol = 'o' // 玩家出生点
	SymFree     Symbol = ' ' // 空地（砖块、敌人均可）
	SymSoftOnly Symbol = '.' // 只允许放砖块，不刷敌人
	SymReserved Symbol = '+' // 保留空地
)

func (s Symbol) valid() bool {
	switch s {
	case SymHard, SymSpawn, SymFree, SymSoftOnly, SymReserved:
		return true
	}
	return false
}

// TileInfo 地图中的一项 (x, y, symbol)
type TileInfo struct {
	Tile
	Sym Symbol
}

// TileSource 静态地图来源
type TileSource interface {
	Tiles() iter.Seq[TileInfo]
}

// StaticMap 不可变的静态地图
type StaticMap struct {
	rows  []string
	spawn Tile
}

// ParseMap 解析文本地图，要求尺寸为 FieldCols x FieldRows 且恰好一个出生点
func ParseMap(lines []string) (*StaticMap, error) {
	if len(lines) != FieldRows {
		return nil, fmt.Errorf("地图行数 %d，期望 %d: %w", len(lines), FieldRows, ErrBadMap)
	}
	m := &StaticMap{rows: make([]string, FieldRows)}
	spawns := 0
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		if len(line) != FieldCols {
			return nil, fmt.Errorf("第 %d 行长度 %d，期望 %d: %w", y, len(line), FieldCols, ErrBadMap)
		}
		for x := 0; x < len(line); x++ {
			s := Symbol(line[x])
			if !s.valid() {
				return nil, fmt.Errorf("(%d,%d) 非法字符 %q: %w", x, y, line[x], ErrBadSymbol)
			}
			if s == SymSpawn {
				spawns++
				m.spawn = Tile{X: x, Y: y}
			}
		}
		m.rows[y] = line
	}
	if spawns != 1 {
		return nil, fmt.Errorf("出生点数量 %d: %w", spawns, ErrNoSpawn)
	}
	return m, nil
}

// TileAt 查询格子，越界视为硬墙
func (m *StaticMap) TileAt(x, y int) Symbol {
	if y < 0 || y >= len(m.rows) || x < 0 || x >= len(m.rows[y]) {
		return SymHard
	}
	return Symbol(m.rows[y][x])
}

// Tiles 按行优先顺序惰性枚举全部格子
func (m *StaticMap) Tiles() iter.Seq[TileInfo] {
	return func(yield func(TileInfo) bool) {
		for y, row := range m.rows {
			for x := 0; x < len(row); x++ {
				if !yield(TileInfo{Tile: Tile{X: x, Y: y}, Sym: Symbol(row[x])}) {
					return
				}
			}
		}
	}
}

// Spawn 玩家出生格
func (m *StaticMap) Spawn() Tile {
	return m.spawn
}

// String 返回地图文本
func (m *StaticMap) String() string {
	return strings.Join(m.rows, "\n")
}

// DefaultMap 内置竞技场：外圈硬墙，偶数坐标立柱，出生点周围留出空间
func DefaultMap() *StaticMap {
	lines := make([]string, FieldRows)
	for y := 0; y < FieldRows; y++ {
		var b strings.Builder
		for x := 0; x < FieldCols; x++ {
			switch {
			case x == 0 || y == 0 || x == FieldCols-1 || y == FieldRows-1:
				b.WriteByte(byte(SymHard))
			case x%2 == 0 && y%2 == 0:
				b.WriteByte(byte(SymHard))
			case x == 1 && y == 1:
				b.WriteByte(byte(SymSpawn))
			case (x == 1 && y == 2) || (x == 2 && y == 1):
				b.WriteByte(byte(SymReserved))
			case x+y <= 5 && x <= 4 && y <= 4:
				b.WriteByte(byte(SymSoftOnly))
			default:
				b.WriteByte(byte(SymFree))
			}
		}
		lines[y] = b.String()
	}
	m, err := ParseMap(lines)
	if err != nil {
		panic(err)
	}
	return m
}
