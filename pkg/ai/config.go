package ai

import (
	"fmt"
	"sort"
)

// Profile 定义自动驾驶的行为参数
type Profile struct {
	// ThinkIntervalTicks 思考间隔（帧），值越小反应越快
	ThinkIntervalTicks int

	// MistakeRate 随机失误率 (0.0-1.0)
	MistakeRate float64

	// PlaceBombs 是否主动放炸弹
	PlaceBombs bool

	// HuntEnemies 是否优先追击敌人，否则优先炸砖块开路
	HuntEnemies bool

	// CollectBonuses 是否主动去拾取道具
	CollectBonuses bool

	// SafetyMarginTicks 判断逃生路线时额外预留的帧数
	SafetyMarginTicks int
}

// 预设配置：普通难度
var ProfileNormal = Profile{
	ThinkIntervalTicks: 8,
	MistakeRate:        0.02,
	PlaceBombs:         true,
	HuntEnemies:        false,
	CollectBonuses:     true,
	SafetyMarginTicks:  12,
}

// 预设配置：困难难度
var ProfileHard = Profile{
	ThinkIntervalTicks: 4,
	MistakeRate:        0,
	PlaceBombs:         true,
	HuntEnemies:        true,
	CollectBonuses:     true,
	SafetyMarginTicks:  6,
}

// 预设配置：只会躲避和游荡，用于压力测试
var ProfileCoward = Profile{
	ThinkIntervalTicks: 8,
	SafetyMarginTicks:  12,
}

var profiles = map[string]Profile{
	"normal": ProfileNormal,
	"hard":   ProfileHard,
	"coward": ProfileCoward,
}

// ProfileByName 按名字查找预设
func ProfileByName(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown autopilot profile %q (have %v)", name, ProfileNames())
	}
	return p, nil
}

// ProfileNames 所有预设名
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
