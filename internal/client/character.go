package client

import (
	"image/color"

	"bomberclassic/pkg/core"
)

// CharacterInfo 矢量绘制时使用的配色
type CharacterInfo struct {
	Name         string
	BodyColor    color.RGBA
	OutlineColor color.RGBA
	HandColor    color.RGBA
	ShoeColor    color.RGBA
}

// PlayerInfo 玩家配色（经典白）
var PlayerInfo = CharacterInfo{
	Name:         "bomberman",
	BodyColor:    color.RGBA{255, 255, 255, 255},
	OutlineColor: color.RGBA{0, 0, 0, 255},
	HandColor:    color.RGBA{255, 150, 150, 255},
	ShoeColor:    color.RGBA{50, 50, 50, 255},
}

var enemyInfo = map[core.Species]CharacterInfo{
	core.Ballom: {
		BodyColor:    color.RGBA{255, 140, 0, 255},
		OutlineColor: color.RGBA{150, 60, 0, 255},
	},
	core.Onil: {
		BodyColor:    color.RGBA{100, 180, 255, 255},
		OutlineColor: color.RGBA{0, 50, 150, 255},
	},
	core.Dahl: {
		BodyColor:    color.RGBA{255, 220, 60, 255},
		OutlineColor: color.RGBA{140, 110, 0, 255},
	},
	core.Minvo: {
		BodyColor:    color.RGBA{255, 80, 80, 255},
		OutlineColor: color.RGBA{150, 0, 0, 255},
	},
	core.Doria: {
		BodyColor:    color.RGBA{180, 120, 255, 255},
		OutlineColor: color.RGBA{80, 20, 150, 255},
	},
	core.Ovape: {
		BodyColor:    color.RGBA{200, 200, 255, 160},
		OutlineColor: color.RGBA{90, 90, 160, 255},
	},
	core.Tiglon: {
		BodyColor:    color.RGBA{40, 40, 40, 255},
		OutlineColor: color.RGBA{200, 200, 200, 255},
	},
	core.Pontan: {
		BodyColor:    color.RGBA{255, 255, 255, 255},
		OutlineColor: color.RGBA{255, 0, 255, 255},
	},
}

// EnemyInfo 敌人种类的配色，未知种类用 Ballom 的
func EnemyInfo(s core.Species) CharacterInfo {
	info, ok := enemyInfo[s]
	if !ok {
		info = enemyInfo[core.Ballom]
	}
	info.Name = s.String()
	return info
}

// bonusColors 道具底色，按 BonusKind 索引
var bonusColors = [...]color.RGBA{
	core.BonusExtraBomb:  {40, 40, 40, 255},
	core.BonusFireRange:  {255, 100, 0, 255},
	core.BonusSpeedUp:    {0, 160, 255, 255},
	core.BonusWallWalker: {205, 133, 63, 255},
	core.BonusDetonator:  {220, 0, 0, 255},
	core.BonusBombWalker: {120, 120, 120, 255},
	core.BonusFlameProof: {255, 220, 0, 255},
	core.BonusInvisible:  {200, 200, 255, 255},
	core.BonusExit:       {60, 60, 60, 255},
}

func bonusColor(k core.BonusKind) color.RGBA {
	if k < 0 || int(k) >= len(bonusColors) {
		return color.RGBA{255, 0, 255, 255}
	}
	return bonusColors[k]
}
