package core

// 屏幕和地图配置
const (
	TileSize    = 32 // 格子边长（像素）
	FieldCols   = 31 // 场地宽（格子）
	FieldRows   = 13 // 场地高（格子）
	FieldWidth  = FieldCols * TileSize
	FieldHeight = FieldRows * TileSize

	WindowCols   = 16
	WindowRows   = 15
	WindowWidth  = WindowCols * TileSize
	WindowHeight = WindowRows * TileSize
	HUDHeight    = 2 * TileSize // 顶部记分板高度
)

// 游戏帧率
const (
	TickRate = 60
)

// 玩家配置
const (
	BaseSpeed        = 2 // 像素/帧，必须能整除 TileSize
	StartLives       = 2
	StartMaxBombs    = 1
	StartBlastRange  = 1
	MaxBombsCap      = 10
	BlastRangeCap    = 5
	LevelTimeTicks   = 200 * TickRate
	InvisibleTicks   = 35 * TickRate
	PlayerDeathTicks = 70 // 死亡动画 7 帧，每帧 10 tick
)

// 炸弹配置（帧）
const (
	BombFuseTicks  = TickRate * 5 / 2 // 2.5 秒
	ChainFuseTicks = 5                // 被波及后的短引信
	BlastTicks     = TickRate / 2     // 火焰持续 0.5 秒
)

// 碰撞比例
const (
	BombOverlapRatio  = 0.8 // 防止同一格重复放置
	ContactRatio      = 0.7 // 实体之间接触判定
	SoftBlockBase     = 52
	SoftBlockPerLevel = 2
)

// 动画节奏（每帧持续的 tick 数）
const (
	walkFrameTicks      = 10 // ANIMATION_SPEED = 0.1
	enemyDeathTicks     = 40 // 4 帧
	softBlockFrameTicks = 3  // 6 帧共 18 tick
	softBlockFrames     = 6
	blastFrames         = 7
)
