package core

// CameraOffset 以玩家为中心的水平卷动量，不会超出场地边界
func CameraOffset(playerX int) int {
	off := playerX + TileSize/2 - WindowWidth/2
	return max(0, min(off, FieldWidth-WindowWidth))
}
