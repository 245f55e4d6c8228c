package utils

import (
	"github.com/decker502/jetstrike/pkg/components"
)

// 坐标系统
//
//   - 世界坐标：y 轴向上，原点在视口中心，单位为世界单位
//   - 屏幕坐标：y 轴向下，原点在窗口左上角，单位为像素
//
// 转换公式：
//
//	screenX = (worldX - cam.Left) * scale
//	screenY = (cam.Top - worldY) * scale
//
// 其中 scale = 屏幕高度 / 视口高度

// Viewport 世界视口到屏幕的映射
type Viewport struct {
	Camera components.CameraComponent
	Width  int // 屏幕宽度（像素）
	Height int // 屏幕高度（像素）
}

// Scale 每个世界单位对应的像素数
func (v Viewport) Scale() float64 {
	h := v.Camera.Top - v.Camera.Bottom
	if h <= 0 {
		return 1
	}
	return float64(v.Height) / h
}

// WorldToScreen 世界坐标转屏幕坐标
func (v Viewport) WorldToScreen(worldX, worldY float64) (screenX, screenY float64) {
	s := v.Scale()
	return (worldX - v.Camera.Left) * s, (v.Camera.Top - worldY) * s
}

// ScreenToWorld 屏幕坐标转世界坐标
func (v Viewport) ScreenToWorld(screenX, screenY float64) (worldX, worldY float64) {
	s := v.Scale()
	return screenX/s + v.Camera.Left, v.Camera.Top - screenY/s
}

// CameraForScreen 按屏幕宽高比计算以原点为中心的视口
//
// 参数:
//   - width, height: 屏幕尺寸（像素）
//   - worldHeight: 视口高度（世界单位），保持不变，宽度随宽高比变化
func CameraForScreen(width, height int, worldHeight float64) components.CameraComponent {
	if width <= 0 || height <= 0 {
		width, height = 16, 9
	}
	halfH := worldHeight / 2
	halfW := worldHeight * float64(width) / float64(height) / 2
	return components.CameraComponent{Left: -halfW, Right: halfW, Top: halfH, Bottom: -halfH}
}
