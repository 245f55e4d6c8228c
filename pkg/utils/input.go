// Package utils 提供宿主层使用的工具函数：键盘到输入意图的映射、坐标转换和文本测量
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/jetstrike/pkg/components"
)

// KeyReader 按键状态查询
// Pressed 表示按住，JustPressed 表示本帧刚按下
type KeyReader interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
}

// ebitenKeys 读取真实键盘
type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// Keyboard 当前键盘状态
var Keyboard KeyReader = ebitenKeys{}

// 按键绑定
var (
	keysUp       = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	keysDown     = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	keysLeft     = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	keysRight    = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	keysFire     = []ebiten.Key{ebiten.KeySpace}
	keysInteract = []ebiten.Key{ebiten.KeyE}
)

// ReadIntent 把按键状态解析为本帧输入意图
// 移动与开火按住生效；切换武器和交互只在按下的那一帧生效
func ReadIntent(keys KeyReader) components.InputIntent {
	return components.InputIntent{
		MoveUp:        anyPressed(keys, keysUp),
		MoveDown:      anyPressed(keys, keysDown),
		MoveLeft:      anyPressed(keys, keysLeft),
		MoveRight:     anyPressed(keys, keysRight),
		Fire:          anyPressed(keys, keysFire),
		SelectWeapon1: keys.JustPressed(ebiten.Key1) || keys.JustPressed(ebiten.KeyNumpad1),
		SelectWeapon2: keys.JustPressed(ebiten.Key2) || keys.JustPressed(ebiten.KeyNumpad2),
		SelectWeapon3: keys.JustPressed(ebiten.Key3) || keys.JustPressed(ebiten.KeyNumpad3),
		Interact:      anyJustPressed(keys, keysInteract),
	}
}

func anyPressed(keys KeyReader, bound []ebiten.Key) bool {
	for _, k := range bound {
		if keys.Pressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys KeyReader, bound []ebiten.Key) bool {
	for _, k := range bound {
		if keys.JustPressed(k) {
			return true
		}
	}
	return false
}
