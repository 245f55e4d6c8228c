package utils

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace HUD 使用的等宽位图字体
var DefaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// WrapText 将文本按指定宽度按单词换行
// 参数:
//   - textStr: 要换行的文本
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组
//
// 单个单词超过最大宽度时独占一行，不做截断
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if textStr == "" || face == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if MeasureTextWidth(textStr, face) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && MeasureTextWidth(candidate, face) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{textStr}
	}
	return lines
}

// MeasureTextWidth 测量单行文本宽度
func MeasureTextWidth(textStr string, face text.Face) float64 {
	if textStr == "" || face == nil {
		return 0
	}
	width, _ := text.Measure(textStr, face, 0)
	return width
}

// DrawText 在屏幕坐标 (x, y) 处绘制文本，(x, y) 为左上角
func DrawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = DefaultFace.Metrics().HAscent + DefaultFace.Metrics().HDescent + 2
	text.Draw(screen, str, DefaultFace, op)
}

// DrawTextCentered 以 (cx, y) 为水平中心绘制多行文本
func DrawTextCentered(screen *ebiten.Image, lines []string, cx, y float64, clr color.Color) {
	lineHeight := DefaultFace.Metrics().HAscent + DefaultFace.Metrics().HDescent + 2
	for i, line := range lines {
		w := MeasureTextWidth(line, DefaultFace)
		DrawText(screen, line, cx-w/2, y+float64(i)*lineHeight, clr)
	}
}
