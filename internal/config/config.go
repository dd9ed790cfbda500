// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	// Поле появления врагов: отступ от краёв экрана
	SpawnMargin = 50

	EnemyRadius = 16.0 // радиус текстуры врага
	EnemyScale  = 1.5
	// EnemyHalfSize - половина стороны квадрата попадания (границы спрайта)
	EnemyHalfSize = EnemyRadius * EnemyScale

	CenterZoneStroke = 2.0

	HUDX          = 16
	HUDY          = 16
	HUDLineHeight = 34

	HealthIndicatorX = ScreenWidth - 110
	HealthIndicatorY = 40

	TitleFontSize  = 48
	HUDFontSize    = 32
	SmallFontSize  = 24
	ButtonPaddingX = 20
	ButtonPaddingY = 10
)

// CenterX, CenterY - центр экрана, к которому идут враги
const (
	CenterX = ScreenWidth / 2.0
	CenterY = ScreenHeight / 2.0
)

var (
	BackgroundColor    = color.RGBA{0, 0, 0, 255}
	TextLightColor     = color.RGBA{255, 255, 255, 255}
	ButtonColor        = color.RGBA{0x33, 0x33, 0x33, 255}
	ButtonDisabled     = color.RGBA{0x22, 0x22, 0x22, 255}
	ButtonTextDisabled = color.RGBA{0x88, 0x88, 0x88, 255}
	CenterZoneColor    = color.RGBA{255, 0, 0, 255}
	CenterZoneFill     = color.RGBA{77, 0, 0, 77} // 0.3 alpha, premultiplied
	OverlayColor       = color.RGBA{0, 0, 0, 160}

	// Цвета врагов по оставшемуся здоровью
	EnemyTintFull   = color.RGBA{0, 255, 0, 255} // 3 PV
	EnemyTintHurt   = color.RGBA{0, 0, 255, 255} // 2 PV
	EnemyTintLast   = color.RGBA{255, 0, 0, 255} // 1 PV и меньше
	HealthPipFull   = color.RGBA{220, 60, 60, 255}
	HealthPipEmpty  = color.RGBA{20, 20, 30, 255}
	HealthPipStroke = color.RGBA{240, 240, 240, 255}
)
