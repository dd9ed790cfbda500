// internal/component/visual.go
package component

import (
	"go-click-defense/internal/config"
	"image/color"
)

// TintForHealth возвращает цвет врага по оставшемуся здоровью:
// 3 - зелёный, 2 - синий, всё остальное - красный.
func TintForHealth(health int) color.RGBA {
	switch health {
	case 3:
		return config.EnemyTintFull
	case 2:
		return config.EnemyTintHurt
	default:
		return config.EnemyTintLast
	}
}
