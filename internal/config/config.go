// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 640
	ScreenHeight = 480
	WindowTitle  = "Tanks for Everything!"
	TargetTPS    = 60
	MaxDeltaTime = 0.06

	// HealthBarWidth and HealthBarHeight size the bar drawn above every enemy.
	HealthBarWidth  = 80
	HealthBarHeight = 10
	// HealthBarGap is added to the collider half diagonal to lift the bar clear of the hull.
	HealthBarGap = 15

	// HealthBarDrainRate is how fast the displayed fill catches up with the real value (fraction/sec).
	HealthBarDrainRate = 1.5

	HUDFontSize = 14
	HUDMargin   = 10

	// BulletRadius is the hit radius used for projectile vs collider tests.
	BulletRadius = 3.0

	DefsWatchDebounceMillis = 100
)

var (
	BackgroundColor = color.RGBA{34, 40, 34, 255}
	GridColor       = color.RGBA{48, 56, 48, 255}
	NeutralTint     = color.RGBA{255, 255, 255, 255}
	HurtTint        = color.RGBA{230, 41, 55, 255}

	HealthBarBack  = color.RGBA{60, 20, 20, 220}
	HealthBarFill  = color.RGBA{0, 228, 48, 255}
	HealthBarTrail = color.RGBA{253, 249, 0, 255}
	HealthBarFrame = color.RGBA{0, 0, 0, 255}

	TextLightColor = color.RGBA{240, 240, 240, 255}
	OverlayColor   = color.RGBA{0, 0, 0, 128}

	PlayerBulletColor = color.RGBA{255, 203, 0, 255}
	EnemyBulletColor  = color.RGBA{255, 109, 194, 255}
)
