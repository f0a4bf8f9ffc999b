// internal/config/config.go
package config

import (
	"image/color"
)

const (
	ScreenWidth  = 320
	ScreenHeight = 568
	TPS          = 60
	FrameDelta   = 1.0 / TPS // Длительность одного тика в секундах

	// Игровое поле совпадает с окном, касание классифицируется по половине ширины
	PlayWidth = ScreenWidth

	// Башня
	StackSpacing     = 55.0  // Вертикальный шаг между кусочками
	TowerBaseOffset  = 215.0 // Целевая высота первого кусочка башни
	SettleFactor     = 0.5   // Доля оставшегося пути, проходимая за тик
	InitialRandom    = 10    // Сколько случайных кусочков добавить при старте
	BasePieceX       = ScreenWidth / 2
	BasePieceY       = TowerBaseOffset - StackSpacing
	PieceWidth       = 130.0
	PieceHeight      = 50.0
	ChopstickLength  = 40.0
	ChopstickOffsetY = 10.0

	// Вероятности сторон для нового кусочка, в процентах от 100
	LeftSideWeight  = 45
	RightSideWeight = 45
	NoneSideWeight  = 10

	// Здоровье и очки
	InitialHealth   = 1.0
	MaxHealth       = 1.0
	HealthIncrement = 0.1
	HealthDecay     = 0.01

	// Игрок
	PlayerLeftX  = 70.0
	PlayerRightX = 252.0
	PlayerY      = 170.0
	PlayerWidth  = 60.0
	PlayerHeight = 80.0
	PunchTime    = 0.15 // Длительность анимации удара в секундах

	// Эффекты
	FlipDuration     = 0.3 // Улёт выбитого кусочка
	FlipDistance     = 260.0
	FlipLift         = 40.0
	DistressDuration = 0.5 // Покраснение при проигрыше

	// UI
	HealthBarX      = 60.0
	HealthBarY      = 30.0
	HealthBarWidth  = 200.0
	HealthBarHeight = 14.0
	ScoreLabelY     = 80
	PlayButtonW     = 140.0
	PlayButtonH     = 48.0
	PlayButtonY     = 300.0
)

var (
	BackgroundColor   = color.RGBA{245, 225, 190, 255}
	PieceColor        = color.RGBA{250, 250, 245, 255}
	PieceFillingColor = color.RGBA{230, 90, 70, 255}
	PieceStrokeColor  = color.RGBA{60, 40, 30, 255}
	ChopstickColor    = color.RGBA{150, 100, 50, 255}
	PlayerColor       = color.RGBA{90, 90, 100, 255}
	PlayerEarColor    = color.RGBA{240, 170, 170, 255}
	PunchColor        = color.RGBA{255, 240, 200, 255}
	DistressColor     = color.RGBA{220, 20, 20, 255}
	HealthBarColor    = color.RGBA{220, 60, 60, 255}
	HealthBarBgColor  = color.RGBA{60, 40, 30, 200}
	ButtonColor       = color.RGBA{70, 130, 180, 230}
	ButtonHoverColor  = color.RGBA{90, 160, 210, 230}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{40, 30, 20, 255}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
)
