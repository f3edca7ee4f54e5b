package main

import (
	"image/color"
	"math"
)

var (
	screenWidth  int
	screenHeight int
)

// Spark constants
const (
	sparkMaxCount      = 4000
	sparkThrustMin     = 1
	sparkThrustMax     = 5
	sparkThrustSpeed   = 2.0
	sparkThrustSpread  = 0.5
	sparkExplosionSize = 60
	sparkBurstSpeed    = 3.0
	sparkSize          = 1.5
)

// sparkDecay is subtracted from each spark color channel every tick
var sparkDecay = [3]float64{0.001, 0.005, 0.005}

// Starfield constants
const (
	starCount     = 160
	starDepthMin  = 200.0
	starDepthMax  = 1600.0
	starRadiusMax = 1.6
)

// Color constants
var (
	colorBackground = color.NRGBA{R: 3, G: 5, B: 16, A: 255}
	colorStar       = color.NRGBA{R: 110, G: 110, B: 130, A: 255}
	colorShip       = color.NRGBA{R: 120, G: 255, B: 140, A: 255}
	colorShield     = color.NRGBA{R: 90, G: 160, B: 255, A: 255}
	colorHUD        = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	colorGameOver   = color.NRGBA{R: 255, G: 80, B: 60, A: 255}

	colorRadarBackdrop = color.NRGBA{R: 10, G: 16, B: 32, A: 200}
	colorRadarBorder   = color.NRGBA{R: 24, G: 48, B: 96, A: 255}
	colorRadarShip     = color.NRGBA{R: 180, G: 255, B: 200, A: 255}
	colorRadarRock     = color.NRGBA{R: 160, G: 150, B: 130, A: 255}
	colorRadarEnemy    = color.NRGBA{R: 255, G: 90, B: 60, A: 255}
)

// Model geometry constants, in units of Pose.Scale
const (
	shipNoseLength = 1.2
	shipTailLength = 0.8
	shipHalfWidth  = 0.8
	shipFinHeight  = 0.4
	asteroidPoints = 11
	asteroidJitter = 0.25
	saucerBarWidth = 1.6
	shieldRadius   = 1.6
	lineWidth      = 1.5
)

// Radar geometry constants
const (
	radarWidth   = 160.0
	radarMargin  = 12.0
	radarBlipMin = 1.5
)

// UI constants
const (
	hudMarginX        = 12
	hudMarginY        = 12
	hudLineHeight     = 16
	windowedSizeRatio = 0.9
	fullCircle        = 2 * math.Pi
)
