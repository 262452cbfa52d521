package config

import "image/color"

// BlobConfig contains all blob-related configuration values
type BlobConfig struct {
	StartX, StartY float64
	Radius         float64

	// Movement (sad = heavy + reluctant: slow accel, low top speed)
	Acceleration float64
	MaxSpeed     float64
	Damping      float64 // velocity multiplier per frame
	Gravity      float64 // constant downward bias per frame

	// Drift (like you're not fully in control)
	DriftAmplitude float64
	DriftTimeScale float64 // frame counter multiplier fed to the noise field
	DriftTurns     float64 // noise [0,1) maps onto this many full turns

	NoiseSeedMax  float64 // initial noise seed drawn from [0, NoiseSeedMax)
	NoiseSeedStep float64 // advance per frame

	// Tears
	IdleSpeed     float64 // below this speed the blob counts as idle
	TearCooldown  int     // frames between tears while idle
	EyeOffsetX    float64
	EyeOffsetY    float64
	TearSpawnLift float64 // tears start this far above the blob center

	// Shape (rendering only)
	Points     int
	Wobble     float64 // noise sampling radius around the outline
	WobbleAmt  float64 // max radius deviation in pixels
	SagMin     float64 // droop at the top of the outline
	SagMax     float64 // droop at the bottom of the outline
	ShapeSpeed float64 // frame counter multiplier for outline noise
}

// NoteConfig contains note (pickable object) configuration
type NoteConfig struct {
	Count  int
	Radius float64

	// Interaction
	ReachFactor  float64 // fraction of the blob radius added to Radius for the steal/bump range
	BumpDistance float64

	// Orbit while carried
	OrbitSpeed     float64 // radians per frame
	OrbitRadiusMin float64
	OrbitRadiusMax float64
	OrbitSquash    float64 // vertical radius = OrbitRadius * OrbitSquash
	OrbitOffsetY   float64
	RespawnDelay   int     // frames spent carried before returning

	// Idle jitter
	SeedMax      float64
	JitterX      float64
	JitterTime   float64
	BobAmplitude float64
	BobFrequency float64

	// Spawn area margins (inset from the world edges)
	SpawnMargin       float64
	SpawnBottomMargin float64

	// Idle clamp margins
	ClampMargin       float64
	ClampBottomMargin float64
}

// RainConfig contains ambient rain particle configuration
type RainConfig struct {
	Count        int
	Slant        float64 // horizontal drift per frame
	SpeedMin     float64
	SpeedMax     float64
	LenMin       float64
	LenMax       float64
	AlphaMin     float64
	AlphaMax     float64
	RespawnYMin  float64 // recycled drops start in [RespawnYMin, RespawnYMax)
	RespawnYMax  float64
	WrapMargin   float64 // drops wrap once they pass Width+WrapMargin
	StrokeWidth  float64
	DriftOffsetX float64 // rendering: lower end offset of a drop line
}

// TearConfig contains tear particle configuration
type TearConfig struct {
	Life     int
	SpeedMin float64
	SpeedMax float64
	Gravity  float64
	Width    float64
	Height   float64
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Height      float64 // bar at the top of the screen
	FloorMargin float64 // floor line distance from the bottom; also the blob's lower bound
	Title       string
	Controls    string
	TitleSize   float64
	ControlSize float64
	CounterSize float64
	PopScale    float32 // highlight starts at this strength after a steal
	PopDuration float32 // seconds
}

// MoodConfig drives the intensity of the sad visuals.
type MoodConfig struct {
	Level    float64 // 0..1 (higher = sadder vibe)
	Baseline float64 // level the rain and droop values above are tuned for
	Vignette float64 // edge darkening at Baseline
}

// MapConfig lists the bookshop shelves.
type MapConfig struct {
	Shelves  []ShelfDef
	CellSize int // resolv space cell size
}

// ShelfDef is one rectangular obstacle.
type ShelfDef struct {
	X, Y, W, H float64
}

// PaletteConfig contains all drawing colors.
type PaletteConfig struct {
	SkyTop      color.NRGBA
	SkyBottom   color.NRGBA
	WindowGlow  color.NRGBA
	FloorLine   color.NRGBA
	Dust        color.NRGBA
	Rain        color.NRGBA
	Shelf       color.NRGBA
	ShelfLine   color.NRGBA
	NoteIdle    color.NRGBA
	NoteCarried color.NRGBA
	NoteInk     color.NRGBA
	BlobBody    color.NRGBA
	BlobShadow  color.NRGBA
	BlobFace    color.NRGBA
	Eyelid      color.NRGBA
	Tear        color.NRGBA
	HUDBar      color.NRGBA
	HUDText     color.NRGBA
	Pop         color.NRGBA
	Overlay     color.NRGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	ShowOverlay bool // start with the collision overlay visible
}

// Global configuration instances
var C *Config
var Blob BlobConfig
var Note NoteConfig
var Rain RainConfig
var Tear TearConfig
var HUD HUDConfig
var Mood MoodConfig
var Map MapConfig
var Palette PaletteConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  900,
		Height: 540,
		TPS:    60,
	}

	Blob = BlobConfig{
		StartX: 140,
		StartY: 140,
		Radius: 34,

		Acceleration: 0.12,
		MaxSpeed:     2.3,
		Damping:      0.9,
		Gravity:      0.035,

		DriftAmplitude: 0.1,
		DriftTimeScale: 0.01,
		DriftTurns:     2,

		NoiseSeedMax:  1000,
		NoiseSeedStep: 0.006,

		IdleSpeed:     0.35,
		TearCooldown:  22,
		EyeOffsetX:    11,
		EyeOffsetY:    -8,
		TearSpawnLift: 2,

		Points:     26,
		Wobble:     0.75,
		WobbleAmt:  10,
		SagMin:     -2,
		SagMax:     10,
		ShapeSpeed: 0.012,
	}

	Note = NoteConfig{
		Count:  9,
		Radius: 12,

		ReachFactor:  0.85,
		BumpDistance: 18,

		OrbitSpeed:     0.025, // slow, not playful
		OrbitRadiusMin: 42,
		OrbitRadiusMax: 58,
		OrbitSquash:    0.55,
		OrbitOffsetY:   14,
		RespawnDelay:   260,

		SeedMax:      999,
		JitterX:      0.25,
		JitterTime:   0.01,
		BobAmplitude: 0.1,
		BobFrequency: 0.02,

		SpawnMargin:       70,
		SpawnBottomMargin: 90,

		ClampMargin:       50,
		ClampBottomMargin: 90,
	}

	Rain = RainConfig{
		Count:        160,
		Slant:        0.35,
		SpeedMin:     3.2,
		SpeedMax:     6.2,
		LenMin:       8,
		LenMax:       16,
		AlphaMin:     22,
		AlphaMax:     60,
		RespawnYMin:  -200,
		RespawnYMax:  -20,
		WrapMargin:   20,
		StrokeWidth:  2,
		DriftOffsetX: 2,
	}

	Tear = TearConfig{
		Life:     110,
		SpeedMin: 1.4,
		SpeedMax: 2.4,
		Gravity:  0.02,
		Width:    6,
		Height:   8,
	}

	HUD = HUDConfig{
		Height:      60,
		FloorMargin: 60,
		Title:       "Emotion: SAD (slow/heavy movement + rain + droopy face)",
		Controls:    "Move: WASD/Arrows | Touch notes to STEAL | Hold SHIFT to BUMP",
		TitleSize:   15,
		ControlSize: 13,
		CounterSize: 14,
		PopScale:    1,
		PopDuration: 0.6,
	}

	Mood = MoodConfig{
		Level:    0.65,
		Baseline: 0.65,
		Vignette: 0.55,
	}

	// Small map: "bookshop shelves" as obstacles
	Map = MapConfig{
		CellSize: 20,

		Shelves: []ShelfDef{
			{X: 240, Y: 80, W: 40, H: 380},
			{X: 440, Y: 0, W: 40, H: 260},
			{X: 440, Y: 340, W: 40, H: 200},
			{X: 640, Y: 80, W: 40, H: 380},
		},
	}

	Palette = PaletteConfig{
		SkyTop:      color.NRGBA{R: 10, G: 18, B: 30, A: 255},
		SkyBottom:   color.NRGBA{R: 25, G: 28, B: 35, A: 255},
		WindowGlow:  color.NRGBA{R: 120, G: 150, B: 180, A: 18},
		FloorLine:   color.NRGBA{R: 255, G: 255, B: 255, A: 18},
		Dust:        color.NRGBA{R: 255, G: 255, B: 255, A: 10},
		Rain:        color.NRGBA{R: 170, G: 200, B: 220, A: 255},
		Shelf:       color.NRGBA{R: 35, G: 45, B: 60, A: 220},
		ShelfLine:   color.NRGBA{R: 255, G: 255, B: 255, A: 18},
		NoteIdle:    color.NRGBA{R: 235, G: 220, B: 200, A: 230},
		NoteCarried: color.NRGBA{R: 255, G: 255, B: 255, A: 200},
		NoteInk:     color.NRGBA{R: 30, G: 30, B: 30, A: 60},
		BlobBody:    color.NRGBA{R: 90, G: 130, B: 150, A: 255},
		BlobShadow:  color.NRGBA{R: 35, G: 55, B: 70, A: 90},
		BlobFace:    color.NRGBA{R: 20, G: 40, B: 55, A: 255},
		Eyelid:      color.NRGBA{R: 20, G: 40, B: 55, A: 120},
		Tear:        color.NRGBA{R: 180, G: 220, B: 255, A: 150},
		HUDBar:      color.NRGBA{R: 0, G: 0, B: 0, A: 150},
		HUDText:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Pop:         color.NRGBA{R: 180, G: 220, B: 255, A: 90},
		Overlay:     color.NRGBA{R: 0, G: 0, B: 0, A: 180},
	}

	Debug = DebugConfig{
		ShowOverlay: false,
	}
}

// MoodScale is the factor applied to mood-driven visuals.
func MoodScale() float64 {
	return Mood.Level / Mood.Baseline
}

// PlayHeight is the bottom of the walkable area (floor line).
func PlayHeight() float64 {
	return float64(C.Height) - HUD.FloorMargin
}
