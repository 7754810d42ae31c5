package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display     DisplayConfig      `json:"display"`
	Ship        ShipConfig         `json:"ship"`
	Asteroid    AsteroidConfig     `json:"asteroid"`
	Backgrounds []BackgroundConfig `json:"backgrounds"`
	Menu        MenuConfig         `json:"menu"`
	Debug       DebugConfig        `json:"debug"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	ShowFPS      bool   `json:"showFps"`
}

type ShipConfig struct {
	Sheet       string  `json:"sheet"`
	FrameWidth  float64 `json:"frameWidth"`
	FrameHeight float64 `json:"frameHeight"`
	Speed       float64 `json:"speed"` // Pixels per second
	SpawnX      float64 `json:"spawnX"`
	SpawnY      float64 `json:"spawnY"`
	// Fraction of the window width the ship may move in
	MovableWidth float64 `json:"movableWidth"`
}

type AsteroidConfig struct {
	Sheet    string  `json:"sheet"`
	Side     float64 `json:"side"`
	Columns  int     `json:"columns"`
	Rows     int     `json:"rows"`
	Frames   int     `json:"frames"` // Sheet cells actually used, row-major
	MinFPS   float64 `json:"minFps"`
	MaxFPS   float64 `json:"maxFps"`
	MinSpeed float64 `json:"minSpeed"`
	MaxSpeed float64 `json:"maxSpeed"`
}

// Layer names for BackgroundConfig
const (
	LayerBack   = "back"
	LayerMiddle = "middle"
	LayerFront  = "front"
)

type BackgroundConfig struct {
	Sheet    string  `json:"sheet"`
	Velocity float64 `json:"velocity"`
	Layer    string  `json:"layer"`
}

type MenuConfig struct {
	Font     string  `json:"font"`
	FontSize float64 `json:"fontSize"`
}

type DebugConfig struct {
	BoundingBoxes bool `json:"boundingBoxes"`
}
