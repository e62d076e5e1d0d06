package prefabs

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SpriteSpec struct {
	Sheet  string `yaml:"sheet"`
	FrameW int    `yaml:"frame_w"`
	FrameH int    `yaml:"frame_h"`
}

type AnimationSpec struct {
	Rate      float64        `yaml:"rate"`
	Current   string         `yaml:"current"`
	Sequences map[string]int `yaml:"sequences"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type HealthSpec struct {
	Current   int `yaml:"current"`
	Max       int `yaml:"max"`
	BarLength int `yaml:"bar_length"`
}

type OffsetSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Millis decodes a YAML integer of milliseconds.
type Millis int

func (m Millis) Duration() time.Duration {
	return time.Duration(m) * time.Millisecond
}

type PlayerSpec struct {
	Name          string          `yaml:"name"`
	Speed         float64         `yaml:"speed"`
	Gravity       float64         `yaml:"gravity"`
	JumpImpulse   float64         `yaml:"jump_impulse"`
	FallThreshold float64         `yaml:"fall_threshold"`
	HitboxInsetX  int             `yaml:"hitbox_inset_x"`
	GroundDepth   int             `yaml:"ground_depth"`
	Invulnerable  Millis          `yaml:"invulnerable_ms"`
	Damage        int             `yaml:"damage"`
	DamageKick    float64         `yaml:"damage_kick"`
	Health        HealthSpec      `yaml:"health"`
	Sprite        SpriteSpec      `yaml:"sprite"`
	Animation     AnimationSpec   `yaml:"animation"`
	RenderLayer   RenderLayerSpec `yaml:"render_layer"`
	Audio         []string        `yaml:"audio"`
}

type ToothSpec struct {
	Name        string          `yaml:"name"`
	Speed       float64         `yaml:"speed"`
	FloorDepth  int             `yaml:"floor_depth"`
	Script      string          `yaml:"script"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Animation   AnimationSpec   `yaml:"animation"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type ShellSpec struct {
	Name        string          `yaml:"name"`
	Range       float64         `yaml:"range"`
	Cooldown    Millis          `yaml:"cooldown_ms"`
	ShotFrame   int             `yaml:"shot_frame"`
	OffsetLeft  OffsetSpec      `yaml:"offset_left"`
	OffsetRight OffsetSpec      `yaml:"offset_right"`
	Script      string          `yaml:"script"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Animation   AnimationSpec   `yaml:"animation"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type PearlSpec struct {
	Name        string          `yaml:"name"`
	Speed       float64         `yaml:"speed"`
	Lifetime    Millis          `yaml:"lifetime_ms"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type CoinKindSpec struct {
	Value     int           `yaml:"value"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Animation AnimationSpec `yaml:"animation"`
}

type CoinsSpec struct {
	Kinds       map[string]CoinKindSpec `yaml:"kinds"`
	Particle    CoinKindSpec            `yaml:"particle"`
	RenderLayer RenderLayerSpec         `yaml:"render_layer"`
}

type CloudSpec struct {
	MinSpeed      float64      `yaml:"min_speed"`
	MaxSpeed      float64      `yaml:"max_speed"`
	SpawnInterval Millis       `yaml:"spawn_interval_ms"`
	StartCount    int          `yaml:"start_count"`
	MarginLeft    int          `yaml:"margin_left"`
	MarginRight   int          `yaml:"margin_right"`
	Sprites       []SpriteSpec `yaml:"sprites"`
}

type DecorationSpec struct {
	Sprite      SpriteSpec      `yaml:"sprite"`
	Animation   AnimationSpec   `yaml:"animation"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	OffsetY     int             `yaml:"offset_y"`
}

type WorldSpec struct {
	Spikes      SpriteSpec                `yaml:"spikes"`
	Decorations map[string]DecorationSpec `yaml:"decorations"`
}

// Catalog is every tuning spec the level builder needs.
type Catalog struct {
	Player PlayerSpec
	Tooth  ToothSpec
	Shell  ShellSpec
	Pearl  PearlSpec
	Coins  CoinsSpec
	Clouds CloudSpec
	World  WorldSpec
}

const (
	PlayerFile = "player.yaml"
	ToothFile  = "tooth.yaml"
	ShellFile  = "shell.yaml"
	PearlFile  = "pearl.yaml"
	CoinsFile  = "coins.yaml"
	CloudsFile = "clouds.yaml"
	WorldFile  = "world.yaml"
)

func LoadCatalog() (*Catalog, error) {
	var c Catalog
	var err error
	if c.Player, err = LoadSpec[PlayerSpec](PlayerFile); err != nil {
		return nil, err
	}
	if c.Tooth, err = LoadSpec[ToothSpec](ToothFile); err != nil {
		return nil, err
	}
	if c.Shell, err = LoadSpec[ShellSpec](ShellFile); err != nil {
		return nil, err
	}
	if c.Pearl, err = LoadSpec[PearlSpec](PearlFile); err != nil {
		return nil, err
	}
	if c.Coins, err = LoadSpec[CoinsSpec](CoinsFile); err != nil {
		return nil, err
	}
	if c.Clouds, err = LoadSpec[CloudSpec](CloudsFile); err != nil {
		return nil, err
	}
	if c.World, err = LoadSpec[WorldSpec](WorldFile); err != nil {
		return nil, err
	}
	return &c, nil
}
