package dungeon

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/dungeon3d/pkg/geometry"
)

// defaultMaxRetries is how many attempts Generate makes before surfacing a
// retryable failure to the caller, absent an explicit Config.MaxRetries.
const defaultMaxRetries = 3

// Range is an inclusive [Min,Max] sampling interval for a room dimension.
type Range struct {
	Min uint32 `yaml:"min" json:"min"`
	Max uint32 `yaml:"max" json:"max"`
}

// Validate checks that rg is a non-degenerate interval with a positive
// minimum. field names the interval in error messages.
func (rg Range) Validate(field string) error {
	if rg.Min == 0 {
		return fmt.Errorf("%s: min must be at least 1, got 0", field)
	}
	if rg.Min > rg.Max {
		return fmt.Errorf("%s: min (%d) must be <= max (%d)", field, rg.Min, rg.Max)
	}
	return nil
}

// Config specifies every dungeon generation parameter from spec section 6.
// It supports YAML parsing and includes comprehensive validation.
type Config struct {
	// Seed is the master seed for deterministic generation.
	// Use 0 to auto-generate from the wall clock; Generate reports the
	// resolved value back as Artifact.EffectiveSeed.
	Seed uint32 `yaml:"seed" json:"seed"`

	// HorizontalGridSize and VerticalGridSize are the world-unit size of
	// one grid cell along the horizontal plane and the vertical axis.
	HorizontalGridSize float32 `yaml:"horizontalGridSize" json:"horizontalGridSize"`
	VerticalGridSize   float32 `yaml:"verticalGridSize" json:"verticalGridSize"`

	// NumCandidateRooms and NumCandidateFloors bound the room scatter.
	NumCandidateRooms  uint8 `yaml:"numCandidateRooms" json:"numCandidateRooms"`
	NumCandidateFloors uint8 `yaml:"numCandidateFloors" json:"numCandidateFloors"`

	// RoomWidth, RoomDepth and RoomHeight are the per-axis sampling
	// intervals a candidate room's size is drawn from.
	RoomWidth  Range `yaml:"roomWidth" json:"roomWidth"`
	RoomDepth  Range `yaml:"roomDepth" json:"roomDepth"`
	RoomHeight Range `yaml:"roomHeight" json:"roomHeight"`

	// HorizontalRoomMargin and VerticalRoomMargin are the minimum gap
	// enforced between rooms by separation and pruning.
	HorizontalRoomMargin uint8 `yaml:"horizontalRoomMargin" json:"horizontalRoomMargin"`
	VerticalRoomMargin   uint8 `yaml:"verticalRoomMargin" json:"verticalRoomMargin"`

	// MergeRooms suppresses walls (and gates) between adjacent rooms of
	// different identifiers. Flat forces every candidate room onto a
	// single floor. UseMissionGraph enables the lock/key placement pass.
	MergeRooms      bool `yaml:"mergeRooms" json:"mergeRooms"`
	Flat            bool `yaml:"flat" json:"flat"`
	UseMissionGraph bool `yaml:"useMissionGraph" json:"useMissionGraph"`

	// AisleComplexity (0..10) controls how many rejected Delaunay edges
	// are reintroduced as non-tree loop aisles.
	AisleComplexity uint8 `yaml:"aisleComplexity" json:"aisleComplexity"`

	// GenerateSlopeInRoom reserved for a future interior-ramp motif; the
	// current voxelizer only ever places ramp cells within an aisle's
	// own corridor, never inside a room's footprint, so this flag has no
	// effect yet and is accepted purely for forward config compatibility.
	GenerateSlopeInRoom bool `yaml:"generateSlopeInRoom" json:"generateSlopeInRoom"`

	// StartRoomSize and GoalRoomSize, if set, override the size semantics
	// assigns to the chosen start/goal room after graph derivation.
	StartRoomSize *geometry.Vec3 `yaml:"startRoomSize,omitempty" json:"startRoomSize,omitempty"`
	GoalRoomSize  *geometry.Vec3 `yaml:"goalRoomSize,omitempty" json:"goalRoomSize,omitempty"`

	// MaxRetries caps how many fresh attempts Generate makes on a
	// retryable failure. Zero means defaultMaxRetries.
	MaxRetries int `yaml:"maxRetries,omitempty" json:"maxRetries,omitempty"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice. Useful
// for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks every numeric range spec.md section 6 defines. It
// returns the first violation found.
func (c *Config) Validate() error {
	if c.NumCandidateRooms == 0 {
		return fmt.Errorf("numCandidateRooms must be at least 1, got 0")
	}
	if c.NumCandidateFloors == 0 {
		return fmt.Errorf("numCandidateFloors must be at least 1, got 0")
	}
	if err := c.RoomWidth.Validate("roomWidth"); err != nil {
		return err
	}
	if err := c.RoomDepth.Validate("roomDepth"); err != nil {
		return err
	}
	if err := c.RoomHeight.Validate("roomHeight"); err != nil {
		return err
	}
	if c.AisleComplexity > 10 {
		return fmt.Errorf("aisleComplexity must be in range [0, 10], got %d", c.AisleComplexity)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("maxRetries must be >= 0, got %d", c.MaxRetries)
	}
	if c.StartRoomSize != nil {
		if err := validateFixedSize("startRoomSize", *c.StartRoomSize); err != nil {
			return err
		}
	}
	if c.GoalRoomSize != nil {
		if err := validateFixedSize("goalRoomSize", *c.GoalRoomSize); err != nil {
			return err
		}
	}
	return nil
}

func validateFixedSize(field string, size geometry.Vec3) error {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return fmt.Errorf("%s: width, depth and height must all be positive, got %v", field, size)
	}
	return nil
}

// effectiveMaxRetries returns c.MaxRetries, or defaultMaxRetries if unset.
func (c *Config) effectiveMaxRetries() int {
	if c.MaxRetries <= 0 {
		return defaultMaxRetries
	}
	return c.MaxRetries
}

// resolveMasterSeed returns c.Seed, or a wall-clock-derived value if it is
// zero. The caller reports the resolved value back as Artifact.EffectiveSeed
// for attempt 0; it is also the masterSeed retries derive from via
// rng.DeriveSeed.
func (c *Config) resolveMasterSeed() uint32 {
	if c.Seed != 0 {
		return c.Seed
	}
	seed := uint32(time.Now().UnixNano())
	if seed == 0 {
		seed = 1
	}
	return seed
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic fingerprint of the configuration, useful
// for embedders that want to cache a generation result keyed by its
// parameters. It is not consulted by Generate itself: per-attempt reseeding
// uses the raw seed (see rng.DeriveSeed), not this hash.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], c.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}
