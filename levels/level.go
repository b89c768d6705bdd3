package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is the static description of one stage. Coordinates are level
// space with y growing downward; rectangles are anchored at their top-left.
type Level struct {
	Name          string            `yaml:"name"`
	Width         float64           `yaml:"width"`
	Height        float64           `yaml:"height"`
	ViewportWidth float64           `yaml:"viewport_width"`
	GroundY       float64           `yaml:"ground_y"`
	GoalX         float64           `yaml:"goal_x"`
	PickupQuota   int               `yaml:"pickup_quota"`
	TimeBudget    float64           `yaml:"time_budget"`
	Platforms     []Rect            `yaml:"platforms"`
	Pickups       []Point           `yaml:"pickups"`
	Hazards       []Hazard          `yaml:"hazards"`
	Triggers      []Trigger         `yaml:"triggers"`
	Prompts       map[string]string `yaml:"prompts,omitempty"`
}

type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Hazard struct {
	Rect   `yaml:",inline"`
	Patrol string `yaml:"patrol,omitempty"`
}

// Trigger is a one-shot threshold. An empty Context is filled in from the
// threshold position when the level is built.
type Trigger struct {
	X       float64 `yaml:"x"`
	Context string  `yaml:"context,omitempty"`
}

// Load reads and validates a level by name, preferring an on-disk copy under
// levels/ over the embedded one. The .yaml extension is optional.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	if !fs.ValidPath(clean) {
		return nil, fmt.Errorf("%w: level name %q leaves levels/", ErrInvalidLevel, name)
	}
	data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean)))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", clean, err)
		}
	}
	return Parse(data, clean)
}

// Parse decodes and validates level yaml. name is only used in errors.
func Parse(data []byte, name string) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return &lvl, nil
}

// Names lists the embedded levels without their extension.
func Names() []string {
	entries, err := LevelsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	return names
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return path.Clean(s)
}
