package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/prefabs"
)

// PatrolScript runs a tengo patrol script. The script sees `t`, `base_x`
// and `base_y` and must set `dx` and `dy`; a variable it leaves unset reads
// as zero.
type PatrolScript struct {
	path     string
	compiled *tengo.Compiled
}

// LoadPatrolScript compiles a script from prefabs/scripts.
func LoadPatrolScript(path string) (*PatrolScript, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("patrol: load %s: %w", path, err)
	}
	return CompilePatrolScript(path, src)
}

func CompilePatrolScript(path string, src []byte) (*PatrolScript, error) {
	script := tengo.NewScript(src)
	for _, name := range []string{"t", "base_x", "base_y"} {
		if err := script.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("patrol: %s: add %s: %w", path, name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))
	script.SetMaxAllocs(4096)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("patrol: compile %s: %w", path, err)
	}
	return &PatrolScript{path: path, compiled: compiled}, nil
}

func (p *PatrolScript) Offset(t, baseX, baseY float64) (float64, float64, error) {
	if p == nil || p.compiled == nil {
		return 0, 0, fmt.Errorf("patrol: nil script")
	}
	if err := p.compiled.Set("t", t); err != nil {
		return 0, 0, err
	}
	if err := p.compiled.Set("base_x", baseX); err != nil {
		return 0, 0, err
	}
	if err := p.compiled.Set("base_y", baseY); err != nil {
		return 0, 0, err
	}
	if err := p.compiled.Run(); err != nil {
		return 0, 0, err
	}
	return p.compiled.Get("dx").Float(), p.compiled.Get("dy").Float(), nil
}

func (p *PatrolScript) Path() string {
	if p == nil {
		return ""
	}
	return p.path
}
