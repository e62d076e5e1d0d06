package system

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/piratemaker/prefabs"
)

const (
	DefaultPatrolScript  = "tooth.tengo"
	DefaultShooterScript = "shell.tengo"
)

var ErrUndefinedOutput = errors.New("brain: script did not set output")

// Brain is one compiled enemy rule. The script reads the globals it was
// compiled with and sets a single boolean output.
type Brain struct {
	name     string
	output   string
	inputs   map[string]any
	compiled *tengo.Compiled
	logged   bool
}

// CompileBrain compiles src with every key of inputs declared as a global.
// The values in inputs are the defaults the script sees before Decide sets
// them.
func CompileBrain(name string, src []byte, inputs map[string]any, output string) (*Brain, error) {
	script := tengo.NewScript(src)
	for k, v := range inputs {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("brain %s: add %s: %w", name, k, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("brain %s: %w", name, err)
	}

	defaults := make(map[string]any, len(inputs))
	for k, v := range inputs {
		defaults[k] = v
	}
	return &Brain{name: name, output: output, inputs: defaults, compiled: compiled}, nil
}

func (b *Brain) Name() string {
	if b == nil {
		return ""
	}
	return b.name
}

// Decide runs the script against inputs and reads its output. Inputs the
// brain was not compiled with are rejected.
func (b *Brain) Decide(inputs map[string]any) (bool, error) {
	if b == nil || b.compiled == nil {
		return false, errors.New("brain: nil")
	}
	for k, v := range inputs {
		if _, ok := b.inputs[k]; !ok {
			return false, fmt.Errorf("brain %s: unknown input %s", b.name, k)
		}
		if err := b.compiled.Set(k, v); err != nil {
			return false, fmt.Errorf("brain %s: set %s: %w", b.name, k, err)
		}
	}
	if err := b.compiled.Run(); err != nil {
		return false, fmt.Errorf("brain %s: %w", b.name, err)
	}
	out := b.compiled.Get(b.output)
	if out == nil || out.IsUndefined() {
		return false, fmt.Errorf("brain %s: %s: %w", b.name, b.output, ErrUndefinedOutput)
	}
	return out.Bool(), nil
}

// decideOr logs the first failure of a brain and answers fallback for
// every failure.
func (b *Brain) decideOr(inputs map[string]any, fallback bool) bool {
	ok, err := b.Decide(inputs)
	if err != nil {
		if b != nil && !b.logged {
			log.Printf("%v", err)
			b.logged = true
		}
		return fallback
	}
	return ok
}

type brainKind struct {
	inputs map[string]any
	output string
}

var (
	patrolBrain = brainKind{
		inputs: map[string]any{"wall_ahead": false, "floor_ahead": true},
		output: "turn",
	}
	shooterBrain = brainKind{
		inputs: map[string]any{
			"has_target":      false,
			"dx":              0.0,
			"dy":              0.0,
			"attack_range":    0.0,
			"cooldown_active": false,
		},
		output: "attack",
	}
)

// Brains caches compiled scripts by file name so every enemy sharing a
// script shares one compiled program.
type Brains struct {
	load   func(name string) ([]byte, error)
	kinds  map[string]brainKind
	brains map[string]*Brain
	failed map[string]bool
}

// NewBrains reads scripts through prefabs.LoadScript.
func NewBrains() *Brains {
	return NewBrainsFrom(prefabs.LoadScript)
}

func NewBrainsFrom(load func(name string) ([]byte, error)) *Brains {
	return &Brains{
		load:   load,
		kinds:  map[string]brainKind{},
		brains: map[string]*Brain{},
		failed: map[string]bool{},
	}
}

func (bs *Brains) get(name string, kind brainKind) *Brain {
	name = strings.TrimSpace(name)
	if b, ok := bs.brains[name]; ok {
		return b
	}
	if bs.failed[name] {
		return nil
	}
	bs.kinds[name] = kind
	b, err := bs.compile(name, kind)
	if err != nil {
		log.Printf("brain: load %s: %v", name, err)
		bs.failed[name] = true
		return nil
	}
	bs.brains[name] = b
	return b
}

func (bs *Brains) compile(name string, kind brainKind) (*Brain, error) {
	src, err := bs.load(name)
	if err != nil {
		return nil, err
	}
	return CompileBrain(name, src, kind.inputs, kind.output)
}

// Reload recompiles a script that is already in use. A script that fails
// to compile leaves the previous program running. Names no enemy has asked
// for are ignored.
func (bs *Brains) Reload(name string) error {
	if bs == nil {
		return nil
	}
	name = strings.TrimSpace(name)
	kind, ok := bs.kinds[name]
	if !ok {
		return nil
	}
	b, err := bs.compile(name, kind)
	if err != nil {
		return err
	}
	bs.brains[name] = b
	delete(bs.failed, name)
	return nil
}

func scriptOr(name, fallback string) string {
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}
