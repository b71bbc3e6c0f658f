// internal/strategy/script.go
package strategy

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"go-termite/internal/component"
	"go-termite/internal/defs"
	"go-termite/internal/interfaces"
	"go-termite/pkg/arena"
)

// ScriptTurn is one turn of a scripted player. Deploy entries read "kind x y",
// upgrade and remove entries read "x y".
type ScriptTurn struct {
	Turn    int      `yaml:"turn"`
	Deploy  []string `yaml:"deploy,omitempty"`
	Upgrade []string `yaml:"upgrade,omitempty"`
	Remove  []string `yaml:"remove,omitempty"`
}

type scriptFile struct {
	Turns []ScriptTurn `yaml:"turns"`
}

type scriptedTurn struct {
	deploy  []interfaces.Deployment
	upgrade []arena.Point
	remove  []arena.Point
}

// Script replays a fixed list of commands keyed by turn number.
type Script struct {
	turns map[int]scriptedTurn
}

// LoadScript reads a YAML script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var file scriptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal script: %w", err)
	}
	return NewScript(file.Turns)
}

// NewScript validates the commands of every turn up front.
func NewScript(turns []ScriptTurn) (*Script, error) {
	s := &Script{turns: make(map[int]scriptedTurn, len(turns))}
	for _, t := range turns {
		if _, dup := s.turns[t.Turn]; dup {
			return nil, fmt.Errorf("turn %d scripted twice", t.Turn)
		}
		var st scriptedTurn
		for _, cmd := range t.Deploy {
			d, err := ParseDeployment(cmd)
			if err != nil {
				return nil, fmt.Errorf("turn %d: %w", t.Turn, err)
			}
			st.deploy = append(st.deploy, d)
		}
		for _, cmd := range t.Upgrade {
			p, err := ParsePoint(cmd)
			if err != nil {
				return nil, fmt.Errorf("turn %d: %w", t.Turn, err)
			}
			st.upgrade = append(st.upgrade, p)
		}
		for _, cmd := range t.Remove {
			p, err := ParsePoint(cmd)
			if err != nil {
				return nil, fmt.Errorf("turn %d: %w", t.Turn, err)
			}
			st.remove = append(st.remove, p)
		}
		s.turns[t.Turn] = st
	}
	return s, nil
}

func (s *Script) Deploy(view *component.GameStateView) []interfaces.Deployment {
	return s.turns[view.Turn].deploy
}

func (s *Script) Upgrade(view *component.GameStateView) []arena.Point {
	return s.turns[view.Turn].upgrade
}

func (s *Script) Remove(view *component.GameStateView) []arena.Point {
	return s.turns[view.Turn].remove
}

// ParseDeployment reads "kind x y".
func ParseDeployment(cmd string) (interfaces.Deployment, error) {
	fields := strings.Fields(cmd)
	if len(fields) != 3 {
		return interfaces.Deployment{}, fmt.Errorf("deployment %q: want \"kind x y\"", cmd)
	}
	kind, err := defs.ParseKind(strings.ToLower(fields[0]))
	if err != nil {
		return interfaces.Deployment{}, err
	}
	p, err := parseXY(fields[1], fields[2])
	if err != nil {
		return interfaces.Deployment{}, fmt.Errorf("deployment %q: %w", cmd, err)
	}
	return interfaces.Deployment{Kind: kind, At: p}, nil
}

// ParseDeployments reads a comma separated list of "kind x y" commands.
func ParseDeployments(list string) ([]interfaces.Deployment, error) {
	var out []interfaces.Deployment
	for _, cmd := range strings.Split(list, ",") {
		if strings.TrimSpace(cmd) == "" {
			continue
		}
		d, err := ParseDeployment(cmd)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ParsePoint reads "x y".
func ParsePoint(cmd string) (arena.Point, error) {
	fields := strings.Fields(cmd)
	if len(fields) != 2 {
		return arena.Point{}, fmt.Errorf("point %q: want \"x y\"", cmd)
	}
	return parseXY(fields[0], fields[1])
}

func parseXY(xs, ys string) (arena.Point, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return arena.Point{}, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return arena.Point{}, fmt.Errorf("bad y: %w", err)
	}
	return arena.Point{X: x, Y: y}, nil
}
