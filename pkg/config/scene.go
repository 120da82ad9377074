// Package config loads planar scene files.
//
// A scene is YAML:
//
//	fps: 60
//	spring:
//	  frequency: 4
//	  damping: 1
//	points:
//	  - [0, 0]
//	  - [10, 5]
//	transform:
//	  - scale: [2, 2]
//	  - rotate: 90 # degrees, counter-clockwise
//	  - translate: [1, 1]
//
// Transform steps apply in order: the first listed step acts first.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/taigrr/planar/pkg/anim"
	"github.com/taigrr/planar/pkg/math2d"
	"gopkg.in/yaml.v3"
)

// Scene describes a keyframe path, the transform applied to it and the
// spring used to animate along it.
type Scene struct {
	FPS       int          `yaml:"fps"`
	Spring    SpringConfig `yaml:"spring"`
	Points    [][2]float64 `yaml:"points"`
	Transform []Step       `yaml:"transform"`
}

// SpringConfig holds harmonica spring parameters.
type SpringConfig struct {
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}

// Step is one transform operation. Exactly one field must be set.
type Step struct {
	Translate *[2]float64 `yaml:"translate,omitempty"`
	Rotate    *float64    `yaml:"rotate,omitempty"`
	Scale     *[2]float64 `yaml:"scale,omitempty"`
}

// Default returns a scene with default fps and spring settings and no points.
func Default() *Scene {
	return &Scene{
		FPS: 60,
		Spring: SpringConfig{
			Frequency: anim.DefaultFrequency,
			Damping:   anim.DefaultDamping,
		},
	}
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene. Unset fields keep their defaults.
func Parse(r io.Reader) (*Scene, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the scene for values the animation code cannot use.
func (s *Scene) Validate() error {
	if s.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", s.FPS)
	}
	if s.Spring.Frequency <= 0 {
		return fmt.Errorf("spring frequency must be positive, got %g", s.Spring.Frequency)
	}
	if s.Spring.Damping < 0 {
		return fmt.Errorf("spring damping must not be negative, got %g", s.Spring.Damping)
	}
	if len(s.Points) < 2 {
		return fmt.Errorf("need at least 2 points, got %d", len(s.Points))
	}
	for i, st := range s.Transform {
		if n := st.ops(); n != 1 {
			return fmt.Errorf("transform step %d: want exactly one of translate, rotate, scale; got %d", i, n)
		}
	}
	return nil
}

func (st Step) ops() int {
	n := 0
	if st.Translate != nil {
		n++
	}
	if st.Rotate != nil {
		n++
	}
	if st.Scale != nil {
		n++
	}
	return n
}

// Matrix returns the step as an affine matrix.
func (st Step) Matrix() math2d.Matrix {
	switch {
	case st.Translate != nil:
		return math2d.Translation(st.Translate[0], st.Translate[1])
	case st.Rotate != nil:
		return math2d.Rotation(*st.Rotate * math.Pi / 180)
	case st.Scale != nil:
		return math2d.Scaling(st.Scale[0], st.Scale[1])
	}
	return math2d.Identity()
}

// Matrix composes the transform steps, first step applied first.
func (s *Scene) Matrix() math2d.Matrix {
	m := math2d.Identity()
	for _, st := range s.Transform {
		sm := st.Matrix()
		math2d.MatMul(&m, &sm, &m)
	}
	return m
}

// Keyframes returns the points as vectors.
func (s *Scene) Keyframes() []math2d.Vec2 {
	out := make([]math2d.Vec2, len(s.Points))
	for i, p := range s.Points {
		math2d.Set(&out[i], p[0], p[1])
	}
	return out
}

// Path builds an animation path through the keyframes.
func (s *Scene) Path() *anim.Path {
	return anim.NewPath(s.Keyframes()...)
}

// NewSpring builds a spring from the scene's settings.
func (s *Scene) NewSpring() *anim.Spring2 {
	return anim.NewSpring2(s.FPS, s.Spring.Frequency, s.Spring.Damping)
}
