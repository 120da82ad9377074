// Package models loads 2D texture coordinates from model files.
package models

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/taigrr/planar/pkg/math2d"
)

var (
	// ErrNoTexCoords is returned when a model carries no texture coordinates.
	ErrNoTexCoords = errors.New("model has no texture coordinates")
	// ErrUnsupportedFormat is returned for file extensions no loader handles.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// UVSet is a named set of texture coordinates with its bounding box.
type UVSet struct {
	Name string
	UVs  []math2d.Vec2

	// Bounding box (calculated on load)
	BoundsMin math2d.Vec2
	BoundsMax math2d.Vec2
}

// NewUVSet creates an empty set.
func NewUVSet(name string) *UVSet {
	return &UVSet{
		Name: name,
		UVs:  make([]math2d.Vec2, 0),
	}
}

// Count returns the number of coordinates.
func (s *UVSet) Count() int {
	return len(s.UVs)
}

// CalculateBounds computes the axis-aligned bounding box.
func (s *UVSet) CalculateBounds() {
	if len(s.UVs) == 0 {
		s.BoundsMin, s.BoundsMax = math2d.Zero2(), math2d.Zero2()
		return
	}

	s.BoundsMin = s.UVs[0]
	s.BoundsMax = s.UVs[0]
	for i := range s.UVs[1:] {
		uv := &s.UVs[i+1]
		math2d.Min(&s.BoundsMin, &s.BoundsMin, uv)
		math2d.Max(&s.BoundsMax, &s.BoundsMax, uv)
	}
}

// Center returns the center of the bounding box.
func (s *UVSet) Center() math2d.Vec2 {
	var c math2d.Vec2
	math2d.Lerp(&c, &s.BoundsMin, &s.BoundsMax, 0.5)
	return c
}

// Size returns the dimensions of the bounding box.
func (s *UVSet) Size() math2d.Vec2 {
	var d math2d.Vec2
	math2d.Sub(&d, &s.BoundsMax, &s.BoundsMin)
	return d
}

// Transform applies m to every coordinate in place and recomputes bounds.
func (s *UVSet) Transform(m *math2d.Matrix) {
	for i := range s.UVs {
		math2d.ApplyTransform(&s.UVs[i], &s.UVs[i], m)
	}
	s.CalculateBounds()
}

// FlipV maps v to 1-v, converting between top-left and bottom-left origins.
func (s *UVSet) FlipV() {
	flip := math2d.Matrix{1, 0, 0, -1, 0, 1}
	s.Transform(&flip)
}

// Clone creates a deep copy of the set.
func (s *UVSet) Clone() *UVSet {
	clone := &UVSet{
		Name:      s.Name,
		UVs:       make([]math2d.Vec2, len(s.UVs)),
		BoundsMin: s.BoundsMin,
		BoundsMax: s.BoundsMax,
	}
	copy(clone.UVs, s.UVs)
	return clone
}

// LoadUVs loads texture coordinates from a .glb, .gltf or .obj file.
func LoadUVs(path string) (*UVSet, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".glb", ".gltf":
		return LoadGLTFUVs(path)
	case ".obj":
		return LoadOBJ(path)
	default:
		return nil, fmt.Errorf("%w: %s (use .obj, .glb, or .gltf)", ErrUnsupportedFormat, ext)
	}
}
