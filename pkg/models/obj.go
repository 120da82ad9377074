package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/log"
	"github.com/taigrr/planar/pkg/math2d"
)

// OBJLoader loads texture coordinates from Wavefront OBJ files.
type OBJLoader struct {
	// FlipV converts OBJ's bottom-left origin to top-left.
	FlipV bool
}

// NewOBJLoader creates a new OBJ loader with default settings.
func NewOBJLoader() *OBJLoader {
	return &OBJLoader{}
}

// LoadFile loads an OBJ file from disk.
func (l *OBJLoader) LoadFile(path string) (*UVSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer f.Close()

	return l.Load(f, path)
}

// Load parses the vt records of an OBJ from a reader. Everything else is
// skipped except o/g, which names the set.
func (l *OBJLoader) Load(r io.Reader, name string) (*UVSet, error) {
	set := NewUVSet(name)

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "vt":
			// A third (w) component is allowed and ignored.
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: invalid texture coord (need u v)", lineNum)
			}
			u, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid u coordinate: %w", lineNum, err)
			}
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid v coordinate: %w", lineNum, err)
			}
			set.UVs = append(set.UVs, math2d.V2(u, v))

		case "o", "g":
			if len(fields) > 1 {
				set.Name = fields[1]
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}
	if len(set.UVs) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoTexCoords)
	}

	if l.FlipV {
		set.FlipV()
	} else {
		set.CalculateBounds()
	}
	log.Debugf("obj %s: %d texture coords", name, len(set.UVs))
	return set, nil
}

// LoadOBJ is a convenience function to load an OBJ file with default settings.
func LoadOBJ(path string) (*UVSet, error) {
	return NewOBJLoader().LoadFile(path)
}
