package models

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"

	"fortio.org/log"
	"github.com/qmuntal/gltf"
	"github.com/taigrr/planar/pkg/math2d"
)

// ExtTextureTransform is the glTF extension carrying per-texture UV transforms.
const ExtTextureTransform = "KHR_texture_transform"

// TextureTransform is the KHR_texture_transform payload. TexCoord, when set,
// overrides the texture info's texCoord.
type TextureTransform struct {
	Offset   [2]float64 `json:"offset"`
	Rotation float64    `json:"rotation"`
	Scale    [2]float64 `json:"scale"`
	TexCoord *int       `json:"texCoord,omitempty"`
}

// Matrix returns T·R·S as defined by KHR_texture_transform, where
// R = [cos sin; -sin cos], i.e. Rotation(-t.Rotation).
func (t TextureTransform) Matrix() math2d.Matrix {
	tr := math2d.Translation(t.Offset[0], t.Offset[1])
	rot := math2d.Rotation(-t.Rotation)
	sc := math2d.Scaling(t.Scale[0], t.Scale[1])
	var m math2d.Matrix
	math2d.MatMul(&m, &tr, &rot)
	return *math2d.MatMul(&m, &m, &sc)
}

// GLTFLoader loads texture coordinates from GLTF/GLB files.
type GLTFLoader struct {
	// ApplyTextureTransform applies each material's KHR_texture_transform.
	ApplyTextureTransform bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		ApplyTextureTransform: true,
	}
}

// LoadGLTFUVs loads TEXCOORD_0 from a .glb or .gltf file.
func LoadGLTFUVs(path string) (*UVSet, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns its texture coordinates.
func (l *GLTFLoader) Load(path string) (*UVSet, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.FromDocument(doc, filepath.Base(path))
}

// FromDocument collects TEXCOORD_0 from every triangle primitive in doc.
func (l *GLTFLoader) FromDocument(doc *gltf.Document, name string) (*UVSet, error) {
	set := NewUVSet(name)

	for mi, m := range doc.Meshes {
		for pi, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]
			if !ok {
				continue
			}
			uvs, err := readVec2Accessor(doc, uvIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: read uvs: %w", mi, pi, err)
			}

			if l.ApplyTextureTransform && prim.Material != nil {
				tt, ok, err := materialTextureTransform(doc, int(*prim.Material))
				if err != nil {
					return nil, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
				}
				if ok {
					mat := tt.Matrix()
					for i := range uvs {
						math2d.ApplyTransform(&uvs[i], &uvs[i], &mat)
					}
				}
			}
			set.UVs = append(set.UVs, uvs...)
		}
	}

	if len(set.UVs) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoTexCoords)
	}
	set.CalculateBounds()
	log.Debugf("gltf %s: %d texture coords", name, len(set.UVs))
	return set, nil
}

// materialTextureTransform returns the KHR_texture_transform of a material's
// base color texture, if any. Transforms that target a UV set other than
// TEXCOORD_0 are reported as absent.
func materialTextureTransform(doc *gltf.Document, matIdx int) (TextureTransform, bool, error) {
	tt := TextureTransform{Scale: [2]float64{1, 1}}
	if matIdx < 0 || matIdx >= len(doc.Materials) || doc.Materials[matIdx] == nil {
		return tt, false, fmt.Errorf("material %d out of range", matIdx)
	}
	pbr := doc.Materials[matIdx].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorTexture == nil {
		return tt, false, nil
	}
	ext, ok := pbr.BaseColorTexture.Extensions[ExtTextureTransform]
	if !ok {
		return tt, false, nil
	}

	var raw []byte
	switch v := ext.(type) {
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	default:
		// Registered extension types decode into their own structs; go back
		// through JSON to read them.
		b, err := json.Marshal(v)
		if err != nil {
			return tt, false, fmt.Errorf("encode %s: %w", ExtTextureTransform, err)
		}
		raw = b
	}
	if err := json.Unmarshal(raw, &tt); err != nil {
		return tt, false, fmt.Errorf("decode %s: %w", ExtTextureTransform, err)
	}
	texCoord := pbr.BaseColorTexture.TexCoord
	if tt.TexCoord != nil {
		texCoord = *tt.TexCoord
	}
	if texCoord != 0 {
		log.Debugf("material %d: %s targets TEXCOORD_%d, skipped", matIdx, ExtTextureTransform, texCoord)
		return tt, false, nil
	}
	return tt, true, nil
}

// readVec2Accessor reads float VEC2 data from a GLTF accessor.
func readVec2Accessor(doc *gltf.Document, accessorIdx int) ([]math2d.Vec2, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) || doc.Accessors[accessorIdx] == nil {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec2 {
		return nil, fmt.Errorf("expected VEC2, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("unsupported VEC2 component type: %v", accessor.ComponentType)
	}
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	viewIdx := *accessor.BufferView
	if viewIdx < 0 || viewIdx >= len(doc.BufferViews) || doc.BufferViews[viewIdx] == nil {
		return nil, fmt.Errorf("buffer view %d out of range", viewIdx)
	}
	bufferView := doc.BufferViews[viewIdx]
	if bufferView.Buffer < 0 || bufferView.Buffer >= len(doc.Buffers) || doc.Buffers[bufferView.Buffer] == nil {
		return nil, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	buffer := doc.Buffers[bufferView.Buffer]

	// gltf.Open loads both GLB chunks and external .bin files into Data.
	bufData := buffer.Data
	if bufData == nil {
		return nil, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 8 // 2 floats * 4 bytes
	}
	count := accessor.Count
	if start < 0 || stride < 8 || count < 0 {
		return nil, fmt.Errorf("invalid accessor layout (offset %d, stride %d, count %d)", start, stride, count)
	}
	if count > 0 && start+(count-1)*stride+8 > len(bufData) {
		return nil, fmt.Errorf("accessor reads past end of buffer (%d bytes)", len(bufData))
	}

	result := make([]math2d.Vec2, count)
	for i := range count {
		offset := start + i*stride
		result[i] = math2d.V2(
			float64(readFloat32(bufData[offset:])),
			float64(readFloat32(bufData[offset+4:])),
		)
	}
	return result, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
