package assets

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

const (
	attrPosition  = "POSITION"
	attrNormal    = "NORMAL"
	attrTexCoord0 = "TEXCOORD_0"
	attrColor0    = "COLOR_0"
)

// GltfContents holds all meshes and all decodable images of a glTF file, in
// the order they appear in the file.
type GltfContents struct {
	Meshes   []MeshAsset
	Textures []TextureAsset
}

// LoadGltf loads a glTF 2.0 file, either .gltf or .glb, and extracts
// all meshes and textures. Images that can not be decoded are skipped.
func LoadGltf(path string) (GltfContents, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return GltfContents{}, gltfLoadFailed(path, err)
	}

	var contents GltfContents

	for meshIdx, mesh := range doc.Meshes {
		name := mesh.Name
		if name == "" {
			name = "unnamed"
		}

		var primitives []MeshPrimitive

		for primIdx, primitive := range mesh.Primitives {
			converted, err := readPrimitive(doc, primitive)
			if err != nil {
				err = fmt.Errorf("mesh %d primitive %d: %w", meshIdx, primIdx, err)
				return GltfContents{}, gltfLoadFailed(path, err)
			}

			primitives = append(primitives, converted)
		}

		slog.Debug(
			"Loaded mesh",
			slog.String("name", name),
			slog.Int("primitives", len(primitives)),
		)

		contents.Meshes = append(contents.Meshes, MeshAsset{Name: name, Primitives: primitives})
	}

	for imageIdx, img := range doc.Images {
		texture, err := readImage(doc, filepath.Dir(path), img)
		if err != nil {
			slog.Debug(
				"Skipping unsupported image in glTF",
				slog.String("path", path),
				slog.Int("image", imageIdx),
				slog.String("err", err.Error()),
			)

			continue
		}

		contents.Textures = append(contents.Textures, texture)
	}

	slog.Debug(
		"Loaded glTF",
		slog.String("path", path),
		slog.Int("meshes", len(contents.Meshes)),
		slog.Int("textures", len(contents.Textures)),
	)

	return contents, nil
}

func readPrimitive(doc *gltf.Document, primitive *gltf.Primitive) (MeshPrimitive, error) {
	// positions and normals are empty, not nil, when absent
	result := MeshPrimitive{
		Positions: [][3]float32{},
		Normals:   [][3]float32{},
	}

	if acr, ok := accessorOf(doc, primitive, attrPosition); ok {
		positions, err := modeler.ReadPosition(doc, acr, nil)
		if err != nil {
			return MeshPrimitive{}, fmt.Errorf("read positions: %w", err)
		}

		result.Positions = positions
	}

	if acr, ok := accessorOf(doc, primitive, attrNormal); ok {
		normals, err := modeler.ReadNormal(doc, acr, nil)
		if err != nil {
			return MeshPrimitive{}, fmt.Errorf("read normals: %w", err)
		}

		result.Normals = normals
	}

	if acr, ok := accessorOf(doc, primitive, attrTexCoord0); ok {
		texCoords, err := modeler.ReadTextureCoord(doc, acr, nil)
		if err != nil {
			return MeshPrimitive{}, fmt.Errorf("read texture coordinates: %w", err)
		}

		result.TexCoords = texCoords
	}

	if acr, ok := accessorOf(doc, primitive, attrColor0); ok {
		colors, err := readColors(doc, acr)
		if err != nil {
			return MeshPrimitive{}, fmt.Errorf("read colors: %w", err)
		}

		result.Colors = colors
	}

	if primitive.Indices != nil {
		idx := *primitive.Indices
		if int(idx) >= len(doc.Accessors) {
			return MeshPrimitive{}, fmt.Errorf("index accessor %d out of range", idx)
		}

		indices, err := modeler.ReadIndices(doc, doc.Accessors[idx], nil)
		if err != nil {
			return MeshPrimitive{}, fmt.Errorf("read indices: %w", err)
		}

		result.Indices = indices
	}

	return result, nil
}

func accessorOf(doc *gltf.Document, primitive *gltf.Primitive, attribute string) (*gltf.Accessor, bool) {
	idx, ok := primitive.Attributes[attribute]
	if !ok || int(idx) >= len(doc.Accessors) {
		return nil, false
	}

	return doc.Accessors[idx], true
}

// readColors reads a color accessor as RGBA float values. RGB colors get an alpha
// value of one, normalized integer components are mapped to the range [0, 1].
func readColors(doc *gltf.Document, acr *gltf.Accessor) ([][4]float32, error) {
	data, err := modeler.ReadAccessor(doc, acr, nil)
	if err != nil {
		return nil, err
	}

	switch data := data.(type) {
	case [][4]float32:
		return data, nil

	case [][3]float32:
		return mapColors(data, func(c [3]float32) [4]float32 {
			return [4]float32{c[0], c[1], c[2], 1}
		}), nil

	case [][4]uint8:
		return mapColors(data, func(c [4]uint8) [4]float32 {
			return [4]float32{unorm8(c[0]), unorm8(c[1]), unorm8(c[2]), unorm8(c[3])}
		}), nil

	case [][3]uint8:
		return mapColors(data, func(c [3]uint8) [4]float32 {
			return [4]float32{unorm8(c[0]), unorm8(c[1]), unorm8(c[2]), 1}
		}), nil

	case [][4]uint16:
		return mapColors(data, func(c [4]uint16) [4]float32 {
			return [4]float32{unorm16(c[0]), unorm16(c[1]), unorm16(c[2]), unorm16(c[3])}
		}), nil

	case [][3]uint16:
		return mapColors(data, func(c [3]uint16) [4]float32 {
			return [4]float32{unorm16(c[0]), unorm16(c[1]), unorm16(c[2]), 1}
		}), nil

	default:
		return nil, fmt.Errorf("unsupported color accessor type %T", data)
	}
}

func mapColors[C any](colors []C, convert func(C) [4]float32) [][4]float32 {
	result := make([][4]float32, len(colors))
	for idx, color := range colors {
		result[idx] = convert(color)
	}

	return result
}

func unorm8(value uint8) float32 {
	return float32(value) / 255
}

func unorm16(value uint16) float32 {
	return float32(value) / 65535
}

func readImage(doc *gltf.Document, dir string, img *gltf.Image) (TextureAsset, error) {
	buf, err := imageBytes(doc, dir, img)
	if err != nil {
		return TextureAsset{}, err
	}

	return decodeTextureBytes(buf)
}

func imageBytes(doc *gltf.Document, dir string, img *gltf.Image) ([]byte, error) {
	switch {
	case img.BufferView != nil:
		return bufferViewBytes(doc, *img.BufferView)

	case img.IsEmbeddedResource():
		return img.MarshalData()

	case img.URI != "":
		uri, err := url.PathUnescape(img.URI)
		if err != nil {
			uri = img.URI
		}

		if filepath.IsAbs(uri) || strings.Contains(uri, "://") {
			return nil, fmt.Errorf("unsupported image uri %q", img.URI)
		}

		return os.ReadFile(filepath.Join(dir, filepath.FromSlash(uri)))

	default:
		return nil, errors.New("image has neither a buffer view nor an uri")
	}
}

func bufferViewBytes(doc *gltf.Document, idx uint32) ([]byte, error) {
	if int(idx) >= len(doc.BufferViews) {
		return nil, fmt.Errorf("buffer view %d out of range", idx)
	}

	view := doc.BufferViews[idx]
	if int(view.Buffer) >= len(doc.Buffers) {
		return nil, fmt.Errorf("buffer %d out of range", view.Buffer)
	}

	data := doc.Buffers[view.Buffer].Data

	start := int(view.ByteOffset)
	end := start + int(view.ByteLength)
	if end > len(data) {
		return nil, fmt.Errorf("buffer view %d exceeds buffer of %d bytes", idx, len(data))
	}

	return data[start:end], nil
}
