package assets

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/require"
)

// a 2x1 image with a transparent second pixel
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 255, A: 128})
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func writeFile(t *testing.T, path string, content []byte) string {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

// writeTestGltf writes a binary glTF file containing two meshes and four images:
// one in a buffer view, one as data uri, one as external file and one corrupt image.
func writeTestGltf(t *testing.T, dir string) string {
	doc := gltf.NewDocument()

	positions := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	normals := modeler.WriteNormal(doc, [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}})
	texCoords := modeler.WriteTextureCoord(doc, [][2]float32{{0, 0}, {1, 0}, {0, 1}})
	colors := modeler.WriteColor(doc, [][4]uint8{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 0}})
	indices := modeler.WriteIndices(doc, []uint16{0, 1, 2})

	bare := modeler.WritePosition(doc, [][3]float32{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}})

	doc.Meshes = []*gltf.Mesh{
		{
			Name: "Triangle",
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(indices),
				Attributes: gltf.Attribute{
					attrPosition:  positions,
					attrNormal:    normals,
					attrTexCoord0: texCoords,
					attrColor0:    colors,
				},
			}},
		},
		{
			Primitives: []*gltf.Primitive{{
				Attributes: gltf.Attribute{attrPosition: bare},
			}},
		},
	}

	pngBytes := encodePNG(t, testImage())

	// append the embedded image to the binary buffer
	buffer := doc.Buffers[0]
	for len(buffer.Data)%4 != 0 {
		buffer.Data = append(buffer.Data, 0)
	}

	offset := uint32(len(buffer.Data))
	buffer.Data = append(buffer.Data, pngBytes...)
	buffer.ByteLength = uint32(len(buffer.Data))

	doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
		Buffer:     0,
		ByteOffset: offset,
		ByteLength: uint32(len(pngBytes)),
	})

	writeFile(t, filepath.Join(dir, "textures", "external.png"), encodePNG(t, image.NewGray(image.Rect(0, 0, 3, 2))))

	doc.Images = []*gltf.Image{
		{MimeType: "image/png", BufferView: gltf.Index(uint32(len(doc.BufferViews) - 1))},
		{URI: "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)},
		{URI: "textures/external.png"},
		{URI: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not an image"))},
	}

	path := filepath.Join(dir, "scene.glb")
	require.NoError(t, gltf.SaveBinary(doc, path))

	return path
}

// writeEmptyGltf writes a valid glTF file without any meshes.
func writeEmptyGltf(t *testing.T, dir string) string {
	path := filepath.Join(dir, "empty.glb")
	require.NoError(t, gltf.SaveBinary(gltf.NewDocument(), path))
	return path
}
