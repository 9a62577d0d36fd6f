package assets

// MeshAsset holds the raw vertex data of a single mesh, independent of any renderer.
type MeshAsset struct {
	Name       string
	Primitives []MeshPrimitive
}

// MeshPrimitive is a single draw primitive of a mesh. Optional attributes are
// nil if the source did not provide them. Normals are empty when absent.
type MeshPrimitive struct {
	Positions [][3]float32
	Normals   [][3]float32
	TexCoords [][2]float32
	Colors    [][4]float32
	Indices   []uint32
}

// VertexCount returns the number of vertices in this primitive.
func (p *MeshPrimitive) VertexCount() int {
	return len(p.Positions)
}

// VertexCount returns the sum of all vertices across all primitives.
func (m *MeshAsset) VertexCount() int {
	var count int
	for idx := range m.Primitives {
		count += m.Primitives[idx].VertexCount()
	}

	return count
}
