package assets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServer_Resolve(t *testing.T) {
	server := NewServer("/home/user/assets")

	require.Equal(t, "/absolute/path.glb", server.resolve("/absolute/path.glb"))
	require.Equal(t, "/home/user/assets/models/box.glb", server.resolve("models/box.glb"))
	require.Equal(t, "/home/user/assets", server.BasePath())
}

func TestServer_Missing(t *testing.T) {
	server := NewServer("/nonexistent")

	_, err := server.LoadMesh("does_not_exist.glb")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = server.LoadMeshes("does_not_exist.glb")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = server.LoadTexture("does_not_exist.png")
	require.ErrorIs(t, err, ErrNotFound)

	require.Zero(t, server.MeshCount())
	require.Zero(t, server.TextureCount())
}

func TestServer_LoadMesh(t *testing.T) {
	dir := t.TempDir()
	writeTestGltf(t, dir)
	writeEmptyGltf(t, dir)

	server := NewServer(dir)

	t.Run("deduplicated", func(t *testing.T) {
		first, err := server.LoadMesh("scene.glb")
		require.NoError(t, err)
		require.True(t, server.IsMeshLoaded(first))

		second, err := server.LoadMesh(filepath.Join(dir, "scene.glb"))
		require.NoError(t, err)
		require.Equal(t, first, second)
		require.Equal(t, 1, server.MeshCount())

		mesh, ok := server.Mesh(first)
		require.True(t, ok)
		require.Equal(t, "Triangle", mesh.Name)
	})

	t.Run("no meshes", func(t *testing.T) {
		_, err := server.LoadMesh("empty.glb")
		require.ErrorIs(t, err, ErrGltfLoadFailed)
		require.ErrorContains(t, err, "no meshes found")
	})

	t.Run("unload", func(t *testing.T) {
		handle, err := server.LoadMesh("scene.glb")
		require.NoError(t, err)

		require.True(t, server.UnloadMesh(handle))
		require.False(t, server.UnloadMesh(handle))
		require.False(t, server.IsMeshLoaded(handle))

		_, ok := server.Mesh(handle)
		require.False(t, ok)

		reloaded, err := server.LoadMesh("scene.glb")
		require.NoError(t, err)
		require.NotEqual(t, handle, reloaded)
	})
}

func TestServer_LoadMeshes(t *testing.T) {
	dir := t.TempDir()
	writeTestGltf(t, dir)

	server := NewServer(dir)

	first, err := server.LoadMeshes("scene.glb")
	require.NoError(t, err)
	require.Len(t, first, 2)

	// no deduplication for LoadMeshes
	second, err := server.LoadMeshes("scene.glb")
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.NotEqual(t, first, second)
	require.Equal(t, 4, server.MeshCount())

	mesh, ok := server.Mesh(first[1])
	require.True(t, ok)
	require.Equal(t, "unnamed", mesh.Name)

	textures, err := server.LoadGltfTextures("scene.glb")
	require.NoError(t, err)
	require.Len(t, textures, 3)
	require.Equal(t, 3, server.TextureCount())
}

func TestServer_LoadTexture(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "image.png"), encodePNG(t, testImage()))
	writeFile(t, filepath.Join(dir, "corrupt.png"), []byte("\x89PNG\r\n\x1a\nnope"))

	server := NewServer(dir)

	first, err := server.LoadTexture("image.png")
	require.NoError(t, err)

	second, err := server.LoadTexture("image.png")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, server.TextureCount())

	texture, ok := server.Texture(first)
	require.True(t, ok)
	require.Equal(t, uint32(2), texture.Width)

	_, err = server.LoadTexture("corrupt.png")
	require.ErrorIs(t, err, ErrImageLoadFailed)

	require.True(t, server.UnloadTexture(first))
	require.False(t, server.IsTextureLoaded(first))
	require.Zero(t, server.TextureCount())

	var stale Handle[TextureAsset]
	require.False(t, server.IsTextureLoaded(stale))
}
