package assets

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Server loads assets from disk and keeps them in memory until they are unloaded.
// Meshes loaded via LoadMesh and textures are deduplicated by their resolved path.
//
// A Server is not safe for concurrent use.
type Server struct {
	basePath string

	meshes   map[AssetId]*MeshAsset
	textures map[AssetId]*TextureAsset

	pathToMesh    map[string]Handle[MeshAsset]
	pathToTexture map[string]Handle[TextureAsset]
}

// NewServer creates a new Server resolving relative paths against basePath.
func NewServer(basePath string) *Server {
	slog.Info("AssetServer created", slog.String("basePath", basePath))

	return &Server{
		basePath:      basePath,
		meshes:        map[AssetId]*MeshAsset{},
		textures:      map[AssetId]*TextureAsset{},
		pathToMesh:    map[string]Handle[MeshAsset]{},
		pathToTexture: map[string]Handle[TextureAsset]{},
	}
}

// BasePath returns the path relative asset paths are resolved against.
func (s *Server) BasePath() string {
	return s.basePath
}

func (s *Server) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(s.basePath, path)
}

// LoadMesh loads the first mesh of a glTF file. Loading the same path
// again returns the handle of the first load.
func (s *Server) LoadMesh(path string) (Handle[MeshAsset], error) {
	fullPath := s.resolve(path)

	if handle, ok := s.pathToMesh[fullPath]; ok {
		return handle, nil
	}

	contents, err := s.loadGltf(fullPath)
	if err != nil {
		return Handle[MeshAsset]{}, err
	}

	if len(contents.Meshes) == 0 {
		err := gltfLoadFailed(fullPath, errors.New("no meshes found"))
		slog.Warn("Failed to load mesh", slog.String("path", fullPath), slog.Any("err", err))
		return Handle[MeshAsset]{}, err
	}

	handle := s.insertMesh(contents.Meshes[0])
	s.pathToMesh[fullPath] = handle

	return handle, nil
}

// LoadMeshes loads all meshes of a glTF file. Every call creates new handles.
func (s *Server) LoadMeshes(path string) ([]Handle[MeshAsset], error) {
	contents, err := s.loadGltf(s.resolve(path))
	if err != nil {
		return nil, err
	}

	handles := make([]Handle[MeshAsset], 0, len(contents.Meshes))
	for _, mesh := range contents.Meshes {
		handles = append(handles, s.insertMesh(mesh))
	}

	return handles, nil
}

// LoadGltfTextures loads all decodable images embedded in or referenced
// by a glTF file. Every call creates new handles.
func (s *Server) LoadGltfTextures(path string) ([]Handle[TextureAsset], error) {
	contents, err := s.loadGltf(s.resolve(path))
	if err != nil {
		return nil, err
	}

	handles := make([]Handle[TextureAsset], 0, len(contents.Textures))
	for _, texture := range contents.Textures {
		handles = append(handles, s.insertTexture(texture))
	}

	return handles, nil
}

// LoadTexture loads an image file as a texture. Loading the same path
// again returns the handle of the first load.
func (s *Server) LoadTexture(path string) (Handle[TextureAsset], error) {
	fullPath := s.resolve(path)

	if handle, ok := s.pathToTexture[fullPath]; ok {
		return handle, nil
	}

	if err := checkExists(fullPath); err != nil {
		slog.Warn("Failed to load texture", slog.String("path", fullPath), slog.Any("err", err))
		return Handle[TextureAsset]{}, err
	}

	startTime := time.Now()

	texture, err := LoadTexture(fullPath)
	if err != nil {
		slog.Warn("Failed to load texture", slog.String("path", fullPath), slog.Any("err", err))
		return Handle[TextureAsset]{}, err
	}

	slog.Debug(
		"Loaded texture",
		slog.String("path", fullPath),
		slog.Int("width", int(texture.Width)),
		slog.Int("height", int(texture.Height)),
		slog.Duration("duration", time.Since(startTime)),
	)

	handle := s.insertTexture(texture)
	s.pathToTexture[fullPath] = handle

	return handle, nil
}

func (s *Server) loadGltf(fullPath string) (GltfContents, error) {
	if err := checkExists(fullPath); err != nil {
		slog.Warn("Failed to load glTF", slog.String("path", fullPath), slog.Any("err", err))
		return GltfContents{}, err
	}

	startTime := time.Now()

	contents, err := LoadGltf(fullPath)
	if err != nil {
		slog.Warn("Failed to load glTF", slog.String("path", fullPath), slog.Any("err", err))
		return GltfContents{}, err
	}

	slog.Debug(
		"Loaded glTF file",
		slog.String("path", fullPath),
		slog.Duration("duration", time.Since(startTime)),
	)

	return contents, nil
}

func checkExists(path string) error {
	_, err := os.Stat(path)

	switch {
	case err == nil:
		return nil

	case errors.Is(err, fs.ErrNotExist):
		return notFound(path)

	default:
		return ioError(path, err)
	}
}

func (s *Server) insertMesh(mesh MeshAsset) Handle[MeshAsset] {
	handle := handleOf[MeshAsset](NextAssetId())
	s.meshes[handle.id] = &mesh
	return handle
}

func (s *Server) insertTexture(texture TextureAsset) Handle[TextureAsset] {
	handle := handleOf[TextureAsset](NextAssetId())
	s.textures[handle.id] = &texture
	return handle
}

// Mesh returns the mesh of the given handle.
func (s *Server) Mesh(handle Handle[MeshAsset]) (*MeshAsset, bool) {
	mesh, ok := s.meshes[handle.id]
	return mesh, ok
}

// Texture returns the texture of the given handle.
func (s *Server) Texture(handle Handle[TextureAsset]) (*TextureAsset, bool) {
	texture, ok := s.textures[handle.id]
	return texture, ok
}

func (s *Server) IsMeshLoaded(handle Handle[MeshAsset]) bool {
	_, ok := s.meshes[handle.id]
	return ok
}

func (s *Server) IsTextureLoaded(handle Handle[TextureAsset]) bool {
	_, ok := s.textures[handle.id]
	return ok
}

// UnloadMesh drops the mesh. A later LoadMesh of the same path loads the file again.
func (s *Server) UnloadMesh(handle Handle[MeshAsset]) bool {
	if _, ok := s.meshes[handle.id]; !ok {
		return false
	}

	delete(s.meshes, handle.id)
	deleteValue(s.pathToMesh, handle)

	return true
}

// UnloadTexture drops the texture. A later LoadTexture of the same path loads the file again.
func (s *Server) UnloadTexture(handle Handle[TextureAsset]) bool {
	if _, ok := s.textures[handle.id]; !ok {
		return false
	}

	delete(s.textures, handle.id)
	deleteValue(s.pathToTexture, handle)

	return true
}

func (s *Server) MeshCount() int {
	return len(s.meshes)
}

func (s *Server) TextureCount() int {
	return len(s.textures)
}

func deleteValue[K, V comparable](m map[K]V, value V) {
	for key, candidate := range m {
		if candidate == value {
			delete(m, key)
		}
	}
}
