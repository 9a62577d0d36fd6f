package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/oliverbestmann/infinite/assets"
	"github.com/oliverbestmann/infinite/ecs"
	"github.com/oliverbestmann/infinite/internal/set"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newInspectCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Load glTF and image files and print a summary",
		Args:  cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			w := ecs.NewWorld()
			ecs.InsertResource(w, assets.NewServer(c.config.Assets.BasePath))

			var seen set.Set[string]

			for _, path := range args {
				if !seen.Insert(filepath.Clean(path)) {
					continue
				}

				if err := inspectFile(cmd.OutOrStdout(), w, path); err != nil {
					c.log.Error("inspect failed", zap.String("path", path), zap.Error(err))
					return err
				}
			}

			return nil
		},
	}
}

func inspectFile(out io.Writer, w *ecs.World, path string) error {
	server, ok := ecs.Resource[*assets.Server](w)
	if !ok {
		return fmt.Errorf("no asset server in world")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return inspectGltf(out, server, path)
	default:
		return inspectTexture(out, server, path)
	}
}

func inspectGltf(out io.Writer, server *assets.Server, path string) error {
	meshes, err := server.LoadMeshes(path)
	if err != nil {
		return err
	}

	textures, err := server.LoadGltfTextures(path)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "%s: %d meshes, %d textures\n", path, len(meshes), len(textures))

	for _, handle := range meshes {
		mesh, _ := server.Mesh(handle)

		_, _ = fmt.Fprintf(out, "  mesh %q (%s): %d primitives, %d vertices\n",
			mesh.Name, handle, len(mesh.Primitives), mesh.VertexCount())

		for idx, prim := range mesh.Primitives {
			_, _ = fmt.Fprintf(out, "    primitive %d: positions=%d normals=%d texcoords=%d colors=%d indices=%d\n",
				idx, len(prim.Positions), len(prim.Normals), len(prim.TexCoords), len(prim.Colors), len(prim.Indices))
		}
	}

	for _, handle := range textures {
		printTexture(out, server, handle)
	}

	return nil
}

func inspectTexture(out io.Writer, server *assets.Server, path string) error {
	handle, err := server.LoadTexture(path)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "%s:\n", path)
	printTexture(out, server, handle)

	return nil
}

func printTexture(out io.Writer, server *assets.Server, handle assets.Handle[assets.TextureAsset]) {
	texture, _ := server.Texture(handle)

	_, _ = fmt.Fprintf(out, "  texture (%s): %dx%d %s, %d bytes\n",
		handle, texture.Width, texture.Height, texture.Format, len(texture.Data))
}
