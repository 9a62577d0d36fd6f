// Package assets loads meshes and textures from glTF and image files into
// renderer agnostic in-memory assets, referenced by typed handles.
package assets
