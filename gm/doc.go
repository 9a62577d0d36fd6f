// Package gm (stands for geometry math) provides the geometry primitives
// shared by the engine packages.
//
// It includes a 3d vector type called Vec3 in a right-handed coordinate system.
// Forward is negative Z, up is positive Y.
package gm
