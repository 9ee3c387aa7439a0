// Package domain contains the core value types flowing through the stylesheet pipeline.
package domain

import (
	"path"
	"strings"
)

// AssetKey identifies a logical build asset as a (package, path) pair.
// It is comparable, so it can serve as a map key and as the identity of a
// node in the host's dependency graph.
type AssetKey struct {
	Package string
	Path    string
}

// NewAssetKey creates an AssetKey with a cleaned, slash-separated path.
func NewAssetKey(pkg, p string) AssetKey {
	return AssetKey{Package: pkg, Path: path.Clean(strings.TrimPrefix(p, "/"))}
}

// String renders the key as "package|path".
func (k AssetKey) String() string {
	return k.Package + "|" + k.Path
}

// Extension returns the final extension of the path, including the dot.
func (k AssetKey) Extension() string {
	return path.Ext(k.Path)
}

// ChangeExtension returns a copy of the key with the final extension replaced.
func (k AssetKey) ChangeExtension(ext string) AssetKey {
	return AssetKey{Package: k.Package, Path: strings.TrimSuffix(k.Path, path.Ext(k.Path)) + ext}
}

// AddExtension returns a copy of the key with ext appended to the path.
func (k AssetKey) AddExtension(ext string) AssetKey {
	return AssetKey{Package: k.Package, Path: k.Path + ext}
}

// MapKey returns the key under which this asset's source map is emitted.
func (k AssetKey) MapKey() AssetKey {
	return k.AddExtension(".map")
}

// Asset is a named, byte-bearing build artifact.
// Assets are created per pipeline invocation and carry no identity beyond it.
type Asset struct {
	Key     AssetKey
	Content []byte
}

// NewAsset creates an Asset from a key and its content.
func NewAsset(key AssetKey, content []byte) Asset {
	return Asset{Key: key, Content: content}
}

// Text returns the asset content as a string.
func (a Asset) Text() string {
	return string(a.Content)
}
