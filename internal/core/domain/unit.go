package domain

import "bytes"

// CssUnit is the working triple threaded through the pipeline stages.
// Content is always present. Original is set by the stage that last edited
// the content and holds the exact asset that stage consumed. SourceMap, when
// present, maps the current Content back to the text the producing stage
// read. Stages return new units instead of mutating, which keeps the
// "did anything change" emission decisions free of aliasing.
type CssUnit struct {
	Original  *Asset
	Content   Asset
	SourceMap *Asset
}

// NewCssUnit starts a unit from an untouched content asset.
func NewCssUnit(content Asset) CssUnit {
	return CssUnit{Content: content}
}

// Edited returns a new unit whose Original records the content this unit
// carried before the edit.
func (u CssUnit) Edited(content Asset, sourceMap *Asset) CssUnit {
	prior := u.Content
	return CssUnit{Original: &prior, Content: content, SourceMap: sourceMap}
}

// ContentEquals reports whether the unit's content bytes equal other.
func (u CssUnit) ContentEquals(other Asset) bool {
	return u.Content.Key == other.Key && bytes.Equal(u.Content.Content, other.Content)
}
