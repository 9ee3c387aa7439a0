package prune

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const template = `<html><body>
  <div class="used" id="page">text</div>
  <span class="also-used">more</span>
</body></html>`

func TestPrune_DropsUnreferencedRules(t *testing.T) {
	css := ".used { color: red; }\n.unused { color: blue; }\n"

	res, err := NewPruner().Prune([]byte(css), []byte(template), "style.css")

	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, 1, res.Dropped)
	assert.Contains(t, string(res.CSS), ".used")
	assert.NotContains(t, string(res.CSS), ".unused")
	assert.NotEmpty(t, res.SourceMap)
}

func TestPrune_NoEditsReportsUnchanged(t *testing.T) {
	css := ".used { color: red; }\ndiv { margin: 0; }\n"

	res, err := NewPruner().Prune([]byte(css), []byte(template), "style.css")

	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, css, string(res.CSS))
	assert.Nil(t, res.SourceMap)
}

func TestPrune_Idempotent(t *testing.T) {
	css := ".used { color: red; }\n.unused { color: blue; }\n#gone { top: 0; }\n"

	first, err := NewPruner().Prune([]byte(css), []byte(template), "style.css")
	require.NoError(t, err)
	require.True(t, first.Changed)

	second, err := NewPruner().Prune(first.CSS, []byte(template), "style.css")
	require.NoError(t, err)
	assert.False(t, second.Changed, "second pass must drop nothing")
	assert.Equal(t, string(first.CSS), string(second.CSS))
}

func TestPrune_KeepsRuleWhenAnySelectorMatches(t *testing.T) {
	css := ".unused, .used { color: red; }\n"

	res, err := NewPruner().Prune([]byte(css), []byte(template), "style.css")

	require.NoError(t, err)
	assert.False(t, res.Changed)
}

func TestPrune_MediaGroups(t *testing.T) {
	css := "@media (max-width: 600px) {\n  .used { color: red; }\n  .unused { color: blue; }\n}\n"

	res, err := NewPruner().Prune([]byte(css), []byte(template), "style.css")

	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Contains(t, string(res.CSS), "@media")
	assert.NotContains(t, string(res.CSS), ".unused")
}

func TestPrune_DropsEmptiedMediaGroup(t *testing.T) {
	css := "@media print {\n  .unused { color: blue; }\n}\n.used { color: red; }\n"

	res, err := NewPruner().Prune([]byte(css), []byte(template), "style.css")

	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.NotContains(t, string(res.CSS), "@media")
}

func TestPrune_KeepsOpaqueAtRules(t *testing.T) {
	css := "@charset \"utf-8\";\n@font-face { font-family: X; src: url(x.woff); }\n.unused { color: blue; }\n"

	res, err := NewPruner().Prune([]byte(css), []byte(template), "style.css")

	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Contains(t, string(res.CSS), "@charset")
	assert.Contains(t, string(res.CSS), "@font-face")
}

func TestPrune_PseudoSelectorsIgnoredForMatching(t *testing.T) {
	css := ".used:hover { color: red; }\n.unused::before { content: \"\"; }\n"

	res, err := NewPruner().Prune([]byte(css), []byte(template), "style.css")

	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Contains(t, string(res.CSS), ".used:hover")
	assert.NotContains(t, string(res.CSS), ".unused")
}

func TestPrune_SourceMapPointsIntoOriginal(t *testing.T) {
	css := ".unused { color: blue; }\n.used { color: red; }\n"

	res, err := NewPruner().Prune([]byte(css), []byte(template), "style.css")
	require.NoError(t, err)
	require.True(t, res.Changed)

	var doc sourceMapV3
	require.NoError(t, json.Unmarshal(res.SourceMap, &doc))
	assert.Equal(t, 3, doc.Version)
	assert.Equal(t, []string{"style.css"}, doc.Sources)
	// The surviving first generated line maps to source line 1 (0-based),
	// where .used was declared.
	assert.True(t, strings.HasPrefix(doc.Mappings, "AACA"), "got mappings %q", doc.Mappings)
}

func TestAppendVLQ(t *testing.T) {
	cases := map[int]string{
		0:  "A",
		1:  "C",
		-1: "D",
		16: "gB",
	}
	for v, want := range cases {
		assert.Equal(t, want, string(appendVLQ(nil, v)), "value %d", v)
	}
}
