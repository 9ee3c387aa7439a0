package pipeline_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/ess/internal/core/ports"
	"go.trai.ch/ess/internal/core/ports/mocks"
	"go.trai.ch/ess/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestOutputs(t *testing.T) {
	defaults := domain.DefaultSettings()
	noSass := defaults
	noSass.CompileSass = false

	cases := []struct {
		path     string
		settings domain.Settings
		want     []string
	}{
		{"logo.svg", defaults, []string{"logo.svg"}},
		{"style.css", defaults, []string{"style.css", "style.css.map"}},
		{"style.scss", defaults, []string{"style.css", "style.css.map"}},
		{"deep/style.sass", defaults, []string{"deep/style.css", "deep/style.css.map"}},
		{"style.scss", noSass, nil},
		{"style.css.map", defaults, nil},
		{"_partial.scss", defaults, nil},
		{"style.ess.scss.css", defaults, nil},
		{"readme.txt", defaults, nil},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			got := pipeline.Outputs(key(tc.path), tc.settings)

			var want []domain.AssetKey
			for _, p := range tc.want {
				want = append(want, key(p))
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestDeclare_RegistersPlannedOutputs(t *testing.T) {
	bc := newFakeContext(domain.NewAsset(key("style.scss"), []byte(".a {}")))
	pipe := newPipeline(t, domain.DefaultSettings(), t.TempDir(), nil)

	pipe.Declare(bc)

	assert.Equal(t, []domain.AssetKey{key("style.css"), key("style.css.map")}, bc.declared)
}

// Every key the apply phase emits must have been planned, whatever the
// feature combination. The planner is allowed to over-promise, never to
// under-promise.
func TestApply_EmitsOnlyPlannedOutputs(t *testing.T) {
	inputs := []string{
		"logo.svg",
		"style.css",
		"style.scss",
		"style.sass",
		"style.css.map",
		"_partial.scss",
		"notes.txt",
	}

	for _, compileSass := range []bool{true, false} {
		for _, pruneCss := range []bool{true, false} {
			for _, optimizeSvg := range []bool{true, false} {
				for _, mode := range []domain.InlineMode{domain.InlineDisabled, domain.InlineLinked, domain.InlineAll} {
					settings := domain.DefaultSettings()
					settings.CompileSass = compileSass
					settings.PruneCss = pruneCss
					settings.OptimizeSvg = optimizeSvg
					settings.ImageInlining = mode

					for _, input := range inputs {
						name := fmt.Sprintf("%s/sass=%t/prune=%t/svg=%t/inline=%d",
							input, compileSass, pruneCss, optimizeSvg, mode)
						t.Run(name, func(t *testing.T) {
							ctrl := gomock.NewController(t)
							compiler := mocks.NewMockSassCompiler(ctrl)
							compiler.EXPECT().ListImports(gomock.Any(), gomock.Any(), gomock.Any()).
								Return(nil, nil).AnyTimes()
							compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).
								Return(&ports.CompileResult{
									CSS:       []byte(".a { color: red; }\n"),
									SourceMap: []byte(`{"version":3,"mappings":"AAAA"}`),
								}, nil).AnyTimes()

							bc := newFakeContext(domain.NewAsset(key(input), []byte("content")))
							pipe := newPipeline(t, settings, t.TempDir(), compiler)

							pipe.Declare(bc)
							require.NoError(t, pipe.Apply(context.Background(), bc))

							planned := make(map[domain.AssetKey]bool, len(bc.declared))
							for _, k := range bc.declared {
								planned[k] = true
							}
							for _, k := range bc.outputKeys() {
								assert.True(t, planned[k], "emitted %s without planning it", k)
							}
						})
					}
				}
			}
		}
	}
}
