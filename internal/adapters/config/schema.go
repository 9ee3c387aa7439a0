package config

// Essfile represents the structure of the essfile.yaml settings file.
// Tri-state fields are pointers so an absent key keeps its default.
type Essfile struct {
	Root         string   `yaml:"root"`
	OutputDir    string   `yaml:"outputDir"`
	SearchPaths  []string `yaml:"searchPaths"`
	Sass         *SassDTO `yaml:"sass"`
	PruneCss     *bool    `yaml:"pruneCss"`
	OptimizeSvg  *bool    `yaml:"optimizeSvg"`
	InlineImages string   `yaml:"inlineImages"`
	Verbose      bool     `yaml:"verbose"`
}

// SassDTO represents the Sass stage settings.
type SassDTO struct {
	Compile *bool  `yaml:"compile"`
	Style   string `yaml:"style"`
}
