package theme

import (
	"fmt"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Markdown feature names understood by the theme's markdown layer.
const (
	FeatureAlign         = "align"
	FeatureAttrs         = "attrs"
	FeatureChartJS       = "chartjs"
	FeatureCodeTabs      = "codeTabs"
	FeatureComponent     = "component"
	FeatureDemo          = "demo"
	FeatureECharts       = "echarts"
	FeatureFigure        = "figure"
	FeatureFlowchart     = "flowchart"
	FeatureFootnote      = "footnote"
	FeatureGFM           = "gfm"
	FeatureImgLazyload   = "imgLazyload"
	FeatureImgSize       = "imgSize"
	FeatureInclude       = "include"
	FeatureMark          = "mark"
	FeatureMath          = "math"
	FeatureMermaid       = "mermaid"
	FeatureSub           = "sub"
	FeatureSup           = "sup"
	FeatureTabs          = "tabs"
	FeatureVPre          = "vPre"
	FeatureVuePlayground = "vuePlayground"
)

// MarkdownOptions toggles markdown extensions. Features maps a feature name
// to on/off; the remaining fields carry features with nested options.
type MarkdownOptions struct {
	Features   map[string]bool    `yaml:"features,omitempty"`
	Playground *PlaygroundOptions `yaml:"playground,omitempty"`
	Revealjs   *RevealjsOptions   `yaml:"revealjs,omitempty"`
	Stylize    []StylizeRule      `yaml:"stylize,omitempty"`
}

type PlaygroundOptions struct {
	Presets []string `yaml:"presets"`
}

type RevealjsOptions struct {
	Plugins []string `yaml:"plugins,omitempty"`
	Themes  []string `yaml:"themes,omitempty"`
}

// StylizeRule rewrites inline tokens whose text equals Matcher. When WhenTag
// is set only tokens rendered with that tag are replaced.
type StylizeRule struct {
	Matcher string      `yaml:"matcher"`
	WhenTag string      `yaml:"when_tag,omitempty"`
	Replace Replacement `yaml:"replace"`
}

type Replacement struct {
	Tag     string            `yaml:"tag"`
	Attrs   map[string]string `yaml:"attrs,omitempty"`
	Content string            `yaml:"content,omitempty"`
}

// Enabled reports whether the named feature is switched on.
func (m MarkdownOptions) Enabled(name string) bool { return m.Features[name] }

// EnabledFeatures lists the switched-on features in sorted order.
func (m MarkdownOptions) EnabledFeatures() []string {
	out := make([]string, 0, len(m.Features))
	for name, on := range m.Features {
		if on {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func (m MarkdownOptions) Validate() error {
	for i, r := range m.Stylize {
		field := fmt.Sprintf("theme.markdown.stylize[%d]", i)
		if strings.TrimSpace(r.Matcher) == "" {
			return errors.ValidationError("stylize matcher must not be empty").Field(field).Build()
		}
		if strings.TrimSpace(r.Replace.Tag) == "" {
			return errors.ValidationError("stylize replacement needs a tag").Field(field).Build()
		}
	}
	if m.Playground != nil && len(m.Playground.Presets) == 0 {
		return errors.ValidationError("playground needs at least one preset").Field("theme.markdown.playground").Build()
	}
	return nil
}
