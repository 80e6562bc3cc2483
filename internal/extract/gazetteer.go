package extract

import (
	_ "embed"
	"os"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed gazetteer.yaml
var defaultGazetteerYAML []byte

// Gazetteer holds known-entity vocabulary used by the field extractors.
// Keeping literals here as data keeps the extractor logic generic: new
// customers or street names are a config change, not a code change.
type Gazetteer struct {
	Businesses []string `yaml:"businesses"`
	Streets    []string `yaml:"streets"`

	streetRes []*regexp.Regexp
}

// LoadGazetteer reads a gazetteer from the given YAML file, or the embedded
// default when path is empty.
func LoadGazetteer(path string) (*Gazetteer, error) {
	data := defaultGazetteerYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "gazetteer: read %s", path)
		}
		data = b
	}

	var g Gazetteer
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, eris.Wrap(err, "gazetteer: unmarshal")
	}
	g.compile()
	return &g, nil
}

func (g *Gazetteer) compile() {
	g.streetRes = make([]*regexp.Regexp, 0, len(g.Streets))
	for _, s := range g.Streets {
		// Known street followed by a house number, through end of line.
		re := regexp.MustCompile(`(?i)(` + regexp.QuoteMeta(s) + `\s+\d+[^\n\r]*)`)
		g.streetRes = append(g.streetRes, re)
	}
}

// MatchBusiness returns the first known business name appearing in the
// section, preserving the gazetteer's canonical spelling.
func (g *Gazetteer) MatchBusiness(section string) string {
	lower := strings.ToLower(section)
	for _, b := range g.Businesses {
		if strings.Contains(lower, strings.ToLower(b)) {
			return b
		}
	}
	return ""
}

// MatchStreet returns the first address line anchored on a known street
// name, or "" when none is found.
func (g *Gazetteer) MatchStreet(section string) string {
	for _, re := range g.streetRes {
		if m := re.FindStringSubmatch(section); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
