package xkblayouts

import (
	"encoding/xml"
	"fmt"
	"os"
)

const DefaultPath = "/usr/share/X11/xkb/rules/evdev.xml"

type configItem struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
}

type variant struct {
	ConfigItem configItem `xml:"configItem"`
}

type layout struct {
	ConfigItem configItem `xml:"configItem"`
	Variants   []variant  `xml:"variantList>variant"`
}

// Registry is the subset of an xkb rules registry (evdev.xml) needed to turn
// layout and variant codes into human readable names.
type Registry struct {
	XMLName xml.Name `xml:"xkbConfigRegistry"`
	Layouts []layout `xml:"layoutList>layout"`
}

func ParseLayouts(path string) (*Registry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	registry := &Registry{}
	err = xml.NewDecoder(file).Decode(registry)
	if err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}

	return registry, nil
}

// Describe returns the description of a layout, or of one of its variants
// when variant is non-empty. Unknown codes give "".
func (r *Registry) Describe(code, variant string) string {
	for _, l := range r.Layouts {
		if l.ConfigItem.Name != code {
			continue
		}
		if variant == "" {
			return l.ConfigItem.Description
		}

		for _, v := range l.Variants {
			if v.ConfigItem.Name == variant {
				return v.ConfigItem.Description
			}
		}
	}

	return ""
}
