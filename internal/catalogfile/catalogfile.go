// Package catalogfile serializes the language and proverb catalogs for the
// catalog command.
package catalogfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flarebyte/greet/internal/lang"
	"github.com/flarebyte/greet/internal/proverb"
)

// Supported output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatText = "text"
)

// Document is the exported catalog. Proverbs is only set on request.
type Document struct {
	Languages []lang.Language  `json:"languages" yaml:"languages"`
	Proverbs  []proverb.Proverb `json:"proverbs,omitempty" yaml:"proverbs,omitempty"`
}

// Build assembles the document.
func Build(withProverbs bool) Document {
	d := Document{Languages: lang.All()}
	if withProverbs {
		d.Proverbs = proverb.All()
	}
	return d
}

// Marshal encodes d in format.
func Marshal(d Document, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatYAML:
		return marshalYAML(d)
	case FormatJSON:
		return marshalJSON(d)
	case FormatText:
		return marshalText(d), nil
	}
	return nil, fmt.Errorf("unsupported format: %q (expected yaml, json or text)", format)
}

// Write encodes d in format to w.
func Write(w io.Writer, d Document, format string) error {
	b, err := Marshal(d, format)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func marshalYAML(d Document) ([]byte, error) {
	top := &yaml.Node{Kind: yaml.MappingNode}
	langs := &yaml.Node{Kind: yaml.SequenceNode}
	for _, l := range d.Languages {
		langs.Content = append(langs.Content, mappingNode(
			"code", l.Code,
			"name", l.Name,
			"bannerName", l.BannerName,
			"greetingTemplate", l.GreetingTemplate,
			"flagEmoji", l.FlagEmoji,
		))
	}
	top.Content = append(top.Content, scalarNode("languages"), langs)
	if len(d.Proverbs) > 0 {
		provs := &yaml.Node{Kind: yaml.SequenceNode}
		for _, p := range d.Proverbs {
			kv := []string{"text", p.Text, "language", p.Language}
			if p.HasTranslation() {
				kv = append(kv, "translation", p.Translation)
			}
			provs.Content = append(provs.Content, mappingNode(kv...))
		}
		top.Content = append(top.Content, scalarNode("proverbs"), provs)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

func marshalJSON(d Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalText(d Document) []byte {
	var b strings.Builder
	for _, l := range d.Languages {
		fmt.Fprintf(&b, "%s  %-2s  %-10s  %s\n", l.FlagEmoji, l.Code, l.Name, l.GreetingTemplate)
	}
	if len(d.Proverbs) > 0 {
		b.WriteString("\n")
		for _, p := range d.Proverbs {
			fmt.Fprintf(&b, "[%s] %s\n", p.Language, p.Text)
			if p.HasTranslation() {
				fmt.Fprintf(&b, "    %s\n", p.Translation)
			}
		}
	}
	return []byte(b.String())
}

// mappingNode builds a mapping from alternating keys and string values,
// keeping the given key order.
func mappingNode(kv ...string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Content = append(n.Content, scalarNode(kv[i]), scalarNode(kv[i+1]))
	}
	return n
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
