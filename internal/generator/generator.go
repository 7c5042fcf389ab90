// Package generator renders analysis reports as ready-to-paste YAML
// extraction-rule snippets.
package generator

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/pagesift/internal/analyzer"
	"github.com/jonesrussell/pagesift/internal/fields"
	"github.com/jonesrussell/pagesift/internal/selector"
)

// FieldSelectors holds the per-field extraction selectors of one rule.
type FieldSelectors struct {
	Title  string `yaml:"title,omitempty"`
	URL    string `yaml:"url,omitempty"`
	Date   string `yaml:"date,omitempty"`
	Author string `yaml:"author,omitempty"`
	Score  string `yaml:"score,omitempty"`
	Image  string `yaml:"image,omitempty"`
}

// SourceConfig is the YAML shape of one generated extraction rule.
type SourceConfig struct {
	Name      string         `yaml:"name"`
	URL       string         `yaml:"url,omitempty"`
	Framework string         `yaml:"framework,omitempty"`
	Item      string         `yaml:"item"`
	Fields    FieldSelectors `yaml:"fields"`
}

// ErrNoContainers indicates the report held no item candidates to render.
var ErrNoContainers = errors.New("report has no item candidates")

// GenerateSourceYAML renders the report's top-ranked container and
// recommended field selectors as a YAML source entry.
func GenerateSourceYAML(report *analyzer.Report) (string, error) {
	if report == nil || report.TopContainer() == nil {
		return "", ErrNoContainers
	}

	cfg := SourceConfig{
		Name:   sourceName(report.URL),
		URL:    report.URL,
		Item:   selector.Simplify(report.TopContainer().Selector),
		Fields: fieldSelectors(report.Suggestions),
	}
	if len(report.Frameworks) > 0 {
		cfg.Framework = report.Frameworks[0].ProfileID
	}

	out, err := yaml.Marshal([]SourceConfig{cfg})
	if err != nil {
		return "", fmt.Errorf("failed to marshal source config: %w", err)
	}

	return string(out), nil
}

// fieldSelectors maps the report's suggestion set onto the YAML shape.
func fieldSelectors(suggestions map[string]fields.Suggestion) FieldSelectors {
	selector := func(name string) string {
		if s, ok := suggestions[name]; ok {
			return s.Selector
		}
		return ""
	}

	return FieldSelectors{
		Title:  selector(string(fields.TypeTitle)),
		URL:    selector(string(fields.TypeURL)),
		Date:   selector(string(fields.TypeDate)),
		Author: selector(string(fields.TypeAuthor)),
		Score:  selector(string(fields.TypeScore)),
		Image:  selector(string(fields.TypeImage)),
	}
}

// sourceName derives a title-case source name from the report URL's
// hostname. Example: "https://www.example.com/news" -> "Example".
func sourceName(rawURL string) string {
	const fallback = "Untitled Source"

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return fallback
	}

	hostname := strings.TrimPrefix(parsed.Hostname(), "www.")
	parts := strings.Split(hostname, ".")

	const minPartsForDomain = 2
	mainPart := parts[0]
	if len(parts) >= minPartsForDomain {
		mainPart = parts[len(parts)-2]
	}
	if mainPart == "" {
		return fallback
	}

	mainPart = strings.ToUpper(mainPart[:1]) + strings.ToLower(mainPart[1:])

	tld := parts[len(parts)-1]
	if tld == "com" || tld == "org" || tld == "net" || len(parts) < minPartsForDomain {
		return mainPart
	}

	return mainPart + " " + strings.ToUpper(tld)
}
