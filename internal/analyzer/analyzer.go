package analyzer

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/jonesrussell/pagesift/internal/config"
	"github.com/jonesrussell/pagesift/internal/fields"
	"github.com/jonesrussell/pagesift/internal/framework"
	"github.com/jonesrussell/pagesift/internal/logger"
	"github.com/jonesrussell/pagesift/internal/metrics"
	"github.com/jonesrussell/pagesift/internal/page"
	"github.com/jonesrussell/pagesift/internal/scanner"
)

// Analyzer runs the full analysis pipeline over HTML documents. It holds
// no per-document state and is safe for concurrent use on independent
// documents.
type Analyzer struct {
	cfg        *config.Config
	log        logger.Interface
	scanner    *scanner.Scanner
	inferencer *fields.Inferencer
	matcher    *framework.Matcher
	metrics    *metrics.Metrics
}

// New creates an Analyzer. A nil config uses the defaults; a nil logger
// is replaced with a no-op logger.
func New(cfg *config.Config, log logger.Interface) *Analyzer {
	if cfg == nil {
		cfg = config.New()
	}
	if log == nil {
		log = logger.NewNoOp()
	}

	return &Analyzer{
		cfg:        cfg,
		log:        log.WithComponent("analyzer"),
		scanner:    scanner.New(cfg, log),
		inferencer: fields.NewInferencer(cfg, log),
		matcher:    framework.NewMatcher(cfg, log),
		metrics:    metrics.NewMetrics(),
	}
}

// Metrics exposes the analyzer's run counters.
func (a *Analyzer) Metrics() *metrics.Metrics {
	return a.metrics
}

// Analyze parses the HTML and aggregates framework matches, item
// candidates with field suggestions, page metadata, and statistics into a
// report. Empty or unparseable input yields a well-formed empty report,
// never an error.
func (a *Analyzer) Analyze(html, pageURL string) *Report {
	start := time.Now()
	log := a.log.WithDocument(pageURL)

	report := &Report{
		ID:         uuid.NewString(),
		URL:        pageURL,
		Frameworks: []framework.Match{},
		Containers: []Container{},
	}

	doc, ok := parseDocument(html)
	if !ok {
		a.metrics.RecordEmptyInput()
		log.Debug("empty document, returning empty report")
		return report
	}

	report.Metadata = page.ExtractMetadata(doc)
	report.Statistics = page.ExtractStatistics(doc)

	candidates := a.scanner.FindItemCandidates(doc)
	for _, candidate := range candidates {
		container := Container{Candidate: candidate}

		item := doc.Find(candidate.Selector).First()
		if item.Length() > 0 {
			container.Fields = a.inferencer.InferAll(item)
		}

		report.Containers = append(report.Containers, container)
	}

	var topItem *goquery.Selection
	if top := report.TopContainer(); top != nil {
		topItem = doc.Find(top.Selector).First()
	}
	if matches := a.matcher.Detect(doc, topItem); matches != nil {
		report.Frameworks = matches
	}

	report.Suggestions = a.buildSuggestions(report)

	a.metrics.RecordAnalysis(len(candidates))
	log.WithDuration(time.Since(start)).Info("analysis complete",
		"candidates", len(candidates),
		"frameworks", len(report.Frameworks),
	)

	return report
}

// buildSuggestions assembles the recommended field-selector set from the
// top-ranked container, back-filling missing field types from the best
// framework match's hints.
func (a *Analyzer) buildSuggestions(report *Report) map[string]fields.Suggestion {
	top := report.TopContainer()
	if top == nil {
		return nil
	}

	suggestions := make(map[string]fields.Suggestion, len(top.Fields))
	for name, suggestion := range top.Fields {
		suggestions[name] = suggestion
	}

	if len(report.Frameworks) > 0 && report.Frameworks[0].Score >= a.cfg.FrameworkScoreFloor {
		for name, hint := range report.Frameworks[0].Hints {
			if _, present := suggestions[name]; present {
				continue
			}
			suggestions[name] = fields.Suggestion{
				FieldName: name,
				Selector:  hint,
			}
		}
	}

	if len(suggestions) == 0 {
		return nil
	}

	return suggestions
}

// parseDocument parses HTML into a goquery document. It reports false for
// empty, whitespace-only, or unparseable input.
func parseDocument(html string) (*goquery.Document, bool) {
	if strings.TrimSpace(html) == "" {
		return nil, false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false
	}

	return doc, true
}
