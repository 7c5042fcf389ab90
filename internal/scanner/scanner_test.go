package scanner_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonesrussell/pagesift/internal/config"
	"github.com/jonesrussell/pagesift/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedHTML is a small story list with five repeated items.
const feedHTML = `<!DOCTYPE html>
<html>
<body>
  <ul>
    <li class="item"><a class="title" href="/story/1">First interesting story</a><span class="meta">5 points</span></li>
    <li class="item"><a class="title" href="/story/2">Second interesting story</a><span class="meta">8 points</span></li>
    <li class="item"><a class="title" href="/story/3">Third interesting story</a><span class="meta">3 points</span></li>
    <li class="item"><a class="title" href="/story/4">Fourth interesting story</a><span class="meta">9 points</span></li>
    <li class="item"><a class="title" href="/story/5">Fifth interesting story</a><span class="meta">2 points</span></li>
  </ul>
</body>
</html>`

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestFindItemCandidates_RepeatedList(t *testing.T) {
	s := scanner.New(nil, nil)
	doc := parse(t, feedHTML)

	candidates := s.FindItemCandidates(doc)
	require.NotEmpty(t, candidates)

	top := candidates[0]
	assert.Equal(t, ".item", top.Selector)
	assert.Equal(t, 5, top.MatchCount)
	assert.Equal(t, scanner.ConfidenceMedium, top.Confidence)
	assert.Equal(t, "First interesting story", top.SampleText)
	assert.Equal(t, "/story/1", top.SampleURL)
}

func TestFindItemCandidates_CountsMatchDocument(t *testing.T) {
	s := scanner.New(nil, nil)
	doc := parse(t, feedHTML)

	for _, candidate := range s.FindItemCandidates(doc) {
		assert.Equal(t, doc.Find(candidate.Selector).Length(), candidate.MatchCount,
			"count mismatch for %q", candidate.Selector)
	}
}

func TestFindItemCandidates_NoDuplicateSelectors(t *testing.T) {
	s := scanner.New(nil, nil)
	doc := parse(t, feedHTML)

	seen := map[string]bool{}
	for _, candidate := range s.FindItemCandidates(doc) {
		assert.False(t, seen[candidate.Selector], "duplicate selector %q", candidate.Selector)
		seen[candidate.Selector] = true
	}
}

func TestFindItemCandidates_Deterministic(t *testing.T) {
	s := scanner.New(nil, nil)

	first := s.FindItemCandidates(parse(t, feedHTML))
	second := s.FindItemCandidates(parse(t, feedHTML))
	assert.Equal(t, first, second)
}

func TestFindItemCandidates_HighConfidenceAtTen(t *testing.T) {
	var b strings.Builder
	b.WriteString("<ul>")
	for i := 0; i < 12; i++ {
		b.WriteString(`<li class="story"><a href="/news/x">A long enough story title</a></li>`)
	}
	b.WriteString("</ul>")

	s := scanner.New(nil, nil)
	candidates := s.FindItemCandidates(parse(t, b.String()))
	require.NotEmpty(t, candidates)

	assert.Equal(t, ".story", candidates[0].Selector)
	assert.Equal(t, scanner.ConfidenceHigh, candidates[0].Confidence)
}

func TestFindItemCandidates_DropsChromeNoise(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		b.WriteString(`<span class="crumb">Breadcrumb trail text</span>`)
	}
	b.WriteString(feedHTML)

	cfg := config.New(config.WithChromeCountThreshold(5))
	s := scanner.New(cfg, nil)
	candidates := s.FindItemCandidates(parse(t, b.String()))
	require.NotEmpty(t, candidates)

	for _, candidate := range candidates {
		assert.NotEqual(t, ".crumb", candidate.Selector)
	}
}

func TestFindItemCandidates_ChromeFilterKeepsLastResort(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		b.WriteString(`<span class="tag">Unlinked label text</span>`)
	}

	cfg := config.New(config.WithChromeCountThreshold(2))
	s := scanner.New(cfg, nil)

	// Every candidate trips the filter, so the unfiltered list survives.
	candidates := s.FindItemCandidates(parse(t, b.String()))
	require.NotEmpty(t, candidates)
	assert.Equal(t, ".tag", candidates[0].Selector)
}

func TestFindItemCandidates_MaxCandidatesCap(t *testing.T) {
	var b strings.Builder
	for class := 'a'; class <= 'z'; class++ {
		for i := 0; i < 3; i++ {
			b.WriteString(`<p class="group-` + string(class) + `">Repeated paragraph text</p>`)
		}
	}

	cfg := config.New(config.WithMaxCandidates(4))
	s := scanner.New(cfg, nil)
	candidates := s.FindItemCandidates(parse(t, b.String()))

	assert.LessOrEqual(t, len(candidates), 4)
}

func TestFindItemCandidates_ShortTextSampleFlagged(t *testing.T) {
	html := `<span class="tag">hot</span><span class="tag">new</span><span class="tag">top</span>`
	s := scanner.New(nil, nil)

	candidates := s.FindItemCandidates(parse(t, html))
	require.NotEmpty(t, candidates)

	assert.Equal(t, ".tag", candidates[0].Selector)
	assert.Equal(t, "[short: hot]", candidates[0].SampleText)
}

func TestFindItemCandidates_EmptyDocument(t *testing.T) {
	s := scanner.New(nil, nil)

	assert.Empty(t, s.FindItemCandidates(parse(t, "<html><body></body></html>")))
	assert.Empty(t, s.FindItemCandidates(nil))
}

func TestFindItemCandidates_BelowRepeatThreshold(t *testing.T) {
	s := scanner.New(nil, nil)
	doc := parse(t, `<div class="card">one</div><div class="card">two</div>`)

	for _, candidate := range s.FindItemCandidates(doc) {
		assert.NotEqual(t, ".card", candidate.Selector)
	}
}

func TestFindItemCandidates_SkipsUnsafeClassTokens(t *testing.T) {
	html := `<div class="w-1/2">a</div><div class="w-1/2">b</div><div class="w-1/2">c</div>`
	s := scanner.New(nil, nil)

	for _, candidate := range s.FindItemCandidates(parse(t, html)) {
		assert.NotContains(t, candidate.Selector, "/")
	}
}
