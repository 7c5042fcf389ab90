package fields_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonesrussell/pagesift/internal/fields"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storyItemHTML is one feed item with every supported field present.
const storyItemHTML = `<li class="athing">
  <h3>Show HN: A tiny HTML analyzer</h3>
  <a class="storylink" href="/item/42">Show HN: A tiny HTML analyzer</a>
  <time datetime="2024-03-01T10:00:00Z">2 hours ago</time>
  <span itemprop="author">alice</span>
  <span class="score">128 points</span>
  <img class="thumb" src="/img/42.png">
</li>`

func itemFrom(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	item := doc.Find("li").First()
	require.Positive(t, item.Length())
	return item
}

func TestInfer_TitleFromHeading(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, storyItemHTML)

	s, err := inf.Infer(item, fields.TypeTitle)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "h3", s.Selector)
	assert.Equal(t, "Show HN: A tiny HTML analyzer", s.Sample)
	assert.Equal(t, 1, s.MatchCount)
}

func TestInfer_TitleFromAnchorText(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, `<li><a class="story-link" href="/posts/7">An interesting enough headline</a></li>`)

	s, err := inf.Infer(item, fields.TypeTitle)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "a.story-link", s.Selector)
	assert.Equal(t, "An interesting enough headline", s.Sample)
}

func TestInfer_TitleFromDataAttribute(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, `<li><div data-title="Stored headline value">short</div></li>`)

	s, err := inf.Infer(item, fields.TypeTitle)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "[data-title]@data-title", s.Selector)
	assert.Equal(t, "Stored headline value", s.Sample)
}

func TestInfer_URLFollowsTitle(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, `<li><a class="story-link" href="/posts/7">An interesting enough headline</a></li>`)

	s, err := inf.Infer(item, fields.TypeURL)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "a.story-link@href", s.Selector)
	assert.Equal(t, "/posts/7", s.Sample)
}

func TestInfer_URLFromDataAttribute(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, `<li><div data-url="https://example.com/a">A headline of fair length</div></li>`)

	s, err := inf.Infer(item, fields.TypeURL)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "[data-url]@data-url", s.Selector)
	assert.Equal(t, "https://example.com/a", s.Sample)
}

func TestInfer_DateFromTimeElement(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, storyItemHTML)

	s, err := inf.Infer(item, fields.TypeDate)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "time@datetime", s.Selector)
	assert.Equal(t, "2024-03-01T10:00:00Z", s.Sample)
}

func TestInfer_DateFromScoredText(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, `<li><span class="posted">3 days ago</span><a href="/x">Something long enough here</a></li>`)

	s, err := inf.Infer(item, fields.TypeDate)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, ".posted", s.Selector)
	assert.Equal(t, "3 days ago", s.Sample)
}

func TestInfer_AuthorFromItemprop(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, storyItemHTML)

	s, err := inf.Infer(item, fields.TypeAuthor)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "[itemprop='author']", s.Selector)
	assert.Equal(t, "alice", s.Sample)
}

func TestInfer_AuthorFromClassKeyword(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, `<li><span class="byline">by carol</span></li>`)

	s, err := inf.Infer(item, fields.TypeAuthor)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, ".byline", s.Selector)
	assert.Equal(t, "by carol", s.Sample)
}

func TestInfer_ScoreFromClassAndPattern(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, storyItemHTML)

	s, err := inf.Infer(item, fields.TypeScore)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, ".score", s.Selector)
	assert.Equal(t, "128 points", s.Sample)
}

func TestInfer_ScoreFromDataAttribute(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, `<li><span data-score="99">99</span></li>`)

	s, err := inf.Infer(item, fields.TypeScore)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "[data-score]@data-score", s.Selector)
	assert.Equal(t, "99", s.Sample)
}

func TestInfer_ImageWithStableClass(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, storyItemHTML)

	s, err := inf.Infer(item, fields.TypeImage)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "img.thumb@src", s.Selector)
	assert.Equal(t, "/img/42.png", s.Sample)
}

func TestInfer_NoSignalReturnsNil(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, `<li>bare text</li>`)

	s, err := inf.Infer(item, fields.TypeImage)
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = inf.Infer(item, fields.TypeDate)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestInfer_Misuse(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, storyItemHTML)

	_, err := inf.Infer(nil, fields.TypeTitle)
	assert.ErrorIs(t, err, fields.ErrNilItem)

	_, err = inf.Infer(item, fields.Type("body"))
	assert.ErrorIs(t, err, fields.ErrUnsupportedType)
}

func TestInferAll_FullItem(t *testing.T) {
	inf := fields.NewInferencer(nil, nil)
	item := itemFrom(t, storyItemHTML)

	suggestions := inf.InferAll(item)
	for _, field := range fields.Types {
		assert.Contains(t, suggestions, string(field))
	}
}

func TestSplitAttrMarker(t *testing.T) {
	base, attr := fields.SplitAttrMarker("a.title@href")
	assert.Equal(t, "a.title", base)
	assert.Equal(t, "href", attr)

	base, attr = fields.SplitAttrMarker("h3")
	assert.Equal(t, "h3", base)
	assert.Empty(t, attr)

	base, attr = fields.SplitAttrMarker("[data-url]@data-url")
	assert.Equal(t, "[data-url]", base)
	assert.Equal(t, "data-url", attr)
}
