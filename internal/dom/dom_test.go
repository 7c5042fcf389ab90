package dom_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonesrussell/pagesift/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestTagClassification(t *testing.T) {
	assert.True(t, dom.IsSemanticTag("article"))
	assert.True(t, dom.IsSemanticTag("time"))
	assert.False(t, dom.IsSemanticTag("div"))

	assert.True(t, dom.IsGenericTag("div"))
	assert.True(t, dom.IsGenericTag("span"))
	assert.False(t, dom.IsGenericTag("li"))
}

func TestClassTokens(t *testing.T) {
	doc := parse(t, `<div class="card  featured promo">x</div>`)
	el := doc.Find("div").First()

	assert.Equal(t, []string{"card", "featured", "promo"}, dom.ClassTokens(el))
	assert.Equal(t, "card", dom.FirstClass(el))
}

func TestClassTokens_NoClass(t *testing.T) {
	doc := parse(t, `<p>x</p>`)
	el := doc.Find("p").First()

	assert.Nil(t, dom.ClassTokens(el))
	assert.Empty(t, dom.FirstClass(el))
}

func TestSignature(t *testing.T) {
	doc := parse(t, `<li class="item featured">x</li><p>y</p>`)

	assert.Equal(t, "li.item", dom.Signature(doc.Find("li").First()))
	assert.Equal(t, "p", dom.Signature(doc.Find("p").First()))
}

func TestDirectText_ExcludesDescendants(t *testing.T) {
	doc := parse(t, `<p>Hello <span>world</span></p>`)

	assert.Equal(t, "Hello", dom.DirectText(doc.Find("p").First()))
	assert.Equal(t, "Hello world", dom.Text(doc.Find("p").First()))
}

func TestLevelsBelow(t *testing.T) {
	doc := parse(t, `<ul><li><div><a href="/x">link</a></div></li></ul>`)

	a := doc.Find("a").First()
	assert.Equal(t, 2, dom.LevelsBelow(a, doc.Find("li").First()))
	assert.Equal(t, 3, dom.LevelsBelow(a, doc.Find("ul").First()))
	assert.Equal(t, -1, dom.LevelsBelow(doc.Find("ul").First(), a))
}

func TestDistinctChildTags(t *testing.T) {
	doc := parse(t, `<div><h3>t</h3><p>a</p><p>b</p><span>c</span></div>`)

	tags := dom.DistinctChildTags(doc.Find("div").First())
	assert.Equal(t, []string{"h3", "p", "span"}, tags)
}
