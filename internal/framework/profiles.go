package framework

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// defaultRegistry is the process-wide profile registry, read-only after
// initialization. Order encodes priority: universal structured-data
// conventions first, then platform and framework conventions by
// specificity, with the generic CMS catch-all last.
var defaultRegistry = []Profile{
	{
		ID: "schema-org",
		Score: func(doc *goquery.Document, item *goquery.Selection) int {
			score := 0
			score += presence(doc, "[itemscope]", 30)
			score += presence(doc, "[itemtype*='schema.org']", 30)
			score += presence(doc, "[itemprop]", 20)
			if item != nil && item.Length() > 0 {
				if _, exists := item.Attr("itemscope"); exists {
					score += 20
				}
			}
			return score
		},
		Hints: map[string]string{
			"title":  "[itemprop='name']",
			"url":    "[itemprop='url']@href",
			"date":   "[itemprop='datePublished']@datetime",
			"author": "[itemprop='author']",
			"image":  "[itemprop='image']@src",
		},
	},
	{
		ID: "open-graph",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			score := 0
			score += presence(doc, "meta[property='og:title']", 30)
			score += presence(doc, "meta[property='og:type']", 20)
			score += presence(doc, "meta[property='og:image']", 20)
			score += presence(doc, "meta[name^='twitter:']", 15)
			return score
		},
	},
	{
		ID: "json-ld",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			return presence(doc, "script[type='application/ld+json']", 60)
		},
	},
	{
		ID: "woocommerce",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			score := 0
			score += presence(doc, ".woocommerce", 40)
			score += presence(doc, ".woocommerce-loop-product__title", 30)
			score += presence(doc, "[class*='woocommerce-']", 20)
			return score
		},
		Hints: map[string]string{
			"title": ".woocommerce-loop-product__title",
			"score": ".star-rating",
			"image": ".attachment-woocommerce_thumbnail@src",
		},
	},
	{
		ID: "shopify",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			score := 0
			score += presence(doc, "link[href*='cdn.shopify.com']", 40)
			score += presence(doc, "script[src*='cdn.shopify.com']", 40)
			score += presence(doc, "[data-shopify]", 30)
			return score
		},
		Hints: map[string]string{
			"title": ".product-card__title",
			"image": ".product-card__image img@src",
		},
	},
	{
		ID: "wordpress",
		Score: func(doc *goquery.Document, item *goquery.Selection) int {
			score := 0
			score += generatorContains(doc, "wordpress", 50)
			score += presence(doc, "link[href*='wp-content']", 25)
			score += presence(doc, "script[src*='wp-includes']", 15)
			score += presence(doc, ".hentry", 15)
			if item != nil && item.Length() > 0 && item.HasClass("hentry") {
				score += 15
			}
			return score
		},
		Version: generatorVersion("wordpress"),
		Hints: map[string]string{
			"title":  ".entry-title",
			"url":    ".entry-title a@href",
			"date":   ".entry-date",
			"author": ".author",
		},
	},
	{
		ID: "drupal",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			score := 0
			score += generatorContains(doc, "drupal", 50)
			score += presence(doc, "[data-drupal-selector]", 30)
			score += presence(doc, "[data-drupal-link-system-path]", 20)
			score += presence(doc, ".node", 10)
			return score
		},
		Version: generatorVersion("drupal"),
		Hints: map[string]string{
			"title": ".node__title",
			"url":   ".node__title a@href",
		},
	},
	{
		ID: "discourse",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			score := 0
			score += presence(doc, "#main-outlet", 40)
			score += presence(doc, ".topic-list", 35)
			score += generatorContains(doc, "discourse", 40)
			return score
		},
		Hints: map[string]string{
			"title":  ".topic-list-item .title",
			"url":    ".topic-list-item .title@href",
			"author": ".topic-list-item .poster",
			"score":  ".topic-list-item .likes",
		},
	},
	{
		ID: "mediawiki",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			score := 0
			score += generatorContains(doc, "mediawiki", 50)
			score += presence(doc, "#mw-content-text", 40)
			score += presence(doc, "body.mediawiki", 30)
			return score
		},
		Version: generatorVersion("mediawiki"),
	},
	{
		ID: "nextjs",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			score := 0
			score += presence(doc, "script#__NEXT_DATA__", 60)
			score += presence(doc, "#__next", 30)
			return score
		},
	},
	{
		ID: "nuxt",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			score := 0
			score += presence(doc, "#__nuxt", 50)
			score += presence(doc, "#__layout", 30)
			return score
		},
	},
	{
		ID: "angular",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			score := 0
			score += presence(doc, "[ng-version]", 60)
			score += presence(doc, "app-root", 30)
			score += presence(doc, "[ng-app]", 30)
			return score
		},
		Version: func(doc *goquery.Document) string {
			version, _ := doc.Find("[ng-version]").First().Attr("ng-version")
			return version
		},
	},
	{
		ID: "react",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			score := 0
			score += presence(doc, "[data-reactroot]", 50)
			score += presence(doc, "[data-reactid]", 40)
			return score
		},
	},
	{
		ID: "bootstrap",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			score := 0
			score += presence(doc, "link[href*='bootstrap']", 30)
			if doc.Find(".container .row").Length() > 0 && doc.Find("[class*='col-']").Length() >= 3 {
				score += 30
			}
			score += presence(doc, ".card", 10)
			return score
		},
		Hints: map[string]string{
			"title": ".card-title",
			"url":   ".card a@href",
			"image": ".card-img-top@src",
		},
	},
	{
		ID: "tailwind",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			utilities := doc.Find("[class*='flex'], [class*='grid']").Length() +
				doc.Find("[class*='px-'], [class*='py-']").Length() +
				doc.Find("[class*='text-'], [class*='bg-']").Length()
			switch {
			case utilities >= 30:
				return 50
			case utilities >= 10:
				return 30
			case utilities >= 3:
				return 10
			default:
				return 0
			}
		},
	},
	{
		ID: "generic-cms",
		Score: func(doc *goquery.Document, _ *goquery.Selection) int {
			return presence(doc, "meta[name='generator']", 40)
		},
		Version: func(doc *goquery.Document) string {
			content, _ := doc.Find("meta[name='generator']").First().Attr("content")
			return strings.TrimSpace(content)
		},
	},
}

// presence returns weight when the document contains at least one element
// matching sel, else zero.
func presence(doc *goquery.Document, sel string, weight int) int {
	if doc.Find(sel).Length() > 0 {
		return weight
	}
	return 0
}

// generatorContains returns weight when the generator meta tag mentions
// the given platform name.
func generatorContains(doc *goquery.Document, name string, weight int) int {
	content, exists := doc.Find("meta[name='generator']").First().Attr("content")
	if exists && strings.Contains(strings.ToLower(content), name) {
		return weight
	}
	return 0
}

// generatorVersion extracts the version suffix from a generator meta tag
// such as "WordPress 6.4.2".
func generatorVersion(name string) func(doc *goquery.Document) string {
	return func(doc *goquery.Document) string {
		content, exists := doc.Find("meta[name='generator']").First().Attr("content")
		if !exists {
			return ""
		}

		lower := strings.ToLower(content)
		idx := strings.Index(lower, name)
		if idx < 0 {
			return ""
		}

		rest := strings.TrimSpace(content[idx+len(name):])
		if fields := strings.Fields(rest); len(fields) > 0 {
			return fields[0]
		}
		return ""
	}
}
