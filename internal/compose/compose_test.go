package compose

import (
	"strings"
	"testing"

	"briefdesk/internal/model"

	"github.com/go-playground/assert/v2"
)

func TestText(t *testing.T) {
	articles := []model.Article{
		{Headline: "First", Summary: "One.", SourceURL: "https://example.com/1"},
		{Headline: "Second", Summary: "Two.", SourceURL: "https://example.com/2"},
	}

	got := Text(articles)

	want := "First\nOne.\nhttps://example.com/1\n\nSecond\nTwo.\nhttps://example.com/2"
	assert.Equal(t, want, got)
}

func TestTextEmpty(t *testing.T) {
	assert.Equal(t, "", Text(nil))
}

func TestHTMLLinkedHeadline(t *testing.T) {
	articles := []model.Article{
		{Headline: "Big News", Summary: "Detail.", SourceURL: "https://example.com/big"},
	}

	got := HTML(articles)

	assert.Equal(t, true, strings.Contains(got, `<a href="https://example.com/big"`))
	assert.Equal(t, true, strings.Contains(got, ">Big News</a>"))
	assert.Equal(t, true, strings.Contains(got, ">Detail.</p>"))
	assert.Equal(t, true, strings.Contains(got, `width="600"`))
}

func TestHTMLUnlinkedHeadline(t *testing.T) {
	articles := []model.Article{{Headline: "Manual Entry", Summary: "Detail."}}

	got := HTML(articles)

	assert.Equal(t, false, strings.Contains(got, "<a href="))
	assert.Equal(t, true, strings.Contains(got, ">Manual Entry</span>"))
}

func TestHTMLImageBlock(t *testing.T) {
	withImage := HTML([]model.Article{{Headline: "H", Summary: "S", ImageURL: "https://example.com/pic.jpg"}})
	withoutImage := HTML([]model.Article{{Headline: "H", Summary: "S"}})

	assert.Equal(t, true, strings.Contains(withImage, `<img src="https://example.com/pic.jpg"`))
	assert.Equal(t, false, strings.Contains(withoutImage, "<img"))
}

func TestHTMLEscapesContent(t *testing.T) {
	articles := []model.Article{
		{Headline: "Fish & <Chips>", Summary: `He said "hi" <b>loudly</b>.`},
	}

	got := HTML(articles)

	assert.Equal(t, true, strings.Contains(got, "Fish &amp; &lt;Chips&gt;"))
	assert.Equal(t, false, strings.Contains(got, "<b>loudly</b>"))
}
