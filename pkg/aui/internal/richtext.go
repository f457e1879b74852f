package internal

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Link is a hyperlink found in rich-text markup.
type Link struct {
	Text string
	Href string
}

// RichText is markup reduced to what a backend without an HTML renderer
// can show: lines of plain text plus the list of hyperlinks.
type RichText struct {
	Lines []string
	Links []Link
}

var blockTags = "p, div, li, tr, h1, h2, h3, h4, h5, h6, pre, blockquote"

// ParseRichText extracts plain text lines and hyperlinks from markup.
// Block elements and <br> start new lines; runs of blank lines collapse.
func ParseRichText(markup string) (RichText, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return RichText{}, err
	}

	var rt RichText
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		rt.Links = append(rt.Links, Link{
			Text: strings.Join(strings.Fields(s.Text()), " "),
			Href: href,
		})
	})

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").PrependHtml("• ")
	doc.Find(blockTags).AppendHtml("\n")

	blank := false
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(rt.Lines) > 0 {
				rt.Lines = append(rt.Lines, "")
			}
			blank = true
			continue
		}
		blank = false
		rt.Lines = append(rt.Lines, line)
	}
	for len(rt.Lines) > 0 && rt.Lines[len(rt.Lines)-1] == "" {
		rt.Lines = rt.Lines[:len(rt.Lines)-1]
	}
	return rt, nil
}

// PlainLines splits plain text into lines without interpreting markup.
func PlainLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
