// Package segment parses an article body into block-level units and plans
// where auxiliary content (ads, embeds) may be inserted without crowding the
// copy. Splitting rides on the x/net/html tokenizer, so malformed markup at
// worst merges or splits blocks oddly; it never fails.
package segment

import (
	"strings"

	"golang.org/x/net/html"
)

// Block is one block-level unit of an article body: everything from the
// previous split point up to and including the closing tag named by Tag.
// A trailing remainder after the last recognized closing tag becomes a final
// block with an empty Tag; it counts toward word totals but is never a
// placement site.
type Block struct {
	Index int
	Tag   string
	HTML  string
	Words int
}

var blockTags = map[string]struct{}{
	"p": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"ul": {}, "ol": {}, "blockquote": {}, "figure": {},
}

// Split cuts content at the closing tags of recognized block elements and
// reports the word count of each resulting block's visible text.
func Split(contentHTML string) []Block {
	tokenizer := html.NewTokenizer(strings.NewReader(contentHTML))

	var (
		blocks  []Block
		pending strings.Builder
		words   int
	)

	flush := func(tag string) {
		blocks = append(blocks, Block{
			Index: len(blocks),
			Tag:   tag,
			HTML:  pending.String(),
			Words: words,
		})
		pending.Reset()
		words = 0
	}

	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			break
		}

		raw := string(tokenizer.Raw())
		pending.WriteString(raw)

		switch tokenType {
		case html.TextToken:
			words += len(strings.Fields(html.UnescapeString(raw)))
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if _, ok := blockTags[string(name)]; ok {
				flush(string(name))
			}
		}
	}

	if strings.TrimSpace(pending.String()) != "" {
		flush("")
	}

	return blocks
}
