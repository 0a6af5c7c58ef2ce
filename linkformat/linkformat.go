// Package linkformat rewrites HTML anchors and markdown links found in free text into
// slack's native link markup (<url> or <url|text>).
//
// Typical usage:
//
//	formatted := linkformat.Format(`Released, see <a href="https://example.com/notes">the notes</a>`)
//	// formatted == "Released, see <https://example.com/notes|the notes>"
package linkformat

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Formats is the set of link syntaxes recognized by a Formatter
type Formats uint8

// Link syntaxes
const (
	// HTML enables rewriting of <a href="url">text</a> anchors
	HTML Formats = 1 << iota
	// Markdown enables rewriting of [text](url) links
	Markdown

	// All enables every supported syntax. This is also what the zero value of Formats means
	All = HTML | Markdown
)

// validPathChars are the characters the path portion of a url can contain
const validPathChars = `A-Za-z0-9_\-.~/?#=`

var (
	htmlPattern = regexp2.MustCompile(`<a(?:.*?)href=['"](.+?)['"](?:.*?)>(.+?)</a>`, regexp2.None)

	// Only the first balanced pair of parens is consumed: a link immediately followed by
	// more path characters and a closing paren is extended to include them
	markdownPattern = regexp2.MustCompile(`\[([^\[\]]*?)\]\(((https?://.*?)|(mailto:.*?))\)(?![`+validPathChars+`]*\))`, regexp2.None)

	defaultFormatter = New(All)
)

// Formatter rewrites links for its enabled syntaxes. A Formatter holds no mutable state and
// is safe for concurrent use
type Formatter struct {
	formats Formats
}

// New returns a new Formatter recognizing the given syntaxes. Passing the zero value enables
// all of them
func New(formats Formats) (f *Formatter) {
	f = new(Formatter)
	f.formats = formats
	if f.formats&All == 0 {
		f.formats = All
	}

	return f
}

// Format rewrites all html and markdown links in text using the default formatter
func Format(text string) string {
	return defaultFormatter.Format(text)
}

// FormatValue formats v if it is a string. Any other value is returned as is
func FormatValue(v interface{}) interface{} {
	return defaultFormatter.FormatValue(v)
}

// Enabled returns true if the syntax is enabled on the Formatter
func (f *Formatter) Enabled(syntax Formats) bool {
	return f.formats&syntax != 0
}

// FormatValue formats v if it is a string. Any other value is returned as is
func (f *Formatter) FormatValue(v interface{}) interface{} {
	if s, ok := v.(string); ok {
		return f.Format(s)
	}

	return v
}

// Format rewrites links in text. Html anchors are substituted first so that the
// markdown scan runs on the html-substituted text. Invalid utf-8 sequences are replaced
// with the unicode replacement character before scanning
func (f *Formatter) Format(text string) string {
	orig := strings.ToValidUTF8(text, "\uFFFD")

	return f.subMarkdownLinks(f.subHTMLLinks(orig))
}

func (f *Formatter) subHTMLLinks(s string) string {
	if !f.Enabled(HTML) {
		return s
	}

	return replaceAll(htmlPattern, s, func(m regexp2.Match) string {
		return slackLink(m.GroupByNumber(1).String(), m.GroupByNumber(2).String())
	})
}

func (f *Formatter) subMarkdownLinks(s string) string {
	if !f.Enabled(Markdown) {
		return s
	}

	return replaceAll(markdownPattern, s, func(m regexp2.Match) string {
		return slackLink(m.GroupByNumber(2).String(), m.GroupByNumber(1).String())
	})
}

// replaceAll substitutes every non-overlapping match, left to right. Should the regex
// engine fail (it only does so on timeouts), the input is returned unchanged
func replaceAll(re *regexp2.Regexp, s string, evaluator regexp2.MatchEvaluator) string {
	replaced, err := re.ReplaceFunc(s, evaluator, -1, -1)
	if err != nil {
		return s
	}

	return replaced
}

// slackLink returns the slack markup for a link with an optional display text
func slackLink(link string, text string) string {
	if text == "" {
		return fmt.Sprintf("<%s>", link)
	}

	return fmt.Sprintf("<%s|%s>", link, text)
}
