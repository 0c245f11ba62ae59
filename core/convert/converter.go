// Package convert implements the HTML → Markdown transform at the heart of
// stdmirror.
//
// The default Converter is a fixed pipeline of pattern rewrites rather than a
// DOM walk. Only headings, lists, paragraphs and code blocks need to survive;
// everything else falls through to the residual tag strip as plain text.
// Stages run in order and each one assumes the previous ones already ran:
//
//  0. park Markdown fences already present in the input
//  1. drop <script> and <style> elements
//  2. isolate the main content region (article, main, div.content, body)
//  3. turn <pre>/<pre><code> blocks into fenced code
//  4. map headings (h1 → "#", then h6..h1 → one level deeper)
//  5. map <li> to "- " lines
//  6. map <p> to lines
//  7. map <br> to newlines
//  8. strip remaining tags
//  9. decode entities
//  10. normalize whitespace
package convert

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// DefaultLanguage is the language hint written on fenced code blocks.
const DefaultLanguage = "bsl"

var (
	scriptRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	styleRe  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)

	// contentRegions are tried in order; the first match wins.
	contentRegions = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<article\b[^>]*>(.*?)</article\s*>`),
		regexp.MustCompile(`(?is)<main\b[^>]*>(.*?)</main\s*>`),
		regexp.MustCompile(`(?is)<div\b[^>]*\bclass\s*=\s*["'][^"']*content[^"']*["'][^>]*>(.*?)</div\s*>`),
		regexp.MustCompile(`(?is)<body\b[^>]*>(.*?)</body\s*>`),
	}

	preCodeRe = regexp.MustCompile(`(?is)<pre\b[^>]*>\s*<code\b[^>]*>(.*?)</code\s*>\s*</pre\s*>`)
	preRe     = regexp.MustCompile(`(?is)<pre\b[^>]*>(.*?)</pre\s*>`)

	h1Re = regexp.MustCompile(`(?is)<h1\b[^>]*>(.*?)</h1\s*>`)
	// headingRes[n] matches <hN>; index 0 is unused.
	headingRes = func() [7]*regexp.Regexp {
		var res [7]*regexp.Regexp
		for n := 1; n <= 6; n++ {
			res[n] = regexp.MustCompile(fmt.Sprintf(`(?is)<h%d\b[^>]*>(.*?)</h%d\s*>`, n, n))
		}
		return res
	}()

	liRe  = regexp.MustCompile(`(?is)<li\b[^>]*>(.*?)</li\s*>`)
	pRe   = regexp.MustCompile(`(?is)<p\b[^>]*>(.*?)</p\s*>`)
	brRe  = regexp.MustCompile(`(?i)<br\b[^>]*>`)
	tagRe = regexp.MustCompile(`<[^>]+>`)

	blankLinesRe    = regexp.MustCompile(`\n{3,}`)
	hspaceRe        = regexp.MustCompile(`[ \t]+`)
	trailingSpaceRe = regexp.MustCompile(`[ \t]+\n`)

	// Fenced code is parked behind a placeholder while the rest of the
	// pipeline runs. The markers are private-use runes no stage touches;
	// they are removed from the input first.
	placeholderRe  = regexp.MustCompile(`\x{E000}(\d+)\x{E001}`)
	markerReplacer = strings.NewReplacer("\ue000", "", "\ue001", "")

	// markdownFenceRe matches a fenced block from a previous conversion.
	markdownFenceRe = regexp.MustCompile("(?ms)^```[^`\n]*\n.*?\n```[ \t]*$")
)

// Converter is the pattern-based HTML → Markdown engine. The zero value is
// not usable; construct one with New.
type Converter struct {
	lang string
}

// New creates a Converter that tags fenced code blocks with lang.
// An empty lang selects DefaultLanguage.
func New(lang string) *Converter {
	if lang == "" {
		lang = DefaultLanguage
	}
	return &Converter{lang: lang}
}

// Language returns the fenced code language hint.
func (c *Converter) Language() string {
	return c.lang
}

// ToMarkdown converts html using a default Converter.
func ToMarkdown(s string) string {
	return New("").Convert(s)
}

// Convert maps arbitrary text purporting to be HTML to Markdown.
// It never fails: markup it does not recognize is stripped as plain tags.
// Fenced blocks already in the input pass through unchanged, so converting
// the output again leaves code bodies intact.
func (c *Converter) Convert(s string) string {
	s = markerReplacer.Replace(s)

	var code codeBlocks
	s = markdownFenceRe.ReplaceAllStringFunc(s, code.park)

	s = removeNoise(s)
	s = isolateContent(s)
	s = c.fenceCode(s, &code)

	s = mapHeadings(s)
	s = liRe.ReplaceAllString(s, "- ${1}\n")
	s = pRe.ReplaceAllString(s, "${1}\n")
	s = brRe.ReplaceAllString(s, "\n")
	s = tagRe.ReplaceAllString(s, "")
	s = decodeEntities(s)
	s = normalizeWhitespace(s)

	return code.restore(s)
}

func removeNoise(s string) string {
	s = scriptRe.ReplaceAllString(s, "")
	return styleRe.ReplaceAllString(s, "")
}

func isolateContent(s string) string {
	for _, re := range contentRegions {
		if m := re.FindStringSubmatch(s); m != nil {
			return m[1]
		}
	}
	return s
}

// fenceCode replaces code blocks with placeholders. <pre><code> runs first
// so the bare <pre> pass never sees it.
func (c *Converter) fenceCode(s string, code *codeBlocks) string {
	fence := func(inner string) string {
		// A parked fence inside <pre> is plain text of that block.
		inner = code.restore(inner)
		body := html.UnescapeString(tagRe.ReplaceAllString(inner, ""))
		return "\n" + code.park(c.fence(tidyCode(body))) + "\n"
	}

	for _, re := range []*regexp.Regexp{preCodeRe, preRe} {
		s = re.ReplaceAllStringFunc(s, func(m string) string {
			return fence(re.FindStringSubmatch(m)[1])
		})
	}
	return s
}

func (c *Converter) fence(body string) string {
	return "```" + c.lang + "\n" + body + "\n```"
}

// tidyCode trims a decoded code body and normalizes its line endings,
// trailing spaces and blank runs. Indentation is kept.
func tidyCode(body string) string {
	body = strings.TrimSpace(body)
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = trailingSpaceRe.ReplaceAllString(body, "\n")
	return blankLinesRe.ReplaceAllString(body, "\n\n")
}

// mapHeadings handles h1 first, then h6 down to h1 shifted one level deeper
// so a shallow pattern never eats a deeper heading's leftovers.
func mapHeadings(s string) string {
	s = h1Re.ReplaceAllString(s, "\n# ${1}\n")
	for n := 6; n >= 1; n-- {
		s = headingRes[n].ReplaceAllString(s, "\n"+strings.Repeat("#", n+1)+" ${1}\n")
	}
	return s
}

func decodeEntities(s string) string {
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return strings.ReplaceAll(s, "\u00a0", " ")
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	s = hspaceRe.ReplaceAllString(s, " ")
	s = trailingSpaceRe.ReplaceAllString(s, "\n")
	// Stripping whitespace-only lines can leave fresh runs of newlines.
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// codeBlocks holds text parked behind placeholders during conversion.
type codeBlocks []string

func (b *codeBlocks) park(block string) string {
	*b = append(*b, block)
	return "\ue000" + strconv.Itoa(len(*b)-1) + "\ue001"
}

func (b codeBlocks) restore(s string) string {
	if len(b) == 0 {
		return s
	}
	return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
		idx, err := strconv.Atoi(placeholderRe.FindStringSubmatch(m)[1])
		if err != nil || idx >= len(b) {
			return ""
		}
		return b[idx]
	})
}
