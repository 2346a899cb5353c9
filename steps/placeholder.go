package steps

import (
	"regexp"
	"strings"
)

var quotedSegment = regexp.MustCompile(`"(.*?)"`)

// Matcher is a compiled step pattern.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
	names   []string
}

// Compile turns a pattern into a Matcher. Text outside double quotes is
// matched literally; each quoted segment becomes a capture named after the
// quoted text. Capture names may be anything, including digits or spaces,
// because they are kept beside the regexp rather than inside it.
func Compile(pattern string) *Matcher {
	var b strings.Builder
	var names []string

	last := 0
	for _, loc := range quotedSegment.FindAllStringSubmatchIndex(pattern, -1) {
		b.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		b.WriteString(`(".*?")`)
		names = append(names, pattern[loc[2]:loc[3]])
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(pattern[last:]))

	return &Matcher{
		pattern: pattern,
		re:      regexp.MustCompile(b.String()),
		names:   names,
	}
}

func (m *Matcher) Pattern() string { return m.pattern }

// Placeholders returns the capture names in pattern order.
func (m *Matcher) Placeholders() []string {
	return append([]string(nil), m.names...)
}

// Match reports whether the pattern occurs anywhere in text. On success it returns the
// captured values with their surrounding quotes removed. When a name appears
// more than once the last capture wins.
func (m *Matcher) Match(text string) (map[string]string, bool) {
	sub := m.re.FindStringSubmatch(text)
	if sub == nil {
		return nil, false
	}
	fields := make(map[string]string, len(m.names))
	for i, name := range m.names {
		v := sub[i+1]
		fields[name] = v[1 : len(v)-1]
	}
	return fields, true
}
