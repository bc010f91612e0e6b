package token

import "strings"

// Indent is the leading whitespace run of a line. Char is the first
// byte of the run, ' ' or '\t', and is 0 when Count is 0. Mixed is set
// when the run contains both characters.
type Indent struct {
	Char  byte
	Count int
	Mixed bool
}

// Line is one source line with its indent run measured and the line
// terminator removed. Text holds the bytes after the indent run.
type Line struct {
	Offset int
	Indent Indent
	Text   string
	Blank  bool
}

// TextOffset returns the byte offset of the first byte after the
// indent run.
func (l *Line) TextOffset() int {
	return l.Offset + l.Indent.Count
}

// ScanLines splits d into lines, normalizing "\r\n" endings and
// measuring the indent run of each line. The returned PosDoc maps
// byte offsets in d back to line and column numbers.
func ScanLines(d []byte) ([]Line, *PosDoc) {
	pd := &PosDoc{d: d}
	var lines []Line
	start := 0
	for i := 0; i <= len(d); i++ {
		if i != len(d) && d[i] != '\n' {
			continue
		}
		if i != len(d) {
			pd.nl(i)
		} else if i == start {
			break
		}
		raw := string(d[start:i])
		raw = strings.TrimSuffix(raw, "\r")
		lines = append(lines, scanLine(start, raw))
		start = i + 1
	}
	return lines, pd
}

func scanLine(offset int, raw string) Line {
	ln := Line{Offset: offset}
	if strings.TrimSpace(raw) == "" {
		ln.Blank = true
		ln.Text = ""
		return ln
	}
	run := 0
	for run < len(raw) && (raw[run] == ' ' || raw[run] == '\t') {
		run++
	}
	if run > 0 {
		ln.Indent.Char = raw[0]
		ln.Indent.Count = run
		ln.Indent.Mixed = strings.ContainsRune(raw[:run], rune(other(raw[0])))
	}
	ln.Text = raw[run:]
	return ln
}

func other(c byte) byte {
	if c == ' ' {
		return '\t'
	}
	return ' '
}

// Split divides line text into a key and an optional value at the
// first space. A line with no space has no value; a line ending in
// "key " carries the empty value.
func Split(text string) (string, *string) {
	key, rest, found := strings.Cut(text, " ")
	if !found {
		return text, nil
	}
	return key, &rest
}
