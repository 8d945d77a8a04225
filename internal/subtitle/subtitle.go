package subtitle

import (
	"strconv"
	"strings"
)

// CaptionBlock is one subtitle entry: sequence number, raw timecode line,
// and one or more text lines. The time range is kept as an opaque string,
// no timing arithmetic is ever performed on it.
type CaptionBlock struct {
	Index     int
	TimeRange string
	Text      []string
}

// Document is the in-memory model of an SRT file. Block order is file
// order and drives translation alignment, so it is never reordered.
type Document struct {
	Blocks []CaptionBlock
}

// Parse builds a Document from raw SRT text with a best-effort line walk:
// a digit-only line starts a block, the next line is taken as its time
// range, and the following lines up to a blank line or the next digit-only
// line are its text. Anything outside a recognized group is dropped
// silently. Malformed input never produces an error, only fewer blocks.
func Parse(raw string) *Document {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")

	doc := &Document{}
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if !isDigits(line) {
			i++
			continue
		}

		// Index line without a time range line after it: skip.
		if i+1 >= len(lines) {
			break
		}

		index, _ := strconv.Atoi(line)
		timeRange := strings.TrimSpace(lines[i+1])
		i += 2

		var text []string
		for i < len(lines) {
			t := strings.TrimSpace(lines[i])
			if t == "" || isDigits(t) {
				break
			}
			text = append(text, t)
			i++
		}

		doc.Blocks = append(doc.Blocks, CaptionBlock{
			Index:     index,
			TimeRange: timeRange,
			Text:      text,
		})
	}

	return doc
}

// Serialize renders the document back to SRT text: index line, time range
// line, text lines, blank separator per block.
func (d *Document) Serialize() string {
	var b strings.Builder
	for _, blk := range d.Blocks {
		b.WriteString(strconv.Itoa(blk.Index))
		b.WriteString("\n")
		b.WriteString(blk.TimeRange)
		b.WriteString("\n")
		for _, line := range blk.Text {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
