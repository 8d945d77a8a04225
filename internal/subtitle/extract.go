package subtitle

import "fmt"

// SourceTexts returns the line to translate for every block, one entry per
// block in document order. Only the first text line of a multi-line caption
// is taken; a block without text contributes an empty string so positional
// alignment with the block list is preserved.
func (d *Document) SourceTexts() []string {
	texts := make([]string, len(d.Blocks))
	for i, blk := range d.Blocks {
		if len(blk.Text) > 0 {
			texts[i] = blk.Text[0]
		}
	}
	return texts
}

// TranslatedOnly builds a new document containing only the blocks whose
// translation is non-empty, renumbered contiguously from 1, keeping each
// block's original time range and carrying the translated text alone.
func (d *Document) TranslatedOnly(translations []string) (*Document, error) {
	if len(translations) != len(d.Blocks) {
		return nil, fmt.Errorf("translation count %d does not match block count %d",
			len(translations), len(d.Blocks))
	}

	out := &Document{}
	next := 1
	for i, blk := range d.Blocks {
		if translations[i] == "" {
			continue
		}
		out.Blocks = append(out.Blocks, CaptionBlock{
			Index:     next,
			TimeRange: blk.TimeRange,
			Text:      []string{translations[i]},
		})
		next++
	}
	return out, nil
}
