package subtitle

import "fmt"

// Merge appends each non-empty translation as an extra text line of the
// block at the same position, producing bilingual captions in place.
// Alignment is positional: translations[i] belongs to Blocks[i] no matter
// what the block's index value says. Blocks with an empty translation are
// left unchanged.
func (d *Document) Merge(translations []string) error {
	if len(translations) != len(d.Blocks) {
		return fmt.Errorf("translation count %d does not match block count %d",
			len(translations), len(d.Blocks))
	}

	for i := range d.Blocks {
		if translations[i] == "" {
			continue
		}
		d.Blocks[i].Text = append(d.Blocks[i].Text, translations[i])
	}
	return nil
}
