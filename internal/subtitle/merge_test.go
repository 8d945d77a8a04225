package subtitle

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	doc := Parse(sampleSRT)

	if err := doc.Merge([]string{"你好", "世界"}); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	want := []CaptionBlock{
		{Index: 1, TimeRange: "00:00:01,000 --> 00:00:02,000", Text: []string{"Hello", "你好"}},
		{Index: 2, TimeRange: "00:00:03,000 --> 00:00:04,000", Text: []string{"World", "世界"}},
	}
	if !reflect.DeepEqual(doc.Blocks, want) {
		t.Errorf("Merge() blocks = %#v, want %#v", doc.Blocks, want)
	}
}

func TestMergeSkipsEmptyTranslations(t *testing.T) {
	doc := Parse(sampleSRT)

	if err := doc.Merge([]string{"你好", ""}); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	if got := doc.Blocks[1].Text; !reflect.DeepEqual(got, []string{"World"}) {
		t.Errorf("block with empty translation changed: %#v", got)
	}
}

func TestMergeLengthMismatch(t *testing.T) {
	doc := Parse(sampleSRT)

	if err := doc.Merge([]string{"你好"}); err == nil {
		t.Error("Merge() should fail when translation count differs from block count")
	}
}

func TestTranslatedOnly(t *testing.T) {
	doc := &Document{Blocks: []CaptionBlock{
		{Index: 5, TimeRange: "00:00:01,000 --> 00:00:02,000", Text: []string{"one"}},
		{Index: 9, TimeRange: "00:00:03,000 --> 00:00:04,000", Text: []string{"two"}},
		{Index: 12, TimeRange: "00:00:05,000 --> 00:00:06,000", Text: []string{"three"}},
	}}

	out, err := doc.TranslatedOnly([]string{"甲", "", "丙"})
	if err != nil {
		t.Fatalf("TranslatedOnly() error = %v", err)
	}

	want := []CaptionBlock{
		{Index: 1, TimeRange: "00:00:01,000 --> 00:00:02,000", Text: []string{"甲"}},
		{Index: 2, TimeRange: "00:00:05,000 --> 00:00:06,000", Text: []string{"丙"}},
	}
	if !reflect.DeepEqual(out.Blocks, want) {
		t.Errorf("TranslatedOnly() blocks = %#v, want %#v", out.Blocks, want)
	}

	// Source document must not be touched.
	if doc.Blocks[0].Index != 5 || len(doc.Blocks) != 3 {
		t.Errorf("source document mutated: %#v", doc.Blocks)
	}
}

func TestTranslatedOnlyLengthMismatch(t *testing.T) {
	doc := Parse(sampleSRT)

	if _, err := doc.TranslatedOnly([]string{"你好", "世界", "多余"}); err == nil {
		t.Error("TranslatedOnly() should fail when translation count differs from block count")
	}
}
