package models

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp classifies a segment of a title change.
type DiffOp int

const (
	DiffKeep DiffOp = iota
	DiffInsert
	DiffDelete
)

// DiffSegment is one run of a title change preview.
type DiffSegment struct {
	Op   DiffOp
	Text string
}

// TitleDiff computes a character-level preview of the change from the effective
// title to the draft title. Both sides are trimmed first, so whitespace-only
// edits yield no insert or delete segments.
func TitleDiff(effective, draft string) []DiffSegment {
	from := Criteria{Title: effective}.Normalize().Title
	to := Criteria{Title: draft}.Normalize().Title
	if from == to {
		if from == "" {
			return nil
		}
		return []DiffSegment{{Op: DiffKeep, Text: from}}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	segments := make([]DiffSegment, 0, len(diffs))
	for _, d := range diffs {
		seg := DiffSegment{Text: d.Text}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			seg.Op = DiffInsert
		case diffmatchpatch.DiffDelete:
			seg.Op = DiffDelete
		default:
			seg.Op = DiffKeep
		}
		segments = append(segments, seg)
	}
	return segments
}
