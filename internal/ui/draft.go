package ui

import (
	"strings"

	"github.com/idilsaglam/haru/internal/model"
)

// Draft is the transient state for the next item to be appended: nesting
// depth and priority. The text itself lives in the text input; Draft only
// sees it at commit time. Draft state never touches the store until Commit
// succeeds.
type Draft struct {
	Depth    int
	Priority model.Priority
}

func NewDraft() Draft {
	return Draft{Depth: model.DepthRoot, Priority: model.Normal}
}

// Indent and Outdent move the pending depth, clamped to the valid range.
func (d *Draft) Indent()  { d.Depth = model.ClampDepth(d.Depth + 1) }
func (d *Draft) Outdent() { d.Depth = model.ClampDepth(d.Depth - 1) }

// Raise and Lower cycle the pending priority, wrapping at both ends.
func (d *Draft) Raise() { d.Priority = d.Priority.Raise() }
func (d *Draft) Lower() { d.Priority = d.Priority.Lower() }

// OutdentOnEmptyBackspace implements the convenience outdent: backspace in
// an empty field steps one level out instead of doing nothing. Reports
// whether the keypress was consumed.
func (d *Draft) OutdentOnEmptyBackspace(textEmpty bool) bool {
	if !textEmpty || d.Depth <= model.DepthRoot {
		return false
	}
	d.Depth--
	return true
}

// Commit builds a new item from the trimmed text and the pending
// depth/priority. Whitespace-only text and in-progress composition are
// rejected without touching the draft. On success the priority resets to
// Normal; depth is kept so successive entries land at the same level.
func (d *Draft) Commit(text string, composing bool) (model.Item, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || composing {
		return model.Item{}, false
	}
	it := model.Item{
		ID:       model.NewID(),
		Text:     trimmed,
		Depth:    d.Depth,
		Priority: d.Priority,
	}
	d.Priority = model.Normal
	return it, true
}
