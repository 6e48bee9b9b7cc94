package view

import "github.com/ib-77/over/pkg/over"

// Text is an owned string. It only offers a read-only view.
type Text struct {
	s string
}

var _ over.Deref[string] = Text{}

func NewText(s string) Text {
	return Text{s: s}
}

func (t Text) Deref() string {
	return t.s
}

func (t Text) String() string {
	return t.s
}
