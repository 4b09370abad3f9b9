// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for xmind2md: the decoded
// mind-map document (Document, Sheet, Topic), the configuration structs the
// CLI hands to internal packages, and the error sentinels every stage wraps.
package types

import (
	"bytes"
	"encoding/json"
)

// Text is a JSON value read as display text. XMind writes titles as strings,
// but hand-edited or third-party files sometimes carry numbers or null, and a
// title must never abort a conversion.
//
// Strings decode verbatim, null decodes to "", other scalars decode to their
// JSON literal (42, true). Objects and arrays decode to "".
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 'n', '{', '[':
		*t = ""
	default:
		*t = Text(data)
	}
	return nil
}

// Topic is one node of the mind-map tree.
type Topic struct {
	// Title is the raw topic title; it may be empty.
	Title Text `json:"title"`

	// Notes holds the optional note attached to the topic.
	Notes *Notes `json:"notes,omitempty"`

	// Children holds the attached and detached child groups.
	Children *Children `json:"children,omitempty"`
}

// Children partitions a topic's children into the attached (normally
// visible) and detached (floating) groups.
type Children struct {
	Attached []Topic `json:"attached,omitempty"`
	Detached []Topic `json:"detached,omitempty"`
}

// UnmarshalJSON decodes a children block leniently: a value that is not an
// object (XMind writes [] for a leaf) means no children, and a group that is
// not an array is skipped.
func (c *Children) UnmarshalJSON(data []byte) error {
	*c = Children{}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	var err error
	if c.Attached, err = topicList(fields["attached"]); err != nil {
		return err
	}
	c.Detached, err = topicList(fields["detached"])
	return err
}

func topicList(raw json.RawMessage) ([]Topic, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, nil
	}
	var topics []Topic
	if err := json.Unmarshal(raw, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// ChildTopics returns the attached children followed by the detached
// children, each group in document order.
func (t Topic) ChildTopics() []Topic {
	if t.Children == nil {
		return nil
	}
	out := make([]Topic, 0, len(t.Children.Attached)+len(t.Children.Detached))
	out = append(out, t.Children.Attached...)
	out = append(out, t.Children.Detached...)
	return out
}

// Note returns the raw plain-text note content, or "" when the topic has no
// plain note.
func (t Topic) Note() string {
	if t.Notes == nil || t.Notes.Plain == nil {
		return ""
	}
	return string(t.Notes.Plain.Content)
}

// Notes is the notes block of a topic. Only the plain representation is
// read; rich-text (html) notes are ignored.
type Notes struct {
	Plain *PlainNote `json:"plain,omitempty"`
}

// PlainNote is the plain-text note body.
type PlainNote struct {
	Content Text `json:"content"`
}

// UnmarshalJSON decodes a notes block leniently: a notes value that is not an
// object, or a plain value that is not an object, means "no note".
func (n *Notes) UnmarshalJSON(data []byte) error {
	*n = Notes{}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	raw, ok := fields["plain"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	var plain PlainNote
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil
	}
	n.Plain = &plain
	return nil
}

// Sheet is one independent topic tree inside a document.
type Sheet struct {
	// ID identifies the sheet; metadata.json refers to it as activeSheetId.
	ID string `json:"id,omitempty"`

	// Title is the sheet's display title.
	Title Text `json:"title"`

	// RootTopic is the central topic. A sheet without one renders as an
	// untitled root with no children.
	RootTopic *Topic `json:"rootTopic,omitempty"`
}

// UnmarshalJSON decodes a sheet with a lenient id: a non-string id is kept
// as its literal text instead of failing the document.
func (s *Sheet) UnmarshalJSON(data []byte) error {
	type sheet Sheet
	*s = Sheet{}
	aux := struct {
		*sheet
		ID Text `json:"id"`
	}{sheet: (*sheet)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.ID = string(aux.ID)
	return nil
}

// Root returns the sheet's root topic, or a zero topic when absent.
func (s Sheet) Root() Topic {
	if s.RootTopic == nil {
		return Topic{}
	}
	return *s.RootTopic
}

// Metadata is the optional metadata.json entry.
type Metadata struct {
	// ActiveSheetID is the sheet the authoring tool had focused.
	ActiveSheetID string `json:"activeSheetId,omitempty"`
}

// UnmarshalJSON decodes metadata.json. Fields other than activeSheetId are
// ignored, and a non-string activeSheetId is kept as its literal text.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var aux struct {
		ActiveSheetID Text `json:"activeSheetId"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.ActiveSheetID = string(aux.ActiveSheetID)
	return nil
}

// Document is a decoded .xmind archive.
type Document struct {
	// Path is the archive path the document was read from, if any.
	Path string `json:"-"`

	Sheets   []Sheet  `json:"sheets"`
	Metadata Metadata `json:"metadata"`
}
