// Package models holds the plain value types exchanged between the core
// and its collaborators. Nothing here references live state.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// PosterSnapshot is a detached copy of a poster document.
type PosterSnapshot struct {
	Title        string `json:"title"`
	Introduction string `json:"introduction"`
	Methodology  string `json:"methodology"`
	Results      string `json:"results"`
	References   string `json:"references"`
	Background   string `json:"background"`
	Font         string `json:"font"`
}

// UnmarshalJSON also accepts the prototype's "bgColor" key and its
// utility-class values ("bg-white", "bg-gray-900 text-white", "font-sans").
func (p *PosterSnapshot) UnmarshalJSON(data []byte) error {
	type plain PosterSnapshot
	var raw struct {
		plain
		BgColor string `json:"bgColor"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = PosterSnapshot(raw.plain)
	if p.Background == "" && raw.BgColor != "" {
		p.Background = raw.BgColor
	}
	p.Background = legacyBackground(p.Background)
	p.Font = strings.TrimPrefix(p.Font, "font-")
	return nil
}

func legacyBackground(v string) string {
	if !strings.HasPrefix(v, "bg-") {
		return v
	}
	classes := strings.Fields(v)
	switch {
	case classes[0] == "bg-white":
		return "light"
	case classes[0] == "bg-gray-900", len(classes) > 1 && classes[1] == "text-white":
		return "dark"
	}
	return v
}

// CriterionScore is one rated criterion.
type CriterionScore struct {
	Key   string
	Score int
}

// CategoryScores is one rubric category in schema order.
type CategoryScores struct {
	Key      string
	Criteria []CriterionScore
}

// RubricSnapshot is an ordered category -> criterion -> score mapping.
// It encodes as a JSON object of objects, keeping order.
type RubricSnapshot struct {
	Categories []CategoryScores
}

// Total sums every score in the snapshot.
func (r RubricSnapshot) Total() int {
	sum := 0
	for _, cat := range r.Categories {
		for _, c := range cat.Criteria {
			sum += c.Score
		}
	}
	return sum
}

// Lookup returns the score stored for a category/criterion pair.
func (r RubricSnapshot) Lookup(category, criterion string) (int, bool) {
	for _, cat := range r.Categories {
		if cat.Key != category {
			continue
		}
		for _, c := range cat.Criteria {
			if c.Key == criterion {
				return c.Score, true
			}
		}
	}
	return 0, false
}

// CriterionCount is the number of rated criteria.
func (r RubricSnapshot) CriterionCount() int {
	n := 0
	for _, cat := range r.Categories {
		n += len(cat.Criteria)
	}
	return n
}

// Clone deep-copies the snapshot.
func (r RubricSnapshot) Clone() RubricSnapshot {
	if r.Categories == nil {
		return RubricSnapshot{}
	}
	out := RubricSnapshot{Categories: make([]CategoryScores, len(r.Categories))}
	for i, cat := range r.Categories {
		out.Categories[i] = CategoryScores{
			Key:      cat.Key,
			Criteria: append([]CriterionScore(nil), cat.Criteria...),
		}
	}
	return out
}

func (r RubricSnapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range r.Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(":{")
		for j, c := range cat.Criteria {
			if j > 0 {
				buf.WriteByte(',')
			}
			ck, err := json.Marshal(c.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(ck)
			fmt.Fprintf(&buf, ":%d", c.Score)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *RubricSnapshot) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	var cats []CategoryScores
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return err
		}
		if err := expectDelim(dec, '{'); err != nil {
			return fmt.Errorf("rubric category %q: %w", key, err)
		}
		cat := CategoryScores{Key: key}
		for dec.More() {
			ck, err := readKey(dec)
			if err != nil {
				return err
			}
			var v int
			if err := dec.Decode(&v); err != nil {
				return fmt.Errorf("rubric score %s/%s: %w", key, ck, err)
			}
			cat.Criteria = append(cat.Criteria, CriterionScore{Key: ck, Score: v})
		}
		if err := expectDelim(dec, '}'); err != nil {
			return err
		}
		cats = append(cats, cat)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return err
	}
	r.Categories = cats
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// Snapshot is the export payload: the poster and its rubric.
type Snapshot struct {
	Poster PosterSnapshot `json:"poster"`
	Rubric RubricSnapshot `json:"rubric"`
}

// Clone deep-copies the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{Poster: s.Poster, Rubric: s.Rubric.Clone()}
}
