package deckgen

import (
	"fmt"
	"strings"

	"github.com/alnah/go-deckgen/internal/yamlutil"
)

// wireDeck is the client-submitted deck shape, in JSON or YAML.
type wireDeck struct {
	Title    string      `yaml:"title"`
	Author   string      `yaml:"author"`
	Template templateRef `yaml:"template"`
	Slides   []wireSlide `yaml:"slides"`
}

type wireSlide struct {
	Type     string     `yaml:"type"`
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Bullets  stringList `yaml:"bullets"`
	Notes    string     `yaml:"notes"`
	Images   stringList `yaml:"images"`
	Items    []wireItem `yaml:"items"`
}

// wireItem is the union of the experience, education and project item
// fields. A bare string is accepted as the item's main line.
type wireItem struct {
	Role        string     `yaml:"role"`
	Company     string     `yaml:"company"`
	Dates       string     `yaml:"dates"`
	Bullets     stringList `yaml:"bullets"`
	School      string     `yaml:"school"`
	Degree      string     `yaml:"degree"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Image       string     `yaml:"image"`

	line string
}

func (w *wireItem) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if line, ok := scalar(raw); ok {
		*w = wireItem{line: line}
		return nil
	}
	type plain wireItem
	var p plain
	if err := unmarshal(&p); err != nil {
		return err
	}
	*w = wireItem(p)
	return nil
}

// stringList accepts a list of scalars or a single scalar.
type stringList []string

func (l *stringList) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if one, ok := scalar(raw); ok {
		if strings.TrimSpace(one) == "" {
			*l = nil
		} else {
			*l = stringList{one}
		}
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return fmt.Errorf("expected a string or a list of strings, got %T", raw)
	}
	out := make(stringList, 0, len(items))
	for _, it := range items {
		if v, ok := scalar(it); ok && strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	*l = out
	return nil
}

// scalar reports whether a decoded node is a single value and returns its
// text.
func scalar(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(v), true
	}
	return "", false
}

// templateRef accepts either a template object or a bare template name.
type templateRef struct {
	t *StyleTemplate
}

func (r *templateRef) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if name, ok := scalar(raw); ok {
		if strings.TrimSpace(name) != "" {
			r.t = &StyleTemplate{Name: strings.TrimSpace(name)}
		}
		return nil
	}
	var t StyleTemplate
	if err := unmarshal(&t); err != nil {
		return err
	}
	r.t = &t
	return nil
}

// DecodeDeck parses a JSON or YAML deck. Unknown slide types are
// rejected here, with their positions, so they never reach the layout
// engine. The result is not validated; call Deck.Validate or Assemble.
func DecodeDeck(data []byte) (*Deck, error) {
	var w wireDeck
	if err := yamlutil.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckDecode, err)
	}
	return w.deck()
}

// ReadDeckFile decodes the deck stored at path.
func ReadDeckFile(path string) (*Deck, error) {
	var w wireDeck
	if err := yamlutil.ReadFile(path, &w, false); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckDecode, err)
	}
	return w.deck()
}

func (w wireDeck) deck() (*Deck, error) {
	d := &Deck{
		Title:    strings.TrimSpace(w.Title),
		Author:   strings.TrimSpace(w.Author),
		Template: w.Template.t,
		Slides:   make([]Slide, 0, len(w.Slides)),
	}

	var errs []error
	for i, ws := range w.Slides {
		s, err := ws.slide()
		if err != nil {
			errs = append(errs, &SlideError{Index: i, Err: err})
			continue
		}
		d.Slides = append(d.Slides, s)
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errs: errs}
	}
	return d, nil
}

// ParseSlideKind maps a type tag to a kind, ignoring case and surrounding
// whitespace.
func ParseSlideKind(tag string) (SlideKind, error) {
	k := SlideKind(strings.ToLower(strings.TrimSpace(tag)))
	for _, known := range SlideKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSlideType, tag)
}

func (ws wireSlide) slide() (Slide, error) {
	kind, err := ParseSlideKind(ws.Type)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindTitle:
		return &TitleSlide{Title: ws.Title, Subtitle: ws.Subtitle, Images: ws.Images, Notes: ws.Notes}, nil
	case KindSummary:
		return &SummarySlide{Title: ws.Title, Bullets: ws.Bullets, Notes: ws.Notes}, nil
	case KindSkills:
		return &SkillsSlide{Title: ws.Title, Bullets: ws.Bullets, Notes: ws.Notes}, nil
	case KindContact:
		return &ContactSlide{Title: ws.Title, Bullets: ws.Bullets, Notes: ws.Notes}, nil
	case KindExperience:
		s := &ExperienceSlide{Title: ws.Title, Notes: ws.Notes}
		for _, it := range ws.Items {
			s.Items = append(s.Items, ExperienceItem{
				Role: first(it.line, it.Role), Company: it.Company, Dates: it.Dates, Bullets: it.Bullets,
			})
		}
		return s, nil
	case KindEducation:
		s := &EducationSlide{Title: ws.Title, Notes: ws.Notes}
		for _, it := range ws.Items {
			s.Items = append(s.Items, EducationItem{
				School: it.School, Degree: first(it.line, it.Degree), Dates: it.Dates,
			})
		}
		return s, nil
	case KindProjects:
		s := &ProjectsSlide{Title: ws.Title, Notes: ws.Notes}
		for _, it := range ws.Items {
			s.Items = append(s.Items, ProjectItem{
				Title: first(it.line, it.Title), Description: it.Description, Image: it.Image,
			})
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSlideType, ws.Type)
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
