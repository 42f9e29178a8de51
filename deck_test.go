package deckgen

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleDeck = `
title: Jane Doe
author: Jane
template: professional_clean
slides:
  - type: Title
    subtitle: Platform Engineer
    images: https://example.com/me.png
  - type: skills
    bullets: [Go, Kubernetes, "", Postgres]
  - type: experience
    items:
      - role: Staff Engineer
        company: Acme
        dates: 2019-2024
        bullets: Led the storage team
      - Contractor
  - type: education
    items:
      - school: MIT
        degree: BSc
  - type: projects
    items:
      - title: deckgen
        description: Slide builder
        image: https://example.com/p.png
  - type: contact
    bullets: jane@example.com
`

func TestDecodeDeck(t *testing.T) {
	t.Parallel()

	deck, err := DecodeDeck([]byte(sampleDeck))
	if err != nil {
		t.Fatalf("DecodeDeck() unexpected error: %v", err)
	}

	if deck.Title != "Jane Doe" || deck.Author != "Jane" {
		t.Errorf("Title, Author = %q, %q, want Jane Doe, Jane", deck.Title, deck.Author)
	}
	if deck.Template == nil || deck.Template.Name != "professional_clean" {
		t.Errorf("Template = %+v, want name professional_clean", deck.Template)
	}

	wantKinds := []SlideKind{KindTitle, KindSkills, KindExperience, KindEducation, KindProjects, KindContact}
	if len(deck.Slides) != len(wantKinds) {
		t.Fatalf("len(Slides) = %d, want %d", len(deck.Slides), len(wantKinds))
	}
	for i, want := range wantKinds {
		if got := deck.Slides[i].Kind(); got != want {
			t.Errorf("Slides[%d].Kind() = %q, want %q", i, got, want)
		}
	}

	title := deck.Slides[0].(*TitleSlide)
	if !reflect.DeepEqual(title.Images, []string{"https://example.com/me.png"}) {
		t.Errorf("title images = %v, want the single scalar", title.Images)
	}

	skills := deck.Slides[1].(*SkillsSlide)
	if !reflect.DeepEqual(skills.Bullets, []string{"Go", "Kubernetes", "Postgres"}) {
		t.Errorf("skills bullets = %v, want blanks dropped", skills.Bullets)
	}

	exp := deck.Slides[2].(*ExperienceSlide)
	if len(exp.Items) != 2 {
		t.Fatalf("len(experience items) = %d, want 2", len(exp.Items))
	}
	if exp.Items[0].Company != "Acme" || !reflect.DeepEqual(exp.Items[0].Bullets, []string{"Led the storage team"}) {
		t.Errorf("experience item = %+v", exp.Items[0])
	}
	if exp.Items[1].Role != "Contractor" {
		t.Errorf("scalar item role = %q, want Contractor", exp.Items[1].Role)
	}

	contact := deck.Slides[5].(*ContactSlide)
	if len(contact.Bullets) != 1 {
		t.Errorf("contact bullets = %v, want one line", contact.Bullets)
	}

	if err := deck.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestDecodeDeck_JSON(t *testing.T) {
	t.Parallel()

	data := `{"title":"Q3","template":{"name":"acme","accentColor":"#FF0000"},"slides":[{"type":"summary","title":"Wins","bullets":["a","b"]}]}`
	deck, err := DecodeDeck([]byte(data))
	if err != nil {
		t.Fatalf("DecodeDeck() unexpected error: %v", err)
	}
	if deck.Template == nil || deck.Template.AccentColor != "#FF0000" {
		t.Errorf("Template = %+v, want accent #FF0000", deck.Template)
	}
	s, ok := deck.Slides[0].(*SummarySlide)
	if !ok {
		t.Fatalf("Slides[0] = %T, want *SummarySlide", deck.Slides[0])
	}
	if s.Title != "Wins" || len(s.Bullets) != 2 {
		t.Errorf("summary = %+v", s)
	}
}

func TestDecodeDeck_UnknownTypes(t *testing.T) {
	t.Parallel()

	data := `
title: x
slides:
  - type: summary
  - type: chart
  - type: timeline
`
	_, err := DecodeDeck([]byte(data))
	if !errors.Is(err, ErrInvalidDeck) {
		t.Fatalf("DecodeDeck() error = %v, want ErrInvalidDeck", err)
	}
	if !errors.Is(err, ErrUnknownSlideType) {
		t.Errorf("DecodeDeck() error = %v, want ErrUnknownSlideType", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if got := verr.SlideIndices(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("SlideIndices() = %v, want [1 2]", got)
	}
}

func TestDecodeDeck_Malformed(t *testing.T) {
	t.Parallel()

	_, err := DecodeDeck([]byte("title: [unclosed"))
	if !errors.Is(err, ErrDeckDecode) {
		t.Errorf("DecodeDeck() error = %v, want ErrDeckDecode", err)
	}
}

func TestReadDeckFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(sampleDeck), 0644); err != nil {
		t.Fatalf("failed to write deck: %v", err)
	}

	deck, err := ReadDeckFile(path)
	if err != nil {
		t.Fatalf("ReadDeckFile() unexpected error: %v", err)
	}
	if len(deck.Slides) != 6 {
		t.Errorf("len(Slides) = %d, want 6", len(deck.Slides))
	}

	if _, err := ReadDeckFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, ErrDeckDecode) {
		t.Errorf("ReadDeckFile(missing) error = %v, want ErrDeckDecode", err)
	}
}

func TestParseSlideKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag     string
		want    SlideKind
		wantErr bool
	}{
		{"title", KindTitle, false},
		{" SUMMARY ", KindSummary, false},
		{"Experience", KindExperience, false},
		{"contact", KindContact, false},
		{"", "", true},
		{"chart", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSlideKind(tt.tag)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSlideType) {
					t.Errorf("ParseSlideKind(%q) error = %v, want ErrUnknownSlideType", tt.tag, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseSlideKind(%q) = %q, %v, want %q", tt.tag, got, err, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Validate
// ---------------------------------------------------------------------------

func TestDeck_Validate(t *testing.T) {
	t.Parallel()

	var nilTitle *TitleSlide

	tests := []struct {
		name        string
		deck        *Deck
		wantErrs    []error
		wantIndices []int
	}{
		{
			name: "empty deck with title is valid",
			deck: &Deck{Title: "x"},
		},
		{
			name:     "nil deck",
			deck:     nil,
			wantErrs: []error{ErrInvalidDeck},
		},
		{
			name:     "missing title",
			deck:     &Deck{Title: "  "},
			wantErrs: []error{ErrInvalidDeck, ErrMissingDeckTitle},
		},
		{
			name:     "bad template",
			deck:     &Deck{Title: "x", Template: &StyleTemplate{BackgroundType: "video"}},
			wantErrs: []error{ErrInvalidBackgroundType},
		},
		{
			name: "nil and typed nil slides",
			deck: &Deck{Title: "x", Slides: []Slide{
				&SummarySlide{}, nil, nilTitle,
			}},
			wantErrs:    []error{ErrNilSlide},
			wantIndices: []int{1, 2},
		},
		{
			name: "every problem is reported",
			deck: &Deck{Slides: []Slide{
				&TitleSlide{Images: []string{" "}},
				&ExperienceSlide{Items: []ExperienceItem{{}}},
				&ProjectsSlide{Items: []ProjectItem{{Title: "ok"}, {}}},
				&EducationSlide{Items: []EducationItem{{}}},
			}},
			wantErrs:    []error{ErrMissingDeckTitle, ErrInvalidSlideField},
			wantIndices: []int{0, 1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.deck.Validate()
			if len(tt.wantErrs) == 0 {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			for _, want := range tt.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("Validate() error = %v, want %v", err, want)
				}
			}
			if tt.wantIndices != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("error type = %T, want *ValidationError", err)
				}
				if got := verr.SlideIndices(); !reflect.DeepEqual(got, tt.wantIndices) {
					t.Errorf("SlideIndices() = %v, want %v", got, tt.wantIndices)
				}
			}
		})
	}
}

func TestSlideError(t *testing.T) {
	t.Parallel()

	err := &SlideError{Index: 3, Kind: KindSkills, Err: ErrInvalidSlideField}
	if got, want := err.Error(), "slide 3 (skills): invalid slide field"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidSlideField) {
		t.Error("errors.Is(SlideError, cause) should be true")
	}
}
