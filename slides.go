package deckgen

import (
	"fmt"
	"strings"
)

// SlideKind is the type tag of a slide definition.
type SlideKind string

// Slide kinds.
const (
	KindTitle      SlideKind = "title"
	KindSummary    SlideKind = "summary"
	KindExperience SlideKind = "experience"
	KindSkills     SlideKind = "skills"
	KindProjects   SlideKind = "projects"
	KindEducation  SlideKind = "education"
	KindContact    SlideKind = "contact"
)

// SlideKinds lists every kind in declaration order.
var SlideKinds = []SlideKind{KindTitle, KindSummary, KindExperience, KindSkills, KindProjects, KindEducation, KindContact}

// Slide is one slide definition. The set of implementations is closed:
// every kind is handled by slideVisitor, so adding a kind without a
// renderer does not compile.
type Slide interface {
	Kind() SlideKind
	// Validate checks the payload of this kind.
	Validate() error
	accept(v slideVisitor) error
}

// slideVisitor has one method per slide kind.
type slideVisitor interface {
	visitTitle(*TitleSlide) error
	visitSummary(*SummarySlide) error
	visitExperience(*ExperienceSlide) error
	visitSkills(*SkillsSlide) error
	visitProjects(*ProjectsSlide) error
	visitEducation(*EducationSlide) error
	visitContact(*ContactSlide) error
}

// TitleSlide opens the deck. Images are tried in order; the first one that
// resolves is used by photo and full-bleed layouts.
type TitleSlide struct {
	Title    string
	Subtitle string
	Images   []string
	Notes    string
}

// SummarySlide is a heading with a bulleted body.
type SummarySlide struct {
	Title   string
	Bullets []string
	Notes   string
}

// ExperienceItem is one role.
type ExperienceItem struct {
	Role    string
	Company string
	Dates   string
	Bullets []string
}

// ExperienceSlide lists roles and may span several pages.
type ExperienceSlide struct {
	Title string
	Items []ExperienceItem
	Notes string
}

// SkillsSlide renders its bullets in two columns.
type SkillsSlide struct {
	Title   string
	Bullets []string
	Notes   string
}

// ProjectItem is one portfolio entry with an optional picture.
type ProjectItem struct {
	Title       string
	Description string
	Image       string
}

// ProjectsSlide lists projects and may span several pages.
type ProjectsSlide struct {
	Title string
	Items []ProjectItem
	Notes string
}

// EducationItem is one degree.
type EducationItem struct {
	School string
	Degree string
	Dates  string
}

// EducationSlide lists degrees and may span several pages.
type EducationSlide struct {
	Title string
	Items []EducationItem
	Notes string
}

// ContactSlide renders its lines without bullet glyphs.
type ContactSlide struct {
	Title   string
	Bullets []string
	Notes   string
}

// Compile-time interface checks.
var (
	_ Slide = (*TitleSlide)(nil)
	_ Slide = (*SummarySlide)(nil)
	_ Slide = (*ExperienceSlide)(nil)
	_ Slide = (*SkillsSlide)(nil)
	_ Slide = (*ProjectsSlide)(nil)
	_ Slide = (*EducationSlide)(nil)
	_ Slide = (*ContactSlide)(nil)
)

func (*TitleSlide) Kind() SlideKind      { return KindTitle }
func (*SummarySlide) Kind() SlideKind    { return KindSummary }
func (*ExperienceSlide) Kind() SlideKind { return KindExperience }
func (*SkillsSlide) Kind() SlideKind     { return KindSkills }
func (*ProjectsSlide) Kind() SlideKind   { return KindProjects }
func (*EducationSlide) Kind() SlideKind  { return KindEducation }
func (*ContactSlide) Kind() SlideKind    { return KindContact }

func (s *TitleSlide) accept(v slideVisitor) error      { return v.visitTitle(s) }
func (s *SummarySlide) accept(v slideVisitor) error    { return v.visitSummary(s) }
func (s *ExperienceSlide) accept(v slideVisitor) error { return v.visitExperience(s) }
func (s *SkillsSlide) accept(v slideVisitor) error     { return v.visitSkills(s) }
func (s *ProjectsSlide) accept(v slideVisitor) error   { return v.visitProjects(s) }
func (s *EducationSlide) accept(v slideVisitor) error  { return v.visitEducation(s) }
func (s *ContactSlide) accept(v slideVisitor) error    { return v.visitContact(s) }

// Validate checks that every image reference is non-blank.
func (s *TitleSlide) Validate() error {
	if s == nil {
		return ErrNilSlide
	}
	for i, ref := range s.Images {
		if strings.TrimSpace(ref) == "" {
			return fmt.Errorf("%w: images[%d] is empty", ErrInvalidSlideField, i)
		}
	}
	return nil
}

// Validate accepts any bullets; empty ones are skipped when rendering.
func (s *SummarySlide) Validate() error {
	if s == nil {
		return ErrNilSlide
	}
	return nil
}

// Validate rejects items that carry no text at all.
func (s *ExperienceSlide) Validate() error {
	if s == nil {
		return ErrNilSlide
	}
	for i, it := range s.Items {
		if blank(it.Role, it.Company, it.Dates) && len(it.Bullets) == 0 {
			return fmt.Errorf("%w: items[%d] is empty", ErrInvalidSlideField, i)
		}
	}
	return nil
}

func (s *SkillsSlide) Validate() error {
	if s == nil {
		return ErrNilSlide
	}
	return nil
}

// Validate rejects items without a title, a description or an image.
func (s *ProjectsSlide) Validate() error {
	if s == nil {
		return ErrNilSlide
	}
	for i, it := range s.Items {
		if blank(it.Title, it.Description, it.Image) {
			return fmt.Errorf("%w: items[%d] is empty", ErrInvalidSlideField, i)
		}
	}
	return nil
}

func (s *EducationSlide) Validate() error {
	if s == nil {
		return ErrNilSlide
	}
	for i, it := range s.Items {
		if blank(it.School, it.Degree, it.Dates) {
			return fmt.Errorf("%w: items[%d] is empty", ErrInvalidSlideField, i)
		}
	}
	return nil
}

func (s *ContactSlide) Validate() error {
	if s == nil {
		return ErrNilSlide
	}
	return nil
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
