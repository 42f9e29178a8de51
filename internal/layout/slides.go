package layout

// Slide kinds, used as Page.Kind.
const (
	KindTitle      = "title"
	KindSummary    = "summary"
	KindExperience = "experience"
	KindSkills     = "skills"
	KindProjects   = "projects"
	KindEducation  = "education"
	KindContact    = "contact"
)

// TitleSlide is the input of Renderer.Title.
type TitleSlide struct {
	Title    string
	Subtitle string
	Images   []string
	Notes    string
}

// ListSlide is the input of Summary, Skills and Contact.
type ListSlide struct {
	Title   string
	Bullets []string
	Notes   string
}

// Experience is one role.
type Experience struct {
	Role    string
	Company string
	Dates   string
	Bullets []string
}

// ExperienceSlide is the input of Renderer.Experience.
type ExperienceSlide struct {
	Title string
	Items []Experience
	Notes string
}

// Education is one degree.
type Education struct {
	School string
	Degree string
	Dates  string
}

// EducationSlide is the input of Renderer.Education.
type EducationSlide struct {
	Title string
	Items []Education
	Notes string
}

// Project is one portfolio entry.
type Project struct {
	Title       string
	Description string
	Image       string
}

// ProjectsSlide is the input of Renderer.Projects.
type ProjectsSlide struct {
	Title string
	Items []Project
	Notes string
}
