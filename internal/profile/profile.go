package profile

// Profile holds the optional prior-experience background a user provides
// at the start of an assessment (typically extracted from a resume).
// A profile is never mutated once analyzed.
type Profile struct {
	// Background is the free-text career history (resume text).
	Background string `json:"background"`

	// Profession is the current or most recent job title.
	Profession string `json:"profession"`

	// YearsExperience is the total years of professional experience.
	YearsExperience int `json:"years_experience"`

	// Education is the highest diploma or certification.
	Education string `json:"education"`

	// Skills lists self-declared skills.
	Skills []string `json:"skills"`
}

// IsEmpty reports whether the profile carries no usable signal.
func (p *Profile) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.Background == "" && p.Profession == "" &&
		p.YearsExperience <= 0 && p.Education == "" && len(p.Skills) == 0
}
