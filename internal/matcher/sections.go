package matcher

import "strings"

// Section-detection heuristics run on the gentle (Clean) normalization
// level, which keeps enough punctuation to recognize headers.

// cvSectionKeywords maps CV section names to the header words that start
// them. Order matters: the first section whose keyword appears in a line
// claims it.
var cvSectionKeywords = []struct {
	name     string
	keywords []string
}{
	{"experience", []string{"experience", "employment", "work", "career"}},
	{"education", []string{"education", "degree", "qualification", "university", "school"}},
	{"skills", []string{"skills", "technical", "expertise", "competencies"}},
	{"certifications", []string{"certification", "certificate", "certified", "course"}},
}

// jdSectionBoundaries are the headers that terminate a requirements or
// responsibilities block in a job description.
var jdSectionBoundaries = []string{"requirement", "responsibility", "benefit", "qualification", "about"}

// CVSections groups the recognizable parts of a resume.
type CVSections struct {
	Experience     string `json:"experience"`
	Education      string `json:"education"`
	Skills         string `json:"skills"`
	Certifications string `json:"certifications"`
}

// JDSections groups the recognizable parts of a job description.
type JDSections struct {
	Requirements     string `json:"requirements"`
	Responsibilities string `json:"responsibilities"`
}

// ExtractCVSections assigns each line of the text to the most recently seen
// section header. Lines before any recognized header are ignored.
func ExtractCVSections(text string) CVSections {
	sections := map[string]*strings.Builder{
		"experience":     {},
		"education":      {},
		"skills":         {},
		"certifications": {},
	}

	current := ""
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)

	claim:
		for _, section := range cvSectionKeywords {
			for _, kw := range section.keywords {
				if strings.Contains(lower, kw) {
					current = section.name
					break claim
				}
			}
		}

		if b, ok := sections[current]; ok {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}

	return CVSections{
		Experience:     strings.TrimSpace(sections["experience"].String()),
		Education:      strings.TrimSpace(sections["education"].String()),
		Skills:         strings.TrimSpace(sections["skills"].String()),
		Certifications: strings.TrimSpace(sections["certifications"].String()),
	}
}

// ExtractJDSections slices out the requirements and responsibilities blocks,
// each ending at the next recognizable section header.
func ExtractJDSections(text string) JDSections {
	return JDSections{
		Requirements:     sliceSection(text, "requirement"),
		Responsibilities: sliceSection(text, "responsibility"),
	}
}

func sliceSection(text, marker string) string {
	lower := strings.ToLower(text)

	start := strings.Index(lower, marker)
	if start == -1 {
		return ""
	}

	end := len(text)
	for _, boundary := range jdSectionBoundaries {
		if boundary == marker {
			continue
		}
		if idx := strings.Index(lower[start:], boundary); idx > 0 {
			if start+idx < end {
				end = start + idx
			}
		}
	}

	return strings.TrimSpace(text[start:end])
}
