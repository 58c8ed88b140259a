package matcher

import "strings"

// DegreeLevel is an ordered degree rank. The ordering is total:
// Other < Bachelor < Master < PhD.
type DegreeLevel int

const (
	DegreeOther DegreeLevel = iota
	DegreeBachelor
	DegreeMaster
	DegreePhD
)

func (d DegreeLevel) String() string {
	switch d {
	case DegreePhD:
		return "PhD"
	case DegreeMaster:
		return "Master"
	case DegreeBachelor:
		return "Bachelor"
	default:
		return "Other"
	}
}

// degreeCues are checked from highest tier to lowest; the first tier with a
// hit wins and no combination across tiers happens.
var degreeCues = []struct {
	level DegreeLevel
	cues  []string
}{
	{DegreePhD, []string{"phd", "ph.d"}},
	{DegreeMaster, []string{"master", "msc", "m.sc"}},
	{DegreeBachelor, []string{"bachelor", "bsc", "b.sc"}},
}

// DetectDegree returns the highest degree level mentioned in the text.
func DetectDegree(text string) DegreeLevel {
	for _, tier := range degreeCues {
		for _, cue := range tier.cues {
			if strings.Contains(text, cue) {
				return tier.level
			}
		}
	}
	return DegreeOther
}

// EducationScore compares the CV degree against the JD requirement.
// A JD with no formal requirement gets partial credit regardless of the CV;
// meeting or exceeding the requirement scores full, falling short scores 70
// (under-qualified but not disqualified).
func EducationScore(cvDegree, jdDegree DegreeLevel) int {
	if jdDegree == DegreeOther {
		return 50
	}
	if cvDegree >= jdDegree {
		return 100
	}
	return 70
}
