package identity

import (
	"regexp"
	"strings"
)

// Vocabulary holds the word sets used to reject false-positive name matches.
// The sets are configuration, not code: callers may extend them without
// touching the extraction logic.
type Vocabulary struct {
	// RoleWords disqualify values that look like job titles or document
	// boilerplate rather than a person.
	RoleWords []string
	// Locations disqualify values that look like places.
	Locations []string
	// NoiseWords are stripped from filename-derived candidates before
	// title casing (organization names, role words, revision markers).
	NoiseWords []string

	roleSet     map[string]struct{}
	locationSet map[string]struct{}
	noiseSet    map[string]struct{}
}

var versionToken = regexp.MustCompile(`^v?\d+$`)

// DefaultVocabulary returns the built-in disqualifier sets.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		RoleWords: []string{
			"engineer", "developer", "tester", "manager", "analyst",
			"consultant", "architect", "designer", "lead", "senior",
			"junior", "intern", "specialist", "administrator",
			"resume", "curriculum", "vitae", "profile", "candidate",
			"experience", "summary", "objective", "education",
		},
		Locations: []string{
			"bangalore", "bengaluru", "chennai", "hyderabad", "mumbai",
			"pune", "delhi", "noida", "gurgaon", "kolkata",
			"london", "berlin", "paris", "amsterdam", "dublin",
			"york", "francisco", "seattle", "austin", "toronto",
			"singapore", "sydney", "dubai", "remote",
			"india", "usa", "uk", "germany", "canada", "australia",
		},
		NoiseWords: []string{
			"resume", "cv", "curriculum", "vitae", "final", "updated",
			"latest", "new", "copy", "draft", "profile",
		},
	}
}

// Merge appends additional words to the vocabulary sets.
func (v *Vocabulary) Merge(roleWords, locations, noiseWords []string) {
	v.RoleWords = append(v.RoleWords, roleWords...)
	v.Locations = append(v.Locations, locations...)
	v.NoiseWords = append(v.NoiseWords, noiseWords...)
	v.roleSet, v.locationSet, v.noiseSet = nil, nil, nil
}

// Disqualifies reports whether a candidate name value contains a role word,
// a location word, or an email sigil.
func (v *Vocabulary) Disqualifies(value string) bool {
	if strings.Contains(value, "@") {
		return true
	}
	for _, token := range strings.Fields(strings.ToLower(value)) {
		token = strings.Trim(token, ".,;:()")
		if _, ok := v.roles()[token]; ok {
			return true
		}
		if _, ok := v.locations()[token]; ok {
			return true
		}
	}
	return false
}

// Role reports whether a single token is a known role word.
func (v *Vocabulary) Role(token string) bool {
	_, ok := v.roles()[strings.ToLower(token)]
	return ok
}

// Noise reports whether a filename token carries no identity signal.
func (v *Vocabulary) Noise(token string) bool {
	token = strings.ToLower(token)
	if versionToken.MatchString(token) {
		return true
	}
	_, ok := v.noise()[token]
	return ok
}

func (v *Vocabulary) roles() map[string]struct{} {
	if v.roleSet == nil {
		v.roleSet = toSet(v.RoleWords)
	}
	return v.roleSet
}

func (v *Vocabulary) locations() map[string]struct{} {
	if v.locationSet == nil {
		v.locationSet = toSet(v.Locations)
	}
	return v.locationSet
}

func (v *Vocabulary) noise() map[string]struct{} {
	if v.noiseSet == nil {
		v.noiseSet = toSet(v.NoiseWords)
	}
	return v.noiseSet
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return set
}
