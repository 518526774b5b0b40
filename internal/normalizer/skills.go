package normalizer

import (
	"regexp"
	"strings"
)

// MaxSkillTags caps the merged tag set.
const MaxSkillTags = 20

// techKeywords pairs a canonical skill name with the pattern used to find it
// in free text. Word boundaries are only asserted where the keyword begins or
// ends with a word character, so "C++" and "C#" still match.
var techKeywords = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"JavaScript", skillPattern(`JavaScript`)},
	{"TypeScript", skillPattern(`TypeScript`)},
	{"Python", skillPattern(`Python`)},
	{"Java", skillPattern(`Java`)},
	{"C++", regexp.MustCompile(`(?i)\bC\+\+`)},
	{"C#", regexp.MustCompile(`(?i)\bC#`)},
	{"Ruby", skillPattern(`Ruby`)},
	{"Go", skillPattern(`Go`)},
	{"Rust", skillPattern(`Rust`)},
	{"PHP", skillPattern(`PHP`)},
	{"Swift", skillPattern(`Swift`)},
	{"Kotlin", skillPattern(`Kotlin`)},
	{"React", skillPattern(`React`)},
	{"Angular", skillPattern(`Angular`)},
	{"Vue", skillPattern(`Vue`)},
	{"Node.js", regexp.MustCompile(`(?i)\bNode\.?js\b`)},
	{"Django", skillPattern(`Django`)},
	{"Flask", skillPattern(`Flask`)},
	{"Spring", skillPattern(`Spring`)},
	{"Rails", skillPattern(`Rails`)},
	{"Express", skillPattern(`Express`)},
	{"Next.js", regexp.MustCompile(`(?i)\bNext\.?js\b`)},
	{"AWS", skillPattern(`AWS`)},
	{"Azure", skillPattern(`Azure`)},
	{"GCP", skillPattern(`GCP`)},
	{"Docker", skillPattern(`Docker`)},
	{"Kubernetes", skillPattern(`Kubernetes`)},
	{"PostgreSQL", skillPattern(`PostgreSQL`)},
	{"MySQL", skillPattern(`MySQL`)},
	{"MongoDB", skillPattern(`MongoDB`)},
	{"Redis", skillPattern(`Redis`)},
	{"GraphQL", skillPattern(`GraphQL`)},
	{"REST", skillPattern(`REST`)},
	{"API", skillPattern(`API`)},
	{"Git", skillPattern(`Git`)},
	{"CI/CD", regexp.MustCompile(`(?i)\bCI/CD\b`)},
	{"Agile", skillPattern(`Agile`)},
	{"Scrum", skillPattern(`Scrum`)},
	{"TDD", skillPattern(`TDD`)},
}

func skillPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
}

// ExtractSkillsFromDescription matches the fixed technology-keyword list
// against a description and merges the hits into the existing tags as a set,
// capped at MaxSkillTags entries. Existing tags keep their position.
func ExtractSkillsFromDescription(description string, existingTags []string) []string {
	seen := make(map[string]bool, len(existingTags))
	skills := make([]string, 0, len(existingTags))

	for _, tag := range existingTags {
		key := strings.ToLower(tag)
		if tag == "" || seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, tag)
	}

	for _, kw := range techKeywords {
		if !kw.pattern.MatchString(description) {
			continue
		}
		key := strings.ToLower(kw.name)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, kw.name)
	}

	if len(skills) > MaxSkillTags {
		skills = skills[:MaxSkillTags]
	}
	return skills
}
