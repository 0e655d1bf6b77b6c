package curriculum

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathbuddy/internal/problemgen"
)

// Validate checks the curriculum tables for structural issues.
func Validate() error {
	return validateTables(yearTopics, topicInfo)
}

// validateTables performs all structural checks on the given tables.
// Returns a combined error describing all problems found, or nil if valid.
func validateTables(levels map[problemgen.YearLevel][]problemgen.Topic, info map[problemgen.Topic]TopicInfo) error {
	var errs []string

	// Every level is populated without duplicates
	offered := make(map[problemgen.Topic]bool)
	for y := problemgen.MinYearLevel; y <= problemgen.MaxYearLevel; y++ {
		topics := levels[y]
		if len(topics) == 0 {
			errs = append(errs, fmt.Sprintf("level %d has no topics", y))
		}
		seen := make(map[problemgen.Topic]bool, len(topics))
		for _, t := range topics {
			if !t.Valid() {
				errs = append(errs, fmt.Sprintf("level %d references unknown topic %q", y, t))
			}
			if seen[t] {
				errs = append(errs, fmt.Sprintf("level %d lists %q twice", y, t))
			}
			seen[t] = true
			offered[t] = true
		}
	}
	for y := range levels {
		if y < problemgen.MinYearLevel || y > problemgen.MaxYearLevel {
			errs = append(errs, fmt.Sprintf("level %d is outside %d-%d", y, problemgen.MinYearLevel, problemgen.MaxYearLevel))
		}
	}

	// Every generator topic is reachable and named
	for _, t := range problemgen.AllTopics() {
		if !offered[t] {
			errs = append(errs, fmt.Sprintf("topic %q is not offered at any level", t))
		}
		ti, ok := info[t]
		if !ok {
			errs = append(errs, fmt.Sprintf("topic %q has no display info", t))
			continue
		}
		if ti.Topic != t {
			errs = append(errs, fmt.Sprintf("topic %q info is keyed as %q", ti.Topic, t))
		}
		if ti.Name == "" {
			errs = append(errs, fmt.Sprintf("topic %q has no display name", t))
		}
	}

	// Check all declared strands are populated
	strandSet := make(map[Strand]bool)
	for _, ti := range info {
		strandSet[ti.Strand] = true
	}
	for _, strand := range AllStrands() {
		if !strandSet[strand] {
			errs = append(errs, fmt.Sprintf("strand %q has no topics", strand))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
