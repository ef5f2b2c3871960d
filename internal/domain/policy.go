package domain

import (
	"fmt"
	"regexp"
)

// DefaultRelationThreshold is the minimum relevance score a mapping needs.
const DefaultRelationThreshold = 0.1

// DefaultExcludedTaskNames are tasks that never run jstests directly:
// native unit-test suites, build-script tests and packaging/publishing tasks.
var DefaultExcludedTaskNames = []string{
	"dbtest",
	"idl_tests",
	"unittests",
	"buildscripts_test",
	"package",
	"publish_packages",
	"push",
}

// DefaultExcludedTaskPatterns match task classes that cannot be partially
// selected: compile, concurrency, integration, fuzzer, burn-in, lint and
// stitch tasks. Patterns are anchored at the start of the task name.
var DefaultExcludedTaskPatterns = []string{
	".*compile.*",
	"concurrency.*",
	"integration.*",
	".*fuzz.*",
	"burn_in.*",
	"lint.*",
	"stitch.*",
}

// SelectionPolicy bundles the threshold and exclusion rules used by both resolvers.
type SelectionPolicy struct {
	Threshold float64

	excludedNames    map[string]struct{}
	excludedPatterns []*regexp.Regexp
}

// NewSelectionPolicy compiles a policy from a threshold, a name denylist
// and a list of regular expressions.
func NewSelectionPolicy(threshold float64, names, patterns []string) (SelectionPolicy, error) {
	policy := SelectionPolicy{
		Threshold:        threshold,
		excludedNames:    make(map[string]struct{}, len(names)),
		excludedPatterns: make([]*regexp.Regexp, 0, len(patterns)),
	}

	for _, name := range names {
		policy.excludedNames[name] = struct{}{}
	}

	for _, pattern := range patterns {
		re, err := regexp.Compile("^(?:" + pattern + ")")
		if err != nil {
			return SelectionPolicy{}, fmt.Errorf("compile exclusion pattern %q: %w", pattern, err)
		}

		policy.excludedPatterns = append(policy.excludedPatterns, re)
	}

	return policy, nil
}

// DefaultSelectionPolicy returns the built-in policy.
func DefaultSelectionPolicy() SelectionPolicy {
	policy, err := NewSelectionPolicy(DefaultRelationThreshold, DefaultExcludedTaskNames, DefaultExcludedTaskPatterns)
	if err != nil {
		panic(err)
	}

	return policy
}

// Excludes reports whether a task must never be selected.
func (p SelectionPolicy) Excludes(taskName string) bool {
	if _, ok := p.excludedNames[taskName]; ok {
		return true
	}

	for _, re := range p.excludedPatterns {
		if re.MatchString(taskName) {
			return true
		}
	}

	return false
}
