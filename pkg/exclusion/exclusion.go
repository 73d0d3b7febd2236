// Package exclusion verifies that exclude groups are honoured by the default
// selection: within one group at most one pack may be preselected.
package exclusion

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/packforge/pkg/errors"
	"github.com/arthur-debert/packforge/pkg/logging"
	"github.com/arthur-debert/packforge/pkg/types"
)

// Conflict is a pair of preselected packs sharing an exclude group. First
// precedes Second in the pack list.
type Conflict struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Group  string `json:"group"`
}

// String names the later pack first, as the scan meets it.
func (c Conflict) String() string {
	return fmt.Sprintf("packs %s and %s belong to the same excludeGroup %s and are both preselected", c.Second, c.First, c.Group)
}

// Option configures CheckExcludes.
type Option func(*options)

type options struct {
	reportAll bool
}

// ReportAll collects every conflicting pair instead of stopping at the first.
func ReportAll() Option {
	return func(o *options) {
		o.reportAll = true
	}
}

// CheckExcludes fails with CONFLICTING_PRESELECTION when two preselected
// packs share an exclude group. Pairs are compared in list order.
func CheckExcludes(packs []types.Pack, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.GetLogger("exclusion")

	var conflicts []Conflict
	if o.reportAll {
		conflicts = FindConflicts(packs)
	} else if c, found := firstConflict(packs); found {
		conflicts = []Conflict{c}
	}

	if len(conflicts) == 0 {
		logger.Debug().Int("packs", len(packs)).Msg("Exclude groups verified")
		return nil
	}

	for _, c := range conflicts {
		logger.Debug().Str("first", c.First).Str("second", c.Second).Str("group", c.Group).Msg("Conflicting preselection")
	}

	first := conflicts[0]
	if len(conflicts) == 1 {
		return errors.Newf(errors.ErrConflictingPreselection, "%s. This is not allowed", capitalize(first.String())).
			WithDetail("packs", []string{first.First, first.Second}).
			WithDetail("group", first.Group)
	}

	lines := make([]string, len(conflicts))
	for i, c := range conflicts {
		lines[i] = c.String()
	}
	return errors.Newf(errors.ErrConflictingPreselection, "%d conflicting preselections: %s",
		len(conflicts), strings.Join(lines, "; ")).
		WithDetail("packs", []string{first.First, first.Second}).
		WithDetail("group", first.Group).
		WithDetail("conflicts", conflicts)
}

// FindConflicts returns every conflicting pair, ordered by the position of
// the later pack and then the earlier one.
func FindConflicts(packs []types.Pack) []Conflict {
	var conflicts []Conflict
	scan(packs, func(c Conflict) bool {
		conflicts = append(conflicts, c)
		return true
	})
	return conflicts
}

func firstConflict(packs []types.Pack) (Conflict, bool) {
	var (
		found    Conflict
		hasFound bool
	)
	scan(packs, func(c Conflict) bool {
		found, hasFound = c, true
		return false
	})
	return found, hasFound
}

// scan compares each pack with every pack before it and calls yield for each
// conflict until yield returns false.
func scan(packs []types.Pack, yield func(Conflict) bool) {
	for j := 1; j < len(packs); j++ {
		later := packs[j]
		if !later.Preselected || !later.HasExcludeGroup() {
			continue
		}
		for i := 0; i < j; i++ {
			earlier := packs[i]
			if earlier.Preselected && earlier.SharesExcludeGroup(later) {
				if !yield(Conflict{First: earlier.Name, Second: later.Name, Group: later.ExcludeGroup}) {
					return
				}
			}
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
