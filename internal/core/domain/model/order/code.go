package order

import (
	"fmt"
	"regexp"
	"slices"
)

// Order codes follow the grammar OT-{year}-{sequence:05d}[.{suffix}][.0]:
//
//	OT-2026-00010      root order, open
//	OT-2026-00010.0    root order, closed with a successor split
//	OT-2026-00010.1    first sibling born from a split
//	OT-2026-00010.1.0  first sibling, itself closed with a further split
//
// Siblings sharing (year, sequence) form a family; the suffix disambiguates
// them.

var (
	trailingSuffixZero = regexp.MustCompile(`\.\d+\.0$`)
	trailingZero       = regexp.MustCompile(`\.0$`)
	trailingSuffix     = regexp.MustCompile(`\.\d+$`)
)

// FormatCode renders the canonical code for an order of the given family.
// Suffix 0 denotes the root order and is omitted.
func FormatCode(year, sequence, suffix int) string {
	code := fmt.Sprintf("OT-%d-%05d", year, sequence)
	if suffix > 0 {
		code = fmt.Sprintf("%s.%d", code, suffix)
	}
	return code
}

// ClosedCode renders the frozen code an order takes when it is closed:
// the family base plus a ".0" marker. When withSuffix is true the order's own
// suffix is kept in front of the marker, the fallback used when the plain
// closed code collides with an unrelated order.
func ClosedCode(base string, suffix int, withSuffix bool) string {
	if withSuffix {
		return fmt.Sprintf("%s.%d.0", base, suffix)
	}
	return base + ".0"
}

// BaseCode strips any trailing ".{suffix}", ".0" or ".{suffix}.0" decoration
// from a code, recovering the family base shared by all siblings.
func BaseCode(code string) string {
	base := trailingSuffixZero.ReplaceAllString(code, "")
	base = trailingZero.ReplaceAllString(base, "")
	return trailingSuffix.ReplaceAllString(base, "")
}

// NextFreeSuffix returns the smallest positive integer not present among the
// sibling suffixes already in use within a family. The scan is the pure half
// of suffix allocation; serializing concurrent allocations is the
// transaction's job.
func NextFreeSuffix(existing []int) int {
	used := slices.Clone(existing)
	slices.Sort(used)

	next := 1
	for _, s := range used {
		if s < next {
			continue
		}
		if s == next {
			next++
		} else {
			break
		}
	}
	return next
}
