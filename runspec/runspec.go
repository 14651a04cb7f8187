// Package runspec parses the small grammar the CLI uses for `--threads`
// and `--chunk-size`: a comma-separated list of integers and/or
// `start:end[:step]` ranges, e.g. "1,2,4:8:2,16" -> [1 2 4 6 8 16].
package runspec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gocc/ccerr"
)

// Parse expands spec into a sorted, deduplicated slice of positive ints.
// Malformed syntax, a non-positive value, or an empty spec all produce
// ccerr.ErrBadArgument.
func Parse(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("%w: empty spec", ccerr.ErrBadArgument)
	}

	seen := make(map[int]bool)
	var out []int
	for _, term := range strings.Split(spec, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			return nil, fmt.Errorf("%w: empty term in %q", ccerr.ErrBadArgument, spec)
		}
		vals, err := parseTerm(term)
		if err != nil {
			return nil, err
		}
		for _, v := range vals {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	sortInts(out)
	return out, nil
}

func parseTerm(term string) ([]int, error) {
	parts := strings.Split(term, ":")
	switch len(parts) {
	case 1:
		v, err := strconv.Atoi(parts[0])
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%w: invalid integer %q", ccerr.ErrBadArgument, parts[0])
		}
		return []int{v}, nil
	case 2, 3:
		start, err := strconv.Atoi(parts[0])
		if err != nil || start <= 0 {
			return nil, fmt.Errorf("%w: invalid range start %q", ccerr.ErrBadArgument, parts[0])
		}
		end, err := strconv.Atoi(parts[1])
		if err != nil || end <= 0 {
			return nil, fmt.Errorf("%w: invalid range end %q", ccerr.ErrBadArgument, parts[1])
		}
		step := 1
		if len(parts) == 3 {
			step, err = strconv.Atoi(parts[2])
			if err != nil || step <= 0 {
				return nil, fmt.Errorf("%w: invalid range step %q", ccerr.ErrBadArgument, parts[2])
			}
		}
		if end < start {
			return nil, fmt.Errorf("%w: range end %d before start %d", ccerr.ErrBadArgument, end, start)
		}
		var vals []int
		for v := start; v <= end; v += step {
			vals = append(vals, v)
		}
		return vals, nil
	default:
		return nil, fmt.Errorf("%w: malformed range term %q", ccerr.ErrBadArgument, term)
	}
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
