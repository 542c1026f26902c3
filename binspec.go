// Package binspec parses and validates bin group specifications, the
// short textual values that tell a signal aggregator which positional
// ranges to collapse and at which resolution, e.g.:
//
//	(36-149 1) (150-224 225-324 2) (325-400 5)
//
// A specification is a sequence of parenthesized groups. Each group
// lists one or more start-end ranges followed by a single positive
// integer resolution shared by all ranges in the group. Bins from all
// groups must not overlap.
package binspec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/xiam/binspec/ast"
	"github.com/xiam/binspec/parser"
)

// Bin is a closed positional range and the resolution its positions are
// aggregated at.
type Bin struct {
	start      int
	end        int
	resolution int
}

// NewBin builds a bin, rejecting backward ranges and non-positive
// resolutions.
func NewBin(start, end, resolution int) (Bin, error) {
	if end < start {
		return Bin{}, fmt.Errorf("backward bin range %d-%d", start, end)
	}
	if resolution < 1 {
		return Bin{}, fmt.Errorf("resolution %d is not positive", resolution)
	}
	return Bin{start: start, end: end, resolution: resolution}, nil
}

func (b Bin) Start() int {
	return b.start
}

func (b Bin) End() int {
	return b.end
}

func (b Bin) Resolution() int {
	return b.resolution
}

func (b Bin) String() string {
	return fmt.Sprintf("%d-%d@%d", b.start, b.end, b.resolution)
}

// Group is an ordered run of bins that share one resolution.
type Group []Bin

// String renders the group as a specification clause, like
// "(150-224 225-324 2)". A group with no bins renders as "()".
func (g Group) String() string {
	if len(g) == 0 {
		return "()"
	}

	parts := make([]string, 0, len(g)+1)
	for _, b := range g {
		parts = append(parts, fmt.Sprintf("%d-%d", b.start, b.end))
	}
	parts = append(parts, strconv.Itoa(g[0].resolution))

	return "(" + strings.Join(parts, " ") + ")"
}

// Groups is a full parse result, one element per group, in input order.
type Groups []Group

// Flatten returns all bins in a fresh slice, group order first, then
// order within the group.
func (gs Groups) Flatten() []Bin {
	bins := []Bin{}
	for _, g := range gs {
		bins = append(bins, g...)
	}
	return bins
}

// String renders the canonical form of the specification: backward
// ranges corrected, whitespace collapsed to single spaces.
func (gs Groups) String() string {
	parts := make([]string, 0, len(gs))
	for _, g := range gs {
		parts = append(parts, g.String())
	}
	return strings.Join(parts, " ")
}

// Option adjusts how Parse reports non-fatal diagnostics.
type Option func(*parseConfig)

type parseConfig struct {
	warnW io.Writer
}

// WithWarningWriter redirects warning lines, which go to os.Stderr by
// default.
func WithWarningWriter(w io.Writer) Option {
	return func(cfg *parseConfig) {
		cfg.warnW = w
	}
}

// Parse converts a bin specification into validated groups. It fails
// with a *Error when the input has a syntax problem, a group lacks a
// positive integer resolution, a bin is not two integers joined by "-",
// or any two bins overlap. A backward range like 149-36 is corrected to
// 36-149 and reported with a warning line instead of an error.
func Parse(spec string, opts ...Option) (Groups, error) {
	cfg := parseConfig{
		warnW: os.Stderr,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	root, err := parser.Parse([]byte(spec))
	if err != nil {
		return nil, errSyntax(err)
	}

	groups := Groups{}
	for g, node := range root.List() {
		if !node.IsList() {
			return nil, errNotAGroup(g)
		}

		group, err := parseGroup(g, node, cfg.warnW)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	bins := groups.Flatten()
	SortBins(bins)

	if err := CheckOverlap(bins); err != nil {
		return nil, err
	}

	return groups, nil
}

func parseGroup(g int, node *ast.Node, warnW io.Writer) (Group, error) {
	elems := node.List()
	if len(elems) < 1 {
		return nil, errResolution(g)
	}

	resolution, err := atomInt(elems[len(elems)-1])
	if err != nil || resolution < 1 {
		return nil, errResolution(g)
	}

	group := Group{}
	for i, elem := range elems[:len(elems)-1] {
		bin, err := parseBin(elem, resolution, warnW)
		if err != nil {
			return nil, errMalformedBin(i, g)
		}
		group = append(group, bin)
	}

	return group, nil
}

func parseBin(node *ast.Node, resolution int, warnW io.Writer) (Bin, error) {
	if !node.IsSymbol() {
		return Bin{}, errors.New("not an atom")
	}

	text := node.Text()

	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return Bin{}, fmt.Errorf("bin %q does not have two endpoints", text)
	}

	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return Bin{}, err
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return Bin{}, err
	}

	if start > end {
		start, end = end, start
		fmt.Fprintf(warnW, "Bin %s specified backward; corrected to %d-%d\n", text, start, end)
	}

	return Bin{start: start, end: end, resolution: resolution}, nil
}

func atomInt(node *ast.Node) (int, error) {
	if !node.IsSymbol() {
		return 0, errors.New("not an atom")
	}
	return strconv.Atoi(node.Text())
}

// SortBins orders bins by (start, end, resolution) ascending, the order
// CheckOverlap expects.
func SortBins(bins []Bin) {
	sort.Slice(bins, func(i, j int) bool {
		if bins[i].start != bins[j].start {
			return bins[i].start < bins[j].start
		}
		if bins[i].end != bins[j].end {
			return bins[i].end < bins[j].end
		}
		return bins[i].resolution < bins[j].resolution
	})
}

// CheckOverlap verifies that no bin starts at or before the end of the
// bin preceding it. Bins must already be sorted (see SortBins). The walk
// starts from the zero range 0-0, so a first bin starting at 0 or below
// fails against it.
func CheckOverlap(bins []Bin) error {
	lastStart, lastEnd := 0, 0
	for _, b := range bins {
		if b.start <= lastEnd {
			return errOverlap(b.start, b.end, lastStart, lastEnd)
		}
		lastStart, lastEnd = b.start, b.end
	}
	return nil
}
