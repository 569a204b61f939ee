package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hasbyte1/cronies/chain"
	"github.com/hasbyte1/cronies/config"
	"github.com/hasbyte1/cronies/job"
)

var (
	// ErrUnknownStep is returned for a step name the CLI does not know.
	ErrUnknownStep = errors.New("unknown step")
	// ErrInvalidStep is returned for a step with a missing, unexpected or
	// malformed argument or key list.
	ErrInvalidStep = errors.New("invalid step")
)

type argMode int

const (
	argNone argMode = iota
	argOptional
	argRequired
)

type stepSpec struct {
	arg  argMode
	keys bool
}

var stepSpecs = map[string]stepSpec{
	"flatten":   {},
	"unique":    {keys: true},
	"min":       {},
	"max":       {},
	"round":     {arg: argOptional, keys: true},
	"fixed":     {arg: argOptional, keys: true},
	"comma":     {keys: true},
	"negatives": {keys: true},
	"positives": {keys: true},
	"numbers":   {keys: true},
	"falsey":    {keys: true},
	"chars":     {arg: argRequired, keys: true},
	"date":      {arg: argOptional, keys: true},
	"merge":     {arg: argRequired},
	"overwrite": {arg: argRequired},
	"backtrack": {},
}

// Step is one parsed pipeline step, written name[:arg][@keys].
type Step struct {
	Name   string
	Arg    string
	HasArg bool
	Keys   []string
}

func (s Step) String() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	if s.HasArg {
		sb.WriteString(":" + s.Arg)
	}
	if len(s.Keys) > 0 {
		sb.WriteString("@" + strings.Join(s.Keys, ","))
	}
	return sb.String()
}

// ParseStep parses and checks one step.
//
//	round:1@0,2  -> Step{Name: "round", Arg: "1", HasArg: true, Keys: ["0", "2"]}
func ParseStep(raw string) (Step, error) {
	var s Step
	body := raw
	if i := strings.LastIndex(body, "@"); i >= 0 {
		s.Keys = job.ParseKeys(body[i+1:])
		if len(s.Keys) == 0 {
			return Step{}, fmt.Errorf("%w: %q has an empty key list", ErrInvalidStep, raw)
		}
		body = body[:i]
	}
	s.Name, s.Arg, s.HasArg = strings.Cut(body, ":")

	spec, ok := stepSpecs[s.Name]
	if !ok {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownStep, s.Name)
	}
	switch {
	case spec.arg == argNone && s.HasArg:
		return Step{}, fmt.Errorf("%w: %s takes no argument", ErrInvalidStep, s.Name)
	case spec.arg == argRequired && s.Arg == "":
		return Step{}, fmt.Errorf("%w: %s needs an argument", ErrInvalidStep, s.Name)
	case !spec.keys && s.Keys != nil:
		return Step{}, fmt.Errorf("%w: %s takes no keys", ErrInvalidStep, s.Name)
	}
	if (s.Name == "round" || s.Name == "fixed") && s.HasArg {
		if _, err := strconv.Atoi(s.Arg); err != nil {
			return Step{}, fmt.Errorf("%w: %s needs an integer, got %q", ErrInvalidStep, s.Name, s.Arg)
		}
	}
	return s, nil
}

// ParseSteps parses every step, stopping at the first error.
func ParseSteps(raw []string) ([]Step, error) {
	steps := make([]Step, 0, len(raw))
	for _, r := range raw {
		s, err := ParseStep(r)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// pipeline applies parsed steps to a wrapper using the configured defaults.
type pipeline struct {
	cfg *config.Config
	// load decodes the document named by a merge or overwrite argument.
	load func(path string) (any, error)
}

func (p *pipeline) apply(w *chain.Wrapper, s Step) (*chain.Wrapper, error) {
	switch s.Name {
	case "flatten":
		return w.Flatten(), nil
	case "unique":
		return w.Unique(s.Keys...), nil
	case "min":
		return w.Min(), nil
	case "max":
		return w.Max(), nil
	case "round":
		return w.RoundTo(p.decimalPlaces(s), s.Keys...), nil
	case "fixed":
		return w.RoundToFixed(p.decimalPlaces(s), s.Keys...), nil
	case "comma":
		return w.ThreeCommaFormat(s.Keys...), nil
	case "negatives":
		return w.RemoveNegatives(s.Keys...), nil
	case "positives":
		return w.RemovePositives(s.Keys...), nil
	case "numbers":
		return w.RemoveNumbers(s.Keys...), nil
	case "falsey":
		return w.RemoveFalsey(s.Keys...), nil
	case "chars":
		return w.RemoveCharacters(s.Arg, s.Keys...), nil
	case "date":
		pattern := p.cfg.Format.DatePattern
		if s.Arg != "" {
			pattern = s.Arg
		}
		return w.FormatDate(pattern, s.Keys...), nil
	case "merge", "overwrite":
		other, err := p.load(s.Arg)
		if err != nil {
			return w, fmt.Errorf("%s: %w", s.Name, err)
		}
		if s.Name == "merge" {
			return w.Merge(other), nil
		}
		return w.MergeAndOverwrite(other), nil
	case "backtrack":
		return w.Backtrack(), nil
	}
	return w, fmt.Errorf("%w: %q", ErrUnknownStep, s.Name)
}

func (p *pipeline) decimalPlaces(s Step) int {
	if !s.HasArg || s.Arg == "" {
		return p.cfg.Format.DecimalPlaces
	}
	dp, _ := strconv.Atoi(s.Arg)
	return dp
}
