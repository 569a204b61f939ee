package job

import (
	"fmt"

	"github.com/hasbyte1/cronies/data"
)

// AddFunc adds value to a job's output. For sequence output the key is
// ignored and the value is appended; for mapping output the value is stored
// at key.Name, replacing any earlier value.
type AddFunc func(value any, key Key)

// Visitor is called once per selected element with the element, its key,
// the whole input and the output's AddFunc. Nothing reaches the output
// unless the visitor adds it.
type Visitor func(value any, key Key, input any, add AddFunc)

// Job is a prepared iteration over one sequence or mapping.
type Job struct {
	input     any
	shape     data.Shape
	selectors []string
}

// Prepare validates input and parses the optional key restriction.
// It returns [data.ErrTypeMismatch] when input is not a sequence or mapping.
func Prepare(input any, keys ...string) (*Job, error) {
	shape := data.Classify(input)
	if shape == data.Scalar {
		return nil, fmt.Errorf("%w: %s is not a sequence or mapping", data.ErrTypeMismatch, data.TypeOf(input))
	}
	return &Job{
		input:     input,
		shape:     shape,
		selectors: ParseKeys(keys...),
	}, nil
}

// Shape returns the shape of the input, which is also the shape of the
// output.
func (j *Job) Shape() data.Shape { return j.shape }

// Restricted reports whether the job carries a key restriction.
func (j *Job) Restricted() bool { return j.selectors != nil }

// Run visits the selected elements and returns the output container, a
// []any or a *data.Map matching the input. Each Run starts from the full
// selector list, so a job may be run more than once.
func (j *Job) Run(visit Visitor) any {
	var (
		out any
		add AddFunc
	)
	switch j.shape {
	case data.Sequence:
		seq := make([]any, 0)
		add = func(value any, _ Key) { seq = append(seq, value) }
		j.each(visit, add)
		out = seq
	case data.Mapping:
		m := data.NewMap(0)
		add = func(value any, key Key) { m.Set(key.Name, value) }
		j.each(visit, add)
		out = m
	}
	return out
}

// Each visits the selected elements without building any output. The add
// function handed to the visitor discards its arguments.
func (j *Job) Each(visit func(value any, key Key, input any)) {
	j.each(func(value any, key Key, input any, _ AddFunc) {
		visit(value, key, input)
	}, func(any, Key) {})
}

func (j *Job) each(visit Visitor, add AddFunc) {
	var pool []string
	if j.selectors != nil {
		pool = make([]string, len(j.selectors))
		copy(pool, j.selectors)
	}
	step := func(value any, key Key) {
		if j.selectors == nil {
			visit(value, key, j.input, add)
			return
		}
		for i, sel := range pool {
			if key.Matches(sel) {
				pool = append(pool[:i], pool[i+1:]...)
				visit(value, key, j.input, add)
				return
			}
		}
	}
	switch in := j.input.(type) {
	case []any:
		for i, v := range in {
			step(v, IndexKey(i))
		}
	case *data.Map:
		for _, k := range in.Keys() {
			v, _ := in.Get(k)
			step(v, NameKey(k))
		}
	}
}
