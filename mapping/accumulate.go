package mapping

import "github.com/go-softwarelab/common/pkg/types"

// AccumulateOption adjusts how Accumulate treats operands before combining
// them.
type AccumulateOption[N types.Number] func(*accumulateOptions[N])

type accumulateOptions[N types.Number] struct {
	modifyTarget func(N) N
	modifyInput  func(N) N
}

// WithTargetModifier applies modify to the existing target value before it is
// handed to the cumulator.
func WithTargetModifier[N types.Number](modify func(N) N) AccumulateOption[N] {
	return func(o *accumulateOptions[N]) {
		o.modifyTarget = modify
	}
}

// WithInputModifier applies modify to every input value before it is combined
// or stored.
func WithInputModifier[N types.Number](modify func(N) N) AccumulateOption[N] {
	return func(o *accumulateOptions[N]) {
		o.modifyInput = modify
	}
}

// Accumulate folds input into dst.  Keys already present in dst are updated
// to cumulate(target, input), both operands first passed through their
// optional modifiers; keys absent from dst are stored as the modified input
// value.  input is never mutated, dst is updated in place and must be
// non-nil when input has entries.
func Accumulate[M ~map[K]N, K comparable, N types.Number](dst, input M, cumulate func(target, input N) N, options ...AccumulateOption[N]) {
	var opts accumulateOptions[N]
	for _, option := range options {
		option(&opts)
	}
	for key, value := range input {
		if opts.modifyInput != nil {
			value = opts.modifyInput(value)
		}
		target, ok := dst[key]
		if !ok {
			dst[key] = value
			continue
		}
		if opts.modifyTarget != nil {
			target = opts.modifyTarget(target)
		}
		dst[key] = cumulate(target, value)
	}
}
