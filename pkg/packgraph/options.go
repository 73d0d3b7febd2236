package packgraph

// Option configures a graph check.
type Option func(*options)

type options struct {
	rejectDuplicates bool
	maxDepth         int
}

// RejectDuplicates makes a repeated pack name a DUPLICATE_PACK error instead
// of letting the last declaration win the name lookup.
func RejectDuplicates() Option {
	return func(o *options) {
		o.rejectDuplicates = true
	}
}

// MaxDepth bounds the length of a dependency chain. Zero or less means no bound.
func MaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
