package smithwaterman

// Option mutates Options. Options are resolved once, in New.
type Option func(*Options)

// Options holds the effective Aligner configuration.
//
// Fields:
//   - ShorterInner: run the inner loop over the shorter sequence so the
//     rolling vectors have length min(len(a), len(b))+1. The score is
//     unchanged: pairs are still scored as Score(a[i], b[j]).
type Options struct {
	ShorterInner bool
}

// DefaultOptions returns the zero-cost defaults: the second sequence is
// always the inner dimension.
func DefaultOptions() Options {
	return Options{ShorterInner: false}
}

// WithShorterInner enables the O(min(n,m)) memory layout.
func WithShorterInner() Option {
	return func(o *Options) { o.ShorterInner = true }
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
