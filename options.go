package deep

// MergeOptions control how sequences and collections combine. Both default
// to true.
type MergeOptions struct {
	// Arrays concatenates sequences. When false the source sequence
	// replaces the target.
	Arrays bool
	// Sets unions collections. When false the source collection replaces
	// the target.
	Sets bool
}

type MergeOption func(*MergeOptions)

func DefaultMergeOptions() MergeOptions {
	return MergeOptions{
		Arrays: true,
		Sets:   true,
	}
}

func MergeArrays(v bool) MergeOption {
	return func(o *MergeOptions) { o.Arrays = v }
}

func MergeSets(v bool) MergeOption {
	return func(o *MergeOptions) { o.Sets = v }
}

func mergeOpts(opts []MergeOption) *MergeOptions {
	o := DefaultMergeOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &o
}
