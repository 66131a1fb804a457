package merkle

// WitnessTooShort is returned when the verifier needs a sibling hash or a
// column witness value but the corresponding list is exhausted.
type WitnessTooShort struct {
	Kind string // "hash_witness" or "column_witness"
}

func (e *WitnessTooShort) Error() string {
	return "merkle: " + e.Kind + " exhausted before traversal completed"
}

// WitnessTooLong is returned when traversal completes with residual
// entries remaining in hash_witness or column_witness.
type WitnessTooLong struct {
	Kind string
}

func (e *WitnessTooLong) Error() string {
	return "merkle: " + e.Kind + " has unconsumed entries after traversal"
}

// TooFewQueriedValues is returned when a directly-queried node expects
// column values but queried_values is exhausted.
type TooFewQueriedValues struct{}

func (e *TooFewQueriedValues) Error() string {
	return "merkle: queried_values exhausted before a directly-queried node was satisfied"
}

// TooManyQueriedValues is returned when traversal completes with residual
// entries in queried_values.
type TooManyQueriedValues struct{}

func (e *TooManyQueriedValues) Error() string {
	return "merkle: queried_values has unconsumed entries after traversal"
}

// RootMismatch is returned when the recomputed root differs from the
// committed root.
type RootMismatch struct{}

func (e *RootMismatch) Error() string {
	return "merkle: recomputed root does not match committed root"
}
