package rrb

// Concat concatenates vectors and returns a new vector.
func Concat[T any](v Vector[T], others ...Vector[T]) Vector[T] {
	t := v.treeOrEmpty()
	for _, o := range others {
		t = t.Concat(o.treeOrEmpty())
	}
	return vectorOf(t)
}

// Insert inserts a sub-vector w into v before index i, resulting in a new
// vector. If i is greater than the length of v, an out-of-bounds error is
// returned.
func Insert[T any](v Vector[T], w Vector[T], i int) (Vector[T], error) {
	left, right, err := v.Split(i)
	if err != nil {
		return Vector[T]{}, err
	}
	return Concat(left, w, right), nil
}

// Split splits a vector into two new (smaller) vectors right before
// position i. Split(V,i) => split V into V1 and V2, with V1=x0,...,xi-1 and
// V2=xi,...,xn.
func Split[T any](v Vector[T], i int) (Vector[T], Vector[T], error) {
	return v.Split(i)
}

// Cut cuts out a subrange [i...i+l) from a vector. It returns a new vector
// without the cut-out segment and the cut segment itself.
func Cut[T any](v Vector[T], i, l int) (Vector[T], Vector[T], error) {
	cut, err := v.Slice(i, l)
	if err != nil {
		return Vector[T]{}, Vector[T]{}, err
	}
	left, _, err := v.Split(i)
	if err != nil {
		return Vector[T]{}, Vector[T]{}, err
	}
	right, err := v.Slice(i+l, v.Len()-(i+l))
	if err != nil {
		return Vector[T]{}, Vector[T]{}, err
	}
	return left.Concat(right), cut, nil
}

// Substr creates a new vector from a subrange of v.
func Substr[T any](v Vector[T], i, l int) (Vector[T], error) {
	return v.Slice(i, l)
}
