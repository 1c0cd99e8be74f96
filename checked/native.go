package checked

import "cmp"

// CompareInt compares i with a native integer of any width or signedness.
func CompareInt[S Integer](i Int, x S) (int, error) {
	if err := requireSet(i.set, "CompareInt"); err != nil {
		return 0, err
	}
	if x < 0 {
		// x is signed here, so int64(x) is exact
		return cmp.Compare(i.v, int64(x)), nil
	}
	if i.v < 0 {
		return -1, nil
	}
	return cmp.Compare(uint64(i.v), uint64(x)), nil
}

// CompareSize compares s with a native integer of any width or signedness.
func CompareSize[S Integer](s Size, x S) (int, error) {
	if err := requireSet(s.set, "CompareSize"); err != nil {
		return 0, err
	}
	if x < 0 {
		return 1, nil
	}
	return cmp.Compare(s.v, uint64(x)), nil
}

// AddNative returns i+x for a native integer x of any type.
func AddNative[S Integer](i Int, x S) (Int, error) {
	o, err := IntFrom(x)
	if err != nil {
		return Int{}, err
	}
	return i.Add(o)
}

// SubNative returns i-x for a native integer x of any type.
func SubNative[S Integer](i Int, x S) (Int, error) {
	o, err := IntFrom(x)
	if err != nil {
		return Int{}, err
	}
	return i.Sub(o)
}
