package pia

// Values returns an iterator producing the unpacked items of the array in
// index order.
//
// The iterator owns a snapshot of the array taken when Values is called;
// mutations of the array made afterwards are not observed, and the
// iterator cannot be restarted once exhausted.
func (a *Array) Values() *Iterator {
	return &Iterator{array: a.Clone(), index: -1}
}

// Iterator is a single-pass iterator over the unpacked items of a packed
// integer array.
//
//	for it := a.Values(); it.Next(); {
//		fmt.Println(it.Value())
//	}
type Iterator struct {
	array *Array
	index int
}

// Next advances the iterator to the next item, returning false when all
// items have been produced.
func (it *Iterator) Next() bool {
	if it.index+1 >= it.array.length {
		return false
	}
	it.index++
	return true
}

// Value returns the item at the current position of the iterator. It must
// only be called after a call to Next returned true.
func (it *Iterator) Value() uint8 {
	return it.array.Get(it.index)
}
