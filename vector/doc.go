// Package vector provides DynamicArray, a growable contiguous array that
// runs element lifetimes by hand.
//
// A DynamicArray owns a rawstorage.RawStorage block and a count of live
// elements. Slots [0, Size()) hold constructed values; slots
// [Size(), Capacity()) are raw and always hold the zero value of T. Every
// construction, copy, move, assignment and destruction goes through the
// hooks of package element, so element types can observe and veto them.
//
// # Growth
//
// When an insertion needs room the capacity doubles, starting from 1.
// Existing elements are relocated by moving when the move of T cannot fail
// or T cannot be copied, and by copying otherwise. A failed copy never
// touches the original storage.
//
// # Failure safety
//
// Operations that reallocate either complete or leave the array exactly as
// it was. Inserting in the middle without reallocating, Erase and CopyFrom
// within capacity only promise that every slot stays live: a failing
// move-assignment can leave values partially shifted.
//
// # Preconditions
//
// Index and iterator ranges are the caller's responsibility. They are
// checked only when the module is built with the `vectordebug` tag.
//
// A DynamicArray is not safe for concurrent use and must not be copied by
// value; use Clone, Take, CopyFrom or MoveFrom.
//
// Example:
//
//	v := vector.New[int]()
//	_ = v.PushBack(1)
//	_ = v.PushBack(3)
//	_, _ = v.InsertAt(1, 2)
//	for _, x := range v.All() {
//	    fmt.Println(x)
//	}
package vector
