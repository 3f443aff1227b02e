package Trees

// Collection is the capability contract shared by containers in this module.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Minimum on
// an empty tree returns (x T, false). In this case the value of x is the
// zero value of T and shouldn't be used.
// Absence is reported through these bools; only Remove reports it as an error,
// because removing something that isn't there is a caller mistake.
// Methods implemented recursively are noted, otherwise they are iterative.
type Collection[T any] interface {
	//Add v to the Collection. Always succeeds.
	Add(v T)
	//Remove v from the Collection and return the value that was stored.
	//Returns a KeyError if v isn't present, in which case nothing changes.
	Remove(v T) (T, error)
	//Has element v.
	Has(v T) bool
	//Size of the Collection.
	Size() uint
	//IsEmpty reports whether Size()==0.
	IsEmpty() bool
	//Clear removes all elements.
	Clear()
	//Iter returns a closure f acting like an iterator. Calling f is like
	//calling "Next()": val, valid=f(). val is meaningful only if valid is
	//true. valid can't turn true after it first became false.
	//The Collection must not be modified while f is in use.
	Iter() func() (T, bool)
}

// OrderedCollection is a Collection whose elements follow a total order.
type OrderedCollection[T any] interface {
	Collection[T]
	//Minimum element.
	Minimum() (T, bool)
	//Maximum element.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//InOrder returns all elements in ascending order.
	InOrder() []T
}

var (
	_ Collection[int]        = (*LinkedBST[int])(nil)
	_ OrderedCollection[int] = (*LinkedBST[int])(nil)
)
