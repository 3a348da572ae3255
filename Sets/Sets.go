package Sets

type Set[E any] interface {
	//Put e into the set. Returns false if e is already in it.
	Put(e E) bool
	Has(e E) bool
	//Remove e from the set. Returns false if e isn't in it.
	Remove(e E) bool
	Size() uint
	//Take removes and returns some element. Returns false if the set is empty.
	Take() (E, bool)
	//Range over the set until f returns false.
	Range(f func(E) bool)
}
