package testdata

// Container is a generic container type
//
//builder:generate
type Container[T any] struct {
	Value T
	Valid bool
}

// Pair is a generic type with two type parameters
//
//builder:generate
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// GenericConfig has fields of instantiated generic types.
//
//builder:generate
type GenericConfig struct {
	StringContainer   Container[string]
	StringIntPair     Pair[string, int]
	Pairs             []Pair[int, string]
	OptionalContainer *Container[bool]
	ContainerMap      map[string]Container[int]
}
