package container

// Equality is the equality discipline a container uses for linear
// lookups. Hash containers key on the element itself, so an element kind
// must pick a discipline that agrees with Go's == on it.
type Equality[T any] struct {
	Name  string
	Equal func(a, b T) bool
}

// ByValue compares elements structurally.
func ByValue[T comparable]() Equality[T] {
	return Equality[T]{
		Name:  "value",
		Equal: func(a, b T) bool { return a == b },
	}
}

// ByIdentity compares records by address: two records holding equal
// fields are different elements.
func ByIdentity[T any]() Equality[*T] {
	return Equality[*T]{
		Name:  "identity",
		Equal: func(a, b *T) bool { return a == b },
	}
}
