package pointer

// Pointer returns a pointer to the supplied value. Convenient for building
// jobscript.ParameterSet literals, where unset fields are nil pointers.
func Pointer[T any](v T) *T {
	return &v
}

// Dereference returns the value pointed to by p, or def when p is nil.
func Dereference[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
