package container

import "unsafe"

// pointerBits returns the address of p as an unsafe.Pointer, used only
// to derive an identity hash. No dereference or arithmetic is performed
// on the result beyond converting it to an integer.
func pointerBits[T any](p *T) unsafe.Pointer {
	return unsafe.Pointer(p)
}
