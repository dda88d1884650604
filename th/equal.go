package th

import "unsafe"

// Kind is the set of operand types the typed equality helpers accept.
type Kind interface {
	int32 | uint32 | unsafe.Pointer
}

// The typed helpers interpolate a and b positionally into format, so a
// template for int32 operands looks like "got %d, want %d" and one for
// pointers like "%p should be %p".

// CheckEqPtr reports whether a and b point to the same address.
func (r *Reporter) CheckEqPtr(a, b unsafe.Pointer, format string) bool {
	return r.Check(a == b, format, a, b)
}

// CheckNotEqPtr reports whether a and b point to different addresses.
func (r *Reporter) CheckNotEqPtr(a, b unsafe.Pointer, format string) bool {
	return r.Check(a != b, format, a, b)
}

// CheckNotNull reports whether p is non-nil. format receives p as its only argument.
func (r *Reporter) CheckNotNull(p unsafe.Pointer, format string) bool {
	return r.Check(p != nil, format, p)
}

// CheckEqInt32 reports whether a equals b.
func (r *Reporter) CheckEqInt32(a, b int32, format string) bool {
	return r.Check(a == b, format, a, b)
}

// CheckNotEqInt32 reports whether a differs from b.
func (r *Reporter) CheckNotEqInt32(a, b int32, format string) bool {
	return r.Check(a != b, format, a, b)
}

// CheckEqUint32 reports whether a equals b.
func (r *Reporter) CheckEqUint32(a, b uint32, format string) bool {
	return r.Check(a == b, format, a, b)
}

// CheckNotEqUint32 reports whether a differs from b.
func (r *Reporter) CheckNotEqUint32(a, b uint32, format string) bool {
	return r.Check(a != b, format, a, b)
}

// CheckEqWith reports a == b on r. The comparison is instantiated for the
// operand type, so an unsupported type fails to compile.
func CheckEqWith[T Kind](r *Reporter, a, b T, format string) bool {
	return r.Check(a == b, format, a, b)
}

// CheckNotEqWith reports a != b on r.
func CheckNotEqWith[T Kind](r *Reporter, a, b T, format string) bool {
	return r.Check(a != b, format, a, b)
}

// CheckEq reports a == b on the default Reporter:
//
//	th.CheckEq(int32(got), int32(3), "got %d, want %d")
func CheckEq[T Kind](a, b T, format string) bool {
	return CheckEqWith(std, a, b, format)
}

// CheckNotEq reports a != b on the default Reporter.
func CheckNotEq[T Kind](a, b T, format string) bool {
	return CheckNotEqWith(std, a, b, format)
}

// CheckEqPtr reports a == b on the default Reporter.
func CheckEqPtr(a, b unsafe.Pointer, format string) bool {
	return std.CheckEqPtr(a, b, format)
}

// CheckNotEqPtr reports a != b on the default Reporter.
func CheckNotEqPtr(a, b unsafe.Pointer, format string) bool {
	return std.CheckNotEqPtr(a, b, format)
}

// CheckNotNull reports p != nil on the default Reporter.
func CheckNotNull(p unsafe.Pointer, format string) bool {
	return std.CheckNotNull(p, format)
}

// CheckEqInt32 reports a == b on the default Reporter.
func CheckEqInt32(a, b int32, format string) bool {
	return std.CheckEqInt32(a, b, format)
}

// CheckNotEqInt32 reports a != b on the default Reporter.
func CheckNotEqInt32(a, b int32, format string) bool {
	return std.CheckNotEqInt32(a, b, format)
}

// CheckEqUint32 reports a == b on the default Reporter.
func CheckEqUint32(a, b uint32, format string) bool {
	return std.CheckEqUint32(a, b, format)
}

// CheckNotEqUint32 reports a != b on the default Reporter.
func CheckNotEqUint32(a, b uint32, format string) bool {
	return std.CheckNotEqUint32(a, b, format)
}
