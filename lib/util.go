package lib

import "unsafe"
import "reflect"
import "bytes"
import "strings"
import "fmt"

// Memcpy copies a memory block of length ln from src to dst. Useful when
// either side of the copy is a raw pointer obtained from an arena block
// rather than a Go-managed slice.
func Memcpy(dst, src unsafe.Pointer, ln int) int {
	var srcnd, dstnd []byte
	srcsl := (*reflect.SliceHeader)(unsafe.Pointer(&srcnd))
	srcsl.Len, srcsl.Cap = ln, ln
	srcsl.Data = (uintptr)(unsafe.Pointer(src))
	dstsl := (*reflect.SliceHeader)(unsafe.Pointer(&dstnd))
	dstsl.Len, dstsl.Cap = ln, ln
	dstsl.Data = (uintptr)(unsafe.Pointer(dst))
	return copy(dstnd, srcnd)
}

// Bytes2str morphs a byte slice to a string without copying. The source
// byte-slice must remain reachable for as long as the returned string is
// used.
func Bytes2str(buf []byte) string {
	if buf == nil {
		return ""
	}
	sl := (*reflect.SliceHeader)(unsafe.Pointer(&buf))
	st := &reflect.StringHeader{Data: sl.Data, Len: sl.Len}
	return *(*string)(unsafe.Pointer(st))
}

// Str2bytes morphs a string to a byte-slice without copying. The source
// string must remain reachable for as long as the returned slice is used.
func Str2bytes(str string) []byte {
	if str == "" {
		return nil
	}
	st := (*reflect.StringHeader)(unsafe.Pointer(&str))
	sl := &reflect.SliceHeader{Data: st.Data, Len: st.Len, Cap: st.Len}
	return *(*[]byte)(unsafe.Pointer(sl))
}

// GetStacktrace returns a stack-trace in human readable form, skipping the
// first skip frames (used to drop the recover/logging frames themselves).
func GetStacktrace(skip int, stack []byte) string {
	var buf bytes.Buffer
	lines := strings.Split(string(stack), "\n")
	if cut := skip * 2; cut < len(lines) {
		lines = lines[cut:]
	}
	for _, call := range lines {
		buf.WriteString(fmt.Sprintf("%s\n", call))
	}
	return buf.String()
}

// AbsInt64 returns the absolute value of x, except for -2^63 which has no
// positive counterpart and is returned unchanged.
func AbsInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// MaxInt64 returns the larger of a and b.
func MaxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// CeilInt64 returns n rounded up to the nearest multiple of align. align
// must be a power of two.
func CeilInt64(n, align int64) int64 {
	return (n + align - 1) &^ (align - 1)
}
