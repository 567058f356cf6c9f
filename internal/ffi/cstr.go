package ffi

import "unsafe"

// CString returns a NUL-terminated copy of s, or nil for the empty string
// so that optional C string parameters map to NULL. The result must be kept
// alive for the duration of the native call; passing it as a registered
// *byte or unsafe.Pointer parameter does that.
func CString(s string) *byte {
	if s == "" {
		return nil
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0]
}

// GoString copies a NUL-terminated native string. Used for transfer-full
// char* returns, where the caller still owns (and must free) the native
// memory afterwards.
func GoString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// GoInt32Slice copies n int32 values from a native array.
func GoInt32Slice(p unsafe.Pointer, n int) []int32 {
	if p == nil || n <= 0 {
		return nil
	}
	out := make([]int32, n)
	copy(out, unsafe.Slice((*int32)(p), n))
	return out
}
