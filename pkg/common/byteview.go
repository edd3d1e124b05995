package common

// ByteView is an immutable view over a byte slice. Cached values are
// handed out as views so no caller can mutate what the cache holds.
type ByteView struct {
	b []byte
}

// NewByteView copies b into a new view.
func NewByteView(b []byte) ByteView {
	return ByteView{b: cloneBytes(b)}
}

// Len reports the size of the view in bytes.
func (v ByteView) Len() int {
	return len(v.b)
}

// ByteSlice returns a copy of the underlying bytes.
func (v ByteView) ByteSlice() []byte {
	return cloneBytes(v.b)
}

// String returns the data as a string.
func (v ByteView) String() string {
	return string(v.b)
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
