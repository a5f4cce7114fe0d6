package scramble

import (
	"bytes"
	"testing"
)

func TestApplyIsInvolution(t *testing.T) {
	original := make([]byte, Size)
	for i := range original {
		original[i] = byte(i * 31)
	}

	buf := append([]byte(nil), original...)
	Apply(buf)
	if bytes.Equal(buf, original) {
		t.Fatalf("Apply did not change the buffer")
	}
	Apply(buf)
	if !bytes.Equal(buf, original) {
		t.Fatalf("Apply(Apply(x)) != x")
	}
}

func TestApplyZeroBuffer(t *testing.T) {
	buf := make([]byte, Size)
	Apply(buf)
	if bytes.Equal(buf, make([]byte, Size)) {
		t.Fatalf("scrambling an all-zero frame should not stay all zero")
	}
	Apply(buf)
	if !bytes.Equal(buf, make([]byte, Size)) {
		t.Fatalf("double application of an all-zero frame should restore zeros")
	}
}

func TestApplyWrongSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for wrong-size buffer")
		}
	}()
	Apply(make([]byte, 10))
}
