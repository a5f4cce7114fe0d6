package mailbox

import (
	"syscall"
	"testing"
)

func TestIsSafeLBA(t *testing.T) {
	cases := []struct {
		lba  uint32
		want bool
	}{
		{0, false},
		{32, false},
		{33, true},
		{34, false},
		{63, false},
		{64, true},
		{1000, true},
		{2047, true},
		{2048, false},
		{0xffffffff, false},
	}
	for _, c := range cases {
		if got := IsSafeLBA(c.lba); got != c.want {
			t.Errorf("IsSafeLBA(%d) = %v, want %v", c.lba, got, c.want)
		}
	}
}

func TestSignalNumber(t *testing.T) {
	if n := signalNumber(syscall.SIGINT); n != int(syscall.SIGINT) {
		t.Fatalf("signalNumber(SIGINT) = %d, want %d", n, int(syscall.SIGINT))
	}
	if n := signalNumber(syscall.SIGTERM); n != int(syscall.SIGTERM) {
		t.Fatalf("signalNumber(SIGTERM) = %d, want %d", n, int(syscall.SIGTERM))
	}
}
