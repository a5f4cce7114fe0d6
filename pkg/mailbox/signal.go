package mailbox

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// activeSession is the process-wide mailbox session, if any, that the
// signal handler goroutine should zero out before the process dies.
// Only one Session is ever open at a time in this tool, but the
// registry is written with atomics rather than a plain global so that
// the handler goroutine never races a concurrent Open/Close.
var activeSession atomic.Pointer[Session]

var (
	sigOnce sync.Once
	sigCh   chan os.Signal
)

// registerSession starts the signal-handling goroutine on first use
// and publishes s as the session to clean up on a terminating signal.
func registerSession(s *Session) {
	sigOnce.Do(func() {
		sigCh = make(chan os.Signal, 1)
		go signalLoop()
	})
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	activeSession.Store(s)
}

// unregisterSession clears the registry and stops relaying signals to
// it, restoring Go's default handling until the next Open.
func unregisterSession(s *Session) {
	activeSession.CompareAndSwap(s, nil)
	if sigCh != nil {
		signal.Stop(sigCh)
	}
}

func signalLoop() {
	for sig := range sigCh {
		if s := activeSession.Load(); s != nil {
			s.emergencyZero()
		}
		os.Exit(128 + signalNumber(sig))
	}
}

func signalNumber(sig os.Signal) int {
	if n, ok := sig.(syscall.Signal); ok {
		return int(n)
	}
	return 0
}
