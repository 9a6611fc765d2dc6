package live

import (
	"errors"
	"sync"
	"testing"
)

// fakeChannel records writes and can be told to fail.
type fakeChannel struct {
	mu       sync.Mutex
	messages []interface{}
	failWith error
	closed   bool
}

func (c *fakeChannel) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failWith != nil {
		return c.failWith
	}
	c.messages = append(c.messages, v)
	return nil
}

func (c *fakeChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeChannel) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

func TestSend_Delivered(t *testing.T) {
	reg := NewRegistry()
	ch := &fakeChannel{}
	reg.Connect("u1", ch)

	if got := reg.Send("u1", "hello"); got != Delivered {
		t.Fatalf("Send = %v, want Delivered", got)
	}
	if ch.count() != 1 {
		t.Errorf("channel received %d messages, want 1", ch.count())
	}
}

func TestSend_NoSuchUser(t *testing.T) {
	reg := NewRegistry()
	if got := reg.Send("nobody", "hello"); got != NoSuchUser {
		t.Errorf("Send = %v, want NoSuchUser", got)
	}
}

func TestConnect_Supersedes(t *testing.T) {
	reg := NewRegistry()
	c1 := &fakeChannel{}
	c2 := &fakeChannel{}

	reg.Connect("u1", c1)
	reg.Connect("u1", c2)

	if got := reg.Send("u1", "hello"); got != Delivered {
		t.Fatalf("Send = %v, want Delivered", got)
	}
	if c1.count() != 0 {
		t.Error("superseded channel received the message")
	}
	if c2.count() != 1 {
		t.Error("current channel did not receive the message")
	}
	if reg.Count() != 1 {
		t.Errorf("Count = %d, want 1", reg.Count())
	}
}

func TestDisconnect_Idempotent(t *testing.T) {
	reg := NewRegistry()
	reg.Connect("u1", &fakeChannel{})

	reg.Disconnect("u1")
	reg.Disconnect("u1") // second removal is a no-op

	if got := reg.Send("u1", "hello"); got != NoSuchUser {
		t.Errorf("Send after disconnect = %v, want NoSuchUser", got)
	}
}

func TestSend_TransportFailureEvicts(t *testing.T) {
	reg := NewRegistry()
	ch := &fakeChannel{failWith: errors.New("broken pipe")}
	reg.Connect("u1", ch)

	if got := reg.Send("u1", "hello"); got != TransportFailed {
		t.Fatalf("Send = %v, want TransportFailed", got)
	}
	if !ch.closed {
		t.Error("failed channel was not closed")
	}
	if reg.Connected("u1") {
		t.Error("failed channel still registered")
	}
	if got := reg.Send("u1", "again"); got != NoSuchUser {
		t.Errorf("Send after eviction = %v, want NoSuchUser", got)
	}
}

func TestDisconnectChannel_OnlyRemovesOwnEntry(t *testing.T) {
	reg := NewRegistry()
	c1 := &fakeChannel{}
	c2 := &fakeChannel{}

	reg.Connect("u1", c1)
	reg.Connect("u1", c2)

	// c1's teardown must not evict its replacement.
	reg.DisconnectChannel("u1", c1)
	if !reg.Connected("u1") {
		t.Fatal("stale teardown evicted the current channel")
	}

	reg.DisconnectChannel("u1", c2)
	if reg.Connected("u1") {
		t.Error("current channel not removed by its own teardown")
	}
}

func TestRegistry_ConcurrentSendAndConnect(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				reg.Connect("u1", &fakeChannel{})
				reg.Disconnect("u1")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				reg.Send("u1", "ping")
			}
		}()
	}
	wg.Wait()
}
