package realtime

import (
	"errors"
	"sync"
	"testing"
)

type fakeSubscriber struct {
	mu       sync.Mutex
	received []Event
	failWith error
	closed   bool
}

func (s *fakeSubscriber) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.received = append(s.received, v.(Event))
	return nil
}

func (s *fakeSubscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSubscriber) events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.received...)
}

func TestPublishDeliversToCompanyChannel(t *testing.T) {
	hub := NewNotificationHub("web")
	a := &fakeSubscriber{}
	b := &fakeSubscriber{}
	other := &fakeSubscriber{}

	hub.Subscribe("company-1", a)
	hub.Subscribe("company-1", b)
	hub.Subscribe("company-2", other)

	hub.Publish("company-1", "EMPLOYE_CREATED", map[string]string{"id": "42"})

	for _, sub := range []*fakeSubscriber{a, b} {
		got := sub.events()
		if len(got) != 1 {
			t.Fatalf("subscriber got %d events, want 1", len(got))
		}
		if got[0].Event != "EMPLOYE_CREATED" {
			t.Fatalf("event = %q", got[0].Event)
		}
	}
	if len(other.events()) != 0 {
		t.Fatal("event leaked to another company channel")
	}
}

func TestPublishWithoutSubscribersIsNoOp(t *testing.T) {
	hub := NewNotificationHub("web")
	hub.Publish("nobody", "EMPLOYE_CREATED", nil)
	if n := hub.SubscriberCount("nobody"); n != 0 {
		t.Fatalf("publish created a channel with %d subscribers", n)
	}
}

func TestChannelKeyIsCaseInsensitive(t *testing.T) {
	hub := NewNotificationHub("web")
	sub := &fakeSubscriber{}
	hub.Subscribe("Company-X", sub)

	hub.Publish("company-x", "EMPLOYE_CREATED", nil)
	if len(sub.events()) != 1 {
		t.Fatal("mixed-case company id missed the channel")
	}
}

func TestFailedWritePrunesSubscriber(t *testing.T) {
	hub := NewNotificationHub("web")
	healthy := &fakeSubscriber{}
	broken := &fakeSubscriber{failWith: errors.New("write: broken pipe")}

	hub.Subscribe("company-1", healthy)
	hub.Subscribe("company-1", broken)

	hub.Publish("company-1", "EMPLOYE_CREATED", nil)

	if n := hub.SubscriberCount("company-1"); n != 1 {
		t.Fatalf("subscriber count = %d, want 1 after prune", n)
	}
	if !broken.closed {
		t.Fatal("pruned subscriber was not closed")
	}
	if len(healthy.events()) != 1 {
		t.Fatal("healthy subscriber missed the event")
	}
}

func TestUnsubscribeRemovesEmptyChannel(t *testing.T) {
	hub := NewNotificationHub("web")
	sub := &fakeSubscriber{}
	hub.Subscribe("company-1", sub)
	hub.Unsubscribe("company-1", sub)
	hub.Unsubscribe("company-1", sub) // idempotent

	if n := hub.SubscriberCount("company-1"); n != 0 {
		t.Fatalf("subscriber count = %d, want 0", n)
	}
	if !sub.closed {
		t.Fatal("unsubscribed connection not closed")
	}
}

func TestBroadcasterReachesAllAudiences(t *testing.T) {
	webHub := NewNotificationHub("web")
	desktopHub := NewNotificationHub("desktop")
	web := &fakeSubscriber{}
	desktop := &fakeSubscriber{}
	webHub.Subscribe("company-1", web)
	desktopHub.Subscribe("company-1", desktop)

	NewBroadcaster(webHub, desktopHub).Publish("company-1", "FINGERPRINT_VALIDATED", nil)

	if len(web.events()) != 1 || len(desktop.events()) != 1 {
		t.Fatalf("web=%d desktop=%d events, want 1 each", len(web.events()), len(desktop.events()))
	}
}

func TestConcurrentPublishAndSubscribe(t *testing.T) {
	hub := NewNotificationHub("web")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sub := &fakeSubscriber{}
			hub.Subscribe("company-1", sub)
			hub.Unsubscribe("company-1", sub)
		}()
		go func() {
			defer wg.Done()
			hub.Publish("company-1", "EMPLOYE_CREATED", nil)
		}()
	}
	wg.Wait()
}
