package feed

import "testing"

func TestPublishReachesEverySubscriber(t *testing.T) {
	h := NewHub()
	a, cancelA := h.Subscribe()
	defer cancelA()
	b, cancelB := h.Subscribe()
	defer cancelB()

	h.Publish(CommandRoundPlayed, "payload")

	for _, sub := range []*Subscriber{a, b} {
		select {
		case msg := <-sub.MsgChan:
			if msg.Command != CommandRoundPlayed || msg.Payload != "payload" {
				t.Fatalf("subscriber %d got %+v", sub.ID, msg)
			}
		default:
			t.Fatalf("subscriber %d got nothing", sub.ID)
		}
	}
}

func TestPublishDropsForSlowSubscriber(t *testing.T) {
	h := NewHub()
	sub, cancel := h.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer+10; i++ {
		h.Publish(CommandRoundTied, i)
	}
	if got := len(sub.MsgChan); got != subscriberBuffer {
		t.Fatalf("buffered = %d, want %d", got, subscriberBuffer)
	}
	if first := <-sub.MsgChan; first.Payload != 0 {
		t.Fatalf("first payload = %v, want 0", first.Payload)
	}
}

func TestCancelRemovesAndCloses(t *testing.T) {
	h := NewHub()
	sub, cancel := h.Subscribe()
	if h.Len() != 1 {
		t.Fatalf("Len() = %d", h.Len())
	}
	cancel()
	cancel()
	if h.Len() != 0 {
		t.Fatalf("Len() after cancel = %d", h.Len())
	}
	if _, ok := <-sub.MsgChan; ok {
		t.Fatal("channel still open after cancel")
	}
	h.Publish(CommandMatchEnded, nil)
}
