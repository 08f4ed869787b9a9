package services

import (
	"context"
	"errors"
	"testing"

	"hotel-management/dto"
	"hotel-management/models"
	"hotel-management/services/logger"
)

type stubFinder struct {
	guests []models.Guest
	err    error
	calls  []string
}

func (f *stubFinder) MatchGuests(_ context.Context, operator, name, kanaName, phone string) ([]models.Guest, error) {
	f.calls = append(f.calls, operator+"|"+name+"|"+kanaName+"|"+phone)
	return f.guests, f.err
}

func TestGuestMatcher(t *testing.T) {
	criteria := dto.GuestMatchRequest{Name: "Hanako Sato", KanaName: "サトウハナコ", Phone: "08098765432"}

	t.Run("no match", func(t *testing.T) {
		m := NewGuestMatcher(&stubFinder{}, logger.Discard())
		g, err := m.Match(context.Background(), "op1", criteria)
		if err != nil || g != nil {
			t.Fatalf("expected nil guest, got %+v (%v)", g, err)
		}
	})

	t.Run("oldest of several", func(t *testing.T) {
		finder := &stubFinder{guests: []models.Guest{{ID: "old"}, {ID: "new"}}}
		m := NewGuestMatcher(finder, logger.Discard())
		g, err := m.Match(context.Background(), "op1", criteria)
		if err != nil || g == nil || g.ID != "old" {
			t.Fatalf("expected oldest guest, got %+v (%v)", g, err)
		}
		if finder.calls[0] != "op1|Hanako Sato|サトウハナコ|08098765432" {
			t.Fatalf("unexpected lookup %q", finder.calls[0])
		}
	})

	t.Run("store error", func(t *testing.T) {
		boom := errors.New("boom")
		m := NewGuestMatcher(&stubFinder{err: boom}, logger.Discard())
		if _, err := m.Match(context.Background(), "op1", criteria); !errors.Is(err, boom) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}
