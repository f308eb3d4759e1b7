package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/whatson/pkg/event"
)

type fakeBackend struct {
	categories []string
	byCategory map[string]*event.Collection
	err        error
	calls      int
}

func (f *fakeBackend) Categories(_ context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeBackend) Events(_ context.Context, category string) (*event.Collection, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	col, ok := f.byCategory[category]
	if !ok {
		return &event.Collection{}, nil
	}
	return col, nil
}

func ev(id, title string, start time.Time) event.Event {
	return event.Event{ID: id, Title: title, EventStart: start}
}

func TestCategoriesPreservesBackendOrder(t *testing.T) {
	fb := &fakeBackend{categories: []string{"music", "art", "tech"}}
	svc := &Service{Backend: fb}

	got, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"music", "art", "tech"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestServiceWithoutBackendErrors(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Categories(context.Background()); err == nil {
		t.Fatal("expected error without backend")
	}
	if _, err := svc.Events(context.Background(), ""); err == nil {
		t.Fatal("expected error without backend")
	}
}

func TestServicePropagatesBackendError(t *testing.T) {
	boom := errors.New("boom")
	svc := &Service{Backend: &fakeBackend{err: boom}}
	if _, err := svc.Events(context.Background(), "music"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
}

func TestSectionsFixedOrderAndOmission(t *testing.T) {
	base := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	col := &event.Collection{
		Open:   []event.Event{ev("1", "Jazz Night", base)},
		Closed: []event.Event{ev("2", "Winter Gala", base.Add(time.Hour))},
		Count:  2,
	}

	secs := Sections(col, "")
	if len(secs) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(secs))
	}
	if secs[0].Status != event.Open || secs[1].Status != event.Closed {
		t.Fatalf("expected Open then Closed, got %v then %v", secs[0].Status, secs[1].Status)
	}
}

func TestSectionsFilterCanEmptyABucket(t *testing.T) {
	base := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	col := &event.Collection{
		Open:     []event.Event{ev("1", "Jazz Night", base)},
		Upcoming: []event.Event{ev("2", "Rock Fest", base)},
		Count:    2,
	}

	secs := Sections(col, "jazz")
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	if secs[0].Status != event.Open {
		t.Fatalf("expected Open section, got %v", secs[0].Status)
	}
	if len(secs[0].Events) != 1 || secs[0].Events[0].ID != "1" {
		t.Fatalf("unexpected section events %+v", secs[0].Events)
	}
}

func TestSectionsKeepBucketOrder(t *testing.T) {
	base := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	col := &event.Collection{
		Open: []event.Event{
			ev("1", "First jam", base),
			ev("2", "Second jam", base.Add(time.Hour)),
			ev("3", "Third jam", base.Add(2*time.Hour)),
		},
		Count: 3,
	}

	secs := Sections(col, "jam")
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	for i, want := range []string{"1", "2", "3"} {
		if secs[0].Events[i].ID != want {
			t.Fatalf("expected event %d to be %q, got %q", i, want, secs[0].Events[i].ID)
		}
	}
}

func TestSectionsNilCollection(t *testing.T) {
	if secs := Sections(nil, "anything"); secs != nil {
		t.Fatalf("expected nil sections, got %v", secs)
	}
}
