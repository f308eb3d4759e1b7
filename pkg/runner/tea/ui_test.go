package teaui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/whatson/pkg/app"
	"tableflip.dev/whatson/pkg/event"
	"tableflip.dev/whatson/pkg/timeutil"
)

type fakeBackend struct {
	categories []string
	byCategory map[string]*event.Collection
	err        error
	calls      int
}

func (f *fakeBackend) Categories(_ context.Context) ([]string, error) {
	return f.categories, nil
}

func (f *fakeBackend) Events(_ context.Context, category string) (*event.Collection, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if col, ok := f.byCategory[category]; ok {
		return col, nil
	}
	return &event.Collection{}, nil
}

func openEvent(id, title string, now time.Time) event.Event {
	return event.Event{
		ID:                id,
		Title:             title,
		RegistrationStart: now.Add(-time.Hour),
		RegistrationEnd:   now.Add(time.Hour),
		EventStart:        now.Add(24 * time.Hour),
	}
}

func testNow() time.Time {
	return time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
}

func apply(t *testing.T, m Model, msg interface{}) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return out
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	now := testNow()
	fb := &fakeBackend{
		byCategory: map[string]*event.Collection{
			"": {
				Open:  []event.Event{openEvent("any-1", "Any Event", now)},
				Count: 1,
			},
			"music": {
				Open:  []event.Event{openEvent("music-1", "Jazz Night", now)},
				Count: 1,
			},
		},
	}
	m := New(&app.Service{Backend: fb}, timeutil.Fixed(now))

	cmd1 := m.loadEvents() // R1: category ""
	m.selectedCategory = "music"
	cmd2 := m.loadEvents() // R2: category "music"

	msg1 := cmd1()
	msg2 := cmd2()

	// R2 completes first; R1's late response must not overwrite it.
	m = apply(t, m, msg2)
	if m.collection == nil || m.collection.Open[0].ID != "music-1" {
		t.Fatalf("expected music collection after R2, got %+v", m.collection)
	}
	if m.loading {
		t.Fatal("expected loading cleared after latest response")
	}

	m = apply(t, m, msg1)
	if m.collection.Open[0].ID != "music-1" {
		t.Fatalf("stale R1 overwrote the collection: %+v", m.collection)
	}
}

func TestStaleFailureIsDiscarded(t *testing.T) {
	now := testNow()
	fb := &fakeBackend{
		byCategory: map[string]*event.Collection{
			"music": {Open: []event.Event{openEvent("music-1", "Jazz Night", now)}, Count: 1},
		},
	}
	m := New(&app.Service{Backend: fb}, timeutil.Fixed(now))

	m.loadEvents() // R1, will fail late
	staleFailure := fetchFailedMsg{seq: 1, err: errors.New("boom")}

	m.selectedCategory = "music"
	cmd2 := m.loadEvents()
	m = apply(t, m, cmd2())

	m = apply(t, m, staleFailure)
	if m.loading {
		t.Fatal("stale failure should not toggle loading")
	}
	if strings.HasPrefix(m.status, "ERR") {
		t.Fatalf("stale failure should not surface: %q", m.status)
	}
}

func TestFetchFailureRetainsPriorCollection(t *testing.T) {
	now := testNow()
	fb := &fakeBackend{
		byCategory: map[string]*event.Collection{
			"": {Open: []event.Event{openEvent("keep", "Keep Me", now)}, Count: 1},
		},
	}
	m := New(&app.Service{Backend: fb}, timeutil.Fixed(now))

	m = apply(t, m, m.loadEvents()())
	if m.collection == nil || m.collection.Open[0].ID != "keep" {
		t.Fatalf("setup failed: %+v", m.collection)
	}

	fb.err = errors.New("network down")
	m = apply(t, m, m.loadEvents()())

	if m.loading {
		t.Fatal("expected loading cleared after failure")
	}
	if m.collection == nil || m.collection.Open[0].ID != "keep" {
		t.Fatalf("failure must leave prior collection intact, got %+v", m.collection)
	}
	if !strings.HasPrefix(m.status, "ERR") {
		t.Fatalf("expected error surfaced in status line, got %q", m.status)
	}
}

func TestCategoryChangeBumpsSequenceAndLoading(t *testing.T) {
	now := testNow()
	m := New(&app.Service{Backend: &fakeBackend{}}, timeutil.Fixed(now))

	if m.reqSeq != 0 {
		t.Fatalf("expected clean sequence, got %d", m.reqSeq)
	}
	m.loadEvents()
	if m.reqSeq != 1 || !m.loading {
		t.Fatalf("expected seq 1 and loading, got %d %v", m.reqSeq, m.loading)
	}
	m.selectedCategory = "music"
	m.loadEvents()
	if m.reqSeq != 2 {
		t.Fatalf("expected seq 2, got %d", m.reqSeq)
	}
}

func TestQueryNarrowsWithoutRoundTrip(t *testing.T) {
	now := testNow()
	fb := &fakeBackend{
		byCategory: map[string]*event.Collection{
			"": {
				Open: []event.Event{
					openEvent("a", "Jazz Night", now),
					openEvent("b", "Rock Fest", now),
				},
				Count: 2,
			},
		},
	}
	m := New(&app.Service{Backend: fb}, timeutil.Fixed(now))
	m = apply(t, m, m.loadEvents()())
	callsAfterLoad := fb.calls

	m.query.SetValue("jazz")
	m.rebuildRows()

	var titles []string
	for _, r := range m.rows {
		if !r.header {
			titles = append(titles, r.ev.Title)
		}
	}
	if len(titles) != 1 || titles[0] != "Jazz Night" {
		t.Fatalf("expected only Jazz Night, got %v", titles)
	}
	if fb.calls != callsAfterLoad {
		t.Fatalf("query filtering must not fetch; calls went %d -> %d", callsAfterLoad, fb.calls)
	}
}

func TestRowsKeepFixedOrderAndOmitEmptySections(t *testing.T) {
	now := testNow()
	closed := openEvent("c", "Winter Gala", now)
	closed.RegistrationStart = now.Add(-3 * time.Hour)
	closed.RegistrationEnd = now.Add(-2 * time.Hour)

	m := New(&app.Service{Backend: &fakeBackend{}}, timeutil.Fixed(now))
	m.collection = &event.Collection{
		Open:   []event.Event{openEvent("a", "Jazz Night", now)},
		Closed: []event.Event{closed},
		Count:  2,
	}
	m.rebuildRows()

	var headers []event.Status
	for _, r := range m.rows {
		if r.header {
			headers = append(headers, r.status)
		}
	}
	if len(headers) != 2 || headers[0] != event.Open || headers[1] != event.Closed {
		t.Fatalf("expected Open then Closed headers, got %v", headers)
	}
}

func TestRowStatusAndRegisterAgree(t *testing.T) {
	now := testNow()
	// The backend put this event in the open bucket, but by our clock the
	// window has already closed. One classification drives both the label
	// and the register action, so they cannot split.
	e := event.Event{
		ID:                "skewed",
		Title:             "Skewed Event",
		RegistrationStart: now.Add(-3 * time.Hour),
		RegistrationEnd:   now.Add(-time.Hour),
		EventStart:        now.Add(24 * time.Hour),
		GoogleFormURL:     "https://forms.example/skewed",
	}
	m := New(&app.Service{Backend: &fakeBackend{}}, timeutil.Fixed(now))
	m.collection = &event.Collection{Open: []event.Event{e}, Count: 1}
	m.rebuildRows()

	var got *row
	for i := range m.rows {
		if !m.rows[i].header {
			got = &m.rows[i]
		}
	}
	if got == nil {
		t.Fatal("expected an event row")
	}
	if got.status != event.Closed {
		t.Fatalf("expected locally classified Closed, got %v", got.status)
	}
	if got.ev.CanRegister(got.status) {
		t.Fatal("register must not be offered for a closed window")
	}
}

func TestViewOmitsEmptySectionsAndShowsLinks(t *testing.T) {
	now := testNow()
	e := openEvent("a", "Jazz Night", now)
	e.GoogleFormURL = "https://forms.example/jazz"
	e.PosterURL = "https://posters.example/jazz.png"

	m := New(&app.Service{Backend: &fakeBackend{}}, timeutil.Fixed(now))
	m.collection = &event.Collection{Open: []event.Event{e}, Count: 1}
	m.rebuildRows()

	view := m.View()
	if !strings.Contains(view, "Jazz Night") {
		t.Fatalf("expected event in view:\n%s", view)
	}
	if strings.Contains(view, "Upcoming") || strings.Contains(view, "Closed") {
		t.Fatalf("expected empty sections omitted:\n%s", view)
	}
	if !strings.Contains(view, "register: https://forms.example/jazz") {
		t.Fatalf("expected register link for open event:\n%s", view)
	}
	if !strings.Contains(view, "poster: https://posters.example/jazz.png") {
		t.Fatalf("expected poster link:\n%s", view)
	}
}

func TestViewHidesRegisterForClosedSelection(t *testing.T) {
	now := testNow()
	e := event.Event{
		ID:                "c",
		Title:             "Winter Gala",
		RegistrationStart: now.Add(-3 * time.Hour),
		RegistrationEnd:   now.Add(-2 * time.Hour),
		EventStart:        now.Add(24 * time.Hour),
		GoogleFormURL:     "https://forms.example/gala",
	}
	m := New(&app.Service{Backend: &fakeBackend{}}, timeutil.Fixed(now))
	m.collection = &event.Collection{Closed: []event.Event{e}, Count: 1}
	m.rebuildRows()

	view := m.View()
	if strings.Contains(view, "register:") {
		t.Fatalf("expected no register link for closed event:\n%s", view)
	}
}

func TestCategoriesLoadedKeepsAllFirst(t *testing.T) {
	now := testNow()
	m := New(&app.Service{Backend: &fakeBackend{}}, timeutil.Fixed(now))

	m = apply(t, m, categoriesLoadedMsg{names: []string{"music", "tech"}})
	items := m.catList.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].(categoryItem).name != allCategories {
		t.Fatalf("expected %q first, got %q", allCategories, items[0].(categoryItem).name)
	}
	if items[1].(categoryItem).name != "music" || items[2].(categoryItem).name != "tech" {
		t.Fatal("expected backend order preserved")
	}
}
