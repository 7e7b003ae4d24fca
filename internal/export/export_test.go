package export

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/model"
	"github.com/mytravelspring/rio-nido-complete/internal/planner"
)

var fixedNow = time.Date(2026, 10, 18, 15, 4, 5, 0, time.UTC)

func testPrefs() model.Preferences {
	return model.Preferences{
		GuestName:    "Alex",
		Interests:    []model.Category{model.CategoryWine},
		TravelStyle:  model.TravelModerate,
		TripDuration: 2,
		GroupSize:    2,
		Signature:    "redwood_meditation",
	}
}

func newTestItinerary(t *testing.T) *model.Itinerary {
	t.Helper()
	p := planner.New(catalog.Default(), planner.WithClock(func() time.Time { return fixedNow }))
	it, _, err := p.Assemble(testPrefs())
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	return it
}

func TestOpenStatus(t *testing.T) {
	graze, _ := catalog.Default().Business("Graze at Rio Nido Lodge")
	at := func(h int) time.Time { return time.Date(2026, 10, 18, h, 30, 0, 0, time.UTC) }

	if s := OpenStatus(graze, at(10)); s != StatusOpen {
		t.Errorf("expected open at 10, got %s", s)
	}
	if s := OpenStatus(graze, at(22)); s != StatusClosed {
		t.Errorf("expected closed at 22, got %s", s)
	}
	if s := OpenStatus(graze, at(6)); s != StatusClosed {
		t.Errorf("expected closed at 6, got %s", s)
	}
	if s := OpenStatus(model.Business{Name: "Pop-up"}, at(10)); s != StatusUnknown {
		t.Errorf("expected unknown without hours, got %s", s)
	}
	sig, _ := catalog.Default().Signature("river_adventure")
	if s := OpenStatus(sig.AsBusiness(), at(10)); s != StatusUnknown {
		t.Errorf("expected unknown for signature experience, got %s", s)
	}
}

func TestDirectionsURL(t *testing.T) {
	raw := DirectionsURL("Boon Eat + Drink", catalog.CoordinatesFor("Boon Eat + Drink"))
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.Host != "www.google.com" || u.Path != "/maps/dir/" {
		t.Errorf("unexpected url %s", raw)
	}
	q := u.Query()
	if q.Get("api") != "1" {
		t.Errorf("expected api=1, got %q", q.Get("api"))
	}
	if q.Get("destination") != "38.5041,-122.9956" {
		t.Errorf("unexpected destination %q", q.Get("destination"))
	}
	if q.Get("destination_place_id") != "Boon Eat + Drink" {
		t.Errorf("unexpected place %q", q.Get("destination_place_id"))
	}
}

func TestShareLink_RoundTrip(t *testing.T) {
	it := newTestItinerary(t)
	link, err := ShareLink("https://rionido.example/plan?ref=desk", testPrefs(), it, fixedNow)
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	u, _ := url.Parse(link)
	if u.Query().Get("ref") != "desk" {
		t.Error("existing query parameters dropped")
	}

	p, err := DecodeShare(link)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Guest != "Alex" || p.Days != 2 || p.Style != model.TravelModerate {
		t.Errorf("unexpected payload %+v", p)
	}
	if len(p.Interests) != 1 || p.Interests[0] != model.CategoryWine {
		t.Errorf("unexpected interests %v", p.Interests)
	}
	if p.Timestamp != fixedNow.UnixMilli() {
		t.Errorf("expected timestamp %d, got %d", fixedNow.UnixMilli(), p.Timestamp)
	}

	bare, err := DecodeShare(u.Query().Get(ShareParam))
	if err != nil {
		t.Fatalf("decode bare token: %v", err)
	}
	if bare.Guest != p.Guest {
		t.Error("bare token decoded differently")
	}
}

func TestDecodeShare_Invalid(t *testing.T) {
	for _, link := range []string{"https://rionido.example/?other=1", "!!!", "https://x/?shared=bm90IGpzb24="} {
		if _, err := DecodeShare(link); !errors.Is(err, ErrInvalidShare) {
			t.Errorf("%q: expected ErrInvalidShare, got %v", link, err)
		}
	}
}

func TestShareQR(t *testing.T) {
	png, err := ShareQR("https://rionido.example/?shared=abc", 128)
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("expected PNG output")
	}
}

func TestParseTimeLabel(t *testing.T) {
	h, m, err := ParseTimeLabel("2:00 PM")
	if err != nil || h != 14 || m != 0 {
		t.Errorf("expected 14:00, got %d:%d (%v)", h, m, err)
	}
	h, m, err = ParseTimeLabel("8:30 AM")
	if err != nil || h != 8 || m != 30 {
		t.Errorf("expected 8:30, got %d:%d (%v)", h, m, err)
	}
	if _, _, err := ParseTimeLabel("noon"); err == nil {
		t.Error("expected error for unparseable label")
	}
}

func TestICS(t *testing.T) {
	it := newTestItinerary(t)
	day := it.Days[1]
	stamp := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := ICS(&buf, day, ICSOptions{Stamp: stamp}); err != nil {
		t.Fatalf("ics: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n") || !strings.HasSuffix(out, "END:VCALENDAR\r\n") {
		t.Error("calendar not wrapped in VCALENDAR with CRLF endings")
	}
	if !strings.Contains(out, "PRODID:"+DefaultProdID+"\r\n") {
		t.Error("missing PRODID")
	}
	if n := strings.Count(out, "BEGIN:VEVENT"); n != len(day.Activities) {
		t.Errorf("expected %d events, got %d", len(day.Activities), n)
	}
	for _, want := range []string{
		"DTSTART:20261019T083000",
		"DTEND:20261019T103000",
		"DTSTART:20261019T140000",
		"DTEND:20261019T160000",
		"DTSTAMP:20261001T120000Z",
		"SUMMARY:Furthermore Wines",
		"LOCATION:Furthermore Wines\\, Guerneville\\, CA",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}

	var again bytes.Buffer
	ICS(&again, day, ICSOptions{Stamp: stamp})
	if again.String() != out {
		t.Error("calendar output not stable for identical input")
	}
}

func TestICS_BadDate(t *testing.T) {
	var buf bytes.Buffer
	if err := ICS(&buf, model.DayPlan{Day: 1, Date: "tomorrow"}, ICSOptions{}); err == nil {
		t.Error("expected date error")
	}
}

func TestICS_FoldsLongLines(t *testing.T) {
	day := model.DayPlan{Day: 1, Date: "2026-10-18", Activities: []model.ScheduledActivity{{
		Time:     "8:30 AM",
		Type:     model.SlotTypeMorning,
		Activity: model.Business{Name: "Long Table", Description: strings.Repeat("redwood ", 40)},
	}}}

	var buf bytes.Buffer
	if err := ICS(&buf, day, ICSOptions{Stamp: fixedNow}); err != nil {
		t.Fatalf("ics: %v", err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n") {
		if len(line) > 75 {
			t.Errorf("line of %d octets exceeds limit", len(line))
		}
	}
	unfolded := strings.ReplaceAll(buf.String(), "\r\n ", "")
	if !strings.Contains(unfolded, strings.TrimSpace(strings.Repeat("redwood ", 40))) {
		t.Error("folding lost content")
	}
}

func TestICS_EscapesText(t *testing.T) {
	day := model.DayPlan{Day: 1, Date: "2026-10-18", Activities: []model.ScheduledActivity{{
		Time:     "7:00 PM",
		Type:     model.SlotTypeEvening,
		Activity: model.Business{Name: "Fish; Chips", Description: "oysters, clams"},
	}}}

	var buf bytes.Buffer
	if err := ICS(&buf, day, ICSOptions{Stamp: fixedNow}); err != nil {
		t.Fatalf("ics: %v", err)
	}
	out := strings.ReplaceAll(buf.String(), "\r\n ", "")
	for _, want := range []string{`SUMMARY:Fish\; Chips`, `DESCRIPTION:oysters\, clams`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestText(t *testing.T) {
	it := newTestItinerary(t)
	var buf bytes.Buffer
	if err := Text(&buf, it, testPrefs()); err != nil {
		t.Fatalf("text: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Rio Nido Lodge Itinerary for Alex",
		"2 days | 2 guests | Moderate Activity",
		"Day 1 - Sunday, October 18 (Guerneville)",
		"Day 2 - Monday, October 19 (Wineries)",
		"10:00 AM  Private Redwood Grove Meditation",
		"booking required",
		"2:00 PM   Furthermore Wines",
		"Local tip: Call ahead",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestPDF(t *testing.T) {
	it := newTestItinerary(t)
	qr, err := ShareQR("https://rionido.example/?shared=abc", 128)
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	var buf bytes.Buffer
	if err := PDF(&buf, it, testPrefs(), qr); err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("expected PDF header")
	}

	buf.Reset()
	if err := PDF(&buf, it, testPrefs(), nil); err != nil {
		t.Fatalf("pdf without qr: %v", err)
	}
}
