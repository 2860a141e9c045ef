package services

import (
	"errors"
	"testing"
	"time"

	"github.com/amrhendawy/vetdesk/models"
	"github.com/google/uuid"
)

func datetime(day, hour int) time.Time {
	return time.Date(2024, 6, day, hour, 0, 0, 0, time.UTC)
}

func activeSession(expected *time.Time, checkIn time.Time) models.BoardingSession {
	return models.BoardingSession{
		ID:                   uuid.New(),
		Status:               models.SessionStatusActive,
		CheckInDate:          checkIn,
		ExpectedCheckOutDate: expected,
	}
}

func TestUrgencyBand_Thresholds(t *testing.T) {
	now := datetime(10, 12)

	cases := []struct {
		name     string
		expected time.Time
		want     string
	}{
		{"overdue", datetime(9, 12), BandRed},
		{"due now", now, BandRed},
		{"due tomorrow", datetime(11, 12), BandRed},
		{"due in two days", datetime(12, 12), BandYellow},
		{"due in three days", datetime(13, 12), BandYellow},
		{"due in four days", datetime(14, 12), BandGreen},
		{"due next week", datetime(17, 12), BandGreen},
	}

	for _, tc := range cases {
		expected := tc.expected
		s := activeSession(&expected, datetime(1, 8))
		if got := UrgencyBand(s, now); got != tc.want {
			t.Errorf("%s: expected band %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestUrgencyBand_PartialDayRoundsUp(t *testing.T) {
	now := datetime(10, 12)

	// 3 days and 6 hours away: ceil(3.25) = 4, still green.
	expected := datetime(13, 18)
	s := activeSession(&expected, datetime(1, 8))
	if got := UrgencyBand(s, now); got != BandGreen {
		t.Fatalf("expected green for 3d6h remaining, got %q", got)
	}

	// 1 day and 6 hours away: ceil(1.25) = 2, yellow.
	expected = datetime(11, 18)
	s = activeSession(&expected, datetime(1, 8))
	if got := UrgencyBand(s, now); got != BandYellow {
		t.Fatalf("expected yellow for 1d6h remaining, got %q", got)
	}
}

func TestUrgencyBand_NoExpectedCheckout(t *testing.T) {
	s := activeSession(nil, datetime(1, 8))
	if got := UrgencyBand(s, datetime(10, 12)); got != BandGreen {
		t.Fatalf("open-ended stay should be green, got %q", got)
	}
}

func TestBuildKanban_PartitionsAllSessions(t *testing.T) {
	now := datetime(10, 12)

	red := datetime(10, 12)
	yellow := datetime(13, 0)
	green := datetime(20, 0)
	sessions := []models.BoardingSession{
		activeSession(&green, datetime(1, 8)),
		activeSession(&red, datetime(2, 8)),
		activeSession(&yellow, datetime(3, 8)),
		activeSession(nil, datetime(4, 8)),
	}

	board := BuildKanban(sessions, now)

	if board.Counts.Total != len(sessions) {
		t.Fatalf("expected total %d, got %d", len(sessions), board.Counts.Total)
	}
	sum := len(board.Green) + len(board.Yellow) + len(board.Red)
	if sum != len(sessions) {
		t.Fatalf("bands must partition the session set: %d != %d", sum, len(sessions))
	}
	if board.Counts.Green != len(board.Green) || board.Counts.Yellow != len(board.Yellow) || board.Counts.Red != len(board.Red) {
		t.Fatalf("counts do not match band sizes: %+v", board.Counts)
	}

	seen := make(map[uuid.UUID]int)
	for _, band := range [][]models.BoardingSession{board.Green, board.Yellow, board.Red} {
		for _, s := range band {
			seen[s.ID]++
		}
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("session %s appears %d times across bands", id, n)
		}
	}
}

func TestBuildKanban_OrderingWithinBand(t *testing.T) {
	now := datetime(10, 12)

	later := datetime(20, 0)
	sooner := datetime(18, 0)
	sameDayEarlyCheckIn := datetime(18, 0)

	a := activeSession(&later, datetime(1, 8))
	b := activeSession(&sooner, datetime(5, 8))
	c := activeSession(&sameDayEarlyCheckIn, datetime(2, 8))

	board := BuildKanban([]models.BoardingSession{a, b, c}, now)
	if len(board.Green) != 3 {
		t.Fatalf("expected all three sessions green, got %d", len(board.Green))
	}
	// c and b share an expected checkout; c checked in earlier and sorts first.
	if board.Green[0].ID != c.ID || board.Green[1].ID != b.ID || board.Green[2].ID != a.ID {
		t.Fatalf("unexpected order: got %s, %s, %s", board.Green[0].ID, board.Green[1].ID, board.Green[2].ID)
	}
}

func TestBuildKanban_DoesNotMutateInput(t *testing.T) {
	now := datetime(10, 12)
	first := datetime(20, 0)
	second := datetime(11, 0)
	sessions := []models.BoardingSession{
		activeSession(&first, datetime(1, 8)),
		activeSession(&second, datetime(2, 8)),
	}
	firstID := sessions[0].ID

	BuildKanban(sessions, now)
	if sessions[0].ID != firstID {
		t.Fatal("input slice was reordered")
	}
}

func TestStayDurationDays(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"four hours same day", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC), 1},
		{"twenty-three hours", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), 1},
		{"exactly forty-eight hours", time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC), 2},
		{"forty-nine hours rounds to three", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC), 3},
		{"zero duration", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), 1},
	}

	for _, tc := range cases {
		if got := StayDurationDays(tc.checkIn, tc.checkOut); got != tc.want {
			t.Errorf("%s: expected %d days, got %d", tc.name, tc.want, got)
		}
	}
}

func TestSettleSession(t *testing.T) {
	rate := 80.0
	s := models.BoardingSession{
		CheckInDate: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		DailyRate:   &rate,
	}

	settlement := SettleSession(s, time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC))
	if settlement.StayDays != 2 {
		t.Fatalf("expected 2 stay days, got %d", settlement.StayDays)
	}
	if settlement.TotalAmount == nil || *settlement.TotalAmount != 160 {
		t.Fatalf("expected total 160, got %v", settlement.TotalAmount)
	}
}

func TestSettleSession_NoDailyRate(t *testing.T) {
	s := models.BoardingSession{
		CheckInDate: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	}

	settlement := SettleSession(s, time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC))
	if settlement.StayDays != 1 {
		t.Fatalf("expected 1 stay day, got %d", settlement.StayDays)
	}
	if settlement.TotalAmount != nil {
		t.Fatalf("expected nil total for rateless stay, got %v", *settlement.TotalAmount)
	}
}

func TestNextFreeSlot(t *testing.T) {
	cases := []struct {
		name  string
		total int
		used  []int
		want  int
	}{
		{"empty pool", 5, nil, 1},
		{"append after last", 5, []int{1, 2}, 3},
		{"reuse freed gap", 5, []int{1, 3}, 2},
		{"gap at front", 5, []int{2, 3}, 1},
	}

	for _, tc := range cases {
		got, err := NextFreeSlot(tc.total, tc.used)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: expected slot %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestNextFreeSlot_Full(t *testing.T) {
	_, err := NextFreeSlot(2, []int{1, 2})
	if !errors.Is(err, ErrCapacityFull) {
		t.Fatalf("expected ErrCapacityFull, got %v", err)
	}
}

func TestComputeOccupancy(t *testing.T) {
	occ := ComputeOccupancy(2, 2)
	if occ.Total != 2 || occ.Occupied != 2 || occ.Available != 0 {
		t.Fatalf("unexpected occupancy: %+v", occ)
	}

	occ = ComputeOccupancy(2, 3)
	if occ.Available != 0 {
		t.Fatalf("available must never go negative, got %d", occ.Available)
	}

	occ = ComputeOccupancy(4, 1)
	if occ.Available != 3 {
		t.Fatalf("expected 3 available, got %d", occ.Available)
	}
}

func TestSummarizeOccupancy_GroupsByTypeAndSpecies(t *testing.T) {
	dogA := models.BoardingConfig{ID: uuid.New(), BoardingType: models.BoardingTypeBoarding, Species: "dog", TotalSlots: 4}
	dogB := models.BoardingConfig{ID: uuid.New(), BoardingType: models.BoardingTypeBoarding, Species: "dog", TotalSlots: 2}
	catICU := models.BoardingConfig{ID: uuid.New(), BoardingType: models.BoardingTypeICU, Species: "cat", TotalSlots: 3}

	occupied := map[uuid.UUID]int{
		dogA.ID:   3,
		dogB.ID:   1,
		catICU.ID: 2,
	}

	summaries := SummarizeOccupancy([]models.BoardingConfig{dogA, dogB, catICU}, occupied)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 tiles, got %d", len(summaries))
	}

	// Sorted by type then species: boarding/dog before icu/cat.
	dogs := summaries[0]
	if dogs.BoardingType != models.BoardingTypeBoarding || dogs.Species != "dog" {
		t.Fatalf("unexpected first tile: %+v", dogs)
	}
	if dogs.Total != 6 || dogs.Occupied != 4 || dogs.Available != 2 {
		t.Fatalf("dog boarding tile wrong: %+v", dogs)
	}

	icu := summaries[1]
	if icu.Total != 3 || icu.Occupied != 2 || icu.Available != 1 {
		t.Fatalf("cat icu tile wrong: %+v", icu)
	}
}
