package services

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/amrhendawy/vetdesk/models"
	"github.com/google/uuid"
)

var (
	ErrValidation   = errors.New("invalid input")
	ErrNotFound     = errors.New("record not found")
	ErrCapacityFull = errors.New("no available slots")
	ErrSlotConflict = errors.New("slot number already in use")
	ErrNotActive    = errors.New("session is not active")
)

const (
	BandGreen  = "green"
	BandYellow = "yellow"
	BandRed    = "red"
)

// DaysRemaining is the number of billing days left until the expected
// checkout, rounded up. Past-due checkouts come back zero or negative.
func DaysRemaining(expected, now time.Time) int {
	return int(math.Ceil(expected.Sub(now).Hours() / 24))
}

// UrgencyBand classifies an active session for the occupancy board.
// Sessions without an expected checkout never page staff and stay green.
func UrgencyBand(s models.BoardingSession, now time.Time) string {
	if s.ExpectedCheckOutDate == nil {
		return BandGreen
	}
	switch d := DaysRemaining(*s.ExpectedCheckOutDate, now); {
	case d <= 1:
		return BandRed
	case d <= 3:
		return BandYellow
	default:
		return BandGreen
	}
}

type BoardCounts struct {
	Green  int `json:"green"`
	Yellow int `json:"yellow"`
	Red    int `json:"red"`
	Total  int `json:"total"`
}

type KanbanBoard struct {
	Green  []models.BoardingSession `json:"green"`
	Yellow []models.BoardingSession `json:"yellow"`
	Red    []models.BoardingSession `json:"red"`
	Counts BoardCounts              `json:"counts"`
}

// BuildKanban partitions active sessions into the three urgency bands,
// each band ordered by expected checkout then check-in (most urgent first).
// Bands are recomputed on every call and never cached.
func BuildKanban(sessions []models.BoardingSession, now time.Time) KanbanBoard {
	ordered := make([]models.BoardingSession, len(sessions))
	copy(ordered, sessions)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		switch {
		case a.ExpectedCheckOutDate == nil && b.ExpectedCheckOutDate == nil:
			return a.CheckInDate.Before(b.CheckInDate)
		case a.ExpectedCheckOutDate == nil:
			return false
		case b.ExpectedCheckOutDate == nil:
			return true
		case !a.ExpectedCheckOutDate.Equal(*b.ExpectedCheckOutDate):
			return a.ExpectedCheckOutDate.Before(*b.ExpectedCheckOutDate)
		default:
			return a.CheckInDate.Before(b.CheckInDate)
		}
	})

	board := KanbanBoard{
		Green:  []models.BoardingSession{},
		Yellow: []models.BoardingSession{},
		Red:    []models.BoardingSession{},
	}
	for _, s := range ordered {
		switch UrgencyBand(s, now) {
		case BandRed:
			board.Red = append(board.Red, s)
		case BandYellow:
			board.Yellow = append(board.Yellow, s)
		default:
			board.Green = append(board.Green, s)
		}
	}
	board.Counts = BoardCounts{
		Green:  len(board.Green),
		Yellow: len(board.Yellow),
		Red:    len(board.Red),
		Total:  len(ordered),
	}
	return board
}

// StayDurationDays rounds a stay up to whole billing days. Any stay shorter
// than a day still bills as one day, hotel style.
func StayDurationDays(checkIn, checkOut time.Time) int {
	days := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

type Settlement struct {
	StayDays    int      `json:"stay_days"`
	TotalAmount *float64 `json:"total_amount"`
}

// SettleSession computes the checkout charge from the rate snapshotted at
// check-in. Sessions without a daily rate settle with a nil amount and are
// invoiced manually.
func SettleSession(s models.BoardingSession, checkOut time.Time) Settlement {
	settlement := Settlement{StayDays: StayDurationDays(s.CheckInDate, checkOut)}
	if s.DailyRate != nil {
		total := float64(settlement.StayDays) * *s.DailyRate
		settlement.TotalAmount = &total
	}
	return settlement
}

// NextFreeSlot picks the lowest unused slot number in [1, totalSlots].
// Slot numbers freed by completed or cancelled stays are reused first-fit.
func NextFreeSlot(totalSlots int, used []int) (int, error) {
	inUse := make(map[int]bool, len(used))
	for _, n := range used {
		inUse[n] = true
	}
	for n := 1; n <= totalSlots; n++ {
		if !inUse[n] {
			return n, nil
		}
	}
	return 0, ErrCapacityFull
}

type Occupancy struct {
	Total     int `json:"total"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

// ComputeOccupancy derives the availability of a configuration. Available is
// clamped at zero: a manual override can push occupied past total, but the
// board never shows negative capacity.
func ComputeOccupancy(total, occupied int) Occupancy {
	available := total - occupied
	if available < 0 {
		available = 0
	}
	return Occupancy{Total: total, Occupied: occupied, Available: available}
}

type OccupancySummary struct {
	BoardingType string `json:"boarding_type"`
	Species      string `json:"species"`
	Total        int    `json:"total"`
	Occupied     int    `json:"occupied"`
	Available    int    `json:"available"`
}

// SummarizeOccupancy groups capacity by (type, species) across
// configurations, so two dog-boarding pools show as one dashboard tile.
func SummarizeOccupancy(configs []models.BoardingConfig, occupiedByConfig map[uuid.UUID]int) []OccupancySummary {
	type key struct {
		boardingType string
		species      string
	}
	grouped := make(map[key]*OccupancySummary)
	var order []key
	for _, cfg := range configs {
		k := key{cfg.BoardingType, cfg.Species}
		summary, ok := grouped[k]
		if !ok {
			summary = &OccupancySummary{BoardingType: cfg.BoardingType, Species: cfg.Species}
			grouped[k] = summary
			order = append(order, k)
		}
		summary.Total += cfg.TotalSlots
		summary.Occupied += occupiedByConfig[cfg.ID]
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].boardingType != order[j].boardingType {
			return order[i].boardingType < order[j].boardingType
		}
		return order[i].species < order[j].species
	})

	summaries := make([]OccupancySummary, 0, len(order))
	for _, k := range order {
		s := grouped[k]
		occ := ComputeOccupancy(s.Total, s.Occupied)
		s.Available = occ.Available
		summaries = append(summaries, *s)
	}
	return summaries
}
