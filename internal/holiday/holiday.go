package holiday

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

var (
	closureMu      sync.RWMutex
	customClosures = make(map[string]bool)
)

// LoadCustomClosures loads extra closure dates from a JSON file.
// File format: {"closures": ["2026-01-01", "2026-12-24", ...]}
func LoadCustomClosures(filePath string) error {
	if filePath == "" {
		return nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read closures file: %v", err)
	}

	var config struct {
		Closures []string `json:"closures"`
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parse closures file: %v", err)
	}

	closureMu.Lock()
	defer closureMu.Unlock()

	for _, date := range config.Closures {
		customClosures[date] = true
	}

	log.Printf("[HOLIDAY] loaded custom closures: %d dates", len(config.Closures))
	return nil
}

// IsBusinessDay reports whether the dealership is open on the given date.
// Open Monday through Saturday, closed Sundays, major US holidays and any
// custom closure dates.
func IsBusinessDay(date time.Time) bool {
	if date.Weekday() == time.Sunday {
		return false
	}

	dateStr := date.Format("2006-01-02")

	closureMu.RLock()
	closed := customClosures[dateStr]
	closureMu.RUnlock()
	if closed {
		return false
	}

	return !isMajorHoliday(date)
}

func isMajorHoliday(date time.Time) bool {
	month, day := date.Month(), date.Day()

	switch {
	case month == time.January && day == 1: // New Year's Day
		return true
	case month == time.July && day == 4: // Independence Day
		return true
	case month == time.December && day == 25: // Christmas
		return true
	case month == time.November && date.Weekday() == time.Thursday && day >= 22 && day <= 28:
		// Thanksgiving, fourth Thursday of November
		return true
	case month == time.September && date.Weekday() == time.Monday && day <= 7:
		// Labor Day, first Monday of September
		return true
	case month == time.May && date.Weekday() == time.Monday && day >= 25:
		// Memorial Day, last Monday of May
		return true
	}
	return false
}

// ValidSlot reports whether a time slot falls inside showroom hours
// (09:00 to 19:00, last slot 18:00).
func ValidSlot(timeSlot string) bool {
	t, err := time.Parse("15:04", timeSlot)
	if err != nil {
		return false
	}
	hhmm := t.Hour()*100 + t.Minute()
	return hhmm >= 900 && hhmm <= 1800
}

// NextBusinessDay returns the first business day at or after the given date.
func NextBusinessDay(date time.Time) time.Time {
	for !IsBusinessDay(date) {
		date = date.AddDate(0, 0, 1)
	}
	return date
}
