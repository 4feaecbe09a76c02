// Package market provides market session detection for the NSE trading day.
package market

import (
	"time"
)

// Session represents a discrete phase of the trading day.
type Session string

const (
	SessionPreMarket Session = "PRE_MARKET"
	SessionOpening   Session = "OPENING"
	SessionMidDay    Session = "MID_DAY"
	SessionClosing   Session = "CLOSING"
	SessionClosed    Session = "CLOSED"
	SessionHoliday   Session = "HOLIDAY"
	SessionWeekend   Session = "WEEKEND"
)

// String returns a human-readable description of the session.
func (s Session) String() string {
	switch s {
	case SessionPreMarket:
		return "Pre-Market (before 9:15)"
	case SessionOpening:
		return "Opening (9:15-12:00)"
	case SessionMidDay:
		return "Mid-Day (12:00-15:00)"
	case SessionClosing:
		return "Closing (15:00-15:30)"
	case SessionClosed:
		return "Closed"
	case SessionHoliday:
		return "Holiday"
	case SessionWeekend:
		return "Weekend"
	default:
		return string(s)
	}
}

// Status describes the market state at a point in time.
type Status struct {
	Session   Session `json:"session"`
	Label     string  `json:"label"`
	ColorHint string  `json:"color_hint"`
}

// Countdown is a duration decomposed into whole hours and remaining minutes.
type Countdown struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Config holds the exchange calendar parameters. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	Location    *time.Location
	OpenHour    int
	OpenMinute  int
	CloseHour   int
	CloseMinute int
	Holidays    map[string]bool // "2006-01-02" -> closed
}

// DefaultConfig returns the NSE equity segment calendar: 09:15-15:30 IST,
// Monday to Friday, no holidays loaded.
func DefaultConfig() Config {
	return Config{
		Location:    IndiaLocation(),
		OpenHour:    9,
		OpenMinute:  15,
		CloseHour:   15,
		CloseMinute: 30,
		Holidays:    make(map[string]bool),
	}
}

// IndiaLocation returns the Asia/Kolkata location, falling back to a
// fixed UTC+5:30 zone when the tzdata is unavailable.
func IndiaLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*60*60+30*60)
	}
	return loc
}

// Clock derives market session state from an injected timestamp. It
// never reads the environment clock, so callers control time in tests
// and concurrent use needs no coordination.
type Clock struct {
	cfg Config
}

// NewClock creates a session clock with the given calendar.
func NewClock(cfg Config) *Clock {
	if cfg.Location == nil {
		cfg.Location = IndiaLocation()
	}
	if cfg.Holidays == nil {
		cfg.Holidays = make(map[string]bool)
	}
	return &Clock{cfg: cfg}
}

// AddHoliday marks a calendar date as a market holiday.
func (c *Clock) AddHoliday(date time.Time) {
	c.cfg.Holidays[date.In(c.cfg.Location).Format("2006-01-02")] = true
}

// IsHoliday checks whether a date is a configured market holiday.
func (c *Clock) IsHoliday(date time.Time) bool {
	return c.cfg.Holidays[date.In(c.cfg.Location).Format("2006-01-02")]
}

// IsOpen reports whether the market is open for trading at t.
func (c *Clock) IsOpen(t time.Time) bool {
	t = t.In(c.cfg.Location)

	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	if c.IsHoliday(t) {
		return false
	}

	minutes := t.Hour()*60 + t.Minute()
	open := c.cfg.OpenHour*60 + c.cfg.OpenMinute
	close := c.cfg.CloseHour*60 + c.cfg.CloseMinute
	return minutes >= open && minutes <= close
}

// Status returns the session at t. The open window subdivides into
// Opening (09:15-12:00), Mid-Day (12:00-15:00), and Closing
// (15:00-15:30); the closing window is bounded by the close time on
// both sides.
func (c *Clock) Status(t time.Time) Status {
	t = t.In(c.cfg.Location)

	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return Status{Session: SessionWeekend, Label: "Weekend - Market Closed", ColorHint: "gray"}
	}
	if c.IsHoliday(t) {
		return Status{Session: SessionHoliday, Label: "Market Holiday", ColorHint: "gray"}
	}

	minutes := t.Hour()*60 + t.Minute()
	open := c.cfg.OpenHour*60 + c.cfg.OpenMinute
	close := c.cfg.CloseHour*60 + c.cfg.CloseMinute
	midDayStart := 12 * 60
	closingStart := 15 * 60

	switch {
	case minutes < open:
		return Status{Session: SessionPreMarket, Label: "Pre-Market", ColorHint: "yellow"}
	case minutes < midDayStart:
		return Status{Session: SessionOpening, Label: "Opening Session", ColorHint: "green"}
	case minutes < closingStart:
		return Status{Session: SessionMidDay, Label: "Mid-Day Session", ColorHint: "green"}
	case minutes <= close:
		return Status{Session: SessionClosing, Label: "Closing Session", ColorHint: "orange"}
	default:
		return Status{Session: SessionClosed, Label: "Market Closed", ColorHint: "red"}
	}
}

// NextOpen returns the next market open at or after t, skipping
// weekends and holidays.
func (c *Clock) NextOpen(t time.Time) time.Time {
	t = t.In(c.cfg.Location)

	next := time.Date(t.Year(), t.Month(), t.Day(),
		c.cfg.OpenHour, c.cfg.OpenMinute, 0, 0, c.cfg.Location)
	if !t.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday || c.IsHoliday(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// TimeUntilOpen returns the time remaining until the next market open,
// decomposed into whole hours and remaining minutes.
func (c *Clock) TimeUntilOpen(t time.Time) Countdown {
	until := c.NextOpen(t).Sub(t.In(c.cfg.Location))
	if until < 0 {
		until = 0
	}
	totalMinutes := int(until.Minutes())
	return Countdown{Hours: totalMinutes / 60, Minutes: totalMinutes % 60}
}

// MinutesSinceOpen returns the whole minutes elapsed since the day's
// open, or 0 before the open. Weekends and holidays are not checked;
// callers gate on IsOpen first.
func (c *Clock) MinutesSinceOpen(t time.Time) int {
	t = t.In(c.cfg.Location)
	open := time.Date(t.Year(), t.Month(), t.Day(),
		c.cfg.OpenHour, c.cfg.OpenMinute, 0, 0, c.cfg.Location)
	if t.Before(open) {
		return 0
	}
	return int(t.Sub(open).Minutes())
}
