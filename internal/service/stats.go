package service

import (
	"time"

	"github.com/xolan/sip/internal/config"
	"github.com/xolan/sip/internal/logstore"
	"github.com/xolan/sip/internal/stats"
	"github.com/xolan/sip/internal/timeutil"
)

// StatsService provides statistics operations
type StatsService struct {
	store  *logstore.Store
	config config.Config
	cal    timeutil.Calendar
}

// NewStatsService creates a new StatsService
func NewStatsService(store *logstore.Store, cfg config.Config, cal timeutil.Calendar) *StatsService {
	return &StatsService{
		store:  store,
		config: cfg,
		cal:    cal,
	}
}

// Weekly returns weekly statistics with comparison to previous week
func (s *StatsService) Weekly() *StatsResult {
	start, end := s.cal.ThisWeek()
	prevStart, prevEnd := s.cal.LastWeek()
	return s.calculateStats(start, end, prevStart, prevEnd, "this week", "week")
}

// Monthly returns monthly statistics with comparison to previous month
func (s *StatsService) Monthly() *StatsResult {
	start, end := s.cal.ThisMonth()
	prevStart, prevEnd := s.cal.LastMonth()
	return s.calculateStats(start, end, prevStart, prevEnd, "this month", "month")
}

// ForDateRange returns statistics for any date range, without comparison
func (s *StatsService) ForDateRange(spec DateRangeSpec) *StatsResult {
	start, end, period := resolveDateRange(s.cal, spec)
	end = s.clampToToday(end)
	entries := s.store.LoadAll()

	return &StatsResult{
		Statistics: stats.CalculateStatistics(entries, start, end, s.config.DailyLimit),
		Categories: stats.CalculateCategoryBreakdown(entries, start, end),
		Drinks:     stats.CalculateDrinkBreakdown(entries, start, end),
		Days:       stats.DailyTotals(entries, start, end),
		Period:     period,
		DailyLimit: s.config.DailyLimit,
		Start:      start,
		End:        end,
	}
}

// calculateStats calculates statistics for current and previous periods
func (s *StatsService) calculateStats(
	currentStart, currentEnd time.Time,
	previousStart, previousEnd time.Time,
	period, periodName string,
) *StatsResult {
	currentEnd = s.clampToToday(currentEnd)
	entries := s.store.LoadAll()

	current := stats.CalculateStatistics(entries, currentStart, currentEnd, s.config.DailyLimit)
	previous := stats.CalculateStatistics(entries, previousStart, previousEnd, s.config.DailyLimit)

	return &StatsResult{
		Statistics:    current,
		Categories:    stats.CalculateCategoryBreakdown(entries, currentStart, currentEnd),
		Drinks:        stats.CalculateDrinkBreakdown(entries, currentStart, currentEnd),
		Days:          stats.DailyTotals(entries, currentStart, currentEnd),
		Comparison:    stats.FormatComparison(stats.CompareStatistics(current, previous), periodName),
		Period:        period,
		DailyLimit:    s.config.DailyLimit,
		Start:         currentStart,
		End:           currentEnd,
		PreviousStart: previousStart,
		PreviousEnd:   previousEnd,
	}
}

// clampToToday keeps days that have not started yet out of averages
// and drink-free counts.
func (s *StatsService) clampToToday(end time.Time) time.Time {
	_, today := s.cal.Today()
	if end.After(today) {
		return today
	}
	return end
}

// Today returns the units drunk today and whether the daily limit is exceeded.
func (s *StatsService) Today() (units float64, overLimit bool) {
	start, end := s.cal.Today()
	st := stats.CalculateStatistics(s.store.LoadAll(), start, end, s.config.DailyLimit)
	return st.TotalUnits, st.DaysOverLimit > 0
}
