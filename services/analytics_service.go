package services

import (
	"context"
	"errors"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// ---------- Summary ----------

type MetricAvg struct {
	AvgActual  float64 `json:"avg_actual"`
	AvgGoal    float64 `json:"avg_goal,omitempty"`
	AvgPercent float64 `json:"avg_percent,omitempty"`
	Unit       string  `json:"unit,omitempty"`
}

type AnalyticsSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Energy map[string]MetricAvg `json:"energy"` // calories_in, calories_out, net
	Macros map[string]MetricAvg `json:"macros"` // carbs, protein, fat grams
	Other  map[string]MetricAvg `json:"other"`  // exercise minutes, sleep minutes

	Sleep struct {
		DaysLogged int            `json:"days_logged"`
		ByStatus   map[string]int `json:"by_status"`
	} `json:"sleep"`

	Metadata struct {
		DaysCounted        int  `json:"days_counted"`
		IncludeMissingDays bool `json:"include_missing_days"`
	} `json:"metadata"`
}

func (s *AnalyticsService) Summary(
	ctx context.Context, userID uint, from, to time.Time, includeMissing bool,
) (*AnalyticsSummary, error) {

	var rows []models.DailyLedgerRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	goal, err := s.getGoalSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	// index rows by yyyy-mm-dd for missing-day handling
	idx := map[string]models.DailyLedgerRecord{}
	for _, r := range rows {
		idx[r.Date.Format("2006-01-02")] = r
	}

	type acc struct{ sum, gsum, psum float64 }
	m := map[string]*acc{
		"calories_in": {}, "calories_out": {}, "net": {},
		"carbs": {}, "protein": {}, "fat": {},
		"exercise_minutes": {}, "sleep_minutes": {},
	}

	var dates []time.Time
	if includeMissing {
		for d := dayStart(from); !d.After(to); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}
	} else {
		for _, r := range rows {
			dates = append(dates, dayStart(r.Date))
		}
	}

	sleepByStatus := map[string]int{}
	sleepDays := 0

	for _, d := range dates {
		key := d.Format("2006-01-02")
		rec := idx[key] // zero value if not found

		carbs, _ := rec.TotalCarbs.Float64()
		protein, _ := rec.TotalProtein.Float64()
		fat, _ := rec.TotalFat.Float64()

		m["calories_in"].sum += float64(rec.TotalCaloriesIn)
		m["calories_out"].sum += float64(rec.TotalCaloriesOut)
		m["net"].sum += float64(rec.NetCalories)
		m["carbs"].sum += carbs
		m["protein"].sum += protein
		m["fat"].sum += fat
		m["exercise_minutes"].sum += float64(rec.ExerciseMinutes)
		if rec.SleepDurationMin != nil {
			m["sleep_minutes"].sum += float64(*rec.SleepDurationMin)
			sleepDays++
		}
		if rec.SleepStatus != nil {
			sleepByStatus[*rec.SleepStatus]++
		}

		type pair struct {
			g float64
			k string
			c float64
		}
		for _, p := range []pair{
			{float64(goal.CaloriesIn), "calories_in", float64(rec.TotalCaloriesIn)},
			{float64(goal.CaloriesOut), "calories_out", float64(rec.TotalCaloriesOut)},
			{float64(goal.ExerciseMinutes), "exercise_minutes", float64(rec.ExerciseMinutes)},
		} {
			m[p.k].gsum += p.g
			if p.g > 0 {
				m[p.k].psum += (p.c / p.g) * 100.0
			}
		}
	}

	out := &AnalyticsSummary{}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = to.Format("2006-01-02")
	out.Metadata.DaysCounted = len(dates)
	out.Metadata.IncludeMissingDays = includeMissing

	out.Energy = map[string]MetricAvg{
		"calories_in":  {AvgActual: avg(m["calories_in"].sum, len(dates)), AvgGoal: avg(m["calories_in"].gsum, len(dates)), AvgPercent: avg(m["calories_in"].psum, len(dates)), Unit: "kcal"},
		"calories_out": {AvgActual: avg(m["calories_out"].sum, len(dates)), AvgGoal: avg(m["calories_out"].gsum, len(dates)), AvgPercent: avg(m["calories_out"].psum, len(dates)), Unit: "kcal"},
		"net":          {AvgActual: avg(m["net"].sum, len(dates)), Unit: "kcal"},
	}
	out.Macros = map[string]MetricAvg{
		"carbs":   {AvgActual: avg(m["carbs"].sum, len(dates)), Unit: "g"},
		"protein": {AvgActual: avg(m["protein"].sum, len(dates)), Unit: "g"},
		"fat":     {AvgActual: avg(m["fat"].sum, len(dates)), Unit: "g"},
	}
	out.Other = map[string]MetricAvg{
		"exercise_minutes": {AvgActual: avg(m["exercise_minutes"].sum, len(dates)), AvgGoal: avg(m["exercise_minutes"].gsum, len(dates)), AvgPercent: avg(m["exercise_minutes"].psum, len(dates)), Unit: "minutes"},
		"sleep_minutes":    {AvgActual: avg(m["sleep_minutes"].sum, sleepDays), Unit: "minutes"},
	}

	out.Sleep.DaysLogged = sleepDays
	out.Sleep.ByStatus = sleepByStatus

	return out, nil
}

// ---------- Weekly Overview ----------

type WeeklyOverviewResponse struct {
	WeekStart string `json:"week_start"`
	Mode      string `json:"mode"` // chart|detailed
	Days      any    `json:"days"`
}

type DayChart struct {
	Date        string             `json:"date"`
	Percentages map[string]float64 `json:"percentages"`
}
type Metric struct {
	Actual  float64 `json:"actual"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}
type DayDetailed struct {
	Date    string            `json:"date"`
	Metrics map[string]Metric `json:"metrics"`
}

func (s *AnalyticsService) WeeklyOverview(
	ctx context.Context, userID uint, weekStart time.Time, mode string,
) (*WeeklyOverviewResponse, error) {

	if mode != "chart" && mode != "detailed" {
		return nil, errors.New("mode must be 'chart' or 'detailed'")
	}

	from := dayStart(weekStart)
	to := from.AddDate(0, 0, 6)

	var rows []models.DailyLedgerRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, dayEnd(to)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	idx := map[string]models.DailyLedgerRecord{}
	for _, r := range rows {
		idx[r.Date.Format("2006-01-02")] = r
	}

	goal, err := s.getGoalSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &WeeklyOverviewResponse{
		WeekStart: from.Format("2006-01-02"),
		Mode:      mode,
	}

	if mode == "chart" {
		var days []DayChart
		for i := 0; i < 7; i++ {
			d := from.AddDate(0, 0, i)
			key := d.Format("2006-01-02")
			rec := idx[key]
			sleep := 0.0
			if rec.SleepDurationMin != nil {
				sleep = float64(*rec.SleepDurationMin)
			}
			days = append(days, DayChart{
				Date: key,
				Percentages: map[string]float64{
					"calories_in":      pct(float64(rec.TotalCaloriesIn), float64(goal.CaloriesIn)),
					"calories_out":     pct(float64(rec.TotalCaloriesOut), float64(goal.CaloriesOut)),
					"exercise_minutes": pct(float64(rec.ExerciseMinutes), float64(goal.ExerciseMinutes)),
					"sleep_minutes":    pct(sleep, float64(goal.SleepMinutes)),
				},
			})
		}
		out.Days = days
		return out, nil
	}

	var days []DayDetailed
	for i := 0; i < 7; i++ {
		d := from.AddDate(0, 0, i)
		key := d.Format("2006-01-02")
		rec := idx[key]
		sleep := 0.0
		if rec.SleepDurationMin != nil {
			sleep = float64(*rec.SleepDurationMin)
		}
		days = append(days, DayDetailed{
			Date: key,
			Metrics: map[string]Metric{
				"calories_in":      {Actual: float64(rec.TotalCaloriesIn), Target: float64(goal.CaloriesIn), Percent: pct(float64(rec.TotalCaloriesIn), float64(goal.CaloriesIn))},
				"calories_out":     {Actual: float64(rec.TotalCaloriesOut), Target: float64(goal.CaloriesOut), Percent: pct(float64(rec.TotalCaloriesOut), float64(goal.CaloriesOut))},
				"net":              {Actual: float64(rec.NetCalories)},
				"exercise_minutes": {Actual: float64(rec.ExerciseMinutes), Target: float64(goal.ExerciseMinutes), Percent: pct(float64(rec.ExerciseMinutes), float64(goal.ExerciseMinutes))},
				"sleep_minutes":    {Actual: sleep, Target: float64(goal.SleepMinutes), Percent: pct(sleep, float64(goal.SleepMinutes))},
			},
		})
	}
	out.Days = days
	return out, nil
}

// ---------- internals ----------

func (s *AnalyticsService) getGoalSnapshot(ctx context.Context, userID uint) (*models.DailyGoal, error) {
	var g models.DailyGoal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.DailyGoal{}, nil
		}
		return nil, err
	}
	return &g, nil
}

func pct(actual, goal float64) float64 {
	if goal <= 0 {
		if actual <= 0 {
			return 0
		}
		return 100
	}
	return round2((actual / goal) * 100.0)
}

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
