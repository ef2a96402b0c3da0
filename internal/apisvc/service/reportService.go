package service

import (
	"context"
	"time"

	"github.com/lifemon/lifemon-services/internal/apisvc/models"
	"github.com/lifemon/lifemon-services/internal/apisvc/store"

	"github.com/shopspring/decimal"
)

type reportStore interface {
	Totals(ctx context.Context, userID int64, start, end string) ([]store.DayTotals, error)
}

// ReportService builds the laporan (report) views from the log tables.
type ReportService struct {
	reports  reportStore
	profiles profileStore
}

func NewReportService(reports reportStore, profiles profileStore) *ReportService {
	return &ReportService{
		reports:  reports,
		profiles: profiles,
	}
}

func toDaily(t store.DayTotals) models.DailyReport {
	return models.DailyReport{
		Date:            t.Date,
		KaloriMasuk:     t.KaloriMasuk,
		KaloriTerbakar:  t.KaloriTerbakar,
		KaloriBersih:    t.KaloriMasuk - t.KaloriTerbakar,
		MenitTidur:      t.MenitTidur,
		MenitOlahraga:   t.MenitOlahraga,
		JumlahMakanan:   t.JumlahMakanan,
		JumlahOlahraga:  t.JumlahOlahraga,
		SudahCatatTidur: t.AdaTidur,
	}
}

// Daily aggregates one day. A day with no logs at all comes back zero
// valued, not as an error.
func (s *ReportService) Daily(ctx context.Context, userID int64, date string) (*models.DailyReport, error) {
	totals, err := s.reports.Totals(ctx, userID, date, date)
	if err != nil {
		return nil, err
	}

	if len(totals) == 0 {
		return &models.DailyReport{Date: date}, nil
	}

	r := toDaily(totals[0])
	return &r, nil
}

// Weekly builds a fixed Monday..Sunday window, zero filling days with no
// data, and attaches the BMI computed from the caller's profile when height
// and weight are both present. Any weekStart snaps back to the Monday of its
// week, so the window is always Mon..Sun regardless of the day requested.
func (s *ReportService) Weekly(ctx context.Context, userID int64, weekStart time.Time) (*models.WeeklyReport, error) {
	weekStart = CurrentMonday(weekStart)
	start := weekStart.Format("2006-01-02")
	end := weekStart.AddDate(0, 0, 6).Format("2006-01-02")

	totals, err := s.reports.Totals(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]store.DayTotals, len(totals))
	for _, t := range totals {
		byDate[t.Date] = t
	}

	days := make([]models.DailyReport, 7)
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i).Format("2006-01-02")
		if t, ok := byDate[date]; ok {
			days[i] = toDaily(t)
		} else {
			days[i] = models.DailyReport{Date: date}
		}
	}

	report := &models.WeeklyReport{
		WeekStart: start,
		WeekEnd:   end,
		Days:      days,
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		report.BMI = computeBMI(profile.TinggiBadan, profile.BeratBadan)
	}

	return report, nil
}

// computeBMI returns weight / height(m)^2 at one decimal place, or nil when
// either measurement is missing or non-positive.
func computeBMI(tinggiCM, beratKG *int) *string {
	if tinggiCM == nil || beratKG == nil || *tinggiCM <= 0 || *beratKG <= 0 {
		return nil
	}

	height := decimal.NewFromInt(int64(*tinggiCM)).Div(decimal.NewFromInt(100))
	bmi := decimal.NewFromInt(int64(*beratKG)).DivRound(height.Mul(height), 4).Round(1)

	s := bmi.String()
	return &s
}

// CurrentMonday returns the Monday of the week containing now, at midnight UTC.
func CurrentMonday(now time.Time) time.Time {
	now = now.UTC().Truncate(24 * time.Hour)
	offset := (int(now.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return now.AddDate(0, 0, -offset)
}
