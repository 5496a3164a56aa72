package scorecard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/discochess/scorecard/internal/record"
	"github.com/discochess/scorecard/internal/source/memsource"
)

func TestNew_RequiresSource(t *testing.T) {
	_, err := New()
	if !errors.Is(err, ErrNoSource) {
		t.Errorf("New() error = %v, want ErrNoSource", err)
	}
}

func TestNew_WithSource(t *testing.T) {
	mem := memsource.New()
	client, err := New(WithSource(mem))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	if client.Source() != mem {
		t.Error("Source() returned unexpected source")
	}
}

func TestClient_Close(t *testing.T) {
	client, err := New(WithSource(memsource.New()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := client.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	// Second close should return ErrClosed.
	if err := client.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("Close() second call error = %v, want ErrClosed", err)
	}
}

func TestClient_OpeningReport_AfterClose(t *testing.T) {
	client, err := New(WithSource(memsource.New()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	client.Close()

	if _, err := client.OpeningReport(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("OpeningReport() after close error = %v, want ErrClosed", err)
	}
}

func TestClient_OpeningReport_NoRecords(t *testing.T) {
	client, err := New(WithSource(memsource.New()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	report, err := client.OpeningReport(context.Background())
	if err != nil {
		t.Fatalf("OpeningReport() error = %v", err)
	}
	if !report.Empty() {
		t.Error("report should be empty with no records")
	}
	if report.Advisory == "" {
		t.Error("empty report should carry an advisory")
	}
}

func TestClient_OpeningReport_NoPGNData(t *testing.T) {
	mem := memsource.New(
		record.GameRecord{Result: record.ResultWin, Side: record.SideWhite},
		record.GameRecord{Result: record.ResultLoss, Side: record.SideBlack},
	)
	client, err := New(WithSource(mem))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	report, err := client.OpeningReport(context.Background())
	if err != nil {
		t.Fatalf("OpeningReport() error = %v", err)
	}

	// A log with no PGN at all yields empty opening data, not an
	// "Unknown Opening" bucket.
	if !report.Empty() {
		t.Errorf("report = %+v, want empty without PGN data", report.Summaries)
	}
	if report.Advisory == "" {
		t.Error("report should carry an advisory")
	}
	if report.TotalGames != 2 {
		t.Errorf("TotalGames = %d, want 2", report.TotalGames)
	}
}

func TestClient_OpeningReport_MinGames(t *testing.T) {
	mem := memsource.New(
		record.GameRecord{PGN: "1. e4 e5 *", Result: record.ResultWin},
		record.GameRecord{PGN: "1. e4 e5 *", Result: record.ResultLoss},
		record.GameRecord{PGN: "1. c4 e5 *", Result: record.ResultWin},
	)
	client, err := New(WithSource(mem))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	report, err := client.OpeningReport(ctx, WithMinGames(2))
	if err != nil {
		t.Fatalf("OpeningReport() error = %v", err)
	}
	if len(report.Summaries) != 1 || report.Summaries[0].Opening != "Open Game" {
		t.Errorf("Summaries = %+v, want only Open Game", report.Summaries)
	}

	// A threshold that excludes everything yields an advisory.
	report, err = client.OpeningReport(ctx, WithMinGames(10))
	if err != nil {
		t.Fatalf("OpeningReport() error = %v", err)
	}
	if !report.Empty() || report.Advisory == "" {
		t.Errorf("report = %+v, want empty with advisory", report)
	}
}

func TestClient_OpeningReport_SideFilter(t *testing.T) {
	mem := memsource.New(
		record.GameRecord{PGN: "1. e4 e5 *", Side: record.SideWhite, Result: record.ResultWin},
		record.GameRecord{PGN: "1. d4 d5 *", Side: record.SideBlack, Result: record.ResultLoss},
	)
	client, err := New(WithSource(mem))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	report, err := client.OpeningReport(context.Background(), WithSide(record.SideWhite))
	if err != nil {
		t.Fatalf("OpeningReport() error = %v", err)
	}
	if report.TotalGames != 1 {
		t.Errorf("TotalGames = %d, want 1", report.TotalGames)
	}
	if len(report.Summaries) != 1 || report.Summaries[0].Opening != "Open Game" {
		t.Errorf("Summaries = %+v, want only Open Game", report.Summaries)
	}
}

func TestClient_OpeningReport_DateFilter(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}
	mem := memsource.New(
		record.GameRecord{Date: day("2025-01-10"), PGN: "1. e4 e5 *", Result: record.ResultWin},
		record.GameRecord{Date: day("2025-03-10"), PGN: "1. d4 d5 *", Result: record.ResultWin},
	)
	client, err := New(WithSource(mem))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	report, err := client.OpeningReport(context.Background(),
		WithDateRange(day("2025-01-01"), day("2025-01-31")))
	if err != nil {
		t.Fatalf("OpeningReport() error = %v", err)
	}
	if report.TotalGames != 1 {
		t.Errorf("TotalGames = %d, want 1", report.TotalGames)
	}
}

func TestClient_Insights(t *testing.T) {
	mem := memsource.New(
		record.GameRecord{Result: record.ResultWin},
		record.GameRecord{Result: record.ResultLoss},
	)
	client, err := New(WithSource(mem))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	insights, err := client.Insights(context.Background())
	if err != nil {
		t.Fatalf("Insights() error = %v", err)
	}
	if insights.TotalGames != 2 || insights.WinRate != 50 {
		t.Errorf("Insights = %+v, want 2 games at 50%%", insights)
	}
	if len(insights.Messages) == 0 {
		t.Error("Insights should carry at least an advisory message")
	}
}

func TestWithRules(t *testing.T) {
	mem := memsource.New(
		record.GameRecord{PGN: "1. e4 e5 *", Result: record.ResultWin},
	)
	client, err := New(
		WithSource(mem),
		WithRules(nil), // Empty rule table: everything falls to Other Opening.
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	report, err := client.OpeningReport(context.Background())
	if err != nil {
		t.Fatalf("OpeningReport() error = %v", err)
	}
	if len(report.Summaries) != 1 || report.Summaries[0].Opening != "Other Opening" {
		t.Errorf("Summaries = %+v, want Other Opening", report.Summaries)
	}
}
