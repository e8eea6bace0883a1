package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"rvtest/internal/config"
	"rvtest/internal/domain"
)

// Storage writes and reads run reports
type Storage interface {
	Save(report *Report) error
	Load() (*Report, error)
}

// Report is the JSON form of a finished run
type Report struct {
	RunID     string         `json:"run_id"`
	Timestamp string         `json:"timestamp"`
	Profile   string         `json:"profile"`
	Emulator  string         `json:"emulator"`
	Corpus    string         `json:"corpus"`
	Meta      ReportMeta     `json:"meta"`
	Results   []ResultRecord `json:"results"`
}

// ReportMeta contains the aggregate counts of a run
type ReportMeta struct {
	Total           int     `json:"total"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// ResultRecord is one executed test
type ResultRecord struct {
	Image           string   `json:"image"`
	Name            string   `json:"name"`
	Mode            string   `json:"mode"`
	Outcome         string   `json:"outcome"`
	ExitCode        int      `json:"exit_code"`
	Args            []string `json:"args"`
	DurationSeconds float64  `json:"duration_seconds"`
}

// NewReport builds a report for results, stamped with a fresh run ID
func NewReport(cfg *config.Config, results []domain.Result, duration time.Duration) *Report {
	summary := domain.Summarize(results)
	records := make([]ResultRecord, 0, len(results))
	for _, r := range results {
		records = append(records, ResultRecord{
			Image:           r.Test.Path,
			Name:            r.Test.DisplayName,
			Mode:            r.Test.Mode.String(),
			Outcome:         r.Outcome.String(),
			ExitCode:        r.ExitCode,
			Args:            r.Args,
			DurationSeconds: r.Duration.Seconds(),
		})
	}

	return &Report{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().Format(time.RFC3339),
		Profile:   cfg.Profile,
		Emulator:  cfg.GetEmulatorPath(),
		Corpus:    cfg.GetCorpusPath(),
		Meta: ReportMeta{
			Total:           summary.Total,
			Passed:          summary.Passed,
			Failed:          summary.Failed,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
		},
		Results: records,
	}
}

// DomainResults converts the records back into results, in report order
func (r *Report) DomainResults() ([]domain.Result, error) {
	results := make([]domain.Result, 0, len(r.Results))
	for i, rec := range r.Results {
		mode, err := domain.ParseMode(rec.Mode)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i+1, err)
		}
		outcome, err := domain.ParseOutcome(rec.Outcome)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i+1, err)
		}
		results = append(results, domain.Result{
			Test: domain.TestCase{
				Path:        rec.Image,
				DisplayName: rec.Name,
				Mode:        mode,
			},
			Outcome:  outcome,
			ExitCode: rec.ExitCode,
			Args:     rec.Args,
			Duration: time.Duration(rec.DurationSeconds * float64(time.Second)),
		})
	}
	return results, nil
}

// JSONStorage stores a report in a JSON file
type JSONStorage struct {
	path string
}

// NewJSONStorage returns a Storage that reads and writes path
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}
