package datastore

import (
	"fmt"
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	"github.com/courtsight/nba-analytics/internal/domain/pipeline"
)

const reportFileName = "run_report.json"

// WriteReport persists the run report beside the output tables.
func (s *Store) WriteReport(report pipeline.RunReport) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	raw, err := sonic.ConfigDefault.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode run report: %w", err)
	}
	return s.writeAtomic(s.reportPath(), raw)
}

// ReadReport loads the last run report, if any.
func (s *Store) ReadReport() (pipeline.RunReport, error) {
	raw, err := os.ReadFile(s.reportPath())
	if err != nil {
		return pipeline.RunReport{}, fmt.Errorf("read run report: %w", err)
	}
	var report pipeline.RunReport
	if err := sonic.Unmarshal(raw, &report); err != nil {
		return pipeline.RunReport{}, fmt.Errorf("decode run report: %w", err)
	}
	return report, nil
}

func (s *Store) reportPath() string {
	return filepath.Join(s.dir, reportFileName)
}
