package Performance

import (
	"sort"

	"Darsgah/Models"
)

// GetSystemBenchmarks returns every benchmark with its achievement
// percentage computed at read time, ordered best first. The percentage is
// a projection, never persisted, so the registry cannot drift from its own
// ordering. Ties break by benchmark name so the order is stable.
func (t *Tracker) GetSystemBenchmarks() ([]Models.BenchmarkStatus, error) {
	var benchmarks []Models.SystemBenchmark
	if err := t.DB.Find(&benchmarks).Error; err != nil {
		return nil, err
	}

	statuses := make([]Models.BenchmarkStatus, 0, len(benchmarks))
	for _, benchmark := range benchmarks {
		status := Models.BenchmarkStatus{
			ID:            benchmark.ID,
			BenchmarkName: benchmark.BenchmarkName,
			CurrentValue:  benchmark.CurrentValue,
			TargetValue:   benchmark.TargetValue,
		}
		if benchmark.TargetValue != 0 {
			status.AchievementPercentage = benchmark.CurrentValue / benchmark.TargetValue * 100
		}
		statuses = append(statuses, status)
	}

	sort.Slice(statuses, func(i, j int) bool {
		if statuses[i].AchievementPercentage != statuses[j].AchievementPercentage {
			return statuses[i].AchievementPercentage > statuses[j].AchievementPercentage
		}
		return statuses[i].BenchmarkName < statuses[j].BenchmarkName
	})

	return statuses, nil
}

// UpdateBenchmark sets the live value of a named benchmark. The target is
// seeded externally and never touched here. Returns false when no
// benchmark carries that name.
func (t *Tracker) UpdateBenchmark(benchmarkName string, currentValue float64) (bool, error) {
	result := t.DB.Model(&Models.SystemBenchmark{}).
		Where("benchmark_name = ?", benchmarkName).
		Update("current_value", currentValue)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
