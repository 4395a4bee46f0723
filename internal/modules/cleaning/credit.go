package cleaning

// Credit splits an apartment's standard cleaning minutes across the workers
// sharing the task. Each worker earns minutes/n and a 1/n apartment-count,
// so a shared task never double-counts building workload.
func Credit(cleaningMinutes, workers int) (minutes float64, share float64) {
	if workers < 1 {
		workers = 1
	}
	return float64(cleaningMinutes) / float64(workers), 1 / float64(workers)
}
