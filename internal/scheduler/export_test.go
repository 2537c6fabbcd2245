package scheduler

// RunJob runs the cron job of the scheduler once.
func (s *Scheduler) RunJob() {
	s.run()
}
