package promise

// Job is a single microtask: a captured reaction ready to run.
type Job func() error

// Queue is the FIFO, single-threaded, cooperative job queue spec.md §4.9
// describes sitting behind every promise reaction.
type Queue struct {
	jobs []Job
}

// Enqueue appends a job to the back of the queue.
func (q *Queue) Enqueue(j Job) {
	q.jobs = append(q.jobs, j)
}

// Len reports how many jobs are currently queued.
func (q *Queue) Len() int { return len(q.jobs) }

// RunAllEnqueuedJobs drains the queue FIFO. If a job returns an error, the
// drain stops immediately and that error is returned; every job still
// queued (the one that threw is not re-added) stays queued for the next
// drain, per spec.md §4.9.
func (q *Queue) RunAllEnqueuedJobs() error {
	for len(q.jobs) > 0 {
		job := q.jobs[0]
		q.jobs = q.jobs[1:]
		if err := job(); err != nil {
			return err
		}
	}
	return nil
}
