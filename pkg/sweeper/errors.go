package sweeper

import "errors"

var (
	ErrNoJobs               = errors.New("sweeper.no_jobs")
	ErrJobAlreadyRegistered = errors.New("sweeper.job_already_registered")
	ErrInvalidJob           = errors.New("sweeper.invalid_job")
)
