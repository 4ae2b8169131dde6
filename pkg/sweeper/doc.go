// Package sweeper periodically deletes expired sessions and verifications.
//
// Jobs are registered by name and run one after another on every tick, and
// once immediately on Start. A failing job is logged and retried on the next
// tick; it never stops the sweeper or the other jobs.
//
//	s := sweeper.New(sweeper.WithInterval(cfg.Session.SweepInterval), sweeper.WithLogger(log))
//	_ = s.Add("sessions", sessions.SweepExpired)
//	_ = s.Add("verifications", verifications.SweepExpired)
//
//	if err := s.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
//		return err
//	}
package sweeper
