// Package engine runs visualization modes: a [Registry] of variants keyed
// by (mode, algorithm), a [Session] that owns the active simulation state,
// and a [Driver] that ties a [Camera] and [Clock] to a render surface.
//
// A surface loop owns one Driver and calls Frame once per tick:
//
//	sess := engine.NewSession(modes.Registry(), logger, seed)
//	if err := sess.Select("fluidField", "v0", bounds); err != nil {
//		return err
//	}
//	drv := engine.NewDriver(sess)
//	drv.Eval = f
//	for running {
//		drv.Frame(surface, time.Now())
//	}
//
// Everything runs on the caller's goroutine; there are no locks.
package engine
