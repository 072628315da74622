// Package health runs named probes in parallel and aggregates the outcome.
//
//	resp := health.Run(ctx, health.Checks{
//		"s3": storage.Healthcheck(client, "my-bucket"),
//	}, health.WithTimeout(2*time.Second))
//	if err := resp.Err(); err != nil {
//		log.Warn("storage degraded", logger.Error(err))
//	}
//
// All checks share one timeout. A check that runs out of time is reported
// with ErrCheckTimeout in its error text.
package health
