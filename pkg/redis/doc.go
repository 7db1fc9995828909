// Package redis connects to Redis through go-redis with bounded retries and
// exposes a readiness check. The session store builds on the returned client.
package redis
