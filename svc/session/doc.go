// Package session manages durable visitor sessions.
//
// A Session is keyed by an opaque, immutable identifier and carries the list
// of sources the visitor pinned. Store persists sessions; MemoryStore,
// PostgresStore and RedisStore implement it with atomic creation, so two
// creates of one identifier yield exactly one ErrSessionExists.
//
// Resolver derives the effective session of a request from two explicit
// inputs, the sync parameter and the session cookie value:
//
//	res, err := resolver.Resolve(ctx, syncParam, sessionCookie)
//	if err != nil {
//		return err
//	}
//	if res.EmitWelcome {
//		// set welcomed=true
//	}
//
// Cookie writing is left to the caller.
package session
