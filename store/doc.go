// Package store is a minimal execution layer: an in-memory Objects tree
// that resolves node references, applies writes and answers one-shot
// reads. It exists to exercise envelopes end to end; it keeps no history
// and schedules no subscriptions.
package store
