// Package progress carries ordered human-readable status messages from a
// running export to whoever is watching it.
//
// The channel-backed sink never blocks the export worker: when the consumer
// falls behind or no channel is configured, messages degrade to the local
// logger. Discard drops everything for callers that want neither.
package progress
