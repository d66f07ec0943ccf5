// Package progcache caches compiled shader programs by descriptor.
//
// The cache is sharded to keep lock contention low on the draw path:
// descriptor bytes are hashed with FNV-1a to pick one of 16 shards, each
// with its own lock and LRU list. Equal descriptor bytes always select
// the same entry, which is the whole point of canonical descriptors.
//
// [Cache.Program] is the top of the pipeline: build the descriptor for
// a draw, return the cached program if one exists, otherwise generate
// and compile it under the shard lock so concurrent draws of the same
// configuration compile once.
package progcache
