// Package ports defines the contracts between the ordering core and its
// adapters: persistence, catalog reads, notifications and request
// deduplication.
package ports
