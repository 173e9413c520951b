// Package services defines request-scoped helpers shared by the catalog
// integrations and the transport layers.
//
// Context helpers stamp correlation identifiers and the calling user onto a
// request so logging and language resolution can read them without any
// process-wide state. Each handler invocation builds its own context; nothing
// here outlives the request that created it.
package services
