/*
Package ports defines the driven-side interfaces of the simulator.

The core never parses, stores or transports anything itself: definition blobs
live behind DefinitionStore, and fully-parsed immutable models are published
through ProcessSource and DecisionSource. Adapters (memory, redis, HTTP) plug
into these interfaces; RunDefinitionStoreContract is the reusable suite every
store backend must pass.
*/
package ports
