// Package memory implements the store ports in process memory.
//
// Each entity sits behind its own mutex, so Update calls on different IDs run
// in parallel while Update calls on the same ID serialize. The map lock is
// never held while an update function runs.
package memory
