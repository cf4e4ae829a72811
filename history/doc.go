// Package history groups field writes into transactions that can be undone
// and redone as a whole.
//
// A transaction records (path, before, after) triples. Committing it applies
// the after values through a Store, asks the Store to recompute derived
// fields, and keeps whatever the recompute adjusted inside the same undo
// unit together with a checkpoint of the Store's derived state. Undo and
// redo replay all of it, so a record returns exactly to where it was even
// when the recompute touched fields the transaction never named.
package history
