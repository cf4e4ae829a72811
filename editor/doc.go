// Package editor ties the record, the path resolver, the constraint engine,
// the undo history and the change notifier into one Session.
//
// A Session owns one character record for its whole lifetime. Undoable edits
// go through BeginEdit/Record/EndEdit (or Edit); direct writes through Set
// stay unclamped until CommitAndRecompute. Every commit, undo, redo,
// recompute and regeneration raises one event to the Session's subscribers.
package editor
