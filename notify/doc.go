// Package notify broadcasts change events to subscribers of an editing
// session.
//
// Dispatch is synchronous. An event raised while another is being dispatched
// is queued and delivered after the current one reaches every subscriber, so
// observers always see events in the order they were raised and never see
// a nested dispatch.
package notify
