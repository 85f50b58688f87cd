// Package delivery contains the Delivery aggregate of the delivery scheduler.
//
// A delivery brings one order to its event. It is never scheduled in the
// past nor after the event date, and its state machine mirrors the order
// one: DELIVERED is final and CANCELLED can only be rescheduled.
package delivery
