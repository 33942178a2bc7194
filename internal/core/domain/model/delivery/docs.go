// Package delivery provides domain entities for the delivery side of the
// marketplace: the Assignment aggregate binding an order to a delivery
// person, the Person entity whose availability drives matching, and the
// assignment Status machine.
//
// The assignment lifecycle is strictly monotonic:
//
//	pending ──> accepted ──> picked_up ──> delivered
//
// No skipping and no cancellation path exist; delivered is terminal. Each
// milestone stamps its timestamp exactly once.
//
// A CascadePolicy maps each assignment status to the order status it
// implies. The default policy maps accepted to confirmed, skipping the
// order graph's preparing and ready states; that bypass reproduces the
// product's intended coupling and is configurable rather than hard-coded.
package delivery
