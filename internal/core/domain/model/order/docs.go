// Package order provides domain entities and business logic for customer
// order management in the food-ordering system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root carrying line items, total, payment method and lifecycle state
//   - LineItem: A value object for one product/size/quantity entry with its captured unit price
//   - Status: A state machine with an explicit transition table for the kitchen workflow
//
// Key business rules:
//   - Orders must contain at least one line item and a delivery address link
//   - The order total must equal the sum of line-item price x quantity at creation
//   - Unit prices are captured at order time and never change afterwards
//   - Status follows PENDING -> PREPARING -> READY -> DELIVERED with backward
//     corrections PREPARING -> PENDING and READY -> PREPARING; any non-terminal
//     status may be cancelled; DELIVERED and CANCELLED are terminal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
