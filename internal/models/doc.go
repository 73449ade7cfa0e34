// Package models defines the persisted domain models for tripsplit.
//
// # Models
//
//   - Trip: a group of members travelling together
//   - Member: one participant of a trip, identified by a userId
//   - Expense: a payment by one member, split among several members
//   - Payment: money one member already handed to another to settle up
//
// Balances and settlements are never stored. They are derived from a trip's
// members, expenses and payments on every read by the calculator package.
//
// # Design Principles
//
// 1. **Identifiers, not pointers**: relationships use ID strings
// 2. **Roster order matters**: Trip.Members keeps insertion order, the summary follows it
// 3. **Amounts are decimals here**: storage keeps integer cents, conversion happens at the edge
package models
