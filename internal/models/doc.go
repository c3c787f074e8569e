// Package models defines the core domain models for the group budget service.
//
// # Models
//
//   - User: a registered account, created through /register
//   - Group: a named budget pool owned by exactly one user
//   - Membership: the user<->group join relation (owner included)
//
// # Design Principles
//
// 1. **ID strings, not pointers**: relationships reference UUIDs to avoid
// circular references between models.
// 2. **Immutable ownership**: a group's owner is set at creation and never
// changes; the owner is always a member of the group.
// 3. **No derived state**: membership lists and owned-group counts live in
// the store, never cached on the structs.
package models
