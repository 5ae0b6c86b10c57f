package reservations

import "reservas-server/internal/db"

// Package reservations provides the reservation CRUD HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP methods are split into dedicated, focused files:
// - list.go:   Handler.List
// - get.go:    Handler.Get
// - create.go: Handler.Create
// - update.go: Handler.Update
// - delete.go: Handler.Delete
// Validation rules and error shaping live in validate.go.

// Handler wires reservation endpoints to the data store.
type Handler struct{ db *db.DB }

// New returns a new reservations handler.
func New(d *db.DB) *Handler { return &Handler{db: d} }
