// Package entity defines the twelve canonical record types synchronized
// from the warehouse and the projections that build them from raw rows.
//
// Every mapper is a total function: a missing or malformed field becomes
// nil (or a documented wall-clock fallback), never an error. By the time a
// record leaves a mapper, every field is a plain typed value or nil; no
// boxed warehouse scalar representations survive. Records are ephemeral,
// constructed fresh on each sync run and handed straight to the loader.
package entity
