// Package sequence mints globally unique human-readable identifiers from
// durable named counters.
package sequence

import (
	"context"
	"fmt"

	counterRepo "medonrent/database/repository/counter"
	"medonrent/services/apperrors"
)

// Counter names. Values match the documents the store has accumulated.
const (
	PatientCounter     = "patientID"
	DeviceCounter      = "deviceID"
	RentSessionCounter = "RentSessionID"
)

// ID prefixes per entity type.
const (
	patientPrefix     = "P"
	devicePrefix      = "D"
	rentSessionPrefix = "RENT"
)

// padWidth is the zero-pad width of the numeric part of every minted ID.
const padWidth = 7

// Allocator issues monotonically increasing, collision-free sequences and
// formats them into prefixed IDs.
type Allocator interface {
	Allocate(ctx context.Context, counterName string) (int64, error)
	PatientID(ctx context.Context) (string, error)
	DeviceID(ctx context.Context) (string, error)
	RentSessionID(ctx context.Context) (string, error)
}

// DefaultAllocator implements Allocator over a counter repository.
type DefaultAllocator struct {
	Repo counterRepo.CounterRepository
}

// Allocate returns the next value of the named counter. Every call returns
// a strictly greater value than any previous call for the same name; the
// increment happens atomically at the store.
func (a *DefaultAllocator) Allocate(ctx context.Context, counterName string) (int64, error) {
	seq, err := a.Repo.Next(ctx, counterName)
	if err != nil {
		return 0, apperrors.NewStorage(fmt.Sprintf("failed to allocate sequence %q", counterName), err)
	}
	return seq, nil
}

func (a *DefaultAllocator) formatted(ctx context.Context, counterName, prefix string) (string, error) {
	seq, err := a.Allocate(ctx, counterName)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", prefix, padWidth, seq), nil
}

// PatientID mints the next patient identifier (P0000001 style).
func (a *DefaultAllocator) PatientID(ctx context.Context) (string, error) {
	return a.formatted(ctx, PatientCounter, patientPrefix)
}

// DeviceID mints the next device identifier (D0000001 style).
func (a *DefaultAllocator) DeviceID(ctx context.Context) (string, error) {
	return a.formatted(ctx, DeviceCounter, devicePrefix)
}

// RentSessionID mints the next rent session identifier (RENT0000001 style).
func (a *DefaultAllocator) RentSessionID(ctx context.Context) (string, error) {
	return a.formatted(ctx, RentSessionCounter, rentSessionPrefix)
}
