package models

import (
	"time"

	"github.com/google/uuid"
)

// PickupRequestStatus represents the status of a pickup request
type PickupRequestStatus string

const (
	PickupStatusPending   PickupRequestStatus = "PENDING"
	PickupStatusAccepted  PickupRequestStatus = "ACCEPTED"
	PickupStatusCompleted PickupRequestStatus = "COMPLETED"
	PickupStatusCancelled PickupRequestStatus = "CANCELLED"
)

// PickupRequest represents a rider's request for transport on a service day.
// PickupLatitude/PickupLongitude are joined in from the request's address and
// are nil until the address has been geocoded.
type PickupRequest struct {
	ID              uuid.UUID           `json:"id" db:"id"`
	OrgID           uuid.UUID           `json:"org_id" db:"org_id"`
	UserID          uuid.UUID           `json:"user_id" db:"user_id"`
	AddressID       uuid.UUID           `json:"address_id" db:"address_id"`
	ServiceDayID    uuid.UUID           `json:"service_day_id" db:"service_day_id"`
	Status          PickupRequestStatus `json:"status" db:"status"`
	DriverID        *uuid.UUID          `json:"driver_id" db:"driver_id"`
	DistanceKm      *float64            `json:"distance_km" db:"distance_km"`
	PickupLatitude  *float64            `json:"pickup_latitude" db:"pickup_latitude"`
	PickupLongitude *float64            `json:"pickup_longitude" db:"pickup_longitude"`
	PickupAddress   string              `json:"pickup_address" db:"pickup_address"`
	CreatedAt       time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at" db:"updated_at"`
}

// Geocoded reports whether the request's pickup address has coordinates.
func (p *PickupRequest) Geocoded() bool {
	return p.PickupLatitude != nil && p.PickupLongitude != nil
}

// Address represents a geocoded postal address owned by a user
type Address struct {
	ID         uuid.UUID `json:"id" db:"id"`
	OrgID      uuid.UUID `json:"org_id" db:"org_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	Street     string    `json:"street" db:"street"`
	City       string    `json:"city" db:"city"`
	Region     string    `json:"region" db:"region"`
	PostalCode string    `json:"postal_code" db:"postal_code"`
	Latitude   *float64  `json:"latitude" db:"latitude"`
	Longitude  *float64  `json:"longitude" db:"longitude"`
	IsDefault  bool      `json:"is_default" db:"is_default"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
