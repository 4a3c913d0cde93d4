package queueing

import (
	"barberline/internal/pkg/errs"
)

var ErrInvalidServiceKind = errs.New("invalid service kind")

// ServiceKind is the fixed set of services a customer can queue for.
type ServiceKind string

const (
	ServiceHaircut      ServiceKind = "haircut"
	ServiceBeard        ServiceKind = "beard"
	ServiceHaircutBeard ServiceKind = "haircut_beard"
)

func NewServiceKind(value string) (ServiceKind, error) {
	switch ServiceKind(value) {
	case ServiceHaircut, ServiceBeard, ServiceHaircutBeard:
		return ServiceKind(value), nil
	default:
		return "", ErrInvalidServiceKind
	}
}

func (k ServiceKind) String() string {
	return string(k)
}

// RemovalReason distinguishes the operator-initiated dequeue paths. Only a
// served removal produces a history record.
type RemovalReason string

const (
	RemovalServed RemovalReason = "served"
	RemovalNoShow RemovalReason = "no_show"
)

var ErrInvalidRemovalReason = errs.New("invalid removal reason")

func NewRemovalReason(value string) (RemovalReason, error) {
	switch RemovalReason(value) {
	case RemovalServed, RemovalNoShow:
		return RemovalReason(value), nil
	default:
		return "", ErrInvalidRemovalReason
	}
}
