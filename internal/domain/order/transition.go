package order

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrStatusUnchanged      = errors.New("order already has this status")
	ErrTerminalStatus       = errors.New("order is in a terminal status")
	ErrAlreadyCancelled     = errors.New("order is already cancelled")
	ErrCannotCancel         = errors.New("cannot cancel at this stage")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrStaleStatus          = errors.New("status would move the order backwards")
)

var forward = map[Status][]Status{
	StatusPlaced:         {StatusConfirmed, StatusProcessing},
	StatusConfirmed:      {StatusProcessing, StatusPicked},
	StatusProcessing:     {StatusConfirmed, StatusPicked},
	StatusPicked:         {StatusShipped},
	StatusShipped:        {StatusOutForDelivery, StatusDelivered},
	StatusOutForDelivery: {StatusDelivered},
}

func isForward(from, to Status) bool {
	for _, s := range forward[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ResolveTransition checks a status change requested by actor against the
// transition table and returns the kind to record.
func ResolveTransition(from, to Status, actor Actor) (TransitionKind, error) {
	if !to.IsValid() {
		return "", ErrInvalidStatus
	}

	if actor == ActorCustomer {
		switch {
		case to != StatusCancelled:
			return "", ErrTransitionNotAllowed
		case from == StatusCancelled:
			return "", ErrAlreadyCancelled
		case !from.IsCancellable():
			return "", ErrCannotCancel
		}
		return KindCancel, nil
	}

	if from.IsTerminal() {
		return "", ErrTerminalStatus
	}
	if from == to {
		return "", ErrStatusUnchanged
	}

	switch actor {
	case ActorSystem:
		if isForward(from, to) {
			return KindTransition, nil
		}
		if to == StatusCancelled && from.IsCancellable() {
			return KindCancel, nil
		}
		return "", ErrTransitionNotAllowed
	case ActorAdmin:
		if isForward(from, to) {
			return KindTransition, nil
		}
		if to == StatusCancelled && from.IsCancellable() {
			return KindCancel, nil
		}
		return KindOverride, nil
	case ActorCarrier:
		if to == StatusCancelled || progressRank[to] > progressRank[from] {
			return KindCarrier, nil
		}
		return "", ErrStaleStatus
	default:
		return "", ErrTransitionNotAllowed
	}
}
