package dispatcher

import "errors"

// Score weights. Higher total score means a better candidate.
const (
	distanceWeight       = -2
	passengerCountWeight = -1
	targetFloorsWeight   = -1
	sameDirectionAhead   = 3
	sameDirectionBehind  = -3
	oppositeDirection    = -5
	idleBonus            = 2
)

var (
	ErrInvalidFloor          = errors.New("invalid floor")
	ErrSameOriginDestination = errors.New("same origin and destination")
)
