package grid

import "errors"

var (
	// ErrNotSquare indicates that the unit count is not a positive perfect square.
	ErrNotSquare = errors.New("grid: unit count must be a positive perfect square")

	// ErrBadSize indicates a non-positive world size or grid side.
	ErrBadSize = errors.New("grid: size must be > 0")

	// ErrRank indicates a rank outside [0, size) or a group root outside the group.
	ErrRank = errors.New("grid: rank out of range")

	// ErrNotMember indicates that a unit built a group it does not belong to.
	ErrNotMember = errors.New("grid: unit is not a member of the group")

	// ErrTagMismatch indicates that the received message carries another tag
	// than the one the receiver expects; the units disagree on the protocol.
	ErrTagMismatch = errors.New("grid: message tag mismatch")

	// ErrLengthMismatch indicates a message whose payload length differs from
	// the receive buffer.
	ErrLengthMismatch = errors.New("grid: message length mismatch")

	// ErrWorldUsed indicates a second Run on the same World.
	ErrWorldUsed = errors.New("grid: world already ran")
)
