package domain

import "errors"

var (
	ErrInvalidRoom = errors.New("invalid room id")
	ErrInvalidSlot = errors.New("invalid slot hour")
	ErrSlotTaken   = errors.New("slot already booked for this room and time")
)
