package domain

import "fmt"

// Slot is one of two fixed daily service windows
type Slot string

const (
	SlotMorning Slot = "morning"
	SlotEvening Slot = "evening"
)

// Slots lists every slot of a day in display order
var Slots = []Slot{SlotMorning, SlotEvening}

// IsValid returns true if the slot is a known value
func (s Slot) IsValid() bool {
	return s == SlotMorning || s == SlotEvening
}

// Column returns the availability flag column backing the slot
func (s Slot) Column() string {
	switch s {
	case SlotMorning:
		return "morning_open"
	case SlotEvening:
		return "evening_open"
	default:
		return ""
	}
}

// ParseSlot converts a raw value into a Slot
func ParseSlot(raw string) (Slot, error) {
	s := Slot(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown slot %q", raw)
	}
	return s, nil
}

// TripType is the direction of the transfer
type TripType string

const (
	TripHomeToAirport TripType = "home_to_airport"
	TripAirportToHome TripType = "airport_to_home"
)

// TripTypes lists every trip type
var TripTypes = []TripType{TripHomeToAirport, TripAirportToHome}

// IsValid returns true if the trip type is a known value
func (t TripType) IsValid() bool {
	return t == TripHomeToAirport || t == TripAirportToHome
}

// ParseTripType converts a raw value into a TripType
func ParseTripType(raw string) (TripType, error) {
	t := TripType(raw)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown trip type %q", raw)
	}
	return t, nil
}
