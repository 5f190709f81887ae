// File: handlers/bundle.go
package handlers

import (
	staffRepoPkg "salonflow/database/repository/staff"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	StaffRepo staffRepoPkg.StaffRepository

	Auth         *AuthHandler
	Availability *AvailabilityHandler
	Appointment  *AppointmentHandler
	Salon        *SalonHandler
	Checkout     *CheckoutHandler
	Stats        *StatsHandler
	Client       *ClientHandler
}
