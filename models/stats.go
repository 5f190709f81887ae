package models

// OccupancySummary reports how much of the bookable day was actually booked.
type OccupancySummary struct {
	Date        string  `json:"date,omitempty"`
	TotalSlots  int     `json:"totalSlots"`
	BookedSlots int     `json:"bookedSlots"`
	RatePercent float64 `json:"occupancyRatePercent"`
}

// ServiceCount is a top-services dashboard row.
type ServiceCount struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Revenue   float64 `json:"revenue"`
}

// DailyReport is the summary emailed to the salon owner every evening.
type DailyReport struct {
	Date         string           `json:"date"`
	Occupancy    OccupancySummary `json:"occupancy"`
	Appointments int              `json:"appointments"`
	Cancelled    int              `json:"cancelled"`
	SalesTotal   float64          `json:"salesTotal"`
	SalesCount   int              `json:"salesCount"`
	TopServices  []ServiceCount   `json:"topServices,omitempty"`
}
