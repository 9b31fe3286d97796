package domain

// DashboardStats is the wire payload served by GET /dashboard-stats.
// The scalar counters are pointers so a consumer can tell an absent field
// apart from an explicit zero; the aggregation layer owns that default
// policy, not the decoder.
type DashboardStats struct {
	DailyBookings        *int               `json:"daily_bookings"`
	WeeklyBookings       *int               `json:"weekly_bookings"`
	MonthlyBookings      *int               `json:"monthly_bookings"`
	TotalCancellations   *int               `json:"total_cancellations"`
	TodaysBookingsList   []BookingDetail    `json:"todays_bookings_list"`
	DailyBookingsChart   map[string]int     `json:"daily_bookings_chart"`
	YearlyBreakdownChart []MonthlyBreakdown `json:"yearly_breakdown_chart"`
}

// BookingDetail is one row of the today's-bookings table.
type BookingDetail struct {
	CustomerName    string `json:"customer_name"`
	Vehicle         string `json:"vehicle"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
}

// MonthlyBreakdown is one bar of the yearly chart.
type MonthlyBreakdown struct {
	Month         string `json:"month"`
	Bookings      int    `json:"bookings"`
	Cancellations int    `json:"cancellations"`
}
