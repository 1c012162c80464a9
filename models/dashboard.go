package models

// Hearing is an upcoming court date surfaced on the lawyer dashboard.
type Hearing struct {
	Date  string `json:"date"`
	Court string `json:"court"`
	Case  string `json:"case"`
}

// RecentClient is a recently added client on the lawyer dashboard.
type RecentClient struct {
	Name   string `json:"name"`
	Case   string `json:"case"`
	Status string `json:"status"`
}

// LawyerDashboard aggregates a lawyer's practice at a glance.
type LawyerDashboard struct {
	Stats struct {
		ActiveCases   int64   `json:"active_cases"`
		TotalClients  int64   `json:"total_clients"`
		Consultations int64   `json:"consultations_this_month"`
		Revenue       float64 `json:"revenue"`
	} `json:"stats"`
	UpcomingHearings []Hearing      `json:"upcoming_hearings"`
	RecentClients    []RecentClient `json:"recent_clients"`
}

// ClientDashboard aggregates a client's activity.
type ClientDashboard struct {
	Stats struct {
		ActiveCases      int64   `json:"active_cases"`
		PendingDocuments int64   `json:"pending_documents"`
		TotalSpent       float64 `json:"total_spent"`
	} `json:"stats"`
	RecentCases      []Case    `json:"recent_cases"`
	UpcomingHearings []Hearing `json:"upcoming_hearings"`
}
