package entity

type DashboardStats struct {
	ActiveAlerts   int              `json:"activeAlerts"`
	Achievements   int              `json:"achievements"`
	WeeklyTotal    float64          `json:"weeklyTotal"`
	WeeklySpending []DailySpending  `json:"weeklySpending"`
	RiskEvents     []RiskEventCount `json:"riskEvents"`
}

type DailySpending struct {
	Day    string  `json:"day"`
	Amount float64 `json:"amount"`
}

type RiskEventCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}
