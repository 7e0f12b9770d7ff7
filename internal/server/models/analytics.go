package models

type DailySessions struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type UserActivity struct {
	ActiveUsers            int    `json:"active_users"`
	TotalMessages          int    `json:"total_messages"`
	AverageSessionDuration string `json:"average_session_duration"`
}

type SystemMetrics struct {
	CPUUsage         int `json:"cpu_usage"`
	MemoryUsage      int `json:"memory_usage"`
	StorageUsage     int `json:"storage_usage"`
	NetworkBandwidth int `json:"network_bandwidth"`
}

type Analytics struct {
	DailySessions []DailySessions `json:"daily_sessions"`
	UserActivity  UserActivity    `json:"user_activity"`
	SystemMetrics SystemMetrics   `json:"system_metrics"`
}
