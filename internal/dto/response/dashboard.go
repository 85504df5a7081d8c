package response

// DashboardResponse is the admin system summary.
type DashboardResponse struct {
	Users   UserCounts  `json:"users"`
	Stores  int64       `json:"stores"`
	Ratings RatingStats `json:"ratings"`
}

type UserCounts struct {
	Total       int64 `json:"total"`
	Admins      int64 `json:"admins"`
	Owners      int64 `json:"owners"`
	NormalUsers int64 `json:"normalUsers"`
}

type RatingStats struct {
	Total int64 `json:"total"`
	// Average is the system-wide mean formatted to two decimals,
	// "0.00" when no ratings exist.
	Average string `json:"average"`
}
