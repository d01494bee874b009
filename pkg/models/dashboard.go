package models

import "time"

// Dashboard report payloads. Shapes follow the admin dashboard widgets:
// counters, growth badges, chart series and activity feeds.

type DashboardStats struct {
	TotalUsers         int64 `json:"totalUsers"`
	TotalCategories    int64 `json:"totalCategories"`
	TotalMenus         int64 `json:"totalMenus"`
	TotalProducts      int64 `json:"totalProducts"`
	ActiveUsers        int64 `json:"activeUsers"`
	ActiveCategories   int64 `json:"activeCategories"`
	InactiveUsers      int64 `json:"inactiveUsers"`
	InactiveCategories int64 `json:"inactiveCategories"`
}

type GrowthStats struct {
	Users      int `json:"users"`
	Categories int `json:"categories"`
	Products   int `json:"products"`
}

type Activity struct {
	ID         string    `json:"_id"`
	Type       string    `json:"type"`
	Action     string    `json:"action"`
	EntityName string    `json:"entityName"`
	CreatedAt  time.Time `json:"createdAt"`
}

type DashboardOverview struct {
	Stats            DashboardStats `json:"stats"`
	Growth           GrowthStats    `json:"growth"`
	RecentActivities []Activity     `json:"recentActivities"`
}

// MonthlyCount is one month bucket of a created-at series.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
	Type  string `json:"type"`
}

// DailyCount is one day bucket of the 7-day trend series.
type DailyCount struct {
	Date  string `bson:"_id" json:"date"`
	Count int64  `bson:"count" json:"count"`
}

type UserSummary struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Growth   int   `json:"growth"`
}

type UserBreakdown struct {
	ByRole  map[string]int64 `json:"byRole"`
	Monthly []MonthlyCount   `json:"monthly"`
	Weekly  []DailyCount     `json:"weekly"`
}

type UserStats struct {
	Summary   UserSummary   `json:"summary"`
	Breakdown UserBreakdown `json:"breakdown"`
}

type CategoryProductCount struct {
	ID           string `bson:"_id" json:"_id"`
	Name         string `bson:"name" json:"name"`
	Slug         string `bson:"slug" json:"slug"`
	IsActive     bool   `bson:"isActive" json:"isActive"`
	ProductCount int64  `bson:"productCount" json:"productCount"`
}

type CategorySummary struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Empty    int64 `json:"empty"`
	Growth   int   `json:"growth"`
}

type CategoryDetails struct {
	WithProducts  []CategoryProductCount `json:"withProducts"`
	TopPerforming []CategoryProductCount `json:"topPerforming"`
}

type CategoryStats struct {
	Summary CategorySummary `json:"summary"`
	Details CategoryDetails `json:"details"`
}

// NameCount is a distribution bucket keyed by display name.
type NameCount struct {
	Name  string `bson:"_id" json:"name"`
	Count int64  `bson:"count" json:"count"`
}

type RecentProduct struct {
	ID           string    `json:"_id"`
	Image        string    `json:"image"`
	CategoryName string    `json:"categoryName"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ProductSummary struct {
	Total  int64 `json:"total"`
	Growth int   `json:"growth"`
}

type ProductBreakdown struct {
	ByCategory []NameCount     `json:"byCategory"`
	Monthly    []MonthlyCount  `json:"monthly"`
	Recent     []RecentProduct `json:"recent"`
}

type ProductStats struct {
	Summary   ProductSummary   `json:"summary"`
	Breakdown ProductBreakdown `json:"breakdown"`
}

type MonthlySeries struct {
	Users      []MonthlyCount `json:"users"`
	Products   []MonthlyCount `json:"products"`
	Categories []MonthlyCount `json:"categories"`
}

type WeeklyTrends struct {
	Users      []DailyCount `json:"users"`
	Products   []DailyCount `json:"products"`
	Categories []DailyCount `json:"categories"`
}

type Distribution struct {
	UsersByRole        map[string]int64 `json:"usersByRole"`
	ProductsByCategory []NameCount      `json:"productsByCategory"`
}

type ChartsData struct {
	Monthly      MonthlySeries `json:"monthly"`
	Weekly       WeeklyTrends  `json:"weekly"`
	Distribution Distribution  `json:"distribution"`
}

type HealthMetrics struct {
	TotalEntities  int64 `json:"totalEntities"`
	ActiveEntities int64 `json:"activeEntities"`
	RecentActivity int64 `json:"recentActivity"`
}

type PerformanceMetrics struct {
	AvgUsersPerDay    float64 `json:"avgUsersPerDay"`
	AvgProductsPerDay float64 `json:"avgProductsPerDay"`
	CalculatedAt      string  `json:"calculatedAt"`
}

type SystemHealth struct {
	Score       int                `json:"score"`
	Status      string             `json:"status"`
	Metrics     HealthMetrics      `json:"metrics"`
	Performance PerformanceMetrics `json:"performance"`
}

type AllStats struct {
	Overview   DashboardOverview `json:"overview"`
	Users      UserStats         `json:"users"`
	Categories CategoryStats     `json:"categories"`
	Products   ProductStats      `json:"products"`
	Charts     ChartsData        `json:"charts"`
	Health     SystemHealth      `json:"health"`
}
