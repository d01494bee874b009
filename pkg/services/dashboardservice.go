package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tranhart-io/api/internal/common"
	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/util"
)

// DashboardService builds the admin reporting payloads. Every builder
// fans its independent queries out in parallel and joins on all of them;
// a single failing query fails the whole report.
type DashboardService struct {
	userCollection     *mongo.Collection
	categoryCollection *mongo.Collection
	productCollection  *mongo.Collection
	menuCollection     *mongo.Collection
}

func NewDashboardService() *DashboardService {
	return &DashboardService{
		userCollection:     util.GetCollection(util.DB, "User"),
		categoryCollection: util.GetCollection(util.DB, "Category"),
		productCollection:  util.GetCollection(util.DB, "Product"),
		menuCollection:     util.GetCollection(util.DB, "Menu"),
	}
}

func runParallel(tasks ...func() error) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, task := range tasks {
		wg.Add(1)
		go func(fn func() error) {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(task)
	}

	wg.Wait()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func (s *DashboardService) GetOverview(ctx context.Context) (*models.DashboardOverview, error) {
	var (
		overview   models.DashboardOverview
		activities []models.Activity
	)

	err := runParallel(
		func() (err error) {
			overview.Stats.TotalUsers, err = s.userCollection.CountDocuments(ctx, bson.M{})
			return
		},
		func() (err error) {
			overview.Stats.TotalCategories, err = s.categoryCollection.CountDocuments(ctx, bson.M{})
			return
		},
		func() (err error) {
			overview.Stats.TotalMenus, err = s.menuCollection.CountDocuments(ctx, bson.M{})
			return
		},
		func() (err error) {
			overview.Stats.TotalProducts, err = s.productCollection.CountDocuments(ctx, bson.M{})
			return
		},
		func() (err error) {
			overview.Stats.ActiveUsers, err = s.userCollection.CountDocuments(ctx, bson.M{"isActive": true})
			return
		},
		func() (err error) {
			overview.Stats.ActiveCategories, err = s.categoryCollection.CountDocuments(ctx, bson.M{"isActive": true})
			return
		},
		func() (err error) {
			overview.Growth.Users, err = s.growth(ctx, s.userCollection)
			return
		},
		func() (err error) {
			overview.Growth.Categories, err = s.growth(ctx, s.categoryCollection)
			return
		},
		func() (err error) {
			overview.Growth.Products, err = s.growth(ctx, s.productCollection)
			return
		},
		func() (err error) {
			activities, err = s.recentActivities(ctx)
			return
		},
	)
	if err != nil {
		return nil, err
	}

	overview.Stats.InactiveUsers = overview.Stats.TotalUsers - overview.Stats.ActiveUsers
	overview.Stats.InactiveCategories = overview.Stats.TotalCategories - overview.Stats.ActiveCategories
	overview.RecentActivities = activities

	return &overview, nil
}

func (s *DashboardService) GetUserStats(ctx context.Context) (*models.UserStats, error) {
	var stats models.UserStats

	err := runParallel(
		func() (err error) {
			stats.Summary.Total, err = s.userCollection.CountDocuments(ctx, bson.M{})
			return
		},
		func() (err error) {
			stats.Summary.Active, err = s.userCollection.CountDocuments(ctx, bson.M{"isActive": true})
			return
		},
		func() (err error) {
			stats.Summary.Growth, err = s.growth(ctx, s.userCollection)
			return
		},
		func() (err error) {
			stats.Breakdown.ByRole, err = s.usersByRole(ctx)
			return
		},
		func() (err error) {
			stats.Breakdown.Monthly, err = s.monthlyStats(ctx, s.userCollection, "user")
			return
		},
		func() (err error) {
			stats.Breakdown.Weekly, err = s.weeklyTrend(ctx, s.userCollection)
			return
		},
	)
	if err != nil {
		return nil, err
	}

	stats.Summary.Inactive = stats.Summary.Total - stats.Summary.Active
	return &stats, nil
}

func (s *DashboardService) GetCategoryStats(ctx context.Context) (*models.CategoryStats, error) {
	var stats models.CategoryStats

	err := runParallel(
		func() (err error) {
			stats.Summary.Total, err = s.categoryCollection.CountDocuments(ctx, bson.M{})
			return
		},
		func() (err error) {
			stats.Summary.Active, err = s.categoryCollection.CountDocuments(ctx, bson.M{"isActive": true})
			return
		},
		func() (err error) {
			stats.Summary.Empty, err = s.emptyCategoriesCount(ctx)
			return
		},
		func() (err error) {
			stats.Summary.Growth, err = s.growth(ctx, s.categoryCollection)
			return
		},
		func() (err error) {
			stats.Details.WithProducts, err = s.categoriesWithProductCount(ctx, 10)
			return
		},
		func() (err error) {
			stats.Details.TopPerforming, err = s.categoriesWithProductCount(ctx, 5)
			return
		},
	)
	if err != nil {
		return nil, err
	}

	stats.Summary.Inactive = stats.Summary.Total - stats.Summary.Active
	return &stats, nil
}

func (s *DashboardService) GetProductStats(ctx context.Context) (*models.ProductStats, error) {
	var stats models.ProductStats

	err := runParallel(
		func() (err error) {
			stats.Summary.Total, err = s.productCollection.CountDocuments(ctx, bson.M{})
			return
		},
		func() (err error) {
			stats.Summary.Growth, err = s.growth(ctx, s.productCollection)
			return
		},
		func() (err error) {
			stats.Breakdown.ByCategory, err = s.productsByCategory(ctx)
			return
		},
		func() (err error) {
			stats.Breakdown.Monthly, err = s.monthlyStats(ctx, s.productCollection, "product")
			return
		},
		func() (err error) {
			stats.Breakdown.Recent, err = s.recentProducts(ctx)
			return
		},
	)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (s *DashboardService) GetCharts(ctx context.Context) (*models.ChartsData, error) {
	var charts models.ChartsData

	err := runParallel(
		func() (err error) {
			charts.Monthly.Users, err = s.monthlyStats(ctx, s.userCollection, "user")
			return
		},
		func() (err error) {
			charts.Monthly.Products, err = s.monthlyStats(ctx, s.productCollection, "product")
			return
		},
		func() (err error) {
			charts.Monthly.Categories, err = s.monthlyStats(ctx, s.categoryCollection, "category")
			return
		},
		func() (err error) {
			charts.Weekly.Users, err = s.weeklyTrend(ctx, s.userCollection)
			return
		},
		func() (err error) {
			charts.Weekly.Products, err = s.weeklyTrend(ctx, s.productCollection)
			return
		},
		func() (err error) {
			charts.Weekly.Categories, err = s.weeklyTrend(ctx, s.categoryCollection)
			return
		},
		func() (err error) {
			charts.Distribution.UsersByRole, err = s.usersByRole(ctx)
			return
		},
		func() (err error) {
			charts.Distribution.ProductsByCategory, err = s.productsByCategory(ctx)
			return
		},
	)
	if err != nil {
		return nil, err
	}

	return &charts, nil
}

func (s *DashboardService) GetHealth(ctx context.Context) (*models.SystemHealth, error) {
	now := time.Now()
	oneDayAgo := now.AddDate(0, 0, -1)
	thirtyDaysAgo := now.AddDate(0, 0, -common.GROWTH_WINDOW_DAYS)

	var health models.SystemHealth
	var userCreations, productCreations int64

	err := runParallel(
		func() (err error) {
			health.Metrics.TotalEntities, err = s.sumCounts(ctx, bson.M{},
				s.userCollection, s.categoryCollection, s.productCollection, s.menuCollection)
			return
		},
		func() (err error) {
			// Products carry no isActive flag and always count as active.
			active, err := s.sumCounts(ctx, bson.M{"isActive": true},
				s.userCollection, s.categoryCollection, s.menuCollection)
			if err != nil {
				return err
			}
			products, err := s.productCollection.CountDocuments(ctx, bson.M{})
			if err != nil {
				return err
			}
			health.Metrics.ActiveEntities = active + products
			return nil
		},
		func() (err error) {
			health.Metrics.RecentActivity, err = s.sumCounts(ctx,
				bson.M{"updatedAt": bson.M{"$gte": oneDayAgo}},
				s.userCollection, s.categoryCollection, s.productCollection, s.menuCollection)
			return
		},
		func() (err error) {
			userCreations, err = s.userCollection.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": thirtyDaysAgo}})
			return
		},
		func() (err error) {
			productCreations, err = s.productCollection.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": thirtyDaysAgo}})
			return
		},
	)
	if err != nil {
		return nil, err
	}

	health.Score = HealthScore(health.Metrics.ActiveEntities, health.Metrics.TotalEntities)
	health.Status = HealthStatus(health.Score)
	health.Performance = models.PerformanceMetrics{
		AvgUsersPerDay:    AveragePerDay(userCreations, thirtyDaysAgo, now),
		AvgProductsPerDay: AveragePerDay(productCreations, thirtyDaysAgo, now),
		CalculatedAt:      now.UTC().Format(time.RFC3339),
	}

	return &health, nil
}

func (s *DashboardService) GetAll(ctx context.Context) (*models.AllStats, error) {
	var all models.AllStats

	err := runParallel(
		func() error {
			overview, err := s.GetOverview(ctx)
			if err == nil {
				all.Overview = *overview
			}
			return err
		},
		func() error {
			users, err := s.GetUserStats(ctx)
			if err == nil {
				all.Users = *users
			}
			return err
		},
		func() error {
			categories, err := s.GetCategoryStats(ctx)
			if err == nil {
				all.Categories = *categories
			}
			return err
		},
		func() error {
			products, err := s.GetProductStats(ctx)
			if err == nil {
				all.Products = *products
			}
			return err
		},
		func() error {
			charts, err := s.GetCharts(ctx)
			if err == nil {
				all.Charts = *charts
			}
			return err
		},
		func() error {
			health, err := s.GetHealth(ctx)
			if err == nil {
				all.Health = *health
			}
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	return &all, nil
}

// growth counts documents created before the 30-day cutoff against the
// current total.
func (s *DashboardService) growth(ctx context.Context, coll *mongo.Collection) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -common.GROWTH_WINDOW_DAYS)

	current, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}

	previous, err := coll.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}

	return CalculateGrowthRate(current, previous), nil
}

func (s *DashboardService) sumCounts(ctx context.Context, filter bson.M, colls ...*mongo.Collection) (int64, error) {
	var sum int64
	for _, coll := range colls {
		count, err := coll.CountDocuments(ctx, filter)
		if err != nil {
			return 0, err
		}
		sum += count
	}
	return sum, nil
}

func (s *DashboardService) monthlyStats(ctx context.Context, coll *mongo.Collection, typeName string) ([]models.MonthlyCount, error) {
	sixMonthsAgo := time.Now().AddDate(0, -common.MONTHLY_STATS_SPAN, 0)

	pipeline := []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": sixMonthsAgo}}},
		{"$group": bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$createdAt"},
				"month": bson.M{"$month": "$createdAt"},
			},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.D{{Key: "_id.year", Value: 1}, {Key: "_id.month", Value: 1}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var raw []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
		} `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	stats := make([]models.MonthlyCount, 0, len(raw))
	for _, bucket := range raw {
		stats = append(stats, models.MonthlyCount{
			Month: MonthLabel(bucket.ID.Month, bucket.ID.Year),
			Count: bucket.Count,
			Type:  typeName,
		})
	}

	return stats, nil
}

func (s *DashboardService) weeklyTrend(ctx context.Context, coll *mongo.Collection) ([]models.DailyCount, error) {
	sevenDaysAgo := time.Now().AddDate(0, 0, -common.WEEKLY_TREND_DAYS)

	pipeline := []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": sevenDaysAgo}}},
		{"$group": bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.D{{Key: "_id", Value: 1}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	trend := []models.DailyCount{}
	if err := cursor.All(ctx, &trend); err != nil {
		return nil, err
	}

	return trend, nil
}

func (s *DashboardService) usersByRole(ctx context.Context) (map[string]int64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$role", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.D{{Key: "count", Value: -1}}},
	}

	cursor, err := s.userCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Role  string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	byRole := make(map[string]int64, len(raw))
	for _, bucket := range raw {
		byRole[bucket.Role] = bucket.Count
	}

	return byRole, nil
}

func (s *DashboardService) categoriesWithProductCount(ctx context.Context, limit int64) ([]models.CategoryProductCount, error) {
	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         "Product",
			"localField":   "_id",
			"foreignField": "category",
			"as":           "products",
		}},
		{"$project": bson.M{
			"name":         1,
			"slug":         1,
			"isActive":     1,
			"productCount": bson.M{"$size": "$products"},
		}},
		{"$sort": bson.D{{Key: "productCount", Value: -1}}},
		{"$limit": limit},
	}

	cursor, err := s.categoryCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	counts := []models.CategoryProductCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}

	return counts, nil
}

func (s *DashboardService) emptyCategoriesCount(ctx context.Context) (int64, error) {
	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         "Product",
			"localField":   "_id",
			"foreignField": "category",
			"as":           "products",
		}},
		{"$match": bson.M{"products": bson.M{"$size": 0}}},
		{"$count": "emptyCategories"},
	}

	cursor, err := s.categoryCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var result struct {
		EmptyCategories int64 `bson:"emptyCategories"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, err
		}
	}

	return result.EmptyCategories, nil
}

func (s *DashboardService) productsByCategory(ctx context.Context) ([]models.NameCount, error) {
	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         "Category",
			"localField":   "category",
			"foreignField": "_id",
			"as":           "categoryInfo",
		}},
		{"$unwind": bson.M{"path": "$categoryInfo", "preserveNullAndEmptyArrays": true}},
		{"$group": bson.M{
			"_id":   bson.M{"$ifNull": []interface{}{"$categoryInfo.name", "Uncategorized"}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.D{{Key: "count", Value: -1}}},
	}

	cursor, err := s.productCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	counts := []models.NameCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}

	return counts, nil
}

func (s *DashboardService) recentProducts(ctx context.Context) ([]models.RecentProduct, error) {
	pipeline := []bson.M{
		{"$sort": bson.D{{Key: "createdAt", Value: -1}}},
		{"$limit": int64(5)},
		{"$lookup": bson.M{
			"from":         "Category",
			"localField":   "category",
			"foreignField": "_id",
			"as":           "categoryInfo",
		}},
		{"$unwind": bson.M{"path": "$categoryInfo", "preserveNullAndEmptyArrays": true}},
	}

	cursor, err := s.productCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	recent := make([]models.RecentProduct, 0, len(products))
	for _, product := range products {
		categoryName := "Uncategorized"
		if product.Category != nil {
			categoryName = product.Category.Name
		}
		recent = append(recent, models.RecentProduct{
			ID:           product.ID.Hex(),
			Image:        product.Image,
			CategoryName: categoryName,
			CreatedAt:    product.CreatedAt,
		})
	}

	return recent, nil
}

// recentActivities merges the newest users, categories and products into
// one feed for the overview widget.
func (s *DashboardService) recentActivities(ctx context.Context) ([]models.Activity, error) {
	var (
		users      []models.User
		categories []models.Category
		products   []models.RecentProduct
	)

	err := runParallel(
		func() error {
			opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(3)
			cursor, err := s.userCollection.Find(ctx, bson.M{}, opts)
			if err != nil {
				return err
			}
			return cursor.All(ctx, &users)
		},
		func() error {
			opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(2)
			cursor, err := s.categoryCollection.Find(ctx, bson.M{}, opts)
			if err != nil {
				return err
			}
			return cursor.All(ctx, &categories)
		},
		func() (err error) {
			products, err = s.recentProducts(ctx)
			return
		},
	)
	if err != nil {
		return nil, err
	}

	activities := []models.Activity{}
	for _, user := range users {
		activities = append(activities, models.Activity{
			ID:         user.ID.Hex(),
			Type:       "user",
			Action:     "New user registered",
			EntityName: user.Name,
			CreatedAt:  user.CreatedAt,
		})
	}
	for _, category := range categories {
		activities = append(activities, models.Activity{
			ID:         category.ID.Hex(),
			Type:       "category",
			Action:     "Category created",
			EntityName: category.Name,
			CreatedAt:  category.CreatedAt,
		})
	}
	for i, product := range products {
		if i >= 3 {
			break
		}
		activities = append(activities, models.Activity{
			ID:         product.ID,
			Type:       "product",
			Action:     "Artwork added",
			EntityName: product.CategoryName,
			CreatedAt:  product.CreatedAt,
		})
	}

	return MergeActivities(activities, common.RECENT_ACTIVITY_MAX), nil
}
