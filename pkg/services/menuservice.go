package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	slug2 "github.com/gosimple/slug"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/util"
)

var (
	// ErrMenuCycle is returned when a parent assignment would make a menu
	// its own ancestor.
	ErrMenuCycle = errors.New("menu parent must not be the menu itself or one of its descendants")
	// ErrMenuHasChildren blocks deleting a menu that still has children.
	ErrMenuHasChildren = errors.New("menu still has child menus")
	// ErrMenuParentNotFound is returned for a parentId pointing nowhere.
	ErrMenuParentNotFound = errors.New("parent menu does not exist")
)

const (
	menuTreeCacheKey = "menu:tree"
	menuTreeCacheTTL = 60 * time.Second
)

type MenuService struct {
	menuCollection *mongo.Collection
	cache          *redis.Client
}

func NewMenuService() *MenuService {
	return &MenuService{
		menuCollection: util.GetCollection(util.DB, "Menu"),
		cache:          util.REDIS,
	}
}

func (s *MenuService) GetMenus(ctx context.Context, isActive *bool) ([]models.Menu, error) {
	filter := bson.M{}
	if isActive != nil {
		filter["isActive"] = *isActive
	}

	find := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := s.menuCollection.Find(ctx, filter, find)
	if err != nil {
		return nil, err
	}

	menus := []models.Menu{}
	if err = cursor.All(ctx, &menus); err != nil {
		return nil, err
	}

	return menus, nil
}

func (s *MenuService) GetMenuByID(ctx context.Context, id primitive.ObjectID) (*models.Menu, error) {
	var menu models.Menu
	err := s.menuCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&menu)
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// GetMenuTree materializes the nested tree of active menus ordered by the
// stored order field. The result is cached briefly in redis since every
// page render of the public site requests it.
func (s *MenuService) GetMenuTree(ctx context.Context) ([]*models.Menu, error) {
	if cached, err := s.cache.Get(ctx, menuTreeCacheKey).Result(); err == nil {
		var tree []*models.Menu
		if err := json.Unmarshal([]byte(cached), &tree); err == nil {
			return tree, nil
		}
	}

	active := true
	menus, err := s.GetMenus(ctx, &active)
	if err != nil {
		return nil, err
	}

	tree := BuildMenuTree(menus)

	if payload, err := json.Marshal(tree); err == nil {
		if err := s.cache.Set(ctx, menuTreeCacheKey, payload, menuTreeCacheTTL).Err(); err != nil {
			log.Printf("menu tree cache set failed: %v", err)
		}
	}

	return tree, nil
}

// BuildMenuTree attaches each menu to its parent via an id lookup map.
// Menus whose parent is missing from the list are dropped, as they would
// be unreachable in the rendered navigation anyway. Sibling order follows
// the input order, so callers pass an order-sorted list.
func BuildMenuTree(menus []models.Menu) []*models.Menu {
	menuMap := make(map[primitive.ObjectID]*models.Menu, len(menus))
	tree := []*models.Menu{}

	for i := range menus {
		menu := menus[i]
		menu.Children = []*models.Menu{}
		menuMap[menu.ID] = &menu
	}

	for _, menu := range menus {
		node := menuMap[menu.ID]
		if menu.ParentID == nil {
			tree = append(tree, node)
			continue
		}
		if parent, ok := menuMap[*menu.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}

	return tree
}

// WouldCreateCycle reports whether assigning newParent to node would make
// the node its own ancestor. It walks the parent chain from newParent and
// bails out after len(menus) hops in case the stored data already cycles.
func WouldCreateCycle(menus []models.Menu, nodeID, newParentID primitive.ObjectID) bool {
	if nodeID == newParentID {
		return true
	}

	parents := make(map[primitive.ObjectID]*primitive.ObjectID, len(menus))
	for _, menu := range menus {
		parents[menu.ID] = menu.ParentID
	}

	current := &newParentID
	for i := 0; i <= len(menus) && current != nil; i++ {
		if *current == nodeID {
			return true
		}
		current = parents[*current]
	}

	return false
}

func (s *MenuService) CreateMenu(ctx context.Context, req models.MenuRequest) (*models.Menu, error) {
	parentID, err := s.resolveParent(ctx, req.ParentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	menu := models.Menu{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Link:      req.Link,
		Slug:      slug2.Make(req.Slug),
		Icon:      req.Icon,
		Order:     req.Order,
		ParentID:  parentID,
		IsActive:  req.Active(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.menuCollection.InsertOne(ctx, menu); err != nil {
		return nil, err
	}

	s.invalidateTreeCache(ctx)
	return &menu, nil
}

func (s *MenuService) UpdateMenu(ctx context.Context, id primitive.ObjectID, req models.MenuRequest) (*models.Menu, error) {
	parentID, err := s.resolveParent(ctx, req.ParentID)
	if err != nil {
		return nil, err
	}

	if parentID != nil {
		menus, err := s.GetMenus(ctx, nil)
		if err != nil {
			return nil, err
		}
		if WouldCreateCycle(menus, id, *parentID) {
			return nil, ErrMenuCycle
		}
	}

	set := bson.M{
		"name":      req.Name,
		"link":      req.Link,
		"slug":      slug2.Make(req.Slug),
		"icon":      req.Icon,
		"order":     req.Order,
		"isActive":  req.Active(),
		"updatedAt": time.Now(),
	}
	update := bson.M{"$set": set}
	if parentID != nil {
		set["parentId"] = *parentID
	} else {
		update["$unset"] = bson.M{"parentId": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var menu models.Menu
	err = s.menuCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&menu)
	if err != nil {
		return nil, err
	}

	s.invalidateTreeCache(ctx)
	return &menu, nil
}

// DeleteMenu restricts deletion while children still point at the menu.
func (s *MenuService) DeleteMenu(ctx context.Context, id primitive.ObjectID) error {
	children, err := s.menuCollection.CountDocuments(ctx, bson.M{"parentId": id})
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrMenuHasChildren
	}

	res, err := s.menuCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	s.invalidateTreeCache(ctx)
	return nil
}

func (s *MenuService) resolveParent(ctx context.Context, parent string) (*primitive.ObjectID, error) {
	if parent == "" {
		return nil, nil
	}

	parentID, err := primitive.ObjectIDFromHex(parent)
	if err != nil {
		return nil, err
	}

	if err := s.menuCollection.FindOne(ctx, bson.M{"_id": parentID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMenuParentNotFound
		}
		return nil, err
	}

	return &parentID, nil
}

func (s *MenuService) invalidateTreeCache(ctx context.Context) {
	if err := s.cache.Del(ctx, menuTreeCacheKey).Err(); err != nil {
		log.Printf("menu tree cache invalidation failed: %v", err)
	}
}
