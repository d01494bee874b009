package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tranhart-io/api/pkg/models"
)

func menuFixture(id primitive.ObjectID, name string, parent *primitive.ObjectID) models.Menu {
	return models.Menu{
		ID:       id,
		Name:     name,
		Slug:     name,
		ParentID: parent,
		IsActive: true,
	}
}

func TestBuildMenuTreeNestsChildrenUnderParents(t *testing.T) {
	rootA := primitive.NewObjectID()
	rootB := primitive.NewObjectID()
	child := primitive.NewObjectID()
	grandchild := primitive.NewObjectID()

	menus := []models.Menu{
		menuFixture(rootA, "paintings", nil),
		menuFixture(child, "oil", &rootA),
		menuFixture(rootB, "about", nil),
		menuFixture(grandchild, "portraits", &child),
	}

	tree := BuildMenuTree(menus)

	require.Len(t, tree, 2)
	assert.Equal(t, rootA, tree[0].ID)
	assert.Equal(t, rootB, tree[1].ID)

	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, child, tree[0].Children[0].ID)

	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, grandchild, tree[0].Children[0].Children[0].ID)

	assert.Empty(t, tree[1].Children)
}

func TestBuildMenuTreeEveryNodeAppearsOnce(t *testing.T) {
	root := primitive.NewObjectID()
	childA := primitive.NewObjectID()
	childB := primitive.NewObjectID()

	menus := []models.Menu{
		menuFixture(root, "gallery", nil),
		menuFixture(childA, "sculpture", &root),
		menuFixture(childB, "drawing", &root),
	}

	tree := BuildMenuTree(menus)

	seen := map[primitive.ObjectID]int{}
	var walk func(nodes []*models.Menu)
	walk = func(nodes []*models.Menu) {
		for _, node := range nodes {
			seen[node.ID]++
			walk(node.Children)
		}
	}
	walk(tree)

	require.Len(t, seen, len(menus))
	for _, menu := range menus {
		assert.Equal(t, 1, seen[menu.ID])
	}
}

func TestBuildMenuTreeDropsOrphans(t *testing.T) {
	root := primitive.NewObjectID()
	missing := primitive.NewObjectID()
	orphan := primitive.NewObjectID()

	menus := []models.Menu{
		menuFixture(root, "home", nil),
		menuFixture(orphan, "lost", &missing),
	}

	tree := BuildMenuTree(menus)

	require.Len(t, tree, 1)
	assert.Equal(t, root, tree[0].ID)
	assert.Empty(t, tree[0].Children)
}

func TestBuildMenuTreeEmptyInput(t *testing.T) {
	tree := BuildMenuTree(nil)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
}

func TestBuildMenuTreeChildrenNeverNil(t *testing.T) {
	root := primitive.NewObjectID()
	tree := BuildMenuTree([]models.Menu{menuFixture(root, "home", nil)})

	require.Len(t, tree, 1)
	assert.NotNil(t, tree[0].Children)
}

func TestWouldCreateCycleSelfParent(t *testing.T) {
	node := primitive.NewObjectID()
	assert.True(t, WouldCreateCycle(nil, node, node))
}

func TestWouldCreateCycleDescendantParent(t *testing.T) {
	root := primitive.NewObjectID()
	child := primitive.NewObjectID()
	grandchild := primitive.NewObjectID()

	menus := []models.Menu{
		menuFixture(root, "a", nil),
		menuFixture(child, "b", &root),
		menuFixture(grandchild, "c", &child),
	}

	// Reparenting the root under its own grandchild closes a loop.
	assert.True(t, WouldCreateCycle(menus, root, grandchild))
	assert.True(t, WouldCreateCycle(menus, root, child))
}

func TestWouldCreateCycleAllowsValidReparent(t *testing.T) {
	rootA := primitive.NewObjectID()
	rootB := primitive.NewObjectID()
	child := primitive.NewObjectID()

	menus := []models.Menu{
		menuFixture(rootA, "a", nil),
		menuFixture(rootB, "b", nil),
		menuFixture(child, "c", &rootA),
	}

	assert.False(t, WouldCreateCycle(menus, child, rootB))
	assert.False(t, WouldCreateCycle(menus, rootA, rootB))
}

func TestWouldCreateCycleTerminatesOnCorruptData(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	node := primitive.NewObjectID()

	// a and b already point at each other in storage.
	menus := []models.Menu{
		menuFixture(a, "a", &b),
		menuFixture(b, "b", &a),
		menuFixture(node, "c", nil),
	}

	assert.False(t, WouldCreateCycle(menus, node, a))
}
