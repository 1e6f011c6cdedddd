package service

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthplate/healthplate/internal/model"
)

func menuFixtures() *fakeRecipeRepository {
	repo := &fakeRecipeRepository{}
	fixtures := []*model.Recipe{
		{Slug: "light-toast", Category: "breakfast", Calories: 200},
		{Slug: "oat-bowl", Category: "breakfast", Calories: 320},
		{Slug: "big-breakfast", Category: "breakfast", Calories: 540},
		{Slug: "green-salad", Category: "lunch", Calories: 250},
		{Slug: "hearty-bowl", Category: "Lunch", Calories: 380},
		{Slug: "light-soup", Category: "dinner", Calories: 270},
		{Slug: "steak-plate", Category: "dinner", Calories: 610},
		{Slug: "fruit-cup", Category: "dessert", Calories: 120},
		{Slug: "cheesecake", Category: "dessert", Calories: 450},
		{Slug: "no-calories", Category: "lunch", Calories: 0},
	}
	for _, r := range fixtures {
		_ = repo.Create(r)
	}
	return repo
}

func newTestMenuService(repo *fakeRecipeRepository) *MenuService {
	svc := NewMenuService(repo)
	svc.rng = rand.New(rand.NewSource(1))
	return svc
}

func TestMenuSuggest_InvalidGoal(t *testing.T) {
	svc := newTestMenuService(menuFixtures())

	_, err := svc.Suggest("bulk", "all")
	assert.ErrorIs(t, err, ErrInvalidMenuGoal)
}

func TestMenuSuggest_CalorieBuckets(t *testing.T) {
	svc := newTestMenuService(menuFixtures())

	tests := []struct {
		goal string
		max  int
		min  int
	}{
		{GoalLose, 270, 1},
		{GoalMaintain, 380, 270},
		{GoalGain, 100000, 381},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			menu, err := svc.Suggest(tt.goal, "all")
			require.NoError(t, err)
			require.NotEmpty(t, menu.Recipes)

			total := 0
			for _, r := range menu.Recipes {
				assert.GreaterOrEqual(t, r.Calories, tt.min)
				assert.LessOrEqual(t, r.Calories, tt.max)
				total += r.Calories
			}
			assert.Equal(t, total, menu.TotalCalories)
		})
	}
}

func TestMenuSuggest_AllPicksOnePerCategory(t *testing.T) {
	svc := newTestMenuService(menuFixtures())

	menu, err := svc.Suggest(GoalLose, "all")
	require.NoError(t, err)

	seen := map[string]int{}
	for _, r := range menu.Recipes {
		seen[r.Category]++
	}
	for category, count := range seen {
		assert.Equal(t, 1, count, "category %s", category)
	}
	// Every category with a lose-bucket recipe contributes exactly one.
	assert.Len(t, menu.Recipes, 4)
}

func TestMenuSuggest_SpecificTypeCapsAtFour(t *testing.T) {
	repo := &fakeRecipeRepository{}
	for _, slug := range []string{"a", "b", "c", "d", "e", "f"} {
		_ = repo.Create(&model.Recipe{Slug: slug, Category: "lunch", Calories: 300})
	}
	svc := newTestMenuService(repo)

	menu, err := svc.Suggest(GoalMaintain, "lunch")
	require.NoError(t, err)
	assert.Len(t, menu.Recipes, 4)
	for _, r := range menu.Recipes {
		assert.Equal(t, "lunch", r.Category)
	}
}

func TestMenuSuggest_CategoryMatchIsCaseInsensitive(t *testing.T) {
	svc := newTestMenuService(menuFixtures())

	menu, err := svc.Suggest(GoalMaintain, "lunch")
	require.NoError(t, err)

	slugs := map[string]bool{}
	for _, r := range menu.Recipes {
		slugs[r.Slug] = true
	}
	assert.True(t, slugs["hearty-bowl"], "capitalized category should match")
}

func TestMenuSuggest_EmptyResultIsNotAnError(t *testing.T) {
	svc := newTestMenuService(&fakeRecipeRepository{})

	menu, err := svc.Suggest(GoalGain, "all")
	require.NoError(t, err)
	assert.Empty(t, menu.Recipes)
	assert.Zero(t, menu.TotalCalories)
}

// Suggest is called from concurrent requests sharing one service instance;
// run under -race.
func TestMenuSuggest_Concurrent(t *testing.T) {
	svc := newTestMenuService(menuFixtures())

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				menu, err := svc.Suggest(GoalLose, "all")
				assert.NoError(t, err)
				assert.NotNil(t, menu)
			}
		}()
	}
	wg.Wait()
}

func TestMenuSuggest_ZeroCalorieRecipesExcluded(t *testing.T) {
	svc := newTestMenuService(menuFixtures())

	menu, err := svc.Suggest(GoalLose, "lunch")
	require.NoError(t, err)
	for _, r := range menu.Recipes {
		assert.NotEqual(t, "no-calories", r.Slug)
	}
}
