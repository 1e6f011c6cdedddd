package service

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/healthplate/healthplate/internal/model"
	"github.com/healthplate/healthplate/internal/repository"
)

var ErrInvalidMenuGoal = errors.New("unknown goal")

// Goal calorie buckets
const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

// mealCategories is the composition order for a full-day menu.
var mealCategories = []string{"breakfast", "lunch", "dinner", "dessert"}

// Menu is a generated set of recipe suggestions.
type Menu struct {
	Recipes       []*model.RecipeSummary `json:"recipes"`
	TotalCalories int                    `json:"totalCalories"`
}

type MenuService struct {
	recipeRepository repository.RecipeRepository

	// rand.Rand is not safe for concurrent use; mu serializes draws across
	// requests.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMenuService(recipeRepository repository.RecipeRepository) *MenuService {
	return &MenuService{
		recipeRepository: recipeRepository,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Suggest builds menu suggestions filtered by the calorie bucket for the goal.
// mealType "all" picks one random recipe per category in order; a specific
// type picks up to four random recipes of that category. Recipes without a
// positive calorie count are excluded. An empty result is not an error.
func (s *MenuService) Suggest(goal, mealType string) (*Menu, error) {
	if goal != GoalLose && goal != GoalMaintain && goal != GoalGain {
		return nil, ErrInvalidMenuGoal
	}

	recipes, err := s.recipeRepository.All()
	if err != nil {
		return nil, err
	}

	var candidates []*model.Recipe
	for _, r := range recipes {
		if r.Calories > 0 && inCalorieBucket(goal, r.Calories) {
			candidates = append(candidates, r)
		}
	}

	var picked []*model.Recipe
	if mealType == "" || mealType == "all" {
		for _, category := range mealCategories {
			inCat := filterByCategory(candidates, category)
			if len(inCat) > 0 {
				picked = append(picked, inCat[s.intn(len(inCat))])
			}
		}
	} else {
		inType := filterByCategory(candidates, mealType)
		s.shuffle(len(inType), func(i, j int) {
			inType[i], inType[j] = inType[j], inType[i]
		})
		if len(inType) > 4 {
			inType = inType[:4]
		}
		picked = inType
	}

	menu := &Menu{Recipes: []*model.RecipeSummary{}}
	for _, r := range picked {
		menu.Recipes = append(menu.Recipes, recipeSummary(r))
		menu.TotalCalories += r.Calories
	}

	return menu, nil
}

func (s *MenuService) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *MenuService) shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(n, swap)
}

func inCalorieBucket(goal string, calories int) bool {
	switch goal {
	case GoalLose:
		return calories <= 270
	case GoalMaintain:
		return calories >= 270 && calories <= 380
	case GoalGain:
		return calories > 380
	}
	return false
}

func filterByCategory(recipes []*model.Recipe, category string) []*model.Recipe {
	var out []*model.Recipe
	for _, r := range recipes {
		if strings.EqualFold(strings.TrimSpace(r.Category), category) {
			out = append(out, r)
		}
	}
	return out
}
