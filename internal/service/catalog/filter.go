package catalog

import (
	"sort"
	"strings"

	"github.com/epimer007/course-management-app/internal/models"
)

// Price buckets. Boundaries are deliberate: under50 excludes free
// courses and 50 itself, 50to100 is inclusive on both ends, over100
// is strictly greater.
const (
	PriceAll     = "all"
	PriceFree    = "free"
	PriceUnder50 = "under50"
	Price50To100 = "50to100"
	PriceOver100 = "over100"
)

// Sortable keys, a closed enumeration instead of by-name field access.
const (
	SortByTitle    = "title"
	SortByRating   = "rating"
	SortByPrice    = "price"
	SortByStudents = "enrolledStudents"
	SortByCreated  = "createdAt"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Options narrows and orders an in-memory course list. Zero values
// (and PriceAll) mean "no filter"; filters compose with AND and are
// always applied to the complete input list.
type Options struct {
	Search     string
	Level      string
	Category   string
	PriceRange string
	SortBy     string
	SortOrder  string
}

// Apply returns a filtered, sorted copy of courses. The input slice is
// left untouched and the sort is stable.
func Apply(courses []models.Course, opts Options) []models.Course {
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if opts.Search != "" && !matchesSearch(c, opts.Search) {
			continue
		}
		if opts.Level != "" && c.Level != opts.Level {
			continue
		}
		if opts.Category != "" && c.Category != opts.Category {
			continue
		}
		if !matchesPrice(c.Price, opts.PriceRange) {
			continue
		}
		out = append(out, c)
	}

	if less := comparator(opts.SortBy); less != nil {
		desc := opts.SortOrder == OrderDesc
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return less(out[j], out[i])
			}
			return less(out[i], out[j])
		})
	}
	return out
}

// matchesSearch tests the term against title, description, instructor
// and every tag; any hit includes the record.
func matchesSearch(c models.Course, term string) bool {
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(c.Title), needle) ||
		strings.Contains(strings.ToLower(c.Description), needle) ||
		strings.Contains(strings.ToLower(c.Instructor), needle) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func matchesPrice(price float64, bucket string) bool {
	switch bucket {
	case PriceFree:
		return price == 0
	case PriceUnder50:
		return price > 0 && price < 50
	case Price50To100:
		return price >= 50 && price <= 100
	case PriceOver100:
		return price > 100
	default:
		return true
	}
}

// Categories lists the distinct categories present, in first-seen
// order, for populating the category filter.
func Categories(courses []models.Course) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range courses {
		if _, ok := seen[c.Category]; ok {
			continue
		}
		seen[c.Category] = struct{}{}
		out = append(out, c.Category)
	}
	return out
}

func comparator(key string) func(a, b models.Course) bool {
	switch key {
	case SortByTitle:
		return func(a, b models.Course) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortByRating:
		return func(a, b models.Course) bool { return a.Rating < b.Rating }
	case SortByPrice:
		return func(a, b models.Course) bool { return a.Price < b.Price }
	case SortByStudents:
		return func(a, b models.Course) bool { return a.EnrolledStudents < b.EnrolledStudents }
	case SortByCreated:
		return func(a, b models.Course) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return nil
	}
}
