package recommend_test

import (
	"context"
	"testing"

	"github.com/epimer007/course-management-app/internal/models"
	"github.com/epimer007/course-management-app/internal/service/recommend"
	"github.com/epimer007/course-management-app/internal/storage/memory"
	"github.com/epimer007/course-management-app/pkg/logger"
	"github.com/stretchr/testify/require"
)

func courseWith(title string, rating float64, students int) models.Course {
	return models.Course{
		Title:            title,
		Level:            models.LevelBeginner,
		Category:         "Web Development",
		Price:            50,
		Rating:           rating,
		EnrolledStudents: students,
	}
}

func TestRank(t *testing.T) {
	t.Run("OrdersByRatingThenEnrollment", func(t *testing.T) {
		courses := []models.Course{
			courseWith("mid", 4, 1000),
			courseWith("tied-low", 5, 50),
			courseWith("tied-high", 5, 100),
		}

		got := recommend.Rank(courses, nil)
		require.Len(t, got, 3)
		require.Equal(t, "tied-high", got[0].Title)
		require.Equal(t, "tied-low", got[1].Title)
		require.Equal(t, "mid", got[2].Title)
	})

	t.Run("TruncatesToThree", func(t *testing.T) {
		courses := []models.Course{
			courseWith("a", 5, 1),
			courseWith("b", 4, 1),
			courseWith("c", 3, 1),
			courseWith("d", 2, 1),
			courseWith("e", 1, 1),
		}

		got := recommend.Rank(courses, &models.Preferences{})
		require.Len(t, got, 3)
		require.Equal(t, "a", got[0].Title)
		require.Equal(t, "c", got[2].Title)
	})

	t.Run("FullTiesKeepInputOrder", func(t *testing.T) {
		courses := []models.Course{
			courseWith("first", 4.5, 10),
			courseWith("second", 4.5, 10),
		}

		got := recommend.Rank(courses, nil)
		require.Equal(t, "first", got[0].Title)
		require.Equal(t, "second", got[1].Title)
	})

	t.Run("MaxPrice_ExcludesAboveCeiling", func(t *testing.T) {
		cheap := courseWith("cheap", 3, 10)
		cheap.Price = 50
		pricey := courseWith("pricey", 5, 9000)
		pricey.Price = 149.99

		maxPrice := 50.0
		got := recommend.Rank([]models.Course{cheap, pricey}, &models.Preferences{MaxPrice: &maxPrice})
		require.Len(t, got, 1)
		require.Equal(t, "cheap", got[0].Title)
	})

	t.Run("Level_ExactMatch", func(t *testing.T) {
		beginner := courseWith("beginner", 4, 10)
		advanced := courseWith("advanced", 5, 10)
		advanced.Level = models.LevelAdvanced

		got := recommend.Rank([]models.Course{beginner, advanced}, &models.Preferences{Level: models.LevelAdvanced})
		require.Len(t, got, 1)
		require.Equal(t, "advanced", got[0].Title)
	})

	t.Run("Category_CaseInsensitiveSubstring", func(t *testing.T) {
		web := courseWith("web", 4, 10)
		data := courseWith("data", 5, 10)
		data.Category = "Data Science"

		got := recommend.Rank([]models.Course{web, data}, &models.Preferences{Category: "science"})
		require.Len(t, got, 1)
		require.Equal(t, "data", got[0].Title)
	})

	t.Run("FiltersCombineWithAND", func(t *testing.T) {
		match := courseWith("match", 4, 10)
		wrongLevel := courseWith("wrong-level", 5, 10)
		wrongLevel.Level = models.LevelAdvanced
		tooExpensive := courseWith("too-expensive", 5, 10)
		tooExpensive.Price = 200

		maxPrice := 100.0
		got := recommend.Rank(
			[]models.Course{match, wrongLevel, tooExpensive},
			&models.Preferences{Level: models.LevelBeginner, Category: "web", MaxPrice: &maxPrice},
		)
		require.Len(t, got, 1)
		require.Equal(t, "match", got[0].Title)
	})

	t.Run("NoMatches_ReturnsEmpty", func(t *testing.T) {
		got := recommend.Rank([]models.Course{courseWith("a", 4, 10)}, &models.Preferences{Level: models.LevelAdvanced})
		require.Empty(t, got)
	})
}

func TestRecommendService(t *testing.T) {
	ctx := context.Background()

	repo := memory.NewCourseMemory()
	for _, c := range []models.Course{
		courseWith("low", 3.0, 10),
		courseWith("top", 4.9, 500),
		courseWith("mid", 4.0, 100),
		courseWith("also-low", 2.0, 10),
	} {
		course := c
		_, err := repo.NewCourse(ctx, &course)
		require.NoError(t, err)
	}

	svc := recommend.NewRecommendService(logger.New("local"), repo)

	got, err := svc.Recommend(ctx, nil)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "top", got[0].Title)
	require.Equal(t, "mid", got[1].Title)
	require.Equal(t, "low", got[2].Title)
}
