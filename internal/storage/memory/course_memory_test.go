package memory_test

import (
	"context"
	"testing"

	"github.com/epimer007/course-management-app/internal/app_errors"
	"github.com/epimer007/course-management-app/internal/models"
	"github.com/epimer007/course-management-app/internal/storage/memory"
	"github.com/stretchr/testify/require"
)

func TestCourseMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("NewCourse_AssignsIDAndTimestamps", func(t *testing.T) {
		repo := memory.NewCourseMemory()

		c := models.Course{Title: "A", Category: "X"}
		id, err := repo.NewCourse(ctx, &c)
		require.NoError(t, err)
		require.False(t, id.IsZero())
		require.Equal(t, id, c.ID)
		require.False(t, c.CreatedAt.IsZero())
		require.Equal(t, c.CreatedAt, c.UpdatedAt)

		count, err := repo.CountCourses(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, count)
	})

	t.Run("ListCourses_KeepsInsertionOrder", func(t *testing.T) {
		repo := memory.NewCourseMemory()

		for _, title := range []string{"first", "second", "third"} {
			c := models.Course{Title: title}
			_, err := repo.NewCourse(ctx, &c)
			require.NoError(t, err)
		}

		courses, err := repo.ListCourses(ctx)
		require.NoError(t, err)
		require.Len(t, courses, 3)
		require.Equal(t, "first", courses[0].Title)
		require.Equal(t, "third", courses[2].Title)
	})

	t.Run("ListCourses_ReturnsACopy", func(t *testing.T) {
		repo := memory.NewCourseMemory()

		c := models.Course{Title: "original"}
		_, err := repo.NewCourse(ctx, &c)
		require.NoError(t, err)

		courses, err := repo.ListCourses(ctx)
		require.NoError(t, err)
		courses[0].Title = "mutated"

		again, err := repo.ListCourses(ctx)
		require.NoError(t, err)
		require.Equal(t, "original", again[0].Title)
	})

	t.Run("UpdateCourse_UnknownID_IsNotFound", func(t *testing.T) {
		repo := memory.NewCourseMemory()

		title := "nope"
		c := models.Course{Title: "A"}
		_, err := repo.NewCourse(ctx, &c)
		require.NoError(t, err)

		other := models.Course{Title: "B"}
		otherID, err := repo.NewCourse(ctx, &other)
		require.NoError(t, err)

		ok, err := repo.DeleteCourse(ctx, otherID)
		require.NoError(t, err)
		require.True(t, ok)

		_, err = repo.UpdateCourse(ctx, otherID, models.CourseUpdate{Title: &title})
		require.ErrorIs(t, err, app_errors.ErrCourseNotFound)
	})

	t.Run("SeedCourses_PreservesTimestampsAndAssignsIDs", func(t *testing.T) {
		repo := memory.NewCourseMemory()

		seed := models.Course{Title: "seeded"}
		require.NoError(t, repo.SeedCourses(ctx, []models.Course{seed}))

		courses, err := repo.ListCourses(ctx)
		require.NoError(t, err)
		require.Len(t, courses, 1)
		require.False(t, courses[0].ID.IsZero())
		require.True(t, courses[0].CreatedAt.IsZero())
	})
}
