package services_test

import (
	"testing"

	"frolftracker/database"
	"frolftracker/models"
	"frolftracker/services"
	"frolftracker/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndFindPlayer(t *testing.T) {
	testutil.SetupDB(t)

	player, err := services.CreatePlayer("Player 1")
	require.NoError(t, err)
	assert.Equal(t, 1, player.ID)

	found, err := services.FindPlayer(player.ID)
	require.NoError(t, err)
	assert.Equal(t, "Player 1", found.Name)
}

func TestFindPlayerNotFound(t *testing.T) {
	testutil.SetupDB(t)

	_, err := services.FindPlayer(42)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestIdentifiersAreNotReused(t *testing.T) {
	testutil.SetupDB(t)

	first, err := services.CreatePlayer("Player 1")
	require.NoError(t, err)
	require.NoError(t, services.DeletePlayer(first.ID))

	second, err := services.CreatePlayer("Player 2")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestCreateCourseDuplicateName(t *testing.T) {
	testutil.SetupDB(t)

	_, err := services.CreateCourse("Meri-Toppila", 18, 54)
	require.NoError(t, err)

	_, err = services.CreateCourse("Meri-Toppila", 9, 27)
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestUpdateCourseRenameConflict(t *testing.T) {
	testutil.SetupDB(t)

	_, err := services.CreateCourse("Meri-Toppila", 18, 54)
	require.NoError(t, err)
	second, err := services.CreateCourse("Herukka", 18, 54)
	require.NoError(t, err)

	// renaming onto a taken name conflicts
	assert.ErrorIs(t, services.UpdateCourse(second.ID, "Meri-Toppila", 18, 54), services.ErrConflict)

	// an update keeping the current name is not a conflict with itself
	assert.NoError(t, services.UpdateCourse(second.ID, "Herukka", 23, 69))

	updated, err := services.FindCourse(second.ID)
	require.NoError(t, err)
	assert.Equal(t, 23, updated.NumHoles)
	assert.Equal(t, 69, updated.Par)
}

func TestCreateScoreChecksReferences(t *testing.T) {
	testutil.SetupDB(t)

	player, err := services.CreatePlayer("Player 1")
	require.NoError(t, err)
	course, err := services.CreateCourse("Meri-Toppila", 18, 54)
	require.NoError(t, err)

	_, err = services.CreateScore(54, "2020-06-22", player.ID, 42)
	assert.ErrorIs(t, err, services.ErrCourseNotFound)

	_, err = services.CreateScore(54, "2020-06-22", 42, course.ID)
	assert.ErrorIs(t, err, services.ErrPlayerNotFound)

	score, err := services.CreateScore(54, "2020-06-22", player.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, score.ID)
}

func TestDeletePlayerCascadesToScores(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)

	playerID := 1
	before, err := services.ListScores(services.ScoreFilter{PlayerID: &playerID})
	require.NoError(t, err)
	require.Len(t, before, 2)

	require.NoError(t, services.DeletePlayer(playerID))

	var remaining int64
	require.NoError(t, database.DB.Model(&models.Score{}).Count(&remaining).Error)
	assert.EqualValues(t, 6, remaining)

	after, err := services.ListScores(services.ScoreFilter{PlayerID: &playerID})
	require.NoError(t, err)
	assert.Empty(t, after)
}

func TestDeleteCourseCascadesToScores(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)

	require.NoError(t, services.DeleteCourse(2))

	var remaining int64
	require.NoError(t, database.DB.Model(&models.Score{}).Count(&remaining).Error)
	assert.EqualValues(t, 6, remaining)
}

func TestListScoresFilters(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)

	all, err := services.ListScores(services.ScoreFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 8)

	playerID := 1
	byPlayer, err := services.ListScores(services.ScoreFilter{PlayerID: &playerID})
	require.NoError(t, err)
	assert.Len(t, byPlayer, 2)
	for _, score := range byPlayer {
		assert.Equal(t, playerID, score.PlayerID)
	}

	courseID := 3
	byCourse, err := services.ListScores(services.ScoreFilter{CourseID: &courseID})
	require.NoError(t, err)
	assert.Len(t, byCourse, 2)

	// both filters combine as a conjunction in one query
	both, err := services.ListScores(services.ScoreFilter{PlayerID: &playerID, CourseID: &courseID})
	require.NoError(t, err)
	assert.Empty(t, both)

	courseID = 1
	both, err = services.ListScores(services.ScoreFilter{PlayerID: &playerID, CourseID: &courseID})
	require.NoError(t, err)
	assert.Len(t, both, 2)
}

func TestUpdateScoreRevalidatesReferences(t *testing.T) {
	testutil.SetupDB(t)
	testutil.Populate(t)

	assert.ErrorIs(t, services.UpdateScore(1, 50, "2020-06-22", 42, 1), services.ErrPlayerNotFound)
	assert.ErrorIs(t, services.UpdateScore(1, 50, "2020-06-22", 1, 42), services.ErrCourseNotFound)
	assert.ErrorIs(t, services.UpdateScore(99, 50, "2020-06-22", 1, 1), services.ErrNotFound)

	require.NoError(t, services.UpdateScore(1, 50, "2020-06-22", 2, 3))

	score, err := services.FindScore(1)
	require.NoError(t, err)
	assert.Equal(t, 50, score.Throws)
	assert.Equal(t, "2020-06-22", score.Date)
	assert.Equal(t, 2, score.PlayerID)
	assert.Equal(t, 3, score.CourseID)
}

func TestImportPlayers(t *testing.T) {
	testutil.SetupDB(t)

	count, err := services.ImportPlayers([]string{"import-0", "import-1", "import-2"})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	players, err := services.ListPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 3)
}
