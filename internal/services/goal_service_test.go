package services

import (
	"testing"

	"wealthyways/internal/models"
	"wealthyways/internal/testutil"
)

func TestAddGoal(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		goal, err := svc.AddGoal("Emergency fund", 50000, 0, nil)
		testutil.AssertNoError(t, err)

		if goal.ID == 0 {
			t.Fatal("expected non-zero goal ID")
		}
		if goal.Deadline != nil {
			t.Errorf("expected nil deadline, got %v", *goal.Deadline)
		}
		if goal.Progress() != 0 {
			t.Errorf("expected 0 progress, got %f", goal.Progress())
		}
	})

	t.Run("with_deadline", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		deadline := "2026-12-31"
		created, err := svc.AddGoal("Trip", 3000, 500, &deadline)
		testutil.AssertNoError(t, err)

		goal, err := svc.GetGoalByID(created.ID)
		testutil.AssertNoError(t, err)
		if goal.Deadline == nil || *goal.Deadline != deadline {
			t.Errorf("expected deadline %s, got %v", deadline, goal.Deadline)
		}
		testutil.AssertAmount(t, "current", 500, goal.CurrentAmount)
	})
}

func TestGetGoals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewGoalService(db)

	first := testutil.CreateTestGoal(t, db, 100, 0)
	second := testutil.CreateTestGoal(t, db, 200, 0)

	goals, err := svc.GetGoals()
	testutil.AssertNoError(t, err)
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
	if goals[0].ID != second.ID || goals[1].ID != first.ID {
		t.Errorf("expected newest goal first, got ids %d, %d", goals[0].ID, goals[1].ID)
	}
}

func TestUpdateGoalProgress(t *testing.T) {
	t.Run("progress_moves", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		goal, err := svc.AddGoal("House", 50000, 0, nil)
		testutil.AssertNoError(t, err)
		if goal.Progress() != 0 {
			t.Fatalf("expected 0 progress, got %f", goal.Progress())
		}

		testutil.AssertNoError(t, svc.UpdateGoalProgress(goal.ID, 12500))

		updated, err := svc.GetGoalByID(goal.ID)
		testutil.AssertNoError(t, err)
		if updated.Progress() != 0.25 {
			t.Errorf("expected progress 0.25, got %f", updated.Progress())
		}
		if updated.ProgressPercent() != 25 {
			t.Errorf("expected 25%%, got %f", updated.ProgressPercent())
		}
	})

	t.Run("only_current_amount_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		deadline := "2027-01-01"
		goal, err := svc.AddGoal("Car", 8000, 100, &deadline)
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.UpdateGoalProgress(goal.ID, 900))

		updated, err := svc.GetGoalByID(goal.ID)
		testutil.AssertNoError(t, err)
		if updated.Name != "Car" {
			t.Errorf("expected name Car, got %s", updated.Name)
		}
		testutil.AssertAmount(t, "target", 8000, updated.TargetAmount)
		testutil.AssertAmount(t, "current", 900, updated.CurrentAmount)
		if updated.Deadline == nil || *updated.Deadline != deadline {
			t.Errorf("expected deadline to be kept, got %v", updated.Deadline)
		}
	})

	t.Run("zero_value_is_written", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		goal := testutil.CreateTestGoal(t, db, 1000, 400)
		testutil.AssertNoError(t, svc.UpdateGoalProgress(goal.ID, 0))

		updated, err := svc.GetGoalByID(goal.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertAmount(t, "current", 0, updated.CurrentAmount)
	})

	t.Run("missing_id_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		goal := testutil.CreateTestGoal(t, db, 1000, 400)
		testutil.AssertNoError(t, svc.UpdateGoalProgress(goal.ID+50, 999))

		unchanged, err := svc.GetGoalByID(goal.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertAmount(t, "current", 400, unchanged.CurrentAmount)
	})
}

func TestDeleteGoal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewGoalService(db)

	goal := testutil.CreateTestGoal(t, db, 1000, 0)
	testutil.AssertNoError(t, svc.DeleteGoal(goal.ID))
	testutil.AssertNoError(t, svc.DeleteGoal(goal.ID))

	_, err := svc.GetGoalByID(goal.ID)
	testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	if n := testutil.CountRows(t, db, &models.Goal{}); n != 0 {
		t.Errorf("expected 0 goals, got %d", n)
	}
}
