package application

import (
	"testing"
	"time"

	"github.com/consite-dev/consite-go/internal/domain/task"
	"github.com/consite-dev/consite-go/internal/domain/user"
	"github.com/consite-dev/consite-go/internal/repository"
	"github.com/consite-dev/consite-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupAnalyticsServiceMocks(t *testing.T) (*AnalyticsService, *mock.MockUserRepo, *mock.MockTaskRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	mockTask := mock.NewMockTaskRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
		Task: mockTask,
	}
	svc := NewAnalyticsService(repos)
	return svc, mockUser, mockTask
}

// --------------------- WageDistribution ---------------------
func TestWageDistribution_PartitionsOnInclusiveUpperBounds(t *testing.T) {
	wages := []float64{0, 50, 51, 100, 101, 150, 151, 200, 201}

	dist := WageDistribution(wages)

	assert.Equal(t, 2, dist["0-50"])
	assert.Equal(t, 2, dist["51-100"])
	assert.Equal(t, 2, dist["101-150"])
	assert.Equal(t, 2, dist["151-200"])
	assert.Equal(t, 1, dist["200+"])

	total := 0
	for _, b := range WageBuckets {
		total += dist[b]
	}
	assert.Equal(t, len(wages), total)
}

func TestWageDistribution_EmptyStillHasEveryBucket(t *testing.T) {
	dist := WageDistribution(nil)
	assert.Len(t, dist, len(WageBuckets))
	for _, b := range WageBuckets {
		assert.Equal(t, 0, dist[b])
	}
}

// --------------------- Analytics ---------------------
func TestAnalytics_Aggregates(t *testing.T) {
	svc, mockUser, mockTask := setupAnalyticsServiceMocks(t)

	alice := user.User{ID: 1, Name: "Alice", Role: "worker", DailyWage: 100, IsAvailable: true, Specialization: "Electrical"}
	bob := user.User{ID: 2, Name: "Bob", Role: "worker", DailyWage: 200, IsAvailable: false, Specialization: "Electrical"}
	workers := []user.User{alice, bob}

	tasks := []task.Task{
		{ID: 10, Title: "Wire panel", Status: task.StatusVerified, AssignedToID: 1, AssignedTo: &alice},
		{ID: 9, Title: "Trench run", Status: task.StatusCompleted, AssignedToID: 1, AssignedTo: &alice},
		{ID: 8, Title: "Fix lighting", Status: task.StatusCompleted, AssignedToID: 2, AssignedTo: &bob},
		{ID: 7, Title: "Survey site", Status: task.StatusPending, AssignedToID: 2, AssignedTo: &bob},
		{ID: 6, Title: "Mount conduit", Status: task.StatusInProgress, AssignedToID: 1, AssignedTo: &alice},
	}

	mockUser.EXPECT().ListWorkers().Return(workers, nil)
	mockTask.EXPECT().ListTasksByAssignees([]uint{1, 2}).Return(tasks, nil)

	got, err := svc.Analytics()
	assert.NoError(t, err)

	assert.Equal(t, 2, got.Overview.TotalWorkers)
	assert.Equal(t, 1, got.Overview.AvailableWorkers)
	assert.Equal(t, 1, got.Overview.BusyWorkers)
	assert.Equal(t, 5, got.Overview.TotalTasks)
	assert.Equal(t, 150.0, got.Overview.AverageWage)

	assert.Equal(t, TaskStats{Pending: 1, InProgress: 1, Completed: 3, Total: 5}, got.TaskStats)
	assert.Equal(t, map[string]int{"Electrical": 2}, got.SpecializationDistribution)

	// Alice has two completed tasks, Bob one; top performer order is by count.
	assert.Len(t, got.TopPerformers, 2)
	assert.Equal(t, "Alice", got.TopPerformers[0].Name)
	assert.Equal(t, 2, got.TopPerformers[0].CompletedTasks)

	assert.Len(t, got.RecentTasks, 5)
	assert.Equal(t, "Wire panel", got.RecentTasks[0].Title)
}

// --------------------- WorkerDetail ---------------------
func TestWorkerDetail_NotFoundForMissingOrNonWorker(t *testing.T) {
	svc, mockUser, _ := setupAnalyticsServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(99)).Return(user.User{}, gorm.ErrRecordNotFound)
	_, err := svc.WorkerDetail(99)
	assert.Equal(t, ErrWorkerNotFound, err)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{ID: 1, Role: "admin"}, nil)
	_, err = svc.WorkerDetail(1)
	assert.Equal(t, ErrWorkerNotFound, err)
}

func TestWorkerDetail_Performance(t *testing.T) {
	svc, mockUser, mockTask := setupAnalyticsServiceMocks(t)

	worker := user.User{ID: 7, Name: "Wanda", Role: "worker", DailyWage: 150}
	mockUser.EXPECT().GetUserByID(uint(7)).Return(worker, nil)

	now := time.Now()
	twoDays := now.Add(-48 * time.Hour)
	past := now.Add(-24 * time.Hour)
	tasks := []task.Task{
		{ID: 3, Status: task.StatusCompleted, Priority: task.PriorityHigh, CreatedAt: twoDays, UpdatedAt: now},
		{ID: 2, Status: task.StatusVerified, Priority: task.PriorityMedium, CreatedAt: twoDays, UpdatedAt: now},
		{ID: 1, Status: task.StatusPending, Priority: task.PriorityLow, CreatedAt: now, DueDate: &past},
	}
	mockTask.EXPECT().ListTasksByAssignee(uint(7)).Return(tasks, nil)

	got, err := svc.WorkerDetail(7)
	assert.NoError(t, err)

	assert.Equal(t, WorkerTaskStats{Total: 3, Pending: 1, Completed: 2, Overdue: 1}, got.Performance.TaskStats)
	assert.Equal(t, PriorityStats{Low: 1, Medium: 1, High: 1}, got.Performance.PriorityStats)
	assert.Equal(t, "66.7", got.Performance.CompletionRate)
	assert.Equal(t, "2.0", got.Performance.AvgCompletionTime)
	assert.Equal(t, 300.0, got.Performance.TotalEarnings)

	assert.Len(t, got.MonthlyData, 6)
	assert.Equal(t, now.Format("Jan 2006"), got.MonthlyData[5].Month)
	bucketTotal := 0
	for _, m := range got.MonthlyData {
		bucketTotal += m.Total
	}
	assert.Equal(t, 3, bucketTotal)

	assert.Len(t, got.RecentTasks, 3)
	assert.Equal(t, "No Project", got.RecentTasks[0].Project)
	assert.Equal(t, "Unknown", got.RecentTasks[0].AssignedBy)
}
