package application

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/consite-dev/consite-go/internal/domain/task"
	"github.com/consite-dev/consite-go/internal/domain/user"
	"github.com/consite-dev/consite-go/internal/repository"
	"gorm.io/gorm"
)

// AnalyticsService computes worker reporting synchronously per request.
// Nothing here is persisted.
type AnalyticsService struct {
	Repos *repository.Repos
}

func NewAnalyticsService(repos *repository.Repos) *AnalyticsService {
	return &AnalyticsService{Repos: repos}
}

// WageBuckets are the fixed daily-wage histogram bounds, inclusive on the
// upper edge. Together they partition every possible wage.
var WageBuckets = []string{"0-50", "51-100", "101-150", "151-200", "200+"}

// WageDistribution buckets wages into the fixed ranges.
func WageDistribution(wages []float64) map[string]int {
	dist := map[string]int{}
	for _, b := range WageBuckets {
		dist[b] = 0
	}
	for _, wage := range wages {
		switch {
		case wage <= 50:
			dist["0-50"]++
		case wage <= 100:
			dist["51-100"]++
		case wage <= 150:
			dist["101-150"]++
		case wage <= 200:
			dist["151-200"]++
		default:
			dist["200+"]++
		}
	}
	return dist
}

func isCompleted(s task.Status) bool {
	return s == task.StatusCompleted || s == task.StatusVerified
}

type OverviewStats struct {
	TotalWorkers     int     `json:"totalWorkers"`
	AvailableWorkers int     `json:"availableWorkers"`
	BusyWorkers      int     `json:"busyWorkers"`
	TotalTasks       int     `json:"totalTasks"`
	AverageWage      float64 `json:"averageWage"`
}

type TaskStats struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
}

type Performer struct {
	Name           string `json:"name"`
	CompletedTasks int    `json:"completedTasks"`
	Specialization string `json:"specialization"`
}

type RecentTask struct {
	ID         uint       `json:"id"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	AssignedTo string     `json:"assignedTo"`
	DueDate    *time.Time `json:"dueDate"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type WorkerAnalytics struct {
	Overview                   OverviewStats  `json:"overview"`
	TaskStats                  TaskStats      `json:"taskStats"`
	SpecializationDistribution map[string]int `json:"specializationDistribution"`
	WageDistribution           map[string]int `json:"wageDistribution"`
	TopPerformers              []Performer    `json:"topPerformers"`
	RecentTasks                []RecentTask   `json:"recentTasks"`
}

// Analytics aggregates the whole worker pool in memory. The original system's
// attendance rate was randomly generated; the metric is dropped until a real
// attendance source exists.
func (s *AnalyticsService) Analytics() (*WorkerAnalytics, error) {
	workers, err := s.Repos.User.ListWorkers()
	if err != nil {
		return nil, err
	}

	workerIDs := make([]uint, 0, len(workers))
	wages := make([]float64, 0, len(workers))
	for _, w := range workers {
		workerIDs = append(workerIDs, w.ID)
		wages = append(wages, w.DailyWage)
	}

	tasks, err := s.Repos.Task.ListTasksByAssignees(workerIDs)
	if err != nil {
		return nil, err
	}

	available := 0
	totalWage := 0.0
	specialization := map[string]int{}
	for _, w := range workers {
		if w.IsAvailable {
			available++
		}
		totalWage += w.DailyWage
		spec := w.Specialization
		if spec == "" {
			spec = "General Labor"
		}
		specialization[spec]++
	}

	stats := TaskStats{Total: len(tasks)}
	performance := map[uint]*Performer{}
	for _, t := range tasks {
		switch {
		case t.Status == task.StatusPending:
			stats.Pending++
		case t.Status == task.StatusInProgress:
			stats.InProgress++
		case isCompleted(t.Status):
			stats.Completed++
		}

		if isCompleted(t.Status) && t.AssignedTo != nil {
			p, ok := performance[t.AssignedToID]
			if !ok {
				p = &Performer{Name: t.AssignedTo.Name, Specialization: t.AssignedTo.Specialization}
				performance[t.AssignedToID] = p
			}
			p.CompletedTasks++
		}
	}

	performers := make([]Performer, 0, len(performance))
	for _, p := range performance {
		performers = append(performers, *p)
	}
	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].CompletedTasks > performers[j].CompletedTasks
	})
	if len(performers) > 5 {
		performers = performers[:5]
	}

	// tasks come back newest-first already.
	recent := make([]RecentTask, 0, 10)
	for _, t := range tasks {
		if len(recent) == 10 {
			break
		}
		name := ""
		if t.AssignedTo != nil {
			name = t.AssignedTo.Name
		}
		recent = append(recent, RecentTask{
			ID:         t.ID,
			Title:      t.Title,
			Status:     string(t.Status),
			Priority:   string(t.Priority),
			AssignedTo: name,
			DueDate:    t.DueDate,
			CreatedAt:  t.CreatedAt,
		})
	}

	averageWage := 0.0
	if len(workers) > 0 {
		averageWage = totalWage / float64(len(workers))
	}

	return &WorkerAnalytics{
		Overview: OverviewStats{
			TotalWorkers:     len(workers),
			AvailableWorkers: available,
			BusyWorkers:      len(workers) - available,
			TotalTasks:       stats.Total,
			AverageWage:      averageWage,
		},
		TaskStats:                  stats,
		SpecializationDistribution: specialization,
		WageDistribution:           WageDistribution(wages),
		TopPerformers:              performers,
		RecentTasks:                recent,
	}, nil
}

type WorkerTaskStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}

type PriorityStats struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
	Urgent int `json:"urgent"`
}

type MonthlyBucket struct {
	Month      string `json:"month"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	Pending    int    `json:"pending"`
	InProgress int    `json:"inProgress"`
}

type WorkerPerformance struct {
	TaskStats         WorkerTaskStats `json:"taskStats"`
	PriorityStats     PriorityStats   `json:"priorityStats"`
	CompletionRate    string          `json:"completionRate"`
	AvgCompletionTime string          `json:"avgCompletionTime"`
	TotalEarnings     float64         `json:"totalEarnings"`
}

type WorkerRecentTask struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Project     string     `json:"project"`
	AssignedBy  string     `json:"assignedBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	DueDate     *time.Time `json:"dueDate"`
	CompletedAt time.Time  `json:"completedAt"`
}

type WorkerProfile struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Specialization string     `json:"specialization"`
	DailyWage      float64    `json:"dailyWage"`
	IsAvailable    bool       `json:"isAvailable"`
	JoinDate       time.Time  `json:"joinDate"`
	LastLogin      *time.Time `json:"lastLogin"`
}

type WorkerDetail struct {
	Worker              WorkerProfile      `json:"worker"`
	Performance         WorkerPerformance  `json:"performance"`
	MonthlyData         []MonthlyBucket    `json:"monthlyData"`
	ProjectDistribution map[string]int     `json:"projectDistribution"`
	RecentTasks         []WorkerRecentTask `json:"recentTasks"`
}

// WorkerDetail builds the per-worker report: trailing six calendar months of
// task history, priority and project histograms, completion rate and mean
// completion latency in days.
func (s *AnalyticsService) WorkerDetail(id uint) (*WorkerDetail, error) {
	w, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	if w.Role != string(user.RoleWorker) {
		return nil, ErrWorkerNotFound
	}

	tasks, err := s.Repos.Task.ListTasksByAssignee(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := WorkerTaskStats{Total: len(tasks)}
	priorities := PriorityStats{}
	projects := map[string]int{}
	var completedCount int
	var completionSum time.Duration

	for _, t := range tasks {
		switch {
		case t.Status == task.StatusPending:
			stats.Pending++
		case t.Status == task.StatusInProgress:
			stats.InProgress++
		case isCompleted(t.Status):
			stats.Completed++
		}
		if t.DueDate != nil && t.DueDate.Before(now) && !isCompleted(t.Status) {
			stats.Overdue++
		}

		switch t.Priority {
		case task.PriorityLow:
			priorities.Low++
		case task.PriorityMedium:
			priorities.Medium++
		case task.PriorityHigh:
			priorities.High++
		case task.PriorityUrgent:
			priorities.Urgent++
		}

		if t.Project != nil {
			projects[t.Project.Name]++
		}

		if isCompleted(t.Status) {
			completedCount++
			completionSum += t.UpdatedAt.Sub(t.CreatedAt)
		}
	}

	// Trailing six calendar months, oldest first.
	monthly := make([]MonthlyBucket, 0, 6)
	for i := 5; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		bucket := MonthlyBucket{Month: start.Format("Jan 2006")}
		for _, t := range tasks {
			if t.CreatedAt.Before(start) || !t.CreatedAt.Before(end) {
				continue
			}
			bucket.Total++
			switch {
			case isCompleted(t.Status):
				bucket.Completed++
			case t.Status == task.StatusPending:
				bucket.Pending++
			case t.Status == task.StatusInProgress:
				bucket.InProgress++
			}
		}
		monthly = append(monthly, bucket)
	}

	completionRate := 0.0
	if stats.Total > 0 {
		completionRate = float64(stats.Completed) / float64(stats.Total) * 100
	}
	avgCompletionDays := 0.0
	if completedCount > 0 {
		avgCompletionDays = completionSum.Hours() / 24 / float64(completedCount)
	}

	recent := make([]WorkerRecentTask, 0, 10)
	for _, t := range tasks {
		if len(recent) == 10 {
			break
		}
		projectName := "No Project"
		if t.Project != nil {
			projectName = t.Project.Name
		}
		assignedBy := "Unknown"
		if t.AssignedBy != nil {
			assignedBy = t.AssignedBy.Name
		}
		recent = append(recent, WorkerRecentTask{
			ID:          t.ID,
			Title:       t.Title,
			Status:      string(t.Status),
			Priority:    string(t.Priority),
			Project:     projectName,
			AssignedBy:  assignedBy,
			CreatedAt:   t.CreatedAt,
			DueDate:     t.DueDate,
			CompletedAt: t.UpdatedAt,
		})
	}

	return &WorkerDetail{
		Worker: WorkerProfile{
			ID:             w.ID,
			Name:           w.Name,
			Email:          w.Email,
			Phone:          w.Phone,
			Specialization: w.Specialization,
			DailyWage:      w.DailyWage,
			IsAvailable:    w.IsAvailable,
			JoinDate:       w.CreatedAt,
			LastLogin:      w.LastLogin,
		},
		Performance: WorkerPerformance{
			TaskStats:         stats,
			PriorityStats:     priorities,
			CompletionRate:    fmt.Sprintf("%.1f", completionRate),
			AvgCompletionTime: fmt.Sprintf("%.1f", avgCompletionDays),
			TotalEarnings:     float64(stats.Completed) * w.DailyWage,
		},
		MonthlyData:         monthly,
		ProjectDistribution: projects,
		RecentTasks:         recent,
	}, nil
}
